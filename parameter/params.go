package parameter

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/marionette/constants"
	"github.com/lixenwraith/marionette/physics"
)

// Params are the runtime-tunable locomotion values, loadable from a
// YAML file. Arm geometry and solver thresholds are deliberately not
// tunable: the reach invariants are calibrated against them.
type Params struct {
	MoveSpeed    float64 `yaml:"move_speed"`
	RotateSpeed  float64 `yaml:"rotate_speed"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	Damping      float64 `yaml:"damping"`
}

// Defaults returns the tuned constants as parameters
func Defaults() Params {
	return Params{
		MoveSpeed:    constants.MoveSpeed,
		RotateSpeed:  constants.RotateSpeed,
		JumpVelocity: constants.JumpVelocity,
		Damping:      constants.VelocityDamping,
	}
}

// Load reads parameter overrides from a YAML file. A missing file is
// not an error; it yields the defaults. Fields absent from the file
// keep their default values.
func Load(path string) (Params, error) {
	p := Defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read params: %w", err)
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse params: %w", err)
	}
	return p, p.Validate()
}

// Validate rejects values the integrator cannot work with
func (p Params) Validate() error {
	if p.MoveSpeed <= 0 {
		return fmt.Errorf("move_speed must be positive, got %v", p.MoveSpeed)
	}
	if p.RotateSpeed <= 0 {
		return fmt.Errorf("rotate_speed must be positive, got %v", p.RotateSpeed)
	}
	if p.JumpVelocity <= 0 {
		return fmt.Errorf("jump_velocity must be positive, got %v", p.JumpVelocity)
	}
	if p.Damping < 0 || p.Damping >= 1 {
		return fmt.Errorf("damping must be in [0, 1), got %v", p.Damping)
	}
	return nil
}

// Integrator builds a locomotion integrator from the parameters
func (p Params) Integrator() physics.Integrator {
	g := physics.NewIntegrator()
	g.MoveSpeed = p.MoveSpeed
	g.RotateSpeed = p.RotateSpeed
	g.JumpImpulse = p.JumpVelocity
	g.Damping = p.Damping
	return g
}
