package parameter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/marionette/constants"
)

func writeParams(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marionette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), p)
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeParams(t, "move_speed: 3.5\n")

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3.5, p.MoveSpeed)
	// Untouched fields keep their defaults
	assert.Equal(t, float64(constants.RotateSpeed), p.RotateSpeed)
	assert.Equal(t, float64(constants.VelocityDamping), p.Damping)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"negative speed":   "move_speed: -1\n",
		"zero rotation":    "rotate_speed: 0\n",
		"damping over one": "damping: 1.2\n",
		"negative jump":    "jump_velocity: -5\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeParams(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeParams(t, "move_speed: [not a number\n"))
	assert.Error(t, err)
}

func TestIntegratorCarriesOverrides(t *testing.T) {
	p := Defaults()
	p.MoveSpeed = 4.0
	p.Damping = 0.5

	g := p.Integrator()
	assert.Equal(t, 4.0, g.MoveSpeed)
	assert.Equal(t, 0.5, g.Damping)
	// Gravity is not a parameter; it stays at the constant
	assert.Equal(t, float64(constants.Gravity), g.Gravity)
}
