package constants

// Arm Geometry
const (
	// UpperArmLength is shoulder-to-elbow segment length in meters
	UpperArmLength = 0.3

	// ForearmLength is elbow-to-hand segment length in meters
	ForearmLength = 0.25

	// TotalArmLength is the fully extended reach
	TotalArmLength = UpperArmLength + ForearmLength

	// ReachFraction limits hand placement short of full extension so
	// the elbow never locks out straight
	ReachFraction = 0.95

	// ShoulderLateral is the shoulder anchor X offset from the root
	// (negated for the left arm)
	ShoulderLateral = 0.25

	// ShoulderHeight is the shoulder anchor Y offset from the root
	ShoulderHeight = 1.4
)

// Hand Target Smoothing
const (
	// HandSmoothing is the per-tick lerp factor toward the resolved
	// target; a first-order filter, not an instantaneous snap
	HandSmoothing = 0.15

	// DegenerateDistance is the shoulder-to-target distance below which
	// the solve substitutes a fixed default offset instead of
	// normalizing a near-zero vector
	DegenerateDistance = 0.1

	// DefaultHandLateral is the X magnitude of the degenerate-case hand
	// offset (negated for the left arm)
	DefaultHandLateral = 0.2

	// DefaultHandForward is the forward-axis component of the
	// degenerate-case hand offset
	DefaultHandForward = 0.2
)

// Forward Reach Band
const (
	// HandForwardMin and HandForwardMax bound the hand's offset from
	// the shoulder along the character's forward axis
	HandForwardMin = -0.3
	HandForwardMax = 0.8
)

// Elbow Placement
const (
	// ElbowForwardBias is added along the forward axis before the elbow
	// direction is renormalized, bending the elbow toward the front
	// rather than the geometrically exact two-bone pose
	ElbowForwardBias = 0.5

	// ElbowLateralBias is the X bias of the elbow direction (negated
	// for the left arm), keeping elbows outward in a guard stance
	ElbowLateralBias = 0.3

	// ElbowForwardFloor is the minimum forward component of the elbow
	// offset; shortfall is pushed forward along the forward axis
	ElbowForwardFloor = 0.1
)

// Reach Box Bounds (robot-local coordinates)
const (
	// ReachInward bounds lateral hand travel across the body midline;
	// ReachOutward bounds travel away from it. Each side's X clamp is
	// the mirror of the other's.
	ReachInward  = 0.2
	ReachOutward = 0.8

	// ReachBottom and ReachTop bound the shared vertical band
	ReachBottom = 0.5
	ReachTop    = 2.0
)
