package phys

// World geometry and force constants.
const (
	DefaultUniverseWidth  = 200.0 // meters
	DefaultUniverseHeight = 200.0 // meters
	DefaultWindowWidth    = 800.0 // pixels
	DefaultWindowHeight   = 400.0 // pixels
	DefaultScale          = 2.0   // pixels per meter
	DefaultGravity        = -9.81
	DefaultFriction       = 0.5
	DefaultRestSpeed      = 1.0
	DefaultRestMargin     = 1.0
)

// Params holds the host-configurable constants consumed by Step. Bodies whose
// scaled position leaves the universe box despawn; the window box reflects
// them instead.
type Params struct {
	UniverseWidth  float64
	UniverseHeight float64
	WindowWidth    float64
	WindowHeight   float64
	Scale          float64
	Gravity        float64
	Friction       float64

	// RestSpeed and RestMargin drive rest detection: a body slower than
	// RestSpeed within RestMargin of the floor freezes permanently.
	RestSpeed  float64
	RestMargin float64

	// Collisions toggles the inter-body impulse pass.
	Collisions bool
}

func DefaultParams() Params {
	return Params{
		UniverseWidth:  DefaultUniverseWidth,
		UniverseHeight: DefaultUniverseHeight,
		WindowWidth:    DefaultWindowWidth,
		WindowHeight:   DefaultWindowHeight,
		Scale:          DefaultScale,
		Gravity:        DefaultGravity,
		Friction:       DefaultFriction,
		RestSpeed:      DefaultRestSpeed,
		RestMargin:     DefaultRestMargin,
		Collisions:     true,
	}
}
