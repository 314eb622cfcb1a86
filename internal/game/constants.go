package game

// Arena defaults
const (
	DefaultCols      = 32
	DefaultRows      = 24
	DefaultWidth     = 640.0 // world units
	DefaultHeight    = 480.0 // world units
	DefaultObstacles = 40
)

// Movement (world units per tick)
const (
	RunnerSpeed      = 2.0
	FollowerSpeed    = 1.2
	InterceptorSpeed = 1.1
	RouteCutterSpeed = 1.0
)

// Placement
const (
	// maxPlacementAttempts bounds each rejection-sampling loop before falling
	// back to a scan of the candidate band.
	maxPlacementAttempts = 1000
)

// Settings are the per-round generation parameters.
type Settings struct {
	Cols      int
	Rows      int
	Width     float64
	Height    float64
	Obstacles int
	Speeds    Speeds
}

// Speeds holds the per-agent movement speed.
type Speeds struct {
	Runner      float64
	Follower    float64
	Interceptor float64
	RouteCutter float64
}

// For returns the speed of a hunter kind.
func (s Speeds) For(kind Kind) float64 {
	switch kind {
	case Follower:
		return s.Follower
	case Interceptor:
		return s.Interceptor
	case RouteCutter:
		return s.RouteCutter
	default:
		return 0
	}
}

// DefaultSettings returns the classic 32×24 arena with 40 obstacles.
func DefaultSettings() Settings {
	return Settings{
		Cols:      DefaultCols,
		Rows:      DefaultRows,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Obstacles: DefaultObstacles,
		Speeds: Speeds{
			Runner:      RunnerSpeed,
			Follower:    FollowerSpeed,
			Interceptor: InterceptorSpeed,
			RouteCutter: RouteCutterSpeed,
		},
	}
}
