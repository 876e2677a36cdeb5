package game

// Phase is the current screen of the game.
type Phase int

const (
	PhaseTitle   Phase = iota // Title screen, waiting for start
	PhasePlaying              // Active gameplay
	PhaseOver                 // Out of lives, waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// State is the player-facing progress of a game.
type State struct {
	Phase      Phase
	Score      int
	Lives      int
	ShowTuning bool // Fire rate and direction controls are visible
}

// Input is one frame of player intent, already decoded by a frontend.
type Input struct {
	Left, Right, Up, Down bool // Held movement keys
	Fire                  bool // Held fire key

	Start        bool // Pressed this frame
	ToggleTuning bool // Pressed this frame

	// Pointer drag since the last frame, in field pixels.
	DragX, DragY float64

	// Tuning adjustments, applied only while the tuning controls are visible.
	RateDelta float64 // Shots per second
	AimDelta  float64 // Degrees
}
