package board

// StartMode selects how a game's moves are submitted: one player at a time,
// or both players concurrently via the Simultaneous Move Coordinator.
type StartMode uint8

const (
	Sequential StartMode = iota
	SimultaneousIndependent
	SimultaneousLeaderFollower
)

func (m StartMode) String() string {
	switch m {
	case Sequential:
		return "Sequential"
	case SimultaneousIndependent:
		return "SimultaneousIndependent"
	case SimultaneousLeaderFollower:
		return "SimultaneousLeaderFollower"
	default:
		return "?"
	}
}

// LeaderSelection picks the leader in SimultaneousLeaderFollower mode.
type LeaderSelection uint8

const (
	Random LeaderSelection = iota
	AlwaysP0
	AlwaysP1
)

func (l LeaderSelection) String() string {
	switch l {
	case Random:
		return "Random"
	case AlwaysP0:
		return "AlwaysP0"
	case AlwaysP1:
		return "AlwaysP1"
	default:
		return "?"
	}
}

// RuleConfig bundles the toggles that parameterize sowing semantics. The
// zero value is not a valid configuration to sow with -- use DefaultRules
// or construct explicitly, mirroring the teacher's castling/rule bundles
// that are always built through a named constructor.
type RuleConfig struct {
	CaptureEnabled      bool
	CaptureRequiresLoop bool
	ForfeitEnabled      bool

	// BurntHolesEnabled is reserved for the multi-round "burnt holes"
	// variant. The Sowing Engine and Coordinator never branch on it: it is
	// accepted as a no-op (see SPEC_FULL.md's Open Question decision #1).
	BurntHolesEnabled bool

	StartMode       StartMode
	LeaderSelection LeaderSelection
}

// DefaultRules returns the standard rule set: capture and forfeit enabled,
// capture not gated on looping through the store, sequential turns.
func DefaultRules() RuleConfig {
	return RuleConfig{
		CaptureEnabled:  true,
		ForfeitEnabled:  true,
		StartMode:       Sequential,
		LeaderSelection: Random,
	}
}
