// Package progression holds the persistent player-progression model: ages,
// strength, points, streaks, achievements, and the engines that evolve them
// in response to host epochs and captured handshakes.
package progression

import (
	"vitae/internal/traveler"
	"vitae/internal/types"
)

// Floor labels returned before any threshold is reached.
const (
	FloorAgeTitle      = "Unborn"
	FloorStrengthTitle = "Untrained"
	FloorTravelTitle   = "Homebody"
)

// State is the single persisted aggregate. It is mutated only through the
// Engine and the decay/capture operations; counters never go negative.
//
// JSON keys are kept stable for compatibility with state files written by
// earlier builds; unknown keys in old files are ignored on load.
type State struct {
	Epochs            int    `json:"epochs"`
	TrainEpochs       int    `json:"train_epochs"`
	Points            int    `json:"points"`
	Handshakes        int    `json:"handshakes"`
	LastActiveEpoch   int    `json:"last_active"`
	Streak            int    `json:"streak"`
	PrevAgeTitle      string `json:"prev_age"`
	PrevStrengthTitle string `json:"prev_strength"`

	NightOwlHandshakes int             `json:"night_owl_handshakes"`
	EncTypesCaptured   types.StringSet `json:"enc_types_captured"`

	PersonalityAggro   int `json:"personality_aggro"`
	PersonalityStealth int `json:"personality_stealth"` // defined but inert
	PersonalityScholar int `json:"personality_scholar"`

	// ActiveEvent is transient in spirit but persisted so a running
	// multiplier survives a restart.
	ActiveEvent *BonusEvent `json:"active_event,omitempty"`

	// Travel is present only when the traveler subsystem is enabled.
	Travel *traveler.State `json:"traveler,omitempty"`

	// Presentation context for quote selection; never persisted.
	LastCaptureEnc string `json:"-"`
	LastDecayLoss  int    `json:"-"`
}

// NewState returns the all-zero aggregate a fresh install starts from.
func NewState() *State {
	return &State{
		PrevAgeTitle:      FloorAgeTitle,
		PrevStrengthTitle: FloorStrengthTitle,
		EncTypesCaptured:  types.NewStringSet(),
	}
}

// EnsureTravel lazily attaches the traveler sub-aggregate.
func (s *State) EnsureTravel() *traveler.State {
	if s.Travel == nil {
		s.Travel = &traveler.State{}
	}
	return s.Travel
}

// BonusEvent is a transient reward multiplier applied to the next UsesLeft
// captures. Once UsesLeft reaches zero the event is cleared and the
// multiplier reverts to 1x.
type BonusEvent struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier"`
	UsesLeft    int     `json:"uses_left"`
}
