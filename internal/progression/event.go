package progression

// EventKind classifies a notification the core raises for presentation.
type EventKind int

const (
	// EventAgeTitle and EventStrengthTitle fire on edge-triggered title
	// transitions.
	EventAgeTitle EventKind = iota
	EventStrengthTitle
	// EventDecay reports the pre-clamp points lost to inactivity.
	EventDecay
	// EventStreakBonus fires on every capture at streak >= 5.
	EventStreakBonus
	// EventNightOwl fires exactly once, on the 10th night-window capture.
	EventNightOwl
	// EventCryptoKing fires once the captured encryption kinds cover the
	// full configured set. There is no persisted one-shot flag: once the
	// set is complete every subsequent capture re-fires it. Kept as the
	// original behaved; flagged in DESIGN.md.
	EventCryptoKing
	// EventBonusStart announces a freshly installed bonus event.
	EventBonusStart
	// EventMilestone marks every 100th epoch.
	EventMilestone
	// EventTravelLevel announces a traveler level-up.
	EventTravelLevel
)

// Event is a single notification with the payload the presentation layer
// needs to phrase it.
type Event struct {
	Kind        EventKind
	Title       string // new title for transition events
	Points      int    // decay loss, bonus points, or milestone epoch count
	Description string // bonus event description
}
