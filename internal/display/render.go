package display

import (
	"fmt"
	"math/rand"

	"vitae/internal/progression"
)

// Render phrases a progression event as a mood and a status line. The
// returned status may be empty for events with no screen presence.
func Render(ev progression.Event, st *progression.State, quotes []string, rng *rand.Rand) (Mood, string) {
	switch ev.Kind {
	case progression.EventAgeTitle:
		return MoodHappy, fmt.Sprintf("🎉 %s Achieved! %s", ev.Title, MotivationalQuote(st, quotes, rng))
	case progression.EventStrengthTitle:
		return MoodMotivated, fmt.Sprintf("💪 Evolved to %s!", ev.Title)
	case progression.EventDecay:
		return MoodSad, InactivityMessage(ev.Points, rng)
	case progression.EventStreakBonus:
		return MoodExcited, "Streak bonus! +20% points"
	case progression.EventNightOwl:
		return MoodHappy, "Achievement Unlocked: Night Owl!"
	case progression.EventCryptoKing:
		return MoodHappy, "Achievement Unlocked: Crypto King!"
	case progression.EventBonusStart:
		return MoodExcited, ev.Description
	case progression.EventMilestone:
		return MoodHappy, fmt.Sprintf("Epoch milestone: %d epochs!", ev.Points)
	case progression.EventTravelLevel:
		return MoodExcited, fmt.Sprintf("🧭 Travel level %d reached!", ev.Points)
	default:
		return MoodNeutral, ""
	}
}
