// Package display turns progression state into the short strings the host
// widget surface shows. Rendering is side-effect free except for quote
// selection, which consumes the one-shot capture/decay context it reads.
package display

import (
	"fmt"
	"math"
	"strings"

	"vitae/internal/progression"
)

// Mood is the face the host display should show alongside a status line.
type Mood int

const (
	MoodNeutral Mood = iota
	MoodHappy
	MoodMotivated
	MoodSad
	MoodExcited
)

func (m Mood) String() string {
	switch m {
	case MoodHappy:
		return "happy"
	case MoodMotivated:
		return "motivated"
	case MoodSad:
		return "sad"
	case MoodExcited:
		return "excited"
	default:
		return "neutral"
	}
}

// MaxLevelBar is rendered once the counter has passed every threshold.
const MaxLevelBar = "[MAX]"

// AbbrevNumber shortens n with K/M/B/T suffixes, one decimal place, with a
// trailing ".0" dropped.
func AbbrevNumber(n int) string {
	v := float64(n)
	for _, unit := range []string{"", "K", "M", "B"} {
		if math.Abs(v) < 1000 {
			return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0") + unit
		}
		v /= 1000
	}
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0") + "T"
}

// ProgressBar renders progress in [0,1] as |▥▥▥  | with cells cells.
func ProgressBar(progress float64, cells int) string {
	if cells < 1 {
		cells = 1
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(cells))
	return "|" + strings.Repeat("▥", filled) + strings.Repeat(" ", cells-filled) + "|"
}

// DominantPersonality names the trait with the highest score, or "Neutral"
// when every trait is still zero.
func DominantPersonality(st *progression.State) string {
	traits := []struct {
		name  string
		score int
	}{
		{"Aggro", st.PersonalityAggro},
		{"Stealth", st.PersonalityStealth},
		{"Scholar", st.PersonalityScholar},
	}
	best := traits[0]
	for _, t := range traits[1:] {
		if t.score > best.score {
			best = t
		}
	}
	if best.score == 0 {
		return "Neutral"
	}
	return best.name
}
