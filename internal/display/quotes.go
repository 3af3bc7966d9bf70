package display

import (
	"fmt"
	"math/rand"
	"strings"

	"vitae/internal/progression"
)

var inactivityMessages = []string{
	"Time to wake up, lost %d to rust!",
	"Decayed by %d, keep it active!",
	"Stale, but you can still revive!",
	"Don't let inactivity hold you back!",
	"Keep moving, no room for decay!",
}

// MotivationalQuote picks a context-aware line: brag about the last capture
// if one is pending, acknowledge a recent decay sting, else a random entry
// from the configured quote list. Consuming the context clears it.
func MotivationalQuote(st *progression.State, quotes []string, rng *rand.Rand) string {
	if st.LastCaptureEnc != "" {
		quote := fmt.Sprintf("Boom! That %s never saw you coming.", strings.ToUpper(st.LastCaptureEnc))
		st.LastCaptureEnc = ""
		return quote
	}
	if st.LastDecayLoss > 0 {
		quote := fmt.Sprintf("Decay stung for %d. Time to fight back!", st.LastDecayLoss)
		st.LastDecayLoss = 0
		return quote
	}
	if len(quotes) == 0 {
		return ""
	}
	return quotes[rng.Intn(len(quotes))]
}

// InactivityMessage phrases a decay of loss points.
func InactivityMessage(loss int, rng *rand.Rand) string {
	msg := inactivityMessages[rng.Intn(len(inactivityMessages))]
	if strings.Contains(msg, "%d") {
		return fmt.Sprintf(msg, loss)
	}
	return msg
}
