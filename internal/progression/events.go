package progression

import (
	"math/rand"

	"github.com/google/uuid"
)

// Bonus event tuning: checked once per eventCheckInterval epochs, installed
// with eventChance probability.
const (
	eventCheckInterval = 100
	eventChance        = 0.05

	streakThreshold  = 5
	streakMultiplier = 1.2

	nightOwlTarget = 10
	nightOwlBonus  = 50
	cryptoBonus    = 100
)

type bonusTemplate struct {
	description string
	multiplier  float64
	uses        int
}

var bonusTemplates = []bonusTemplate{
	{description: "Lucky Break: Double points for next 5 handshakes!", multiplier: 2.0, uses: 5},
	{description: "Signal Noise: Next handshake worth half points.", multiplier: 0.5, uses: 1},
}

// MaybeTriggerEvent rolls the 5% chance and, on success, returns a fresh
// bonus event picked uniformly from the templates. The caller installs it
// as the active event, overwriting any still-running one; events never
// queue.
func MaybeTriggerEvent(rng *rand.Rand) *BonusEvent {
	if rng.Float64() >= eventChance {
		return nil
	}
	tpl := bonusTemplates[rng.Intn(len(bonusTemplates))]
	return &BonusEvent{
		ID:          uuid.NewString(),
		Description: tpl.description,
		Multiplier:  tpl.multiplier,
		UsesLeft:    tpl.uses,
	}
}
