package progression

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybeTriggerEventProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	triggered := 0
	for i := 0; i < 10000; i++ {
		if ev := MaybeTriggerEvent(rng); ev != nil {
			triggered++
		}
	}
	// 5% of 10000 draws; a generous band keeps the test stable across
	// rand implementations.
	assert.Greater(t, triggered, 300)
	assert.Less(t, triggered, 800)
}

func TestMaybeTriggerEventShape(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	seen := map[string]bool{}
	for i := 0; i < 20000; i++ {
		ev := MaybeTriggerEvent(rng)
		if ev == nil {
			continue
		}
		require.NotEmpty(t, ev.ID)
		require.NotEmpty(t, ev.Description)
		seen[ev.Description] = true
		switch ev.Multiplier {
		case 2.0:
			assert.Equal(t, 5, ev.UsesLeft)
		case 0.5:
			assert.Equal(t, 1, ev.UsesLeft)
		default:
			t.Fatalf("unexpected multiplier %v", ev.Multiplier)
		}
	}
	assert.Len(t, seen, 2, "both templates should appear over enough draws")
}

func TestBonusEventCountsDownAcrossCaptures(t *testing.T) {
	e := newTestEngine(t, nil)
	st := e.State()
	st.ActiveEvent = &BonusEvent{ID: "lucky", Multiplier: 2.0, UsesLeft: 5}

	for i := 5; i > 1; i-- {
		pts, _ := e.Capture(Capture{Encryption: "wpa2"})
		require.NotNil(t, st.ActiveEvent)
		assert.Equal(t, i-1, st.ActiveEvent.UsesLeft)
		assert.GreaterOrEqual(t, pts, 10, "doubled base reward")
	}

	e.Capture(Capture{Encryption: "wpa2"})
	assert.Nil(t, st.ActiveEvent, "fifth use exhausts the event")
}
