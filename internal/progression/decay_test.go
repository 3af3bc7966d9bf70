package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDecayNoOpWithinInterval(t *testing.T) {
	st := NewState()
	st.Points = 100
	st.Streak = 3
	st.LastActiveEpoch = 60

	loss := ApplyDecay(st, 100, 50, 10)

	assert.Zero(t, loss)
	assert.Equal(t, 100, st.Points)
	assert.Equal(t, 3, st.Streak, "streak untouched when decay does not fire")
	assert.Equal(t, 60, st.LastActiveEpoch)
}

func TestApplyDecayProportionalLoss(t *testing.T) {
	st := NewState()
	st.Points = 100
	st.Streak = 7

	// inactive=75, factor=1.5, loss=floor(1.5*10)=15
	loss := ApplyDecay(st, 75, 50, 10)

	assert.Equal(t, 15, loss)
	assert.Equal(t, 85, st.Points)
	assert.Zero(t, st.Streak)
	assert.Equal(t, 75, st.LastActiveEpoch, "interval re-armed")
}

func TestApplyDecayReportsPreClampLoss(t *testing.T) {
	// Worked example: interval=50, amount=10, lastActive=0, epoch=100,
	// points=5. Loss is floor(2.0*10)=20 even though only 5 points existed.
	st := NewState()
	st.Points = 5
	st.Streak = 2

	loss := ApplyDecay(st, 100, 50, 10)

	assert.Equal(t, 20, loss, "reported loss is the pre-clamp figure")
	assert.Zero(t, st.Points)
	assert.Zero(t, st.Streak)
	assert.Equal(t, 20, st.LastDecayLoss)
}

func TestApplyDecayCannotDoubleFire(t *testing.T) {
	st := NewState()
	st.Points = 100

	first := ApplyDecay(st, 100, 50, 10)
	assert.Equal(t, 20, first)

	// Re-armed at 100; the very next epoch is inside a fresh interval.
	second := ApplyDecay(st, 101, 50, 10)
	assert.Zero(t, second)
	assert.Equal(t, 80, st.Points)
}

func TestApplyDecayZeroInterval(t *testing.T) {
	st := NewState()
	st.Points = 10
	assert.Zero(t, ApplyDecay(st, 100, 0, 10))
	assert.Equal(t, 10, st.Points)
}
