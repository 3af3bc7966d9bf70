package progression

// ApplyDecay reduces points in proportion to epochs of inactivity. It is a
// no-op until currentEpoch-lastActiveEpoch reaches interval; past that the
// loss is floor(inactive/interval * amount), subtracted with a clamp at
// zero. The returned loss is the pre-clamp figure, which the status line
// reports even when fewer points were actually available to remove.
//
// A nonzero loss resets the capture streak and re-arms lastActiveEpoch so
// decay cannot fire twice inside one interval.
func ApplyDecay(st *State, currentEpoch, interval, amount int) int {
	if interval <= 0 {
		return 0
	}
	inactive := currentEpoch - st.LastActiveEpoch
	if inactive < interval {
		return 0
	}

	factor := float64(inactive) / float64(interval)
	loss := int(factor * float64(amount))
	if loss <= 0 {
		return 0
	}

	st.Points -= loss
	if st.Points < 0 {
		st.Points = 0
	}
	st.Streak = 0
	st.LastActiveEpoch = currentEpoch
	st.LastDecayLoss = loss
	return loss
}
