package progression

import "sort"

// ResolveTitle returns the label of the greatest threshold not exceeding
// counter, or floor when counter is below every threshold.
func ResolveTitle(counter int, titles map[int]string, floor string) string {
	thresholds := make([]int, 0, len(titles))
	for t := range titles {
		thresholds = append(thresholds, t)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(thresholds)))
	for _, t := range thresholds {
		if counter >= t {
			return titles[t]
		}
	}
	return floor
}

// NextThreshold returns the smallest threshold strictly greater than
// counter. ok is false when counter already meets or exceeds the maximum
// threshold; callers render a max-level sentinel in that case.
func NextThreshold(counter int, titles map[int]string) (next int, ok bool) {
	thresholds := make([]int, 0, len(titles))
	for t := range titles {
		thresholds = append(thresholds, t)
	}
	sort.Ints(thresholds)
	for _, t := range thresholds {
		if counter < t {
			return t, true
		}
	}
	return 0, false
}
