package sim

import (
	"fmt"
	"sort"
)

// TopK returns the k largest counters in descending order.
func TopK(activity []int64, k int) ([]int64, error) {
	if k < 1 || k > len(activity) {
		return nil, &ConfigValidationError{Actor: -1, Field: "top_k",
			Reason: fmt.Sprintf("must be in [1,%d], got %d", len(activity), k)}
	}
	sorted := append([]int64(nil), activity...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })
	return sorted[:k], nil
}

// Score is the product of the k highest activity counters.
func Score(activity []int64, k int) (int64, error) {
	top, err := TopK(activity, k)
	if err != nil {
		return 0, err
	}
	score := int64(1)
	for _, v := range top {
		score *= v
	}
	return score, nil
}
