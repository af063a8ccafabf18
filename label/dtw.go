package label

import "math"

// warpDistance computes the dynamic-time-warping distance between two
// pitch series: the minimum cumulative |a[i]-b[j]| cost over all
// monotone alignments. Only the scalar distance is needed here, so the
// DP keeps two rows instead of the full matrix.
//
// Contract: both series non-empty (segment spans always are).
//
// Complexity: O(n·m) time, O(m) memory.
func warpDistance(a, b []float64) float64 {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		if n == m {
			return 0
		}

		return math.Inf(1)
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			cost := math.Abs(a[i-1] - b[j-1])
			curr[j] = cost + math.Min(prev[j-1], math.Min(prev[j], curr[j-1]))
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
