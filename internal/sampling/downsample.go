package sampling

// DefaultSampleBudget is the number of points kept per entity when no budget is configured.
const DefaultSampleBudget = 100

// Stride returns max(total/(budget+1), 1).
func Stride(total, budget int) int {
	if budget < 1 {
		return 1
	}
	if s := total / (budget + 1); s > 1 {
		return s
	}
	return 1
}

// BoundedStride returns the stride used for selection: Stride, raised to
// ceil(total/budget) when Stride alone would keep more than budget points.
func BoundedStride(total, budget int) int {
	s := Stride(total, budget)
	if budget < 1 {
		return s
	}
	if total/s > budget {
		s = (total + budget - 1) / budget
	}
	return s
}

// Select returns the 0-based indices whose 1-based sequence number is a
// multiple of stride.
func Select(total, stride int) []int {
	if stride < 1 {
		stride = 1
	}
	selected := make([]int, 0, total/stride)
	for seq := stride; seq <= total; seq += stride {
		selected = append(selected, seq-1)
	}
	return selected
}

// Downsample selects at most budget evenly spaced indices of a partition of
// size total and returns them together with the stride used.
func Downsample(total, budget int) ([]int, int) {
	stride := BoundedStride(total, budget)
	return Select(total, stride), stride
}
