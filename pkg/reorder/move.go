package reorder

// Move returns a copy of items with the element at from removed and
// reinserted at to. Elements between the two positions shift by one; all
// others keep their relative order. Out-of-range or equal indexes yield an
// unchanged copy.
func Move[T any](items []T, from, to int) []T {
	out := append([]T(nil), items...)
	if from == to || from < 0 || to < 0 || from >= len(out) || to >= len(out) {
		return out
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}
