package packing

import "sort"

// Fit repairs a set of bins against a list of items left out by a crossover
// or mutation. Each loose item is first offered to every bin's ReplaceOne,
// then ReplaceTwo; a successful replacement pushes the displaced item(s)
// back onto the work stack so they get the same chance before the pass
// moves on. Anything that cannot be re-homed this way falls through to a
// best-fit-decreasing placement, opening a new bin only as a last resort.
//
// The caller's bins slice is mutated in place; Fit returns the same slice
// (grown if new bins were opened) for convenience.
func Fit(bins []*Bin, loose []ItemRef) []*Bin {
	stack := append([]ItemRef(nil), loose...)
	var remaining []ItemRef

	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if y, ok := replaceOneAcrossBins(bins, x); ok {
			stack = append(stack, y)
			continue
		}
		if y, z, ok := replaceTwoAcrossBins(bins, x); ok {
			stack = append(stack, y, z)
			continue
		}
		remaining = append(remaining, x)
	}

	sort.Slice(remaining, func(i, j int) bool { return remaining[i].Weight > remaining[j].Weight })

	for _, x := range remaining {
		bins = bestFit(bins, x)
	}

	return bins
}

func replaceOneAcrossBins(bins []*Bin, x ItemRef) (ItemRef, bool) {
	for _, b := range bins {
		if y, ok := b.ReplaceOne(x); ok {
			return y, true
		}
	}
	return ItemRef{}, false
}

func replaceTwoAcrossBins(bins []*Bin, x ItemRef) (ItemRef, ItemRef, bool) {
	for _, b := range bins {
		if y, z, ok := b.ReplaceTwo(x); ok {
			return y, z, true
		}
	}
	return ItemRef{}, ItemRef{}, false
}

// bestFit inserts x into the bin that leaves the least slack among those
// that fit, opening a new bin (of the same capacity as the others) if none
// do.
func bestFit(bins []*Bin, x ItemRef) []*Bin {
	best := -1
	bestSlack := 0.0
	for i, b := range bins {
		slack, ok := b.Fits(x)
		if !ok {
			continue
		}
		if best == -1 || slack < bestSlack {
			best, bestSlack = i, slack
		}
	}

	if best == -1 {
		capacity := x.Weight
		if len(bins) > 0 {
			capacity = bins[0].Capacity()
		}
		nb := NewBinWithItem(capacity, x)
		return append(bins, nb)
	}

	_ = bins[best].Insert(x)
	return bins
}
