// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

// DistributeColumns adjusts column widths to fit totalWidth after
// accounting for gapCount gaps of gapWidth each. cols holds preferred
// widths; flexIndices mark columns allowed to absorb extra space or
// shrink when space is short. Columns never drop below 1.
func DistributeColumns(totalWidth, gapCount, gapWidth int, cols []int, flexIndices []int) []int {
	if totalWidth <= 0 {
		return cols
	}

	adjusted := make([]int, len(cols))
	copy(adjusted, cols)

	available := totalWidth - gapCount*gapWidth
	if available <= 0 {
		for i := range adjusted {
			if adjusted[i] <= 0 {
				adjusted[i] = 1
			}
		}
		return adjusted
	}

	sum := 0
	for _, v := range adjusted {
		sum += v
	}

	switch {
	case sum == available:
		return adjusted

	case sum < available:
		remaining := available - sum
		if len(flexIndices) == 0 {
			adjusted[len(adjusted)-1] += remaining
		} else {
			adjusted[flexIndices[0]] += remaining
		}
		return adjusted
	}

	// Over budget: shave the largest flexible column one cell at a time.
	for sum > available && len(flexIndices) > 0 {
		largestIdx, largestVal := -1, -1
		for _, idx := range flexIndices {
			if adjusted[idx] > largestVal {
				largestVal = adjusted[idx]
				largestIdx = idx
			}
		}
		if largestIdx == -1 || largestVal <= 1 {
			break
		}
		adjusted[largestIdx]--
		sum--
	}

	// Last resort: shrink whatever still fits.
	for i := 0; sum > available && i < len(adjusted); {
		if adjusted[i] > 1 {
			adjusted[i]--
			sum--
			continue
		}
		i++
	}

	return adjusted
}
