package dice

import "sort"

// RollPool rolls count+advantage d6 and removes the cut highest dice.
//
// The cut never removes every die: at most total-1 dice are dropped, so a
// non-empty pool always keeps at least one die. A count of zero with no
// advantage yields an empty pool. Negative arguments are treated as zero.
//
// Postcondition: every kept and dropped value is in [1, Sides].
func RollPool(count, cut, advantage int, src Source) PoolResult {
	count = max(count, 0)
	cut = max(cut, 0)
	advantage = max(advantage, 0)

	total := count + advantage
	rolled := make([]int, total)
	for i := range rolled {
		rolled[i] = src.Intn(Sides) + 1
	}

	res := PoolResult{Count: count, Cut: cut, Advantage: advantage, Kept: rolled}
	effectiveCut := min(cut, total-1)
	if effectiveCut <= 0 {
		return res
	}

	// Indices ordered by value descending; stable so equal faces drop in roll order.
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return rolled[idx[a]] > rolled[idx[b]] })

	drop := make(map[int]bool, effectiveCut)
	res.Dropped = make([]int, 0, effectiveCut)
	for _, i := range idx[:effectiveCut] {
		drop[i] = true
		res.Dropped = append(res.Dropped, rolled[i])
	}
	kept := make([]int, 0, total-effectiveCut)
	for i, v := range rolled {
		if !drop[i] {
			kept = append(kept, v)
		}
	}
	res.Kept = kept
	return res
}
