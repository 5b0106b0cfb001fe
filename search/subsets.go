package search

import "sort"

// forEachSubset visits the subsets of set with at most maxSize elements,
// smallest first and lexicographically within a size. maxSize < 0 means no
// bound. visit receives a fresh slice.
func forEachSubset(set []int, maxSize int, visit func([]int)) {
	limit := len(set)
	if maxSize >= 0 && maxSize < limit {
		limit = maxSize
	}
	for k := 0; k <= limit; k++ {
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			sub := make([]int, k)
			for i, j := range idx {
				sub[i] = set[j]
			}
			visit(sub)

			// Advance the rightmost index that still has room.
			i := k - 1
			for i >= 0 && idx[i] == len(set)-k+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// union returns the sorted union of the given sorted or unsorted sets.
func union(sets ...[]int) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, s := range sets {
		for _, v := range s {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}
	sort.Ints(out)

	return out
}

// without returns s minus drop, order kept.
func without(s []int, drop ...int) []int {
	out := make([]int, 0, len(s))
next:
	for _, v := range s {
		for _, d := range drop {
			if v == d {
				continue next
			}
		}
		out = append(out, v)
	}

	return out
}
