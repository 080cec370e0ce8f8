// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

// Verdict classifies how two lists relate to each other under a
// CompareFunc.
type Verdict int

const (
	// MatchInOrder: list1 equals list2, node for node, in the same
	// order.
	MatchInOrder Verdict = iota
	// MatchReverse: list1 equals list2, node for node, in reverse
	// order.
	MatchReverse
	// MatchNonOrder: list1 and list2 contain the same values, in any
	// order.
	MatchNonOrder
	// MatchSubset: list1 occurs as a contiguous forward run inside
	// list2.
	MatchSubset
	// MatchRevSubset: list1 occurs as a contiguous reverse run inside
	// list2.
	MatchRevSubset
	// MatchIncluded: every node of list1 occurs somewhere in list2,
	// but not as one contiguous run.
	MatchIncluded
	// MatchCovered: every value in list1 is found somewhere in list2,
	// counting repeats.
	MatchCovered
	// MatchPartial: some, but not all, of list1's nodes have a match
	// in list2.
	MatchPartial
	// MatchNothing: no node of list1 has a match anywhere in list2.
	MatchNothing
)

// compareInOrder walks node1 forward and node2 in dir together,
// counting how many consecutive pairs cmp reports equal.
func compareInOrder(node1, node2 Node, cmp CompareFunc, dir Direction) int {
	match := 0
	for node1 != nil && node2 != nil {
		if cmp(node1, node2) != 0 {
			break
		}
		node1 = nextOf(node1)
		node2 = loopNext(node2, dir)
		match++
	}
	return match
}

// compareValues counts list1 nodes that have at least one equal
// counterpart anywhere in list2, repeats included:
// [1,5,3,3,1] matches [1,2,3,4,5,6] with count 5.
func compareValues(list1, list2 *List, cmp CompareFunc) int {
	match := 0
	for n1 := list1.first; n1 != nil; n1 = nextOf(n1) {
		for n2 := list2.first; n2 != nil; n2 = nextOf(n2) {
			if cmp(n1, n2) == 0 {
				match++
				break
			}
		}
	}
	return match
}

// compareNonOrder counts list1 nodes that have a match in list2,
// each list2 node consumed at most once, so
// [1,2,2,3,4,5] does not fully match [1,2,3,4,4,5].
func compareNonOrder(list1, list2 *List, cmp CompareFunc) int {
	used := make(map[Node]bool, list2.count)
	match := 0
	for n1 := list1.first; n1 != nil; n1 = nextOf(n1) {
		for n2 := list2.first; n2 != nil; n2 = nextOf(n2) {
			if used[n2] {
				continue
			}
			if cmp(n1, n2) == 0 {
				used[n2] = true
				match++
				break
			}
		}
	}
	return match
}

// Compare classifies the relationship between list1 and list2 under
// cmp. See Verdict for the possible outcomes.
func Compare(list1, list2 *List, cmp CompareFunc) Verdict {
	if list1.count == 0 {
		return MatchNothing
	}

	if list1.count == list2.count {
		if compareInOrder(list1.first, list2.first, cmp, Forward) == list1.count {
			return MatchInOrder
		}
		if compareInOrder(list1.first, list2.last, cmp, Backward) == list1.count {
			return MatchReverse
		}
		match := compareNonOrder(list1, list2, cmp)
		if match == list1.count {
			return MatchNonOrder
		}
		if match == 0 {
			return MatchNothing
		}
	} else if list1.count < list2.count {
		span := list2.count - list1.count
		node := list2.first
		for i := 0; i <= span; i++ {
			if compareInOrder(list1.first, node, cmp, Forward) == list1.count {
				return MatchSubset
			}
			node = nextOf(node)
		}

		node = list2.last
		for i := 0; i <= span; i++ {
			if compareInOrder(list1.first, node, cmp, Backward) == list1.count {
				return MatchRevSubset
			}
			node = prevOf(node)
		}

		match := compareNonOrder(list1, list2, cmp)
		if match == list1.count {
			return MatchIncluded
		}
		if match == 0 {
			return MatchNothing
		}
	}

	match := compareValues(list1, list2, cmp)
	if match == list1.count {
		return MatchCovered
	}
	if match > 0 {
		return MatchPartial
	}
	return MatchNothing
}
