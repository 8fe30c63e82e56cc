package squad

import "sort"

// Squad is the set of the 15 player ids an entrant owns for a round.
type Squad map[int]struct{}

func New(ids ...int) Squad {
	s := make(Squad, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

func (s Squad) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

func (s Squad) Clone() Squad {
	out := make(Squad, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// Swap returns a copy of the squad with out removed and in added.
func (s Squad) Swap(out, in int) Squad {
	next := s.Clone()
	delete(next, out)
	next[in] = struct{}{}

	return next
}

func (s Squad) Equal(other Squad) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}

	return true
}

// IDs returns the members in ascending order.
func (s Squad) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Minus returns the members of s absent from other, in ascending order.
func (s Squad) Minus(other Squad) []int {
	out := make([]int, 0)
	for id := range s {
		if !other.Contains(id) {
			out = append(out, id)
		}
	}
	sort.Ints(out)

	return out
}
