package action

import "github.com/SeamusWaldron/rubik/pkg/types"

// Permutation is a bijection on facelet slots stored as a gather index:
// applying p to a state sets new[i] = old[p[i]].
type Permutation []int32

// Identity returns the identity permutation on n slots.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = int32(i)
	}
	return p
}

// Apply gathers src through p into dst. dst and src must have len(p)
// elements and must not overlap.
func (p Permutation) Apply(dst, src []types.Color) {
	for i, j := range p {
		dst[i] = src[j]
	}
}

// Then returns the permutation equivalent to applying p and then q.
//
// Gathering through p gives s1[i] = s0[p[i]]; gathering s1 through q gives
// s2[i] = s1[q[i]] = s0[p[q[i]]].
func (p Permutation) Then(q Permutation) Permutation {
	r := make(Permutation, len(q))
	for i, j := range q {
		r[i] = p[j]
	}
	return r
}

// Inverse returns the functional inverse of p.
func (p Permutation) Inverse() Permutation {
	r := make(Permutation, len(p))
	for i, j := range p {
		r[j] = int32(i)
	}
	return r
}

// IsIdentity reports whether p fixes every slot.
func (p Permutation) IsIdentity() bool {
	for i, j := range p {
		if int32(i) != j {
			return false
		}
	}
	return true
}

// Equal reports whether p and q are the same permutation.
func (p Permutation) Equal(q Permutation) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Moved returns the number of slots p does not fix.
func (p Permutation) Moved() int {
	n := 0
	for i, j := range p {
		if int32(i) != j {
			n++
		}
	}
	return n
}

// isBijection reports whether every slot appears exactly once in p.
func (p Permutation) isBijection() bool {
	seen := make([]bool, len(p))
	for _, j := range p {
		if j < 0 || int(j) >= len(p) || seen[j] {
			return false
		}
		seen[j] = true
	}
	return true
}
