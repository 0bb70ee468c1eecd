package jamjar

import "github.com/yohamta/donburi"

// Candidate is an entity competing to be picked up or to receive a drop.
type Candidate struct {
	Entity donburi.Entity
	Box    Box
	Z      int
	Seq    uint64
}

// PickPolicy reports whether a should be chosen over b when both are under
// the cursor. It must be a strict ordering so the choice does not depend on
// the order entities are stored in.
type PickPolicy func(a, b Candidate) bool

// TopmostFirst prefers the highest Z, then the smallest box, then the most
// recently spawned entity. It is the default for both pick-up and drop.
func TopmostFirst(a, b Candidate) bool {
	if a.Z != b.Z {
		return a.Z > b.Z
	}
	if aa, ba := a.Box.Area(), b.Box.Area(); aa != ba {
		return aa < ba
	}
	return a.Seq > b.Seq
}

// SmallestFirst prefers the smallest box, then the highest Z, then the most
// recently spawned entity.
func SmallestFirst(a, b Candidate) bool {
	if aa, ba := a.Box.Area(), b.Box.Area(); aa != ba {
		return aa < ba
	}
	if a.Z != b.Z {
		return a.Z > b.Z
	}
	return a.Seq > b.Seq
}

// pickBest returns the winning candidate under p.
func pickBest(cands []Candidate, p PickPolicy) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	if p == nil {
		p = TopmostFirst
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if p(c, best) {
			best = c
		}
	}
	return best, true
}

func candidateOf(entry *donburi.Entry) Candidate {
	body := Body.Get(entry)
	return Candidate{Entity: entry.Entity(), Box: body.Box, Z: body.Z, Seq: body.seq}
}
