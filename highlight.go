package cubelets

import "sort"

// Highlight is the set of cubelet ids lying in the selected slice.
type Highlight map[string]struct{}

// Highlighted returns every cubelet in the selected slice, or an empty set
// when ok is false. It is recomputed from scratch on every call.
func Highlighted(s State, sel Selection, ok bool) Highlight {
	h := Highlight{}
	if !ok {
		return h
	}
	for _, c := range s.cubelets {
		if s.InSlice(c, sel.Axis, sel.Slice) {
			h[c.ID] = struct{}{}
		}
	}
	return h
}

// Has reports whether id is highlighted.
func (h Highlight) Has(id string) bool {
	_, ok := h[id]
	return ok
}

// Len returns the number of highlighted cubelets.
func (h Highlight) Len() int {
	return len(h)
}

// IDs returns the highlighted ids in sorted order.
func (h Highlight) IDs() []string {
	ids := make([]string, 0, len(h))
	for id := range h {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
