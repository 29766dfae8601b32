package ecs

// IntersectEntities returns entity ids present in both sets.
func IntersectEntities(a, b *SparseSet) []int {
	if a == nil || b == nil {
		return nil
	}
	// iterate smaller set
	if a.Len() > b.Len() {
		a, b = b, a
	}
	out := make([]int, 0, a.Len())
	for _, id := range a.Entities() {
		if b.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

func intersect3(a, b, c *SparseSet) []int {
	if c == nil {
		return nil
	}
	ab := IntersectEntities(a, b)
	out := make([]int, 0, len(ab))
	for _, id := range ab {
		if c.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
