package document

import "slices"

// Entity is an element of a state collection addressed by id.
type Entity interface {
	EntityID() string
}

// IndexOf returns the position of id in items, or -1.
func IndexOf[E Entity](items []E, id string) int {
	return slices.IndexFunc(items, func(e E) bool { return e.EntityID() == id })
}

// Insert appends e, failing with a DuplicateID error if its id is taken.
func Insert[E Entity](items []E, e E, code ErrorCode, entity string) ([]E, error) {
	if IndexOf(items, e.EntityID()) >= 0 {
		return items, DuplicateID(code, entity, e.EntityID())
	}
	return append(items, e), nil
}

// Modify applies fn to the entity with id, failing with NotFound if absent.
func Modify[E Entity](items []E, id string, code ErrorCode, entity string, fn func(*E)) error {
	i := IndexOf(items, id)
	if i < 0 {
		return NotFound(code, entity, id)
	}
	fn(&items[i])
	return nil
}

// Delete removes the entity with id, failing with NotFound if absent.
func Delete[E Entity](items []E, id string, code ErrorCode, entity string) ([]E, error) {
	i := IndexOf(items, id)
	if i < 0 {
		return items, NotFound(code, entity, id)
	}
	return slices.Delete(items, i, i+1), nil
}

// DeleteIfPresent removes the entity with id; a missing id is a no-op.
func DeleteIfPresent[E Entity](items []E, id string) []E {
	i := IndexOf(items, id)
	if i < 0 {
		return items
	}
	return slices.Delete(items, i, i+1)
}

// Reorder puts the entities named in order first, in that order, then the
// rest in their prior relative order. setOrder receives each entity's new
// position. Unknown ids are ignored and repeated ids count once; the result
// is always a permutation of items.
func Reorder[E Entity](items []E, order []string, setOrder func(*E, int)) []E {
	out := make([]E, 0, len(items))
	placed := make([]bool, len(items))
	for _, id := range order {
		i := IndexOf(items, id)
		if i < 0 || placed[i] {
			continue
		}
		placed[i] = true
		out = append(out, items[i])
	}
	for i, e := range items {
		if !placed[i] {
			out = append(out, e)
		}
	}
	Renumber(out, setOrder)
	return out
}

// Renumber passes each entity its slice position, keeping display order
// dense after a removal.
func Renumber[E Entity](items []E, setOrder func(*E, int)) {
	for i := range items {
		setOrder(&items[i], i)
	}
}

// ClonePtr copies the value behind p.
func ClonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
