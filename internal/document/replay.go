package document

import "fmt"

// Replay rebuilds a document by folding m's reducer over records, starting
// from initial. Records keep their stored index and skip. Within each scope
// indices must run 0, 1, 2, ... in the order given.
//
// Replay of a history produced by Apply yields the same state and digest as
// the live document. A record the reducer rejects means the history was not
// produced by this model and is reported as an error.
func Replay[S State[S]](m *Model[S], id string, initial S, records []Record) (*Document[S], error) {
	d := New(m, id, initial)
	for _, rec := range records {
		a := rec.Action
		if !a.validated {
			return nil, fmt.Errorf("replay %s: index %d: %w", id, rec.Index, ErrActionNotValidated)
		}
		if a.DocumentType != m.Type {
			return nil, fmt.Errorf("replay %s: index %d: %w", id, rec.Index, ErrModelMismatch)
		}
		if want := d.nextIndex(a.Scope); rec.Index != want {
			return nil, fmt.Errorf("replay %s: %s scope: %w: expected %d, got %d",
				id, a.Scope, ErrIndexGap, want, rec.Index)
		}

		next, err := Reduce(m, d.state, a)
		if err != nil {
			return nil, fmt.Errorf("replay %s: index %d (%s): %w", id, rec.Index, a.Kind, err)
		}
		d.state = next
		d.history[a.Scope] = append(d.history[a.Scope], rec)
		d.revision[a.Scope]++
	}
	return d, nil
}
