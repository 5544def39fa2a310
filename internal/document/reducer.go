package document

// Reduce applies a to state through m's reducer. The handler runs on a
// clone: on success the clone is returned, on failure the original state is
// returned together with the handler's error. Reduce never mutates state.
func Reduce[S State[S]](m *Model[S], state S, a Action) (S, error) {
	draft := state.Clone()
	if err := m.Reducer(&draft, a); err != nil {
		return state, err
	}
	return draft, nil
}

// UnhandledInput panics for an input type a reducer's switch does not
// cover. Reaching it means a kind was defined without a handler.
func UnhandledInput(docType string, in Input) {
	panic("document: " + docType + " reducer has no handler for " + string(in.Kind()))
}
