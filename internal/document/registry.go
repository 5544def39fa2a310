package document

import (
	"fmt"
	"slices"
)

// Registry holds the document types a process supports, together with the
// validator and clock their factories share. Build one at startup and pass
// it by reference.
type Registry struct {
	models    map[string]Descriptor
	factories map[string]*Factory
	validator Validator
}

// NewRegistry registers descs. It fails if two models share a type name or
// a declared kind has no schema in v.
func NewRegistry(v Validator, clock Clock, descs ...Descriptor) (*Registry, error) {
	r := &Registry{
		models:    make(map[string]Descriptor),
		factories: make(map[string]*Factory),
		validator: v,
	}
	for _, d := range descs {
		name := d.DocumentType()
		if _, dup := r.models[name]; dup {
			return nil, fmt.Errorf("document type %q registered twice", name)
		}
		for _, k := range d.Kinds() {
			def, _ := d.Definition(k)
			if def.decode == nil {
				return nil, fmt.Errorf("%s/%s: no decoder", name, k)
			}
			if !v.Has(name, k) {
				return nil, fmt.Errorf("%s/%s: no schema", name, k)
			}
		}
		r.models[name] = d
		r.factories[name] = NewFactory(d, v, WithClock(clock))
	}
	return r, nil
}

// Model returns the descriptor for docType.
func (r *Registry) Model(docType string) (Descriptor, bool) {
	d, ok := r.models[docType]
	return d, ok
}

// Factory returns the action factory for docType.
func (r *Registry) Factory(docType string) (*Factory, error) {
	f, ok := r.factories[docType]
	if !ok {
		return nil, fmt.Errorf("unknown document type %q", docType)
	}
	return f, nil
}

// Validator returns the shared validator.
func (r *Registry) Validator() Validator { return r.validator }

// Types returns the registered document type names, sorted.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
