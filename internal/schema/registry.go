package schema

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/ir"
)

// Source is the CUE schema of one document type.
type Source struct {
	DocumentType string
	CUE          []byte
}

type key struct {
	docType string
	kind    document.Kind
}

// Registry compiles schemas once and validates payloads against them.
// It implements document.Validator.
//
// Thread-safety: a cue.Context is not safe for concurrent use, so all
// evaluation goes through mu.
type Registry struct {
	mu   sync.Mutex
	ctx  *cue.Context
	defs map[key]cue.Value
}

// NewRegistry compiles sources. A source that fails to compile or declares
// no kinds is an error.
func NewRegistry(sources ...Source) (*Registry, error) {
	r := &Registry{
		ctx:  cuecontext.New(),
		defs: make(map[key]cue.Value),
	}
	for _, src := range sources {
		if err := r.add(src); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) add(src Source) error {
	v := r.ctx.CompileBytes(src.CUE, cue.Filename(src.DocumentType+".cue"))
	if err := v.Err(); err != nil {
		return fmt.Errorf("compile %s schema: %w", src.DocumentType, err)
	}

	iter, err := v.Fields(cue.Definitions(true))
	if err != nil {
		return fmt.Errorf("read %s schema: %w", src.DocumentType, err)
	}
	n := 0
	for iter.Next() {
		sel := iter.Selector()
		if !sel.IsDefinition() {
			continue
		}
		name := strings.TrimPrefix(sel.String(), "#")
		if name == "" || !unicode.IsLower(rune(name[0])) {
			continue
		}
		r.defs[key{src.DocumentType, document.Kind(name)}] = iter.Value()
		n++
	}
	if n == 0 {
		return fmt.Errorf("%s schema declares no action kinds", src.DocumentType)
	}
	return nil
}

// Has implements document.Validator.
func (r *Registry) Has(docType string, kind document.Kind) bool {
	_, ok := r.defs[key{docType, kind}]
	return ok
}

// Kinds returns the kinds declared for docType, sorted.
func (r *Registry) Kinds(docType string) []document.Kind {
	var out []document.Kind
	for k := range r.defs {
		if k.docType == docType {
			out = append(out, k.kind)
		}
	}
	slices.Sort(out)
	return out
}

// Validate implements document.Validator. Failures are returned as
// *ValidationFailure listing every offending field.
func (r *Registry) Validate(docType string, kind document.Kind, raw []byte) (ir.Object, error) {
	def, ok := r.defs[key{docType, kind}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", document.ErrUnknownKind, docType, kind)
	}

	fail := func(issues ...FieldIssue) error {
		return &ValidationFailure{DocumentType: docType, Kind: string(kind), Issues: issues}
	}

	// ir.Parse rejects floats, which CUE's int would also reject, but it
	// also rejects them inside open values such as lists of any.
	obj, err := ir.ParseObject(raw)
	if err != nil {
		return nil, fail(FieldIssue{Message: err.Error()})
	}

	expr, err := cuejson.Extract(string(kind)+".json", raw)
	if err != nil {
		return nil, fail(FieldIssue{Message: "invalid JSON: " + err.Error()})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.ctx.BuildExpr(expr)
	if err := data.Err(); err != nil {
		return nil, fail(FieldIssue{Message: err.Error()})
	}
	if err := def.Unify(data).Validate(cue.Concrete(true)); err != nil {
		return nil, fail(issuesFrom(err)...)
	}
	return obj, nil
}

// issuesFrom flattens a CUE error list into sorted, de-duplicated issues.
func issuesFrom(err error) []FieldIssue {
	seen := make(map[FieldIssue]bool)
	var issues []FieldIssue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		path := e.Path()
		if len(path) > 0 && strings.HasPrefix(path[0], "#") {
			path = path[1:]
		}
		issue := FieldIssue{
			Field:   strings.Join(path, "."),
			Message: friendlyMessage(fmt.Sprintf(format, args...)),
		}
		if seen[issue] {
			continue
		}
		seen[issue] = true
		issues = append(issues, issue)
	}
	slices.SortFunc(issues, func(a, b FieldIssue) int {
		if c := cmp.Compare(a.Field, b.Field); c != 0 {
			return c
		}
		return cmp.Compare(a.Message, b.Message)
	})
	return issues
}

func friendlyMessage(msg string) string {
	if strings.HasPrefix(msg, "incomplete value") || strings.Contains(msg, "required but not present") {
		return "required field is missing"
	}
	return msg
}
