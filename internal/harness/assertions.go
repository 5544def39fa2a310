package harness

import (
	"bytes"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/docreduce/internal/ir"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string
	Path     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s", e.Type)
	if e.Path != "" {
		fmt.Fprintf(&buf, " %s", e.Path)
	}
	fmt.Fprintf(&buf, ": expected %s, got %s", e.Expected, e.Actual)
	return buf.String()
}

func checkAssertion(r *Result, a Assertion) error {
	switch a.kind() {
	case AssertState:
		return assertState(r.State, a)
	case AssertAbsent:
		return assertAbsent(r.State, a)
	case AssertCount:
		return assertCount(r.State, a)
	case AssertHistory:
		return assertHistory(r, a)
	}
	return fmt.Errorf("unknown assertion type %q", a.Type)
}

func assertState(state ir.Value, a Assertion) error {
	var expected any
	if err := a.Equals.Decode(&expected); err != nil {
		return fmt.Errorf("decode equals: %w", err)
	}
	want, err := ir.MarshalCanonical(expected)
	if err != nil {
		return fmt.Errorf("encode equals: %w", err)
	}

	actual, err := Lookup(state, a.Path)
	if err != nil {
		return &AssertionError{Type: AssertState, Path: a.Path, Expected: string(want), Actual: err.Error()}
	}
	got, err := ir.MarshalCanonical(actual)
	if err != nil {
		return err
	}
	if !bytes.Equal(want, got) {
		return &AssertionError{Type: AssertState, Path: a.Path, Expected: string(want), Actual: string(got)}
	}
	return nil
}

func assertAbsent(state ir.Value, a Assertion) error {
	v, err := Lookup(state, a.Path)
	if err == nil {
		got, _ := ir.MarshalCanonical(v)
		return &AssertionError{Type: AssertAbsent, Path: a.Path, Expected: "no value", Actual: string(got)}
	}
	return nil
}

func assertCount(state ir.Value, a Assertion) error {
	v, err := Lookup(state, a.Path)
	if err != nil {
		return &AssertionError{Type: AssertCount, Path: a.Path, Expected: strconv.Itoa(*a.Count), Actual: err.Error()}
	}
	var n int
	switch val := v.(type) {
	case ir.Array:
		n = len(val)
	case ir.Object:
		n = len(val)
	default:
		return &AssertionError{Type: AssertCount, Path: a.Path, Expected: "array or object", Actual: fmt.Sprintf("%T", v)}
	}
	if n != *a.Count {
		return &AssertionError{Type: AssertCount, Path: a.Path, Expected: strconv.Itoa(*a.Count), Actual: strconv.Itoa(n)}
	}
	return nil
}

func assertHistory(r *Result, a Assertion) error {
	got := r.appliedKinds()
	if !slices.Equal(got, a.Kinds) {
		return &AssertionError{
			Type:     AssertHistory,
			Expected: fmt.Sprint(a.Kinds),
			Actual:   fmt.Sprint(got),
		}
	}
	return nil
}

// selector matches a "name[key=value]" path segment.
var selector = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\[([A-Za-z_][A-Za-z0-9_]*)=([^\]]*)\]$`)

// Lookup resolves a dot-separated path in v. See the package doc for the
// path syntax.
func Lookup(v ir.Value, path string) (ir.Value, error) {
	cur := v
	for _, seg := range strings.Split(path, ".") {
		if m := selector.FindStringSubmatch(seg); m != nil {
			next, err := field(cur, m[1])
			if err != nil {
				return nil, err
			}
			if cur, err = selectWhere(next, m[2], m[3]); err != nil {
				return nil, fmt.Errorf("%s: %w", seg, err)
			}
			continue
		}

		if arr, ok := cur.(ir.Array); ok {
			i, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("%s: array index expected", seg)
			}
			if i < 0 || i >= len(arr) {
				return nil, fmt.Errorf("%s: index out of range (len %d)", seg, len(arr))
			}
			cur = arr[i]
			continue
		}

		next, err := field(cur, seg)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func field(v ir.Value, name string) (ir.Value, error) {
	obj, ok := v.(ir.Object)
	if !ok {
		return nil, fmt.Errorf("%s: not an object", name)
	}
	next, ok := obj[name]
	if !ok {
		return nil, fmt.Errorf("%s: not found", name)
	}
	return next, nil
}

func selectWhere(v ir.Value, key, want string) (ir.Value, error) {
	arr, ok := v.(ir.Array)
	if !ok {
		return nil, fmt.Errorf("not an array")
	}
	for _, elem := range arr {
		obj, ok := elem.(ir.Object)
		if !ok {
			continue
		}
		if s, ok := obj[key].(ir.String); ok && string(s) == want {
			return obj, nil
		}
	}
	return nil, fmt.Errorf("no element with %s=%s", key, want)
}
