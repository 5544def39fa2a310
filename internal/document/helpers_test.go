package document_test

import (
	"fmt"
	"slices"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/ir"
)

// A small checklist model exercising each handler shape.

type item struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	Note         *string `json:"note"`
	DisplayOrder int     `json:"displayOrder"`
}

func (i item) EntityID() string { return i.ID }

type checklistGlobal struct {
	Title string   `json:"title"`
	Items []item   `json:"items"`
	Log   []string `json:"log"`
}

type checklistState struct {
	Global checklistGlobal
	Local  map[string]string
}

func (s checklistState) Clone() checklistState {
	out := s
	out.Global.Items = make([]item, len(s.Global.Items))
	for i, it := range s.Global.Items {
		it.Note = document.ClonePtr(it.Note)
		out.Global.Items[i] = it
	}
	out.Global.Log = slices.Clone(s.Global.Log)
	if s.Local != nil {
		out.Local = make(map[string]string, len(s.Local))
		for k, v := range s.Local {
			out.Local[k] = v
		}
	}
	return out
}

func (s checklistState) GlobalState() any { return s.Global }

type setTitleInput struct {
	Title string `json:"title"`
}

type addItemInput struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Note  *string `json:"note,omitempty"`
}

type updateItemInput struct {
	ID    string                 `json:"id"`
	Label document.Field[string] `json:"label,omitzero"`
	Note  document.Field[string] `json:"note,omitzero"`
}

type removeItemInput struct {
	ID string `json:"id"`
}

type reorderItemsInput struct {
	Order []string `json:"order"`
}

type logInput struct {
	Text string `json:"text"`
}

func (setTitleInput) Kind() document.Kind     { return "setTitle" }
func (addItemInput) Kind() document.Kind      { return "addItem" }
func (updateItemInput) Kind() document.Kind   { return "updateItem" }
func (removeItemInput) Kind() document.Kind   { return "removeItem" }
func (reorderItemsInput) Kind() document.Kind { return "reorderItems" }
func (logInput) Kind() document.Kind          { return "log" }

const (
	codeDuplicateItem document.ErrorCode = "DuplicateItemIdError"
	codeItemNotFound  document.ErrorCode = "ItemNotFoundError"
)

func reduceChecklist(draft *checklistState, a document.Action) error {
	g := &draft.Global
	switch in := a.Input.(type) {
	case setTitleInput:
		g.Title = in.Title
	case addItemInput:
		items, err := document.Insert(g.Items, item{
			ID: in.ID, Label: in.Label, Note: in.Note, DisplayOrder: len(g.Items),
		}, codeDuplicateItem, "item")
		if err != nil {
			return err
		}
		g.Items = items
	case updateItemInput:
		return document.Modify(g.Items, in.ID, codeItemNotFound, "item", func(it *item) {
			in.Label.Apply(&it.Label)
			in.Note.ApplyNullable(&it.Note)
		})
	case removeItemInput:
		items, err := document.Delete(g.Items, in.ID, codeItemNotFound, "item")
		if err != nil {
			return err
		}
		g.Items = items
	case reorderItemsInput:
		g.Items = document.Reorder(g.Items, in.Order, func(it *item, i int) { it.DisplayOrder = i })
	case logInput:
		g.Log = append(g.Log, in.Text)
	default:
		document.UnhandledInput("checklist", in)
	}
	return nil
}

func newChecklistModel() *document.Model[checklistState] {
	return &document.Model[checklistState]{
		Type:    "checklist",
		Initial: func() checklistState { return checklistState{} },
		Reducer: reduceChecklist,
		Definitions: []document.Definition{
			document.Define[setTitleInput](),
			document.Define[addItemInput](),
			document.Define[updateItemInput](),
			document.Define[removeItemInput](),
			document.Define[reorderItemsInput](),
			document.Define[logInput](),
		},
	}
}

// permissiveValidator accepts any JSON object for known kinds.
type permissiveValidator struct {
	kinds map[document.Kind]bool
}

func newPermissiveValidator(m document.Descriptor) permissiveValidator {
	v := permissiveValidator{kinds: make(map[document.Kind]bool)}
	for _, k := range m.Kinds() {
		v.kinds[k] = true
	}
	return v
}

func (v permissiveValidator) Validate(_ string, kind document.Kind, raw []byte) (ir.Object, error) {
	obj, err := ir.ParseObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", document.ErrInvalidInput, kind, err)
	}
	return obj, nil
}

func (v permissiveValidator) Has(_ string, kind document.Kind) bool {
	return v.kinds[kind]
}
