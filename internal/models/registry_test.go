package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/testutil"
)

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry(testutil.NewDefaultSteppingClock())
	require.NoError(t, err)
	assert.Equal(t, []string{"agreement", "offering", "subscription", "workbreakdown"}, reg.Types())
}

func TestEveryKindIsCreatableThroughRegistry(t *testing.T) {
	reg, err := NewRegistry(testutil.NewDefaultSteppingClock())
	require.NoError(t, err)

	for _, typ := range reg.Types() {
		desc, ok := reg.Model(typ)
		require.True(t, ok)
		require.NotEmpty(t, desc.Kinds(), typ)

		f, err := reg.Factory(typ)
		require.NoError(t, err)
		for _, kind := range desc.Kinds() {
			// Most kinds reject an empty object. When they do it must be
			// a validation failure, not an unknown kind.
			_, err := f.Create(kind, []byte(`{}`), "")
			if err != nil {
				assert.ErrorIs(t, err, document.ErrInvalidInput, "%s/%s", typ, kind)
			}
		}
	}
}

func TestKindsAreUniqueAcrossTypes(t *testing.T) {
	seen := make(map[document.Kind]string)
	for _, d := range Descriptors() {
		for _, k := range d.Kinds() {
			if prev, dup := seen[k]; dup {
				t.Errorf("kind %s declared by both %s and %s", k, prev, d.DocumentType())
			}
			seen[k] = d.DocumentType()
		}
	}
}
