package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zakarumych/alkahest/errs"
)

func TestRegisterNewEntry(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("geo.Point", "geo.pointCodec"))
	require.Equal(t, 1, r.Count())

	e, ok := r.Lookup("geo.Point")
	require.True(t, ok)
	require.Equal(t, "geo.pointCodec", e.TypeName)
}

func TestRegisterIsIdempotent(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("geo.Point", "geo.pointCodec"))
	require.NoError(t, r.Register("geo.Point", "geo.pointCodec"))
	require.Equal(t, 1, r.Count())
}

func TestRegisterDetectsCollision(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("geo.Point", "geo.pointCodec"))

	err := r.Register("geo.Point", "geo.otherCodec")
	require.ErrorIs(t, err, errs.ErrFormulaCollision)
}

func TestLookupMissing(t *testing.T) {
	r := New()
	_, ok := r.Lookup("does.not.exist")
	require.False(t, ok)
}
