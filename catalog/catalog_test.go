package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zakarumych/alkahest/catalog"
	"github.com/zakarumych/alkahest/codec"
)

func TestMustRegisterReturnsCodecUnchanged(t *testing.T) {
	c := catalog.MustRegister("catalogtest.Counter", codec.U32)
	require.Equal(t, 4, c.StackSize())

	e, ok := catalog.Lookup("catalogtest.Counter")
	require.True(t, ok)
	require.Equal(t, "catalogtest.Counter", e.Name)
}

func TestMustRegisterPanicsOnCollision(t *testing.T) {
	catalog.MustRegister("catalogtest.Dup", codec.U8)
	require.Panics(t, func() {
		catalog.MustRegister("catalogtest.Dup", codec.U16)
	})
}
