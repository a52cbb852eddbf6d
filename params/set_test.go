package params

import (
	"testing"

	"github.com/arloliu/cilmeta/errs"
	"github.com/arloliu/cilmeta/format"
	"github.com/arloliu/cilmeta/sig"
	"github.com/stretchr/testify/require"
)

func testMethod() *sig.MethodSig {
	return sig.NewMethodSig(
		sig.Primitive{Kind: sig.KindVoid},
		sig.Primitive{Kind: sig.KindInt32},
		sig.Primitive{Kind: sig.KindString},
		sig.Named{FullName: "MyLib.Widget"},
	)
}

func testDefs() *DefinitionMap {
	return NewDefinitionMap(
		Definition{Name: "count", Sequence: 1, Attrs: format.ParamAttrIn},
		Definition{Name: "label", Sequence: 2},
	)
}

func TestNewSet(t *testing.T) {
	t.Run("One entry per slot", func(t *testing.T) {
		method := testMethod()
		set, err := NewSet(method, nil)

		require.NoError(t, err)
		require.Equal(t, 3, set.Len())

		for i, entry := range set.Entries() {
			require.Equal(t, i, entry.Position())
			require.Equal(t, i, entry.Slot())
			require.Equal(t, uint16(i+1), entry.Sequence())
			require.False(t, entry.Detached())

			want, err := method.ParamType(i)
			require.NoError(t, err)
			require.Equal(t, want, entry.Type())
		}
	})

	t.Run("Empty parameter list", func(t *testing.T) {
		set, err := NewSet(sig.NewMethodSig(sig.Primitive{Kind: sig.KindVoid}), nil)

		require.NoError(t, err)
		require.Equal(t, 0, set.Len())
	})

	t.Run("Nil signature", func(t *testing.T) {
		_, err := NewSet(nil, nil)

		require.ErrorIs(t, err, errs.ErrNilSignature)
	})
}

func TestSet_Get(t *testing.T) {
	set, err := NewSet(testMethod(), nil)
	require.NoError(t, err)

	entry, err := set.Get(1)
	require.NoError(t, err)
	require.Equal(t, 1, entry.Position())

	_, err = set.Get(3)
	require.ErrorIs(t, err, errs.ErrPositionOutOfRange)

	_, err = set.Get(-1)
	require.ErrorIs(t, err, errs.ErrPositionOutOfRange)
}

func TestEntry_SetType_PropagatesToSignature(t *testing.T) {
	method := testMethod()
	set, err := NewSet(method, nil)
	require.NoError(t, err)

	entry, err := set.Get(2)
	require.NoError(t, err)

	newType := sig.Primitive{Kind: sig.KindInt64}
	entry.SetType(newType)

	require.Equal(t, sig.TypeSig(newType), entry.Type())

	slotType, err := method.ParamType(entry.Slot())
	require.NoError(t, err)
	require.Equal(t, sig.TypeSig(newType), slotType)
}

func TestSet_Remove(t *testing.T) {
	t.Run("Detaches and renumbers", func(t *testing.T) {
		method := testMethod()
		set, err := NewSet(method, nil)
		require.NoError(t, err)

		entry, err := set.Get(1)
		require.NoError(t, err)
		originalType, err := method.ParamType(1)
		require.NoError(t, err)

		set.Remove(entry)

		require.Equal(t, DetachedPosition, entry.Position())
		require.True(t, entry.Detached())
		require.Equal(t, 1, entry.Slot()) // slot identity survives detachment
		require.Equal(t, 2, set.Len())

		// The signature keeps all three slots untouched.
		require.Equal(t, 3, method.ParamCount())
		slotType, err := method.ParamType(1)
		require.NoError(t, err)
		require.Equal(t, originalType, slotType)

		// Remaining entries stay dense while keeping their slots.
		for i, live := range set.Entries() {
			require.Equal(t, i, live.Position())
		}
		last, err := set.Get(1)
		require.NoError(t, err)
		require.Equal(t, 2, last.Slot())
	})

	t.Run("Detached entry no longer mutates the signature", func(t *testing.T) {
		method := testMethod()
		set, err := NewSet(method, nil)
		require.NoError(t, err)

		entry, err := set.Get(0)
		require.NoError(t, err)
		set.Remove(entry)

		require.NotPanics(t, func() {
			entry.SetType(sig.Primitive{Kind: sig.KindDouble})
		})
		require.Equal(t, sig.TypeSig(sig.Primitive{Kind: sig.KindDouble}), entry.Type())

		slotType, err := method.ParamType(0)
		require.NoError(t, err)
		require.Equal(t, sig.TypeSig(sig.Primitive{Kind: sig.KindInt32}), slotType)
	})

	t.Run("Double remove is a no-op", func(t *testing.T) {
		set, err := NewSet(testMethod(), nil)
		require.NoError(t, err)

		entry, err := set.Get(2)
		require.NoError(t, err)

		set.Remove(entry)
		set.Remove(entry)
		set.Remove(nil)

		require.Equal(t, 2, set.Len())
	})
}

func TestSet_Unbind(t *testing.T) {
	method := testMethod()
	set, err := NewSet(method, nil)
	require.NoError(t, err)

	entry, err := set.Get(0)
	require.NoError(t, err)

	set.Unbind()
	entry.SetType(sig.Primitive{Kind: sig.KindChar})

	// Local state updated, signature untouched.
	require.Equal(t, sig.TypeSig(sig.Primitive{Kind: sig.KindChar}), entry.Type())
	slotType, err := method.ParamType(0)
	require.NoError(t, err)
	require.Equal(t, sig.TypeSig(sig.Primitive{Kind: sig.KindInt32}), slotType)
}

func TestSet_Definition(t *testing.T) {
	set, err := NewSet(testMethod(), testDefs())
	require.NoError(t, err)

	def, ok := set.Definition(1)
	require.True(t, ok)
	require.Equal(t, "count", def.Name)
	require.True(t, def.Attrs.IsIn())

	// Sequence 0 belongs to the return parameter, never this table.
	_, ok = set.Definition(0)
	require.False(t, ok)

	// Sparse table: sequence 3 has no row, which is not an error.
	_, ok = set.Definition(3)
	require.False(t, ok)
}

func TestEntry_Name(t *testing.T) {
	set, err := NewSet(testMethod(), testDefs())
	require.NoError(t, err)

	named, err := set.Get(0)
	require.NoError(t, err)
	require.Equal(t, "count", named.Name())

	fallback, err := set.Get(2)
	require.NoError(t, err)
	require.Equal(t, "A_2", fallback.Name())

	// A detached entry has no table to consult, so it falls back too.
	set.Remove(named)
	require.Equal(t, "A_0", named.Name())
}

func TestEntry_String(t *testing.T) {
	set, err := NewSet(testMethod(), testDefs())
	require.NoError(t, err)

	entry, err := set.Get(0)
	require.NoError(t, err)
	require.Equal(t, "System.Int32 count", entry.String())

	unnamed, err := set.Get(2)
	require.NoError(t, err)
	require.Equal(t, "MyLib.Widget A_2", unnamed.String())
}

func TestNewEntry_RequiresOwner(t *testing.T) {
	_, err := NewEntry(nil, 0, sig.Primitive{Kind: sig.KindInt32})

	require.ErrorIs(t, err, errs.ErrNilOwner)
}
