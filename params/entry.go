package params

import (
	"strconv"

	"github.com/arloliu/cilmeta/errs"
	"github.com/arloliu/cilmeta/sig"
)

// DetachedPosition is the position of an entry that has been removed from its set.
const DetachedPosition = -1

// Entry is one formal parameter: its position within the owning set, its fixed
// slot within the signature's parameter-type list, and its current type.
//
// The back-reference to the owning set is lookup-only; the set owns the entry,
// never the other way around.
type Entry struct {
	owner    *Set
	position int
	slot     int
	typ      sig.TypeSig
}

// NewEntry creates an entry bound to its owning set at the given signature slot.
//
// An entry has no meaning without the slot it describes, so owner must not be
// nil; returns ErrNilOwner otherwise. Sets normally create their own entries;
// this constructor exists for signature editors that materialize entries while
// rebuilding a set.
func NewEntry(owner *Set, slot int, typ sig.TypeSig) (*Entry, error) {
	if owner == nil {
		return nil, errs.ErrNilOwner
	}

	return &Entry{
		owner:    owner,
		position: slot,
		slot:     slot,
		typ:      typ,
	}, nil
}

// Position returns the entry's index within the owning set, or
// DetachedPosition once removed.
func (e *Entry) Position() int {
	return e.position
}

// Slot returns the entry's fixed position within the signature's
// parameter-type list. It is assigned at construction and never changes, even
// if the entry is later re-sequenced within the set.
func (e *Entry) Slot() int {
	return e.slot
}

// Sequence returns the 1-based metadata sequence number, always slot+1.
// Sequence 0 belongs to the return parameter, which is modeled elsewhere.
func (e *Entry) Sequence() uint16 {
	return uint16(e.slot) + 1 //nolint: gosec
}

// Detached reports whether the entry has been removed from its set.
func (e *Entry) Detached() bool {
	return e.owner == nil
}

// Type returns the entry's current parameter type.
func (e *Entry) Type() sig.TypeSig {
	return e.typ
}

// SetType assigns the entry's type and pushes it into the bound signature at
// the entry's slot.
//
// The local write happens before propagation so re-entrant reads observe the
// new value. Once the entry is detached, or its set is unbound from the
// signature, the push is silently inert: an orphaned entry must never again
// mutate the signature it came from.
func (e *Entry) SetType(typ sig.TypeSig) {
	e.typ = typ
	if e.owner != nil {
		e.owner.pushTypeUpdate(e, typ)
	}
}

// Definition returns the entry's definition row, if the metadata table has one
// for its sequence number.
func (e *Entry) Definition() (Definition, bool) {
	if e.owner == nil {
		return Definition{}, false
	}

	return e.owner.Definition(e.Sequence())
}

// Name returns the declared parameter name, or a synthesized fallback built
// from the slot ("A_0", "A_1", ...) when no definition row names it.
func (e *Entry) Name() string {
	if def, ok := e.Definition(); ok && def.Name != "" {
		return def.Name
	}

	return "A_" + strconv.Itoa(e.slot)
}

// String renders the entry as "<type> <name>" for diagnostics.
func (e *Entry) String() string {
	typeName := "<nil>"
	if e.typ != nil {
		typeName = e.typ.Name()
	}

	return typeName + " " + e.Name()
}

// detach clears the back-reference and position. The entry keeps its slot and
// type so caller code holding it can still read them.
func (e *Entry) detach() {
	e.owner = nil
	e.position = DetachedPosition
}
