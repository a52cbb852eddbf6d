package params

import (
	"github.com/arloliu/cilmeta/errs"
	"github.com/arloliu/cilmeta/sig"
)

// Set owns the ordered parameter entries of one method signature and keeps
// entry mutations consistent with the signature's parameter-type list.
//
// A set is not internally synchronized; a method's parameter list is owned by
// whichever component is currently editing that method, so callers must not
// mutate the same set from multiple goroutines.
type Set struct {
	method  *sig.MethodSig
	defs    DefinitionTable
	entries []*Entry
}

// NewSet builds one entry per slot of the signature's parameter-type list, in
// order, with position == slot for every entry.
//
// defs may be nil when the method has no named parameters; lookups then report
// every sequence as absent. Returns ErrNilSignature if method is nil.
func NewSet(method *sig.MethodSig, defs DefinitionTable) (*Set, error) {
	if method == nil {
		return nil, errs.ErrNilSignature
	}

	s := &Set{
		method:  method,
		defs:    defs,
		entries: make([]*Entry, method.ParamCount()),
	}
	for slot, typ := range method.ParamTypes() {
		// NewEntry cannot fail here, the owner is always non-nil.
		s.entries[slot], _ = NewEntry(s, slot, typ)
	}

	return s, nil
}

// Len returns the number of live entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// Get returns the entry at the given position.
//
// Returns ErrPositionOutOfRange for a position outside the live entry range.
func (s *Set) Get(position int) (*Entry, error) {
	if position < 0 || position >= len(s.entries) {
		return nil, errs.ErrPositionOutOfRange
	}

	return s.entries[position], nil
}

// Entries returns the live entries in position order. The slice is a copy;
// the entries are the live objects.
func (s *Set) Entries() []*Entry {
	entries := make([]*Entry, len(s.entries))
	copy(entries, s.entries)

	return entries
}

// Remove detaches the entry from the set: its position becomes
// DetachedPosition, its back-reference clears, and later type assignments on
// it no longer touch the signature.
//
// The signature's own parameter-type list is not altered; shrinking it is a
// signature-editing operation that lives with the signature codec. Entries
// after the removed one are renumbered so that positions stay dense. Removing
// an entry that is not in the set is a no-op.
func (s *Set) Remove(entry *Entry) {
	if entry == nil || entry.owner != s {
		return
	}

	position := entry.position
	if position < 0 || position >= len(s.entries) || s.entries[position] != entry {
		return
	}

	s.entries = append(s.entries[:position], s.entries[position+1:]...)
	for i := position; i < len(s.entries); i++ {
		s.entries[i].position = i
	}

	entry.detach()
}

// Definition looks up a definition row by sequence number.
//
// Absence is the common case, never an error: sequence 0 belongs to the return
// parameter, and a nil or sparse table simply has no row for the sequence.
func (s *Set) Definition(sequence uint16) (Definition, bool) {
	if s.defs == nil || sequence == 0 {
		return Definition{}, false
	}

	return s.defs.Lookup(sequence)
}

// Unbind detaches the set from its signature. Entries stay readable, but type
// assignments no longer propagate anywhere.
func (s *Set) Unbind() {
	s.method = nil
}

// pushTypeUpdate writes a reassigned entry type into the bound signature at
// the entry's slot. Inert once the set is unbound; an out-of-range slot means
// the signature shrank underneath a stale entry and is likewise ignored.
func (s *Set) pushTypeUpdate(entry *Entry, typ sig.TypeSig) {
	if s.method == nil {
		return
	}

	_ = s.method.SetParamType(entry.slot, typ)
}
