// Package params provides a high-level, mutable view of a method's formal
// parameters, kept in sync with the parameter-type list of the method's
// signature.
//
// Two independent sources of truth meet here: the binary signature owns each
// parameter's type (addressed by slot), and the metadata Param table owns each
// parameter's name and attributes (addressed by 1-based sequence number). A
// parameter may legitimately have a type but no definition row; the view
// tolerates the missing half instead of requiring it.
package params

import (
	"github.com/arloliu/cilmeta/format"
	"github.com/arloliu/cilmeta/internal/hash"
)

// Definition is one row of the metadata Param table.
type Definition struct {
	// Name is the declared parameter name, possibly empty.
	Name string
	// Sequence is the 1-based parameter number. Sequence 0 belongs to the
	// return parameter and never appears in this table.
	Sequence uint16
	// Attrs are the row's attribute flags.
	Attrs format.ParamAttributes
}

// DefinitionTable looks up parameter definition rows by sequence number.
//
// Implementations return found == false for a sequence with no row; most
// parameters are unnamed at the binary level, so absence is not an error.
type DefinitionTable interface {
	Lookup(sequence uint16) (Definition, bool)
}

// DefinitionMap is an in-memory DefinitionTable with a hashed name index for
// reverse lookups.
type DefinitionMap struct {
	rows    map[uint16]Definition
	nameIDs map[uint64]uint16
}

var _ DefinitionTable = (*DefinitionMap)(nil)

// NewDefinitionMap creates a table from the given rows. Rows with sequence 0
// are ignored; a later row with a duplicate sequence replaces the earlier one.
func NewDefinitionMap(rows ...Definition) *DefinitionMap {
	m := &DefinitionMap{
		rows:    make(map[uint16]Definition, len(rows)),
		nameIDs: make(map[uint64]uint16, len(rows)),
	}
	for _, row := range rows {
		m.Put(row)
	}

	return m
}

// Put inserts or replaces a row. Sequence 0 is ignored.
func (m *DefinitionMap) Put(row Definition) {
	if row.Sequence == 0 {
		return
	}

	if old, ok := m.rows[row.Sequence]; ok && old.Name != "" {
		delete(m.nameIDs, hash.ID(old.Name))
	}

	m.rows[row.Sequence] = row
	if row.Name != "" {
		m.nameIDs[hash.ID(row.Name)] = row.Sequence
	}
}

// Lookup returns the row for the given sequence number, if any.
func (m *DefinitionMap) Lookup(sequence uint16) (Definition, bool) {
	row, ok := m.rows[sequence]

	return row, ok
}

// LookupName returns the row with the given declared name, if any.
func (m *DefinitionMap) LookupName(name string) (Definition, bool) {
	if name == "" {
		return Definition{}, false
	}

	sequence, ok := m.nameIDs[hash.ID(name)]
	if !ok {
		return Definition{}, false
	}

	row := m.rows[sequence]
	if row.Name != name {
		// Hash collision with a different name.
		return Definition{}, false
	}

	return row, true
}

// Len returns the number of rows in the table.
func (m *DefinitionMap) Len() int {
	return len(m.rows)
}
