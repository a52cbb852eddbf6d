package sig

import (
	"github.com/arloliu/cilmeta/errs"
)

// MethodSig is the decoded form of a method signature: a return type and an
// ordered parameter-type list with stable positional indexing.
//
// The parameter list is the source of truth for parameter types; view layers
// (params.Set) push type edits back into it through SetParamType.
type MethodSig struct {
	// RetType is the return type, slot-independent (metadata sequence 0).
	RetType TypeSig

	paramTypes []TypeSig
}

// NewMethodSig creates a method signature with the given return type and
// parameter types, in declaration order.
func NewMethodSig(retType TypeSig, paramTypes ...TypeSig) *MethodSig {
	return &MethodSig{
		RetType:    retType,
		paramTypes: paramTypes,
	}
}

// ParamCount returns the number of parameter-type slots.
func (s *MethodSig) ParamCount() int {
	return len(s.paramTypes)
}

// ParamType returns the type at the given slot.
//
// Returns ErrSlotOutOfRange if slot is outside the parameter-type list.
func (s *MethodSig) ParamType(slot int) (TypeSig, error) {
	if slot < 0 || slot >= len(s.paramTypes) {
		return nil, errs.ErrSlotOutOfRange
	}

	return s.paramTypes[slot], nil
}

// SetParamType replaces the type at the given slot in place.
//
// Returns ErrSlotOutOfRange if slot is outside the parameter-type list.
func (s *MethodSig) SetParamType(slot int, t TypeSig) error {
	if slot < 0 || slot >= len(s.paramTypes) {
		return errs.ErrSlotOutOfRange
	}

	s.paramTypes[slot] = t

	return nil
}

// ParamTypes returns a copy of the parameter-type list.
func (s *MethodSig) ParamTypes() []TypeSig {
	types := make([]TypeSig, len(s.paramTypes))
	copy(types, s.paramTypes)

	return types
}
