package simpletype

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies one 3MF simple type (ST_* / xs:* in the XSDs).
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	KindObjectType
	KindUnit
	KindColorValue
	KindURIReference
	KindMatrix3D
	KindString
	KindBoolean
	KindNumber
	KindNumbers
	KindResourceID
	KindResourceIndex
	KindResourceIndices
	KindResourceIDs
	KindBlendMethods
	KindZeroToOne
	KindPath
	KindUUID
	KindContentType
	KindTileStyle
	KindFilter

	// KindTotal is the number of declared kinds plus the skipped zero value.
	KindTotal = int(iota)
)

// Class groups kinds by how their validity is decided.
type Class int

const (
	// ClassFree accepts every literal.
	ClassFree Class = iota
	// ClassPattern accepts literals fully matched by a regular expression.
	ClassPattern
	// ClassEnum accepts a fixed set of literals.
	ClassEnum
	// ClassRange accepts integers inside [Min, Max].
	ClassRange
	// ClassCounter is a ranged integer used as a cross reference. Fresh
	// values come from an Allocator.
	ClassCounter
	// ClassMultiCounter is a space separated list of counter values.
	ClassMultiCounter
)

// IsCounter reports whether fresh valid values of k are synthesized by an
// Allocator instead of taken from the curated list.
func (k Kind) IsCounter() bool {
	switch Lookup(k).Class {
	case ClassCounter, ClassMultiCounter:
		return true
	default:
		return false
	}
}
