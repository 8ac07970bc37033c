package simpletype

// Value is a typed attribute literal.
type Value struct {
	Kind Kind
	Raw  string
}

func New(kind Kind, raw string) Value {
	return Value{Kind: kind, Raw: raw}
}

// Valid is a pure function of the kind and the raw literal. Whether a
// counter value was already issued is tracked by the Allocator, not here.
func (v Value) Valid() bool {
	return Lookup(v.Kind).Validate(v.Raw)
}

func (v Value) String() string {
	return v.Raw
}

// Shorthand constructors used by the element catalog and the seeds.

func String(raw string) Value        { return New(KindString, raw) }
func Number(raw string) Value        { return New(KindNumber, raw) }
func Numbers(raw string) Value       { return New(KindNumbers, raw) }
func ResourceID(raw string) Value    { return New(KindResourceID, raw) }
func ResourceIndex(raw string) Value { return New(KindResourceIndex, raw) }
func Matrix(raw string) Value        { return New(KindMatrix3D, raw) }
func Color(raw string) Value         { return New(KindColorValue, raw) }
func UUID(raw string) Value          { return New(KindUUID, raw) }
