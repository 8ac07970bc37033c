package mutator

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is one elementary edit the mutator applies.
type Kind int

const (
	AttributeDropped Kind = iota + 1
	AttributeReplacedInvalid
	AttributeReplacedValid
	AttributeDuplicatedNewAfter
	AttributeDuplicatedNewBefore
	AttributeDuplicatedSame
	ChildDropped
	AllChildrenDropped
	ChildDuplicatedSameID
	ChildDuplicatedNewID
	ChildDuplicatedSame
)

var kindInfo = map[Kind]struct {
	code  string
	label string
}{
	AttributeDropped:             {"AR", "Attribute Dropped"},
	AttributeReplacedInvalid:     {"AI", "Attribute Replaced (Invalid)"},
	AttributeReplacedValid:       {"AV", "Attribute Replaced (Valid)"},
	AttributeDuplicatedNewAfter:  {"ADA", "Attribute Duplicated (New After)"},
	AttributeDuplicatedNewBefore: {"ADB", "Attribute Duplicated (New Before)"},
	AttributeDuplicatedSame:      {"ADS", "Attribute Duplicated (Same)"},
	ChildDropped:                 {"CR", "Child Dropped"},
	AllChildrenDropped:           {"CRA", "All Children Dropped"},
	ChildDuplicatedSameID:        {"CDA", "Child Duplicated (New After, Same ID)"},
	ChildDuplicatedNewID:         {"CDN", "Child Duplicated (New After, New ID)"},
	ChildDuplicatedSame:          {"CDS", "Child Duplicated (Same)"},
}

// Code is the short edit code used in generated test ids.
func (k Kind) Code() string {
	return kindInfo[k].code
}

// Label is the human readable edit name.
func (k Kind) Label() string {
	return kindInfo[k].label
}

// OnAttribute reports whether k edits an attribute rather than a child.
func (k Kind) OnAttribute() bool {
	return k >= AttributeDropped && k <= AttributeDuplicatedSame
}
