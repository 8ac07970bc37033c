package simpletype

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Definition describes how literals of one kind are validated and which
// curated literals the mutator may use as replacement values.
type Definition struct {
	Kind    Kind
	Name    string // XSD type name, e.g. ST_ResourceID
	Class   Class
	Pattern *regexp.Regexp
	Allowed []string
	Min     int64
	Max     int64
	Valid   []string
	Invalid []string
}

const (
	numberPattern = `((\-|\+)?(([0-9]+(\.[0-9]+)?)|(\.[0-9]+))((e|E)(\-|\+)?[0-9]+)?)`
	maxInt32      = 2147483647
)

func anchored(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + expr + `)$`)
}

var definitions = [KindTotal]Definition{
	KindObjectType: {
		Name:    "ST_ObjectType",
		Class:   ClassEnum,
		Allowed: []string{"model", "solidsupport", "support", "surface", "other"},
		Invalid: []string{"Model", "3DModel"},
	},
	KindUnit: {
		Name:    "ST_Unit",
		Class:   ClassEnum,
		Allowed: []string{"micron", "millimeter", "centimeter", "inch", "foot", "meter"},
		Invalid: []string{"kilometer", "nanometer"},
	},
	KindColorValue: {
		Name:    "ST_ColorValue",
		Class:   ClassPattern,
		Pattern: anchored(`#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?`),
		Valid:   []string{"#00000055", "#000000"},
		Invalid: []string{"#000", "black", "(0,0,0)"},
	},
	KindURIReference: {
		Name:    "ST_UriReference",
		Class:   ClassPattern,
		Pattern: anchored(`/.*`),
		// The literal matches the pattern but points at a part that no
		// package contains.
		Invalid: []string{"/Metadata/thumbnail.png"},
	},
	KindMatrix3D: {
		Name:    "ST_Matrix3D",
		Class:   ClassPattern,
		Pattern: anchored(strings.TrimSuffix(strings.Repeat(numberPattern+" ", 12), " ")),
		Valid:   []string{"1 0 0 0 2 0 0 0 3 0 0 0", "1 0 0 0 -1 0 0 0 -2 0 0 0"},
		Invalid: []string{"1 0 0 0 2 0 0 0 3 0 0 0 1 0 0 0 2 0 0 0 3 0 0 0"},
	},
	KindString: {
		Name:  "xs:string",
		Class: ClassFree,
	},
	KindBoolean: {
		Name:    "xs:boolean",
		Class:   ClassEnum,
		Allowed: []string{"true", "false", "0", "1"},
		Invalid: []string{"True", "False"},
	},
	KindNumber: {
		Name:    "ST_Number",
		Class:   ClassPattern,
		Pattern: anchored(numberPattern),
		Valid:   []string{"-.5"},
		Invalid: []string{"1,000.01"},
	},
	KindNumbers: {
		Name:    "ST_Numbers",
		Class:   ClassPattern,
		Pattern: anchored(`(` + numberPattern + `( )?)+`),
	},
	KindResourceID: {
		Name:    "ST_ResourceID",
		Class:   ClassCounter,
		Min:     1,
		Max:     maxInt32,
		Invalid: []string{"-1", "0", "2147483648"},
	},
	KindResourceIndex: {
		Name:    "ST_ResourceIndex",
		Class:   ClassCounter,
		Min:     0,
		Max:     maxInt32,
		Invalid: []string{"-1", "2147483648"},
	},
	KindResourceIndices: {
		Name:    "ST_ResourceIndices",
		Class:   ClassMultiCounter,
		Pattern: anchored(`(([0-9]+)( )?)+`),
		Valid:   []string{"1", "1 1"},
		Invalid: []string{"", "1.0 1.1"},
	},
	KindResourceIDs: {
		Name:    "ST_ResourceIDs",
		Class:   ClassMultiCounter,
		Pattern: anchored(`(([0-9]+)( )?)+`),
		Valid:   []string{"1"},
		Invalid: []string{"1.0 1.1"},
	},
	KindBlendMethods: {
		Name:    "ST_BlendMethods",
		Class:   ClassPattern,
		Pattern: anchored(`(mix|multiply)( (mix|multiply))*`),
		Valid:   []string{"mix multiply"},
		// Concatenated without separators, so it also exceeds any sane length.
		Invalid: []string{strings.Repeat("mix multiply", 1024)},
	},
	KindZeroToOne: {
		Name:    "ST_ZeroToOne",
		Class:   ClassRange,
		Min:     0,
		Max:     1,
		Valid:   []string{"0", "1"},
		Invalid: []string{"-1"},
	},
	KindPath: {
		Name:    "ST_Path",
		Class:   ClassFree,
		Invalid: []string{"../../../../../../etc/passwd"},
	},
	KindUUID: {
		Name:    "ST_UUID",
		Class:   ClassPattern,
		Pattern: anchored(`[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}`),
		Valid:   []string{"7f581f60-6857-41b6-9dd3-931a851b048d"},
		Invalid: []string{
			"7F581F60-6857-41B6-9DD3-931A851B048D",
			"7f581f60-6857-41b6-9dd3-931a851b048deeeeee",
		},
	},
	KindContentType: {
		Name:    "ST_ContentType",
		Class:   ClassEnum,
		Allowed: []string{"image/jpeg", "image/png"},
		Invalid: []string{"image/svg", "image/jpg"},
	},
	KindTileStyle: {
		Name:    "ST_TileStyle",
		Class:   ClassEnum,
		Allowed: []string{"clamp", "wrap", "mirror", "none"},
		Invalid: []string{"None"},
	},
	KindFilter: {
		Name:    "ST_Filter",
		Class:   ClassEnum,
		Allowed: []string{"auto", "linear", "nearest"},
		Invalid: []string{"farthest"},
	},
}

func init() {
	for k := range definitions {
		d := &definitions[k]
		d.Kind = Kind(k)
		if d.Class == ClassEnum && d.Valid == nil {
			d.Valid = d.Allowed
		}
	}
}

// Lookup returns the definition of k. Unknown kinds get a zero Definition,
// whose class accepts everything.
func Lookup(k Kind) Definition {
	if k <= 0 || int(k) >= KindTotal {
		return Definition{Kind: k}
	}
	return definitions[k]
}

// Validate reports whether raw is a valid literal of the definition's kind.
func (d Definition) Validate(raw string) bool {
	switch d.Class {
	case ClassPattern, ClassMultiCounter:
		return d.Pattern.MatchString(raw)
	case ClassEnum:
		return slices.Contains(d.Allowed, raw)
	case ClassRange, ClassCounter:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return false
		}
		return d.Min <= n && n <= d.Max
	default:
		return true
	}
}
