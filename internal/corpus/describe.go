package corpus

import (
	"fmt"
	"strings"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/mutator"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/seed"
)

// Test id prefixes.
const (
	PrefixGenerated = "GEN"
	PrefixReference = "R-SPEC"
)

// describe returns the unnumbered id and the description of a variant of
// the document with the given id.
func describe(seedID string, v mutator.Variant) (id, description string) {
	info := v.Info
	tag := v.Target.Tag()
	prefix := fmt.Sprintf("%s-%s-%s-%s", PrefixGenerated, seedID, info.Kind.Code(), tag)

	switch info.Kind {
	case mutator.AttributeDropped:
		id = prefix + "-" + info.Attribute
		description = fmt.Sprintf("Removed attribute '%s' from '%s'", info.Attribute, tag)
	case mutator.AttributeReplacedInvalid:
		id = prefix + "-" + info.Attribute
		description = fmt.Sprintf("Made attribute '%s' from '%s' invalid with: '%s'", info.Attribute, tag, info.Value.Raw)
	case mutator.AttributeReplacedValid:
		id = prefix + "-" + info.Attribute
		description = fmt.Sprintf("Made attribute '%s' from '%s' valid with: '%s'", info.Attribute, tag, info.Value.Raw)
	case mutator.AttributeDuplicatedNewAfter:
		id = prefix + "-" + info.Attribute
		description = fmt.Sprintf("Added valid attribute '%s' to '%s' with: '%s'. "+
			"The name is duplicate, the attribute was added after the old attribute.", info.Attribute, tag, info.Value.Raw)
	case mutator.AttributeDuplicatedNewBefore:
		id = prefix + "-" + info.Attribute
		description = fmt.Sprintf("Added valid attribute '%s' to '%s' with: '%s'. "+
			"The name is duplicate, the attribute was added before the old attributes.", info.Attribute, tag, info.Value.Raw)
	case mutator.AttributeDuplicatedSame:
		id = prefix + "-" + info.Attribute
		description = fmt.Sprintf("Duplicated valid attribute '%s' of '%s'", info.Attribute, tag)
	case mutator.ChildDropped:
		id = prefix + "-" + info.Child.Tag()
		description = fmt.Sprintf("Removed child '%s' from '%s'", info.Child.Tag(), tag)
	case mutator.AllChildrenDropped:
		id = prefix
		description = fmt.Sprintf("Removed all children from '%s'", tag)
	case mutator.ChildDuplicatedSameID:
		id = prefix
		description = fmt.Sprintf("Added valid child '%s' to '%s'. "+
			"The child is a duplicate with the same ID as a sibling.", info.Child.Tag(), tag)
	case mutator.ChildDuplicatedNewID:
		id = prefix
		description = fmt.Sprintf("Added valid child '%s' to '%s'. "+
			"The child is a duplicate with a new ID.", info.Child.Tag(), tag)
	case mutator.ChildDuplicatedSame:
		id = prefix
		description = fmt.Sprintf("Duplicated valid child '%s' from '%s'", info.Child.Tag(), tag)
	default:
		id = prefix
		description = fmt.Sprintf("Mutated '%s'", tag)
	}
	return strings.ToUpper(id), description
}

func describeReference(doc seed.Document) (id, description string) {
	return PrefixReference + "-" + doc.ID,
		fmt.Sprintf("Full/Reference model for %s specification (%s)", doc.Spec, doc.ID)
}

// dedupKey folds descriptions that only differ in the added literal.
func dedupKey(description string) string {
	if strings.HasPrefix(description, "Added valid attribute") {
		description, _, _ = strings.Cut(description, ": '")
	}
	return description
}
