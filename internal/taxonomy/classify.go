package taxonomy

import (
	"slices"
	"strings"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/element"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/mutator"
)

// Tags assigned by Classify.
const (
	TagReference                   = "Reference"
	TagNamespaceConfusion          = "UI Spoofing, Namespace Confusion"
	TagReferenceConfusion          = "UI Spoofing, Reference Confusion"
	TagReferencedObjectBroken      = "UI Spoofing, Reference Confusion, Referenced Object Broken"
	TagReferenceBroken             = "UI Spoofing, Reference Confusion, Reference Broken"
	TagReferencedObjectDuplication = "UI Spoofing, Reference Confusion, Referenced Object Duplication"
	TagPropertyInvalid             = "UI Spoofing, Property Confusion, Property Invalid"
	TagPropertyValid               = "UI Spoofing, Property Confusion, Property Valid"
	TagPropertyDuplication         = "UI Spoofing, Property Confusion, Property Duplication"
)

// referencable lists the attributes other elements refer to.
var referencable = map[element.Kind][]string{
	element.KindBaseMaterials:                      {"id"},
	element.KindObject:                             {"id"},
	element.KindTexture2D:                          {"id"},
	element.KindColorGroup:                         {"id"},
	element.KindTexture2DGroup:                     {"id"},
	element.KindCompositeMaterials:                 {"id"},
	element.KindMultiProperties:                    {"id"},
	element.KindPBSpecularDisplayProperties:        {"id"},
	element.KindPBMetallicDisplayProperties:        {"id"},
	element.KindPBSpecularTextureDisplayProperties: {"id"},
	element.KindPBMetallicTextureDisplayProperties: {"id"},
	element.KindTranslucentDisplayProperties:       {"id"},
	element.KindSliceStack:                         {"id"},
}

// referencing lists the attributes that point at other elements or parts.
var referencing = map[element.Kind][]string{
	element.KindBaseMaterials:                      {"displaypropertiesid"},
	element.KindComponent:                          {"objectid", "p:path"},
	element.KindItem:                               {"objectid", "p:path"},
	element.KindObject:                             {"thumbnail", "pid", "pindex"},
	element.KindTriangle:                           {"v1", "v2", "v3", "p1", "p2", "p3", "pid"},
	element.KindTexture2D:                          {"path"},
	element.KindColorGroup:                         {"displaypropertiesid"},
	element.KindTexture2DGroup:                     {"displaypropertiesid", "texid"},
	element.KindCompositeMaterials:                 {"matid", "matindices", "displaypropertiesid"},
	element.KindMultiProperties:                    {"pids"},
	element.KindMulti:                              {"pindices"},
	element.KindPBSpecularTextureDisplayProperties: {"speculartextureid", "glossinesstextureid"},
	element.KindPBMetallicTextureDisplayProperties: {"metallictextureid", "roughnesstextureid"},
	element.KindSliceRef:                           {"slicestackid", "slicepath"},
	element.KindPolygon:                            {"startv"},
	element.KindSegment:                            {"v2", "p1", "p2", "pid"},
}

// Referencable reports whether attr of kind identifies the element.
func Referencable(kind element.Kind, attr string) bool {
	return slices.Contains(referencable[kind], attr)
}

// Referencing reports whether attr of kind refers to another element.
func Referencing(kind element.Kind, attr string) bool {
	return slices.Contains(referencing[kind], attr)
}

// Subject is everything Classify looks at.
type Subject struct {
	ID          string
	Description string
	Variant     mutator.Variant
	// Validity maps specification names to validator outcomes.
	Validity map[string]string
}

// Classify derives a type tag for a generated test. It covers the common
// cases; corner cases fall back to a property tag chosen by validity.
func Classify(s Subject) string {
	if strings.HasPrefix(s.ID, "R-") {
		return TagReference
	}
	if strings.Contains(s.Description, "xmlns") {
		return TagNamespaceConfusion
	}

	info := s.Variant.Info
	var target element.Kind
	if s.Variant.Target != nil {
		target = s.Variant.Target.Kind
	}

	switch info.Kind {
	case mutator.AttributeDropped:
		if Referencable(target, info.Attribute) {
			return TagReferencedObjectBroken
		}
		if Referencing(target, info.Attribute) {
			return TagReferenceBroken
		}

	case mutator.AttributeReplacedInvalid:
		if Referencable(target, info.Attribute) {
			return TagReferencedObjectBroken
		}
		if Referencing(target, info.Attribute) {
			return TagReferenceBroken
		}
		return TagPropertyInvalid

	case mutator.AttributeReplacedValid:
		return TagPropertyValid

	case mutator.AttributeDuplicatedNewAfter, mutator.AttributeDuplicatedNewBefore, mutator.AttributeDuplicatedSame:
		if Referencable(target, info.Attribute) {
			return TagReferenceConfusion
		}
		if Referencing(target, info.Attribute) {
			return TagReferenceBroken
		}
		return TagPropertyDuplication

	case mutator.ChildDropped, mutator.AllChildrenDropped:
		for _, child := range info.Dropped {
			if _, ok := referencable[child.Kind]; ok {
				return TagReferencedObjectBroken
			}
			if _, ok := referencing[child.Kind]; ok {
				return TagReferenceBroken
			}
		}

	case mutator.ChildDuplicatedSameID, mutator.ChildDuplicatedNewID, mutator.ChildDuplicatedSame:
		if info.Child != nil {
			if _, ok := referencable[info.Child.Kind]; ok {
				return TagReferencedObjectDuplication
			}
			if _, ok := referencing[info.Child.Kind]; ok {
				return TagReferenceConfusion
			}
		}
		return TagPropertyDuplication
	}

	if Conforms(s.Validity) {
		return TagPropertyValid
	}
	return TagPropertyInvalid
}

// Conforms reports whether validator outcomes count as valid. A materials
// outcome decides alone; otherwise every outcome must be valid.
func Conforms(validity map[string]string) bool {
	if v, ok := validity["materials"]; ok {
		return strings.HasPrefix(v, "Valid")
	}
	for _, v := range validity {
		if !strings.HasPrefix(v, "Valid") {
			return false
		}
	}
	return true
}
