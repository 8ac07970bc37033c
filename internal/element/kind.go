package element

import "strings"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies one 3MF complex type (CT_* in the XSDs).
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	// core
	KindModel
	KindResources
	KindBuild
	KindItem
	KindObject
	KindMesh
	KindVertices
	KindVertex
	KindTriangles
	KindTriangle
	KindComponents
	KindComponent
	KindMetadata
	KindMetadataGroup
	KindBaseMaterials
	KindBase

	// materials and properties extension
	KindTexture2D
	KindColorGroup
	KindColor
	KindTexture2DGroup
	KindTex2Coord
	KindCompositeMaterials
	KindComposite
	KindMultiProperties
	KindMulti
	KindPBSpecularDisplayProperties
	KindPBSpecular
	KindPBMetallicDisplayProperties
	KindPBMetallic
	KindPBSpecularTextureDisplayProperties
	KindPBMetallicTextureDisplayProperties
	KindTranslucentDisplayProperties
	KindTranslucent

	// slice extension
	KindSliceStack
	KindSlice
	KindSliceRef
	KindSliceVertices
	KindSliceVertex
	KindPolygon
	KindSegment

	// KindTotal is the number of declared kinds plus the skipped zero value.
	KindTotal = int(iota)
)

var tags = [KindTotal]string{
	KindModel:          "model",
	KindResources:      "resources",
	KindBuild:          "build",
	KindItem:           "item",
	KindObject:         "object",
	KindMesh:           "mesh",
	KindVertices:       "vertices",
	KindVertex:         "vertex",
	KindTriangles:      "triangles",
	KindTriangle:       "triangle",
	KindComponents:     "components",
	KindComponent:      "component",
	KindMetadata:       "metadata",
	KindMetadataGroup:  "metadatagroup",
	KindBaseMaterials:  "basematerials",
	KindBase:           "base",

	KindTexture2D:                          "m:texture2d",
	KindColorGroup:                         "m:colorgroup",
	KindColor:                              "m:color",
	KindTexture2DGroup:                     "m:texture2dgroup",
	KindTex2Coord:                          "m:tex2coord",
	KindCompositeMaterials:                 "m:compositematerials",
	KindComposite:                          "m:composite",
	KindMultiProperties:                    "m:multiproperties",
	KindMulti:                              "m:multi",
	KindPBSpecularDisplayProperties:        "m:pbspeculardisplayproperties",
	KindPBSpecular:                         "m:pbspecular",
	KindPBMetallicDisplayProperties:        "m:pbmetallicdisplayproperties",
	KindPBMetallic:                         "m:pbmetallic",
	KindPBSpecularTextureDisplayProperties: "m:pbspeculartexturedisplayproperties",
	KindPBMetallicTextureDisplayProperties: "m:pbmetallictexturedisplayproperties",
	KindTranslucentDisplayProperties:       "m:translucentdisplayproperties",
	KindTranslucent:                        "m:translucent",

	KindSliceStack:    "s:slicestack",
	KindSlice:         "s:slice",
	KindSliceRef:      "s:sliceref",
	KindSliceVertices: "s:vertices",
	KindSliceVertex:   "s:vertex",
	KindPolygon:       "s:polygon",
	KindSegment:       "s:segment",
}

// Tag returns the qualified XML tag written for k.
func (k Kind) Tag() string {
	if k <= 0 || int(k) >= KindTotal {
		return ""
	}
	return tags[k]
}

// LocalName is the tag without its namespace prefix.
func (k Kind) LocalName() string {
	tag := k.Tag()
	if i := strings.IndexByte(tag, ':'); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

// KindByTag resolves a qualified tag back to its kind.
func KindByTag(tag string) (Kind, bool) {
	for k := Kind(1); int(k) < KindTotal; k++ {
		if tags[k] == tag {
			return k, true
		}
	}
	return 0, false
}
