package element

import st "github.com/UPB-SysSec/3MF-Analyzer/internal/simpletype"

func req(name string, kind st.Kind) AttributeRule {
	return AttributeRule{Name: name, Kind: kind, Required: true}
}

func opt(name string, kind st.Kind) AttributeRule {
	return AttributeRule{Name: name, Kind: kind}
}

func group(lo, hi int, kinds ...Kind) ChildGroup {
	return ChildGroup{Kinds: kinds, Min: lo, Max: hi}
}

// one is a group that must occur exactly once.
func one(kinds ...Kind) ChildGroup {
	return group(1, 1, kinds...)
}

func many(lo int, kinds ...Kind) ChildGroup {
	return group(lo, Unbounded, kinds...)
}

// catalog builds the content model of k. Extension dependent rules are
// appended after the core rules so attribute order stays stable.
func catalog(k Kind, ext Extensions) Schema {
	switch k {
	case KindModel:
		s := Schema{
			Children: []ChildGroup{
				many(0, KindMetadata),
				one(KindResources),
				one(KindBuild),
			},
			Attributes: []AttributeRule{
				opt("unit", st.KindUnit),
				opt("xml:lang", st.KindString),
				opt("requiredextensions", st.KindString),
				req("xmlns", st.KindString),
			},
		}
		for _, n := range extensionNames {
			if ext.Has(n.ext) {
				s.Attributes = append(s.Attributes, opt("xmlns:"+n.prefix, st.KindString))
			}
		}
		return s

	case KindResources:
		s := Schema{Children: []ChildGroup{
			many(0, KindBaseMaterials),
			many(0, KindObject),
		}}
		if ext.Has(ExtMaterials) {
			s.Children = append(s.Children,
				many(0, KindTexture2D),
				many(0, KindColorGroup),
				many(0, KindTexture2DGroup),
				many(0, KindCompositeMaterials),
				many(0, KindMultiProperties),
				many(0, KindPBSpecularDisplayProperties,
					KindPBMetallicDisplayProperties,
					KindPBSpecularTextureDisplayProperties,
					KindPBMetallicTextureDisplayProperties,
					KindTranslucentDisplayProperties),
			)
		}
		if ext.Has(ExtSlice) {
			s.Children = append(s.Children, many(0, KindSliceStack))
		}
		return s

	case KindBuild:
		s := Schema{Children: []ChildGroup{many(0, KindItem)}}
		if ext.Has(ExtProduction) {
			s.Attributes = append(s.Attributes, opt("p:UUID", st.KindUUID))
		}
		return s

	case KindItem:
		s := Schema{
			Children: []ChildGroup{group(0, 1, KindMetadataGroup)},
			Attributes: []AttributeRule{
				req("objectid", st.KindResourceID),
				opt("transform", st.KindMatrix3D),
				opt("partnumber", st.KindString),
			},
		}
		if ext.Has(ExtProduction) {
			s.Attributes = append(s.Attributes,
				opt("p:path", st.KindPath),
				req("p:UUID", st.KindUUID))
		}
		return s

	case KindObject:
		s := Schema{
			Children: []ChildGroup{
				group(0, 1, KindMetadataGroup),
				one(KindMesh, KindComponents),
			},
			Attributes: []AttributeRule{
				req("id", st.KindResourceID),
				opt("type", st.KindObjectType),
				opt("thumbnail", st.KindURIReference),
				opt("partnumber", st.KindString),
				opt("name", st.KindString),
				opt("pid", st.KindResourceIndex),
				opt("pindex", st.KindResourceIndex),
			},
		}
		if ext.Has(ExtProduction) {
			s.Attributes = append(s.Attributes, req("p:UUID", st.KindUUID))
		}
		if ext.Has(ExtSlice) {
			s.Attributes = append(s.Attributes,
				req("s:slicestackid", st.KindResourceID),
				opt("s:meshresolution", st.KindString))
		}
		return s

	case KindMesh:
		return Schema{Children: []ChildGroup{one(KindVertices), one(KindTriangles)}}

	case KindVertices:
		return Schema{Children: []ChildGroup{many(3, KindVertex)}}

	case KindVertex:
		return Schema{Attributes: []AttributeRule{
			req("x", st.KindNumber),
			req("y", st.KindNumber),
			req("z", st.KindNumber),
		}}

	case KindTriangles:
		return Schema{Children: []ChildGroup{many(1, KindTriangle)}}

	case KindTriangle:
		return Schema{Attributes: []AttributeRule{
			req("v1", st.KindResourceIndex),
			req("v2", st.KindResourceIndex),
			req("v3", st.KindResourceIndex),
			opt("p1", st.KindResourceIndex),
			opt("p2", st.KindResourceIndex),
			opt("p3", st.KindResourceIndex),
			opt("pid", st.KindResourceID),
		}}

	case KindComponents:
		return Schema{Children: []ChildGroup{many(1, KindComponent)}}

	case KindComponent:
		s := Schema{Attributes: []AttributeRule{
			req("objectid", st.KindResourceID),
			opt("transform", st.KindMatrix3D),
		}}
		if ext.Has(ExtProduction) {
			s.Attributes = append(s.Attributes,
				opt("p:path", st.KindPath),
				req("p:UUID", st.KindUUID))
		}
		return s

	case KindMetadata:
		return Schema{
			AllowsText:  true,
			AllowsMixed: true,
			Attributes: []AttributeRule{
				req("name", st.KindString),
				opt("preserve", st.KindBoolean),
				opt("type", st.KindString),
			},
		}

	case KindMetadataGroup:
		return Schema{Children: []ChildGroup{many(1, KindMetadata)}}

	case KindBaseMaterials:
		s := Schema{
			Children:   []ChildGroup{many(1, KindBase)},
			Attributes: []AttributeRule{req("id", st.KindResourceID)},
		}
		if ext.Has(ExtMaterials) {
			s.Attributes = append(s.Attributes, opt("displaypropertiesid", st.KindResourceID))
		}
		return s

	case KindBase:
		return Schema{Attributes: []AttributeRule{
			req("name", st.KindString),
			req("displaycolor", st.KindColorValue),
		}}

	case KindTexture2D:
		return Schema{Attributes: []AttributeRule{
			req("id", st.KindResourceID),
			req("path", st.KindURIReference),
			req("contenttype", st.KindContentType),
			opt("tilestyleu", st.KindTileStyle),
			opt("tilestylev", st.KindTileStyle),
			opt("filter", st.KindFilter),
		}}

	case KindColorGroup:
		return Schema{
			Children: []ChildGroup{many(1, KindColor)},
			Attributes: []AttributeRule{
				req("id", st.KindResourceID),
				opt("displaypropertiesid", st.KindResourceID),
			},
		}

	case KindColor:
		return Schema{Attributes: []AttributeRule{req("color", st.KindColorValue)}}

	case KindTexture2DGroup:
		return Schema{
			Children: []ChildGroup{many(1, KindTex2Coord)},
			Attributes: []AttributeRule{
				req("id", st.KindResourceID),
				req("texid", st.KindResourceID),
				opt("displaypropertiesid", st.KindResourceID),
			},
		}

	case KindTex2Coord:
		return Schema{Attributes: []AttributeRule{
			req("u", st.KindNumber),
			req("v", st.KindNumber),
		}}

	case KindCompositeMaterials:
		return Schema{
			Children: []ChildGroup{many(1, KindComposite)},
			Attributes: []AttributeRule{
				req("id", st.KindResourceID),
				req("matid", st.KindResourceID),
				req("matindices", st.KindResourceIndices),
				opt("displaypropertiesid", st.KindResourceID),
			},
		}

	case KindComposite:
		return Schema{Attributes: []AttributeRule{req("values", st.KindNumbers)}}

	case KindMultiProperties:
		return Schema{
			Children: []ChildGroup{many(1, KindMulti)},
			Attributes: []AttributeRule{
				req("id", st.KindResourceID),
				req("pids", st.KindResourceIDs),
				opt("blendmethods", st.KindBlendMethods),
			},
		}

	case KindMulti:
		return Schema{Attributes: []AttributeRule{req("pindices", st.KindResourceIndices)}}

	case KindPBSpecularDisplayProperties:
		return Schema{
			Children:   []ChildGroup{many(1, KindPBSpecular)},
			Attributes: []AttributeRule{req("id", st.KindResourceID)},
		}

	case KindPBSpecular:
		return Schema{Attributes: []AttributeRule{
			req("name", st.KindString),
			opt("specularcolor", st.KindColorValue),
			opt("glossiness", st.KindNumber),
		}}

	case KindPBMetallicDisplayProperties:
		return Schema{
			Children:   []ChildGroup{many(1, KindPBMetallic)},
			Attributes: []AttributeRule{req("id", st.KindResourceID)},
		}

	case KindPBMetallic:
		return Schema{Attributes: []AttributeRule{
			req("name", st.KindString),
			opt("metallicness", st.KindNumber),
			opt("roughness", st.KindNumber),
		}}

	case KindPBSpecularTextureDisplayProperties:
		return Schema{Attributes: []AttributeRule{
			req("id", st.KindResourceID),
			req("name", st.KindString),
			req("speculartextureid", st.KindResourceID),
			req("glossinesstextureid", st.KindResourceID),
			opt("diffusefactor", st.KindColorValue),
			opt("specularfactor", st.KindColorValue),
			opt("glossinessfactor", st.KindNumber),
		}}

	case KindPBMetallicTextureDisplayProperties:
		return Schema{Attributes: []AttributeRule{
			req("id", st.KindResourceID),
			req("name", st.KindString),
			req("metallictextureid", st.KindResourceID),
			req("roughnesstextureid", st.KindResourceID),
			opt("metallicfactor", st.KindNumber),
			opt("roughnessfactor", st.KindNumber),
		}}

	case KindTranslucentDisplayProperties:
		return Schema{
			Children:   []ChildGroup{many(1, KindTranslucent)},
			Attributes: []AttributeRule{req("id", st.KindResourceID)},
		}

	case KindTranslucent:
		return Schema{Attributes: []AttributeRule{
			req("name", st.KindString),
			req("attenuation", st.KindNumbers),
			opt("refractiveindex", st.KindNumbers),
			opt("roughness", st.KindNumber),
		}}

	case KindSliceStack:
		return Schema{
			Children: []ChildGroup{many(0, KindSlice, KindSliceRef)},
			Attributes: []AttributeRule{
				req("id", st.KindResourceID),
				opt("zbottom", st.KindNumber),
			},
		}

	case KindSlice:
		return Schema{
			Children: []ChildGroup{
				group(0, 1, KindSliceVertices),
				many(0, KindPolygon),
			},
			Attributes: []AttributeRule{req("ztop", st.KindNumber)},
		}

	case KindSliceRef:
		return Schema{Attributes: []AttributeRule{
			req("slicestackid", st.KindResourceID),
			req("slicepath", st.KindURIReference),
		}}

	case KindSliceVertices:
		return Schema{Children: []ChildGroup{many(2, KindSliceVertex)}}

	case KindSliceVertex:
		return Schema{Attributes: []AttributeRule{
			req("x", st.KindNumber),
			req("y", st.KindNumber),
		}}

	case KindPolygon:
		return Schema{
			Children:   []ChildGroup{many(1, KindSegment)},
			Attributes: []AttributeRule{req("startv", st.KindResourceIndex)},
		}

	case KindSegment:
		return Schema{Attributes: []AttributeRule{
			req("v2", st.KindResourceIndex),
			opt("p1", st.KindResourceIndex),
			opt("p2", st.KindResourceIndex),
			opt("pid", st.KindResourceID),
		}}
	}
	return Schema{}
}
