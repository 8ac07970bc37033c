package element

// Create returns a schema-valid default instance of kind with ext active.
// The instance may be logically inconsistent, e.g. reference ids that do
// not exist in the surrounding document.
func Create(kind Kind, ext Extensions) *Node {
	newNode := func(k Kind, pairs ...string) *Node { return New(k, ext, pairs...) }

	switch kind {
	case KindModel:
		pairs := []string{"xmlns", NamespaceCore, "xml:lang", "en-US"}
		for _, n := range extensionNames {
			if ext.Has(n.ext) {
				pairs = append(pairs, "xmlns:"+n.prefix, namespaceOf(n.ext))
			}
		}
		return newNode(kind, pairs...).Append(Create(KindResources, ext), Create(KindBuild, ext))

	case KindResources:
		return newNode(kind).Append(Create(KindBaseMaterials, ext), Create(KindObject, ext))

	case KindBuild:
		return newNode(kind).Append(Create(KindItem, ext))

	case KindItem:
		if ext.Has(ExtProduction) {
			return newNode(kind, "objectid", "1", "p:UUID", "68e2a5d0-827a-48dc-be19-1c6ed7435446")
		}
		return newNode(kind, "objectid", "1")

	case KindObject:
		pairs := []string{"id", "1", "type", "model", "name", "Tetrahedron"}
		if ext.Has(ExtProduction) {
			pairs = append(pairs, "p:UUID", "37abac8a-db0f-41f5-b5e3-66db31ca1d93")
		}
		if ext.Has(ExtSlice) {
			pairs = append(pairs, "s:slicestackid", "1")
		}
		return newNode(kind, pairs...).Append(Create(KindMesh, ext))

	case KindVertices:
		v := newNode(kind)
		for _, p := range [][3]string{
			{"-10", "-17.3205", "0"},
			{"-10", "17.3205", "0"},
			{"20", "0", "0"},
			{"0", "0", "28"},
		} {
			v.Append(newNode(KindVertex, "x", p[0], "y", p[1], "z", p[2]))
		}
		return v

	case KindVertex:
		return newNode(kind, "x", "-10", "y", "-17.3205", "z", "0")

	case KindTriangles:
		t := newNode(kind)
		for _, p := range [][3]string{{"0", "1", "2"}, {"0", "2", "3"}, {"1", "3", "2"}, {"0", "3", "1"}} {
			t.Append(newNode(KindTriangle, "v1", p[0], "v2", p[1], "v3", p[2]))
		}
		return t

	case KindTriangle:
		return newNode(kind, "v1", "0", "v2", "1", "v3", "2")

	case KindComponents:
		second := Create(KindComponent, ext)
		second.Attributes[0].Value.Raw = "2"
		return newNode(kind).Append(Create(KindComponent, ext), second)

	case KindComponent:
		if ext.Has(ExtProduction) {
			return newNode(kind, "objectid", "1", "p:UUID", "98855e93-a716-489e-a5e4-64204dc47365")
		}
		return newNode(kind, "objectid", "1")

	case KindMetadata:
		return newNode(kind, "name", "Designer").WithText("Jost\nRossel")

	case KindBaseMaterials:
		return newNode(kind, "id", "10").Append(Create(KindBase, ext))

	case KindBase:
		return newNode(kind, "name", "Turquoise", "displaycolor", "#00A0E8FF")

	case KindTexture2D:
		return newNode(kind, "id", "1", "path", "/3D/Texture/papyrus.jpg", "contenttype", "image/jpeg")

	case KindColorGroup:
		return newNode(kind, "id", "1").Append(
			newNode(KindColor, "color", "#555555"),
			newNode(KindColor, "color", "#d73367"),
		)

	case KindColor:
		return newNode(kind, "color", "#555555")

	case KindTexture2DGroup:
		g := newNode(kind, "id", "1", "texid", "7")
		for _, uv := range [][2]string{
			{"0", "0"},
			{"2.67582", "0"},
			{"1.33805", "2.67582"},
			{"1.33778", "2.67582"},
			{"1.19209e-007", "0"},
			{"-1.19209e-007", "0"},
		} {
			g.Append(newNode(KindTex2Coord, "u", uv[0], "v", uv[1]))
		}
		return g

	case KindTex2Coord:
		return newNode(kind, "u", "1", "v", "2")

	case KindCompositeMaterials:
		return newNode(kind, "id", "1", "matid", "10", "matindices", "0 1").Append(Create(KindComposite, ext))

	case KindComposite:
		return newNode(kind, "values", "0.5 0.5")

	case KindMultiProperties:
		return newNode(kind, "id", "1", "pids", "10 18").Append(Create(KindMulti, ext))

	case KindMulti:
		return newNode(kind, "pindices", "0 0")

	case KindPBSpecularDisplayProperties:
		return newNode(kind, "id", "1").Append(Create(KindPBSpecular, ext))

	case KindPBSpecular:
		return newNode(kind, "name", "Specular", "specularcolor", "#555555", "glossiness", "1")

	case KindPBMetallicDisplayProperties:
		return newNode(kind, "id", "1").Append(Create(KindPBMetallic, ext))

	case KindPBMetallic:
		return newNode(kind, "name", "Metallic", "metallicness", "1", "roughness", "1")

	case KindPBSpecularTextureDisplayProperties:
		return newNode(kind, "id", "1", "name", "SpecularTexture",
			"speculartextureid", "7", "glossinesstextureid", "8")

	case KindPBMetallicTextureDisplayProperties:
		return newNode(kind, "id", "1", "name", "MetallicTexture",
			"metallictextureid", "7", "roughnesstextureid", "8")

	case KindTranslucentDisplayProperties:
		return newNode(kind, "id", "1").Append(Create(KindTranslucent, ext))

	case KindTranslucent:
		return newNode(kind, "name", "Translucent",
			"attenuation", "162.265 162.265 162.265", "refractiveindex", "1 1 1", "roughness", "1")

	case KindSliceStack:
		return newNode(kind, "id", "1", "zbottom", "0").Append(Create(KindSlice, ext))

	case KindSlice:
		return newNode(kind, "ztop", "0.080").Append(Create(KindSliceVertices, ext), Create(KindPolygon, ext))

	case KindSliceRef:
		return newNode(kind, "slicestackid", "1", "slicepath", "/2D/sliced.model")

	case KindSliceVertices:
		v := newNode(kind)
		for _, p := range [][2]string{
			{"0.000", "0.000"},
			{"10.103", "0.000"},
			{"10.103", "20.207"},
			{"0.000", "20.207"},
		} {
			v.Append(newNode(KindSliceVertex, "x", p[0], "y", p[1]))
		}
		return v

	case KindSliceVertex:
		return newNode(kind, "x", "0.000", "y", "0.000")

	case KindPolygon:
		p := newNode(kind, "startv", "0")
		for _, v2 := range []string{"1", "2", "3", "0"} {
			p.Append(newNode(KindSegment, "v2", v2))
		}
		return p

	case KindSegment:
		return newNode(kind, "v2", "1")
	}

	// Kinds without required attributes: one default instance of the
	// first kind of every child group that must occur.
	n := newNode(kind)
	for _, g := range n.Schema().Children {
		if g.Min > 0 {
			n.Append(Create(g.Kinds[0], ext))
		}
	}
	return n
}

func namespaceOf(ext Extensions) string {
	switch ext {
	case ExtMaterials:
		return NamespaceMaterials
	case ExtProduction:
		return NamespaceProduction
	case ExtSlice:
		return NamespaceSlice
	}
	return NamespaceCore
}
