package seed

import (
	"strings"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/element"
)

// withProperties turns "v1 v2 v3 pid p1 p2 p3" rows, where trailing
// columns may be missing, into triangle specs.
func withProperties(rows ...string) []string {
	names := []string{"pid", "p1", "p2", "p3"}
	out := make([]string, len(rows))
	for i, row := range rows {
		fields := strings.Fields(row)
		spec := strings.Join(fields[:3], " ")
		for j, f := range fields[3:] {
			spec += " " + names[j] + "=" + f
		}
		out[i] = spec
	}
	return out
}

// materials uses every resource of the materials extension: colors,
// textures, display properties and per vertex property indices.
func materials() *element.Node {
	b := builder{ext: element.ExtMaterials}

	colors := b.el(element.KindColorGroup, "id", "18")
	for _, c := range []string{"#00205b", "#555555", "#d73367", "#a4c424"} {
		colors.Append(b.el(element.KindColor, "color", c))
	}

	texture := func(id, file string) *element.Node {
		return b.el(element.KindTexture2D, "id", id, "path", "/3D/Texture/"+file,
			"contenttype", "image/jpeg", "tilestyleu", "wrap", "tilestylev", "wrap")
	}
	coords := func(g *element.Node, uvs ...[2]string) *element.Node {
		for _, uv := range uvs {
			g.Append(b.el(element.KindTex2Coord, "u", uv[0], "v", uv[1]))
		}
		return g
	}

	return b.model("xmlns:m", element.NamespaceMaterials, "xml:lang", "en-US", "unit", "millimeter",
		"requiredextensions", "m").Append(
		b.el(element.KindResources).Append(
			colors,
			b.el(element.KindPBMetallicDisplayProperties, "id", "1000000000").Append(
				b.el(element.KindPBMetallic, "name", "Metallic", "metallicness", "1", "roughness", "0"),
			),
			b.el(element.KindTranslucentDisplayProperties, "id", "1000000001").Append(
				b.el(element.KindTranslucent, "name", "Translucent", "attenuation", "162.265 162.265 162.265",
					"refractiveindex", "1 1 1", "roughness", "1"),
			),
			b.el(element.KindBaseMaterials, "id", "2").Append(
				b.base("upbgray", "#555555"),
				b.base("upbred", "#d73367"),
			),
			b.el(element.KindBaseMaterials, "id", "5", "displaypropertiesid", "1000000000").Append(
				b.base("Metallic", "#B36143FF"),
			),
			b.el(element.KindBaseMaterials, "id", "6", "displaypropertiesid", "1000000001").Append(
				b.base("Translucent", "#FFFFFFFF"),
			),
			texture("7", "papyrus.jpg"),
			texture("8", "walnut.jpg"),
			coords(b.el(element.KindTexture2DGroup, "id", "19", "texid", "7"),
				[2]string{"0", "1"},
				[2]string{"1", "5.96046e-008"},
				[2]string{"1", "1"},
				[2]string{"0", "5.96046e-008"},
				[2]string{"0", "-5.96046e-008"},
				[2]string{"1", "-5.96046e-008"},
				[2]string{"1", "0"},
				[2]string{"0", "0"},
				[2]string{"5.96046e-008", "1"},
				[2]string{"5.96046e-008", "0"},
			),
			coords(b.el(element.KindTexture2DGroup, "id", "20", "texid", "8"),
				[2]string{"0", "0"},
				[2]string{"2.67582", "0"},
				[2]string{"1.33805", "2.67582"},
				[2]string{"1.33778", "2.67582"},
				[2]string{"1.19209e-007", "0"},
				[2]string{"-1.19209e-007", "0"},
			),
			b.el(element.KindObject, "id", "9", "type", "model").Append(
				b.mesh(cubeVertices, withProperties(
					"0 1 2 2 0",
					"3 4 5 18 0 1 2",
					"4 3 6 18 1 0 3",
					"7 2 1 2 0",
					"4 6 1 19 4 5 2",
					"4 2 5 19 6 0 7",
					"7 1 6 19 2 8 9",
					"5 2 7 19 5 2 0",
					"4 0 2 19 6 2 0",
					"6 3 7 19 9 6 2",
					"1 0 4 19 2 0 4",
					"7 3 5 19 0 4 5",
				)),
			),
			b.el(element.KindObject, "id", "10", "type", "model").Append(
				b.mesh(pyramidVertices, withProperties(
					"0 1 2 20 0 1 2",
					"3 1 0 2 1",
					"0 2 3 20 1 3 4",
					"1 4 2 20 5 1 2",
					"4 3 2 20 0 1 3",
					"4 1 3 2 1",
				)),
			),
			b.el(element.KindObject, "id", "11", "type", "model", "pid", "5", "pindex", "0").Append(
				b.mesh(cubeVertices, cubeTriangles),
			),
			b.el(element.KindObject, "id", "12", "type", "model", "pid", "6", "pindex", "0").Append(
				b.mesh(pyramidVertices, pyramidTriangles),
			),
			b.el(element.KindObject, "id", "15", "type", "model").Append(
				b.components(
					[]string{"objectid", "9", "transform", cubeTransform},
					[]string{"objectid", "10", "transform", pyramidTransform},
				),
			),
		),
		b.el(element.KindBuild).Append(
			b.el(element.KindItem, "objectid", "15"),
			b.el(element.KindItem, "objectid", "11", "transform", "1 0 0 0 1 0 0 0 1 40 -42.998 0"),
			b.el(element.KindItem, "objectid", "12", "transform", "1 0 0 0 1 0 0 0 1 -2.99801 -42.998 39.998"),
		),
	)
}
