package seed

import "github.com/UPB-SysSec/3MF-Analyzer/internal/element"

var coloredCubeTriangles = []string{
	"0 1 2", "3 4 5", "4 3 6 pid=20 p1=0", "7 2 1", "4 6 1", "4 2 5",
	"7 1 6 p1=0", "5 2 7", "4 0 2", "6 3 7", "1 0 4 pid=20 p1=1", "7 3 5",
}

// core is a house of a cube and a pyramid, each colored by its own base
// material group.
func core() *element.Node {
	b := builder{}
	return b.model("xml:lang", "en-US", "unit", "millimeter").Append(
		b.el(element.KindResources).Append(
			b.el(element.KindBaseMaterials, "id", "10").Append(
				b.base("upbblue", "#00205b"),
				b.base("upbgray", "#555555"),
			),
			b.el(element.KindBaseMaterials, "id", "20").Append(
				b.base("upbred", "#d73367"),
				b.base("upbgreen", "#a4c424"),
			),
			b.el(element.KindObject, "id", "1", "type", "model", "name", "CubeObject", "pid", "10", "pindex", "1").
				Append(b.mesh(cubeVertices, coloredCubeTriangles)),
			b.el(element.KindObject, "id", "2", "type", "model", "name", "PyramidObject", "pid", "20", "pindex", "0").
				Append(b.mesh(pyramidVertices, []string{
					"0 1 2", "3 1 0", "0 2 3 pid=10 p1=0", "1 4 2 pid=10 p1=1", "4 3 2 p1=1", "4 1 3",
				})),
			b.el(element.KindObject, "id", "3", "type", "model", "name", "House").Append(
				b.components(
					[]string{"objectid", "1", "transform", cubeTransform},
					[]string{"objectid", "2", "transform", pyramidTransform},
				),
			),
		),
		b.el(element.KindBuild).Append(b.el(element.KindItem, "objectid", "3")),
	)
}

// coreMetadata carries document, object and build item metadata.
func coreMetadata() *element.Node {
	b := builder{}
	return b.model("xml:lang", "en-US", "unit", "millimeter").Append(
		b.metadata("Copyright", "Jost Rossel"),
		b.metadata("Application", "Manually Created"),
		b.metadata("LicenseTerms", "MIT License"),
		b.metadata("Title", "Pyramids and Cubes"),
		b.metadata("Designer", "Rossel, J."),
		b.metadata("CreationDate", "2021-09-07"),
		b.el(element.KindResources).Append(
			b.el(element.KindObject, "id", "1", "type", "model").Append(
				b.el(element.KindMetadataGroup).Append(b.metadata("Title", "House Base")),
				b.mesh(cubeVertices, coloredCubeTriangles),
			),
		),
		b.el(element.KindBuild).Append(
			b.el(element.KindItem, "objectid", "1").Append(
				b.el(element.KindMetadataGroup).Append(b.metadata("CreationDate", "2021-09-01")),
			),
		),
	)
}
