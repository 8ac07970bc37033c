package seed

import "github.com/UPB-SysSec/3MF-Analyzer/internal/element"

// production references an object in a second model part through p:path.
func production() *element.Node {
	b := builder{ext: element.ExtProduction}
	return b.model("xmlns:p", element.NamespaceProduction, "xml:lang", "en-US", "unit", "millimeter",
		"requiredextensions", "p").Append(
		b.el(element.KindResources).Append(
			b.el(element.KindObject, "id", "1", "type", "model", "name", "CubeObject",
				"p:UUID", "79874033-a78c-447f-9869-28fa53dfe96a").
				Append(b.mesh(cubeVertices, coloredCubeTriangles)),
			b.el(element.KindObject, "id", "2", "name", "PyramidObjectExternal",
				"p:UUID", "561e978e-f610-45a6-bc45-26fd60484bc9").Append(
				b.components([]string{
					"objectid", "1",
					"p:path", "/3D/external.model",
					"p:UUID", "1dc9d46c-92e5-4333-90cf-a0acb8f6826c",
				}),
			),
		),
		b.el(element.KindBuild, "p:UUID", "e0ea9abe-9815-40eb-9ff1-a3ac5805d097").Append(
			b.el(element.KindItem, "objectid", "1", "transform", cubeTransform,
				"p:UUID", "551812e3-19ed-4db0-9cc8-66eafad1342c"),
			b.el(element.KindItem, "objectid", "2", "transform", pyramidTransform,
				"p:UUID", "4dd132e6-7f88-4ee8-bfa1-c5b7abd52483"),
		),
	)
}
