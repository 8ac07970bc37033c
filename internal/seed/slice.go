package seed

import (
	"fmt"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/element"
)

func sliceModel(b builder, stack *element.Node) *element.Node {
	return b.model("xmlns:s", element.NamespaceSlice, "xml:lang", "en-US", "unit", "millimeter",
		"requiredextensions", "s").Append(
		b.el(element.KindResources).Append(
			stack,
			b.el(element.KindObject, "id", "2", "s:slicestackid", "1", "s:meshresolution", "lowres").
				Append(b.mesh(cubeVertices, cubeTriangles)),
		),
		b.el(element.KindBuild).Append(b.el(element.KindItem, "objectid", "2")),
	)
}

// sliceInternal stores a stack of rectangular slices in the model part.
func sliceInternal() *element.Node {
	b := builder{ext: element.ExtSlice}
	stack := b.el(element.KindSliceStack, "id", "1", "zbottom", "0")
	for step := 8; step < 100; step += 8 {
		vertices := b.el(element.KindSliceVertices)
		for _, xy := range [][2]string{
			{"0.000", "0.000"},
			{"10.103", "0.000"},
			{"10.103", "20.207"},
			{"0.000", "20.207"},
		} {
			vertices.Append(b.el(element.KindSliceVertex, "x", xy[0], "y", xy[1]))
		}
		polygon := b.el(element.KindPolygon, "startv", "0")
		for _, v2 := range []string{"1", "2", "3", "0"} {
			polygon.Append(b.el(element.KindSegment, "v2", v2))
		}
		stack.Append(b.el(element.KindSlice, "ztop", fmt.Sprintf("%.3f", float64(step)/100)).
			Append(vertices, polygon))
	}
	stack.Append(b.el(element.KindSlice, "ztop", "1.040"))
	return sliceModel(b, stack)
}

// sliceExternal points its stack at a slice model in another part.
func sliceExternal() *element.Node {
	b := builder{ext: element.ExtSlice}
	stack := b.el(element.KindSliceStack, "id", "1", "zbottom", "0").Append(
		b.el(element.KindSliceRef, "slicestackid", "1", "slicepath", "/2D/slice.model"),
	)
	return sliceModel(b, stack)
}
