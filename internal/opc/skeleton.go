package opc

// Parts used when a models or rels folder has no skeleton of its own.
const (
	contentTypesName = "[Content_Types].xml"
	contentTypes     = `<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
    <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml" />
    <Default Extension="model" ContentType="application/vnd.ms-package.3dmanufacturing-3dmodel+xml" />
    <Default Extension="png" ContentType="image/png" />
</Types>
`

	rootRelsName = "_rels/.rels"
	rootRels     = `<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
    <Relationship Target="/3D/3dmodel.model" Id="rel0" Type="http://schemas.microsoft.com/3dmanufacturing/2013/01/3dmodel" />
</Relationships>
`
)

func defaultSkeleton() map[string][]byte {
	return map[string][]byte{
		contentTypesName: []byte(contentTypes),
		rootRelsName:     []byte(rootRels),
	}
}
