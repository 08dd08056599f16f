package artifacts

import "github.com/JaimeStill/graph-vis/pkg/openapi"

type spec struct {
	SVG     *openapi.Operation
	Page    *openapi.Operation
	PDB     *openapi.Operation
	GBK     *openapi.Operation
	Schemas map[string]*openapi.Schema
}

func fileOperation(summary, description string) *openapi.Operation {
	return &openapi.Operation{
		Summary:     summary,
		Description: description,
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("id", "string", "Protein ID", true),
		},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "File contents",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: openapi.Envelope(&openapi.Schema{Type: "string"})},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			413: openapi.ResponseRef("TooLarge"),
		},
	}
}

var Spec = spec{
	SVG: fileOperation("Get gene cluster SVG", "Gene cluster diagram of a protein"),
	PDB: fileOperation("Get PDB structure", "Predicted structure of a protein"),
	GBK: fileOperation("Get GenBank record", "GenBank record of a protein"),
	Page: &openapi.Operation{
		Summary:     "Page node SVGs",
		Description: "Gene cluster diagrams for a page of the proteins supporting a node",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("id", "string", "Node ID", true),
			openapi.QueryParam("pageNum", "integer", "1-based page number (default 1)", false),
			openapi.QueryParam("pageSize", "integer", "Items per page (default 10)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("SVG page", "SVGPage"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"SVGPage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"total":      {Type: "integer", Description: "Proteins supporting the node"},
				"pageNum":    {Type: "integer"},
				"pageSize":   {Type: "integer"},
				"proteinIds": {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"svgs":       {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
	},
}
