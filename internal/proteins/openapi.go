package proteins

import "github.com/JaimeStill/graph-vis/pkg/openapi"

type spec struct {
	Sequence *openapi.Operation
	Repeats  *openapi.Operation
	Schemas  map[string]*openapi.Schema
}

var Spec = spec{
	Sequence: &openapi.Operation{
		Summary: "Get protein sequence",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("id", "string", "Protein ID", true),
		},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Amino acid sequence",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: openapi.Envelope(&openapi.Schema{Type: "string"})},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Repeats: &openapi.Operation{
		Summary:     "Get protein repeats",
		Description: "Repeat summary of a protein; data is null when none was recorded",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("id", "string", "Protein ID", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Repeat summary", "Repeat"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"RepeatItem": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"position": {Type: "integer"},
				"repeat":   {Type: "string"},
				"spacer":   {Type: "string"},
			},
		},
		"Repeat": {
			Type:     "object",
			Nullable: true,
			Properties: map[string]*openapi.Schema{
				"name":           {Type: "string"},
				"items":          {Type: "array", Items: openapi.SchemaRef("RepeatItem")},
				"repeat_count":   {Type: "integer"},
				"avg_repeat_len": {Type: "number"},
				"avg_spacer_len": {Type: "number"},
			},
		},
	},
}
