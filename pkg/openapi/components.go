package openapi

// Components holds reusable schema and response definitions.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// NewComponents returns the shared error envelope schema, the pagination
// request schema and the standard error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type: "object",
				Properties: map[string]*Schema{
					"status":  {Type: "string", Enum: []string{"error"}},
					"message": {Type: "string"},
				},
				Required: []string{"status", "message"},
			},
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"pageNum":  {Type: "integer", Description: "1-based page number", Example: 1},
					"pageSize": {Type: "integer", Description: "Items per page", Example: 10},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":    errorResponse("Invalid request"),
			"NotFound":      errorResponse("Resource not found"),
			"Conflict":      errorResponse("Resource conflict"),
			"TooLarge":      errorResponse("Resource exceeds the size limit"),
			"InternalError": errorResponse("Unexpected server error"),
		},
	}
}

// AddSchemas merges schemas into the components. Existing names are replaced.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

func (c *Components) AddResponses(responses map[string]*Response) {
	for name, resp := range responses {
		c.Responses[name] = resp
	}
}

func errorResponse(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef("Error")},
		},
	}
}
