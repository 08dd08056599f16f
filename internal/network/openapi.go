package network

import "github.com/JaimeStill/graph-vis/pkg/openapi"

type spec struct {
	Graph        *openapi.Operation
	Neighborhood *openapi.Operation
	Domains      *openapi.Operation
	Refresh      *openapi.Operation
	Schemas      map[string]*openapi.Schema
}

var Spec = spec{
	Graph: &openapi.Operation{
		Summary:     "Load network",
		Description: "Every node and edge of the co-occurrence network",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Network graph", "Graph"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	Neighborhood: &openapi.Operation{
		Summary:     "Load node neighborhood",
		Description: "A node with its incident edges and neighboring nodes",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Node ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Node neighborhood", "Neighborhood"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Domains: &openapi.Operation{
		Summary:     "Load domain pairs",
		Description: "Domain pairs keyed by node for every edge touching the requested nodes",
		RequestBody: openapi.RequestBodyJSON("BatchRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Domain pairs by node", "DomainMap"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Refresh: &openapi.Operation{
		Summary:     "Reload network",
		Description: "Drops the cached network and reloads it from the database",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Reloaded network size", "RefreshResult"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"RefreshResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"nodes": {Type: "integer"},
				"edges": {Type: "integer"},
			},
		},
		"Node": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                 {Type: "string"},
				"name":               {Type: "string"},
				"number_of_proteins": {Type: "integer"},
				"pfam_accession":     {Type: "string"},
				"x":                  {Type: "number"},
				"y":                  {Type: "number"},
			},
		},
		"Edge": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                 {Type: "string"},
				"name":               {Type: "string"},
				"source":             {Type: "string"},
				"target":             {Type: "string"},
				"number_of_proteins": {Type: "integer"},
				"presence_status":    {Type: "string"},
			},
		},
		"Graph": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"nodes": {Type: "array", Items: openapi.SchemaRef("Node")},
				"edges": {Type: "array", Items: openapi.SchemaRef("Edge")},
			},
		},
		"Neighborhood": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"node":      openapi.SchemaRef("Node"),
				"edges":     {Type: "array", Items: openapi.SchemaRef("Edge")},
				"neighbors": {Type: "array", Items: openapi.SchemaRef("Node")},
			},
		},
		"DomainPair": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"protein_id": {Type: "string"},
				"source":     {Type: "string", Description: "Source Pfam accession"},
				"target":     {Type: "string", Description: "Target Pfam accession"},
			},
		},
		"DomainMap": {
			Type:                 "object",
			AdditionalProperties: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("DomainPair")},
		},
		"BatchRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"ids": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
			Required: []string{"ids"},
		},
	},
}
