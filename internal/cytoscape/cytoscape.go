// Package cytoscape reads Cytoscape JSON (.cyjs) network exports into the
// node and edge records served by the network package.
package cytoscape

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/JaimeStill/graph-vis/internal/network"
	"github.com/JaimeStill/graph-vis/pkg/decode"
)

const schemaURL = "file:///schema/network.schema.json"

//go:embed schema/network.schema.json
var schemaSource []byte

var (
	ErrInvalidDocument = errors.New("invalid cytoscape document")
	ErrInvalidPfamPair = errors.New("pfam_accession must name two domains separated by a comma")
)

var (
	once      sync.Once
	schema    *jsonschema.Schema
	schemaErr error
)

func loadSchema() {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaSource)); err != nil {
		schemaErr = err
		return
	}
	schema, schemaErr = c.Compile(schemaURL)
}

// Document is a parsed network ready for import. Nodes and edges keep
// the order of the export.
type Document struct {
	Nodes []network.Node
	Edges []network.EdgeDetail
}

type export struct {
	Elements struct {
		Nodes []nodeElement `json:"nodes"`
		Edges []edgeElement `json:"edges"`
	} `json:"elements"`
}

type nodeElement struct {
	Data     network.Node `json:"data"`
	Position struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"position"`
}

type edgeElement struct {
	Data struct {
		network.Edge
		PfamAccession string `json:"pfam_accession"`
	} `json:"data"`
}

// Parse validates data against the export schema and converts it. Node
// positions are flattened onto the node, each edge's "A,B" accession is
// split into its source and target domains, and the proteins of the
// domain pair are looked up in proteinMap under the same "A,B" key.
func Parse(data []byte, proteinMap map[string][]string) (*Document, error) {
	once.Do(loadSchema)
	if schemaErr != nil {
		return nil, fmt.Errorf("compile network schema: %w", schemaErr)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	exp, err := decode.FromMap[export](raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	doc := &Document{
		Nodes: make([]network.Node, 0, len(exp.Elements.Nodes)),
		Edges: make([]network.EdgeDetail, 0, len(exp.Elements.Edges)),
	}

	for _, n := range exp.Elements.Nodes {
		node := n.Data
		node.X = n.Position.X
		node.Y = n.Position.Y
		doc.Nodes = append(doc.Nodes, node)
	}

	for _, e := range exp.Elements.Edges {
		source, target, ok := strings.Cut(e.Data.PfamAccession, ",")
		if !ok || source == "" || target == "" || strings.Contains(target, ",") {
			return nil, fmt.Errorf("edge %s: %w", e.Data.ID, ErrInvalidPfamPair)
		}

		proteins := proteinMap[PairKey(source, target)]
		if proteins == nil {
			proteins = []string{}
		}

		doc.Edges = append(doc.Edges, network.EdgeDetail{
			Edge:                e.Data.Edge,
			SourcePfamAccession: source,
			TargetPfamAccession: target,
			ProteinIDs:          proteins,
		})
	}

	return doc, nil
}

// PairKey is the protein map key of a domain pair.
func PairKey(source, target string) string {
	return source + "," + target
}

// ParseProteinMap reads the domain pair to protein ids map.
func ParseProteinMap(data []byte) (map[string][]string, error) {
	var m map[string][]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse protein map: %w", err)
	}
	if m == nil {
		m = map[string][]string{}
	}
	return m, nil
}
