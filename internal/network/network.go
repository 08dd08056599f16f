// Package network serves the protein domain co-occurrence graph: the whole
// network, single-node neighborhoods and per-node domain pairs.
package network

// Node is a Pfam domain positioned in the network layout.
type Node struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	NumberOfProteins int     `json:"number_of_proteins"`
	PfamAccession    string  `json:"pfam_accession"`
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
}

// Edge is a co-occurrence between two domains.
type Edge struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Source           string `json:"source"`
	Target           string `json:"target"`
	NumberOfProteins int    `json:"number_of_proteins"`
	PresenceStatus   string `json:"presence_status"`
}

// EdgeDetail carries the accession pair and supporting proteins of an edge.
type EdgeDetail struct {
	Edge
	SourcePfamAccession string   `json:"source_pfam_accession"`
	TargetPfamAccession string   `json:"target_pfam_accession"`
	ProteinIDs          []string `json:"protein_ids"`
}

// Graph is the whole network in import order.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Neighborhood is a node with its incident edges and adjacent nodes.
type Neighborhood struct {
	Node      Node   `json:"node"`
	Edges     []Edge `json:"edges"`
	Neighbors []Node `json:"neighbors"`
}

// DomainPair names the accession pair of an edge and one protein carrying it.
type DomainPair struct {
	ProteinID string `json:"protein_id"`
	Source    string `json:"source"`
	Target    string `json:"target"`
}

// RefreshResult reports the size of a reloaded graph.
type RefreshResult struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// BatchRequest is the body of a domain batch lookup.
type BatchRequest struct {
	IDs []string `json:"ids"`
}
