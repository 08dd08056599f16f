package network

import "github.com/JaimeStill/graph-vis/pkg/query"

// Rows are returned in import order.
const (
	nodeOrder = "n.seq"
	edgeOrder = "e.seq"
)

var nodeProjection = query.NewProjectionMap("public", "nodes", "n").
	Project("id", "ID").
	Project("name", "Name").
	Project("number_of_proteins", "NumberOfProteins").
	Project("pfam_accession", "PfamAccession").
	Project("x", "X").
	Project("y", "Y")

var edgeProjection = query.NewProjectionMap("public", "edges", "e").
	Project("id", "ID").
	Project("name", "Name").
	Project("source", "Source").
	Project("target", "Target").
	Project("number_of_proteins", "NumberOfProteins").
	Project("presence_status", "PresenceStatus")

var edgeDetailProjection = query.NewProjectionMap("public", "edges", "e").
	Project("id", "ID").
	Project("name", "Name").
	Project("source", "Source").
	Project("target", "Target").
	Project("number_of_proteins", "NumberOfProteins").
	Project("presence_status", "PresenceStatus").
	Project("source_pfam_accession", "SourcePfamAccession").
	Project("target_pfam_accession", "TargetPfamAccession").
	Project("protein_ids", "ProteinIDs")
