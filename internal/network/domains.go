package network

// Domains groups domain pairs by node id. Every endpoint of every edge gets
// an entry, possibly empty. An edge with proteins contributes one pair built
// from its first protein to its source and, unless it is a self loop, to its
// target.
func Domains(edges []EdgeDetail) map[string][]DomainPair {
	result := make(map[string][]DomainPair)

	for _, e := range edges {
		if _, ok := result[e.Source]; !ok {
			result[e.Source] = []DomainPair{}
		}
		if _, ok := result[e.Target]; !ok {
			result[e.Target] = []DomainPair{}
		}

		if len(e.ProteinIDs) == 0 {
			continue
		}

		pair := DomainPair{
			ProteinID: e.ProteinIDs[0],
			Source:    e.SourcePfamAccession,
			Target:    e.TargetPfamAccession,
		}

		result[e.Source] = append(result[e.Source], pair)
		if e.Target != e.Source {
			result[e.Target] = append(result[e.Target], pair)
		}
	}

	return result
}

// MergeProteinIDs flattens the protein ids of edges, dropping repeats and
// keeping first-seen order.
func MergeProteinIDs(edges []EdgeDetail) []string {
	seen := make(map[string]struct{})
	merged := make([]string, 0)

	for _, e := range edges {
		for _, id := range e.ProteinIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}

	return merged
}

// NeighborIDs returns the distinct endpoints of edges other than nodeID,
// in first-seen order.
func NeighborIDs(nodeID string, edges []Edge) []string {
	seen := map[string]struct{}{nodeID: {}}
	ids := make([]string, 0)

	for _, e := range edges {
		for _, id := range []string{e.Source, e.Target} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	return ids
}
