package network_test

import (
	"reflect"
	"testing"

	"github.com/JaimeStill/graph-vis/internal/network"
)

func detail(source, target, sourcePfam, targetPfam string, proteins ...string) network.EdgeDetail {
	return network.EdgeDetail{
		Edge:                network.Edge{ID: source + "-" + target, Source: source, Target: target},
		SourcePfamAccession: sourcePfam,
		TargetPfamAccession: targetPfam,
		ProteinIDs:          proteins,
	}
}

func TestDomains(t *testing.T) {
	tests := []struct {
		name  string
		edges []network.EdgeDetail
		want  map[string][]network.DomainPair
	}{
		{
			name:  "no edges",
			edges: nil,
			want:  map[string][]network.DomainPair{},
		},
		{
			name:  "edge without proteins keeps empty entries",
			edges: []network.EdgeDetail{detail("a", "b", "PF1", "PF2")},
			want: map[string][]network.DomainPair{
				"a": {},
				"b": {},
			},
		},
		{
			name:  "first protein only, both endpoints",
			edges: []network.EdgeDetail{detail("a", "b", "PF1", "PF2", "P1", "P2")},
			want: map[string][]network.DomainPair{
				"a": {{ProteinID: "P1", Source: "PF1", Target: "PF2"}},
				"b": {{ProteinID: "P1", Source: "PF1", Target: "PF2"}},
			},
		},
		{
			name:  "self loop added once",
			edges: []network.EdgeDetail{detail("a", "a", "PF1", "PF1", "P9")},
			want: map[string][]network.DomainPair{
				"a": {{ProteinID: "P9", Source: "PF1", Target: "PF1"}},
			},
		},
		{
			name: "pairs accumulate per node in edge order",
			edges: []network.EdgeDetail{
				detail("a", "b", "PF1", "PF2", "P1"),
				detail("c", "a", "PF3", "PF1", "P3"),
			},
			want: map[string][]network.DomainPair{
				"a": {
					{ProteinID: "P1", Source: "PF1", Target: "PF2"},
					{ProteinID: "P3", Source: "PF3", Target: "PF1"},
				},
				"b": {{ProteinID: "P1", Source: "PF1", Target: "PF2"}},
				"c": {{ProteinID: "P3", Source: "PF3", Target: "PF1"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := network.Domains(tt.edges)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Domains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeProteinIDs(t *testing.T) {
	edges := []network.EdgeDetail{
		detail("a", "b", "", "", "P2", "P1"),
		detail("a", "c", "", "", "P1", "P3"),
		detail("d", "a", "", ""),
		detail("a", "e", "", "", "P4", "P2"),
	}

	got := network.MergeProteinIDs(edges)
	want := []string{"P2", "P1", "P3", "P4"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeProteinIDs() = %v, want %v", got, want)
	}

	if empty := network.MergeProteinIDs(nil); empty == nil || len(empty) != 0 {
		t.Errorf("MergeProteinIDs(nil) = %#v, want empty slice", empty)
	}
}

func TestNeighborIDs(t *testing.T) {
	edges := []network.Edge{
		{Source: "a", Target: "b"},
		{Source: "c", Target: "a"},
		{Source: "a", Target: "a"},
		{Source: "b", Target: "a"},
	}

	got := network.NeighborIDs("a", edges)
	want := []string{"b", "c"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("NeighborIDs() = %v, want %v", got, want)
	}
}
