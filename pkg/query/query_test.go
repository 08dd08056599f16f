package query_test

import (
	"testing"

	"github.com/JaimeStill/graph-vis/pkg/query"
)

func edgeProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "edges", "e").
		Project("id", "ID").
		Project("source", "Source").
		Project("target", "Target")
}

func TestProjectionMap(t *testing.T) {
	pm := edgeProjection()

	if pm.Table() != "public.edges e" {
		t.Errorf("Table() = %q", pm.Table())
	}

	if pm.Columns() != "e.id, e.source, e.target" {
		t.Errorf("Columns() = %q", pm.Columns())
	}

	if pm.Column("Source") != "e.source" {
		t.Errorf("Column(Source) = %q", pm.Column("Source"))
	}

	if pm.Column("Unknown") != "Unknown" {
		t.Error("unknown field should be returned unchanged")
	}
}

func TestBuilder(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (string, []any)
		wantSQL  string
		wantArgs int
	}{
		{
			name: "select all with default sort",
			build: func() (string, []any) {
				return query.NewBuilder(edgeProjection(), "ID").BuildSelect()
			},
			wantSQL: "SELECT e.id, e.source, e.target FROM public.edges e ORDER BY e.id ASC",
		},
		{
			name: "select without sort",
			build: func() (string, []any) {
				return query.NewBuilder(edgeProjection()).BuildSelect()
			},
			wantSQL: "SELECT e.id, e.source, e.target FROM public.edges e",
		},
		{
			name: "where any",
			build: func() (string, []any) {
				return query.NewBuilder(edgeProjection(), "ID").
					WhereAny("PF1", "Source", "Target").
					BuildSelect()
			},
			wantSQL:  "SELECT e.id, e.source, e.target FROM public.edges e WHERE (e.source = $1 OR e.target = $2) ORDER BY e.id ASC",
			wantArgs: 2,
		},
		{
			name: "where any in",
			build: func() (string, []any) {
				return query.NewBuilder(edgeProjection()).
					WhereAnyIn([]any{"a", "b"}, "Source", "Target").
					BuildSelect()
			},
			wantSQL:  "SELECT e.id, e.source, e.target FROM public.edges e WHERE (e.source IN ($1, $2) OR e.target IN ($3, $4))",
			wantArgs: 4,
		},
		{
			name: "conditions combined",
			build: func() (string, []any) {
				return query.NewBuilder(edgeProjection(), "e.seq").
					WhereAny("a", "Source", "Target").
					WhereIn("Target", []any{"b", "c"}).
					BuildSelect()
			},
			wantSQL:  "SELECT e.id, e.source, e.target FROM public.edges e WHERE (e.source = $1 OR e.target = $2) AND e.target IN ($3, $4) ORDER BY e.seq ASC",
			wantArgs: 4,
		},
		{
			name: "nil and empty conditions ignored",
			build: func() (string, []any) {
				return query.NewBuilder(edgeProjection()).
					WhereAny(nil, "Source").
					WhereIn("Target", nil).
					WhereAnyIn(nil, "Source").
					BuildSelect()
			},
			wantSQL: "SELECT e.id, e.source, e.target FROM public.edges e",
		},
		{
			name: "single",
			build: func() (string, []any) {
				return query.NewBuilder(edgeProjection()).BuildSingle("ID", "e1")
			},
			wantSQL:  "SELECT e.id, e.source, e.target FROM public.edges e WHERE e.id = $1",
			wantArgs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.build()

			if sql != tt.wantSQL {
				t.Errorf("sql =\n%s\nwant\n%s", sql, tt.wantSQL)
			}

			if len(args) != tt.wantArgs {
				t.Errorf("len(args) = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}
