// Package artifacts serves per-protein files rendered outside the service:
// gene cluster SVGs, predicted structures (PDB) and GenBank records.
package artifacts

import "github.com/JaimeStill/graph-vis/pkg/pagination"

// Kind names an artifact family. Each kind lives in its own store.
type Kind string

const (
	KindSVG Kind = "svg"
	KindPDB Kind = "pdb"
	KindGBK Kind = "gbk"
)

var extensions = map[Kind]string{
	KindSVG: ".svg",
	KindPDB: ".pdb",
	KindGBK: ".gb",
}

// Kinds lists every supported artifact kind.
func Kinds() []Kind {
	return []Kind{KindSVG, KindPDB, KindGBK}
}

// FileName returns the stored file name of id for kind.
func (k Kind) FileName(id string) string {
	return id + extensions[k]
}

func (k Kind) Valid() bool {
	_, ok := extensions[k]
	return ok
}

// SVGPage is one page of the SVG diagrams for the proteins of a node.
// Total counts every protein of the node; ProteinIDs and SVGs only cover
// the proteins on this page that have a diagram.
type SVGPage struct {
	Total      int      `json:"total"`
	PageNum    int      `json:"pageNum"`
	PageSize   int      `json:"pageSize"`
	ProteinIDs []string `json:"proteinIds"`
	SVGs       []string `json:"svgs"`
}

func newSVGPage(total int, req pagination.PageRequest) *SVGPage {
	return &SVGPage{
		Total:      total,
		PageNum:    req.PageNum,
		PageSize:   req.PageSize,
		ProteinIDs: []string{},
		SVGs:       []string{},
	}
}
