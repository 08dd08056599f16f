// Package scalar serves the Scalar API reference page for the graph API.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/graph-vis/pkg/module"
	"github.com/JaimeStill/graph-vis/pkg/web"
)

//go:embed index.html
var indexHTML string

var index = template.Must(template.New("index").Parse(indexHTML))

// NewModule builds the reference page module mounted at basePath. specURL
// is the address of the OpenAPI document the page loads.
func NewModule(basePath, title, specURL string) (*module.Module, error) {
	var buf bytes.Buffer
	err := index.Execute(&buf, struct {
		Title   string
		SpecURL string
	}{title, specURL})
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", web.ServeEmbeddedFile(buf.Bytes(), "text/html; charset=utf-8"))

	return module.New(basePath, mux), nil
}
