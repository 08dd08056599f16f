// Package client is a typed client for the graph API built on the shared
// httpclient instance. It unwraps the response envelope and reports API
// failures as *APIError.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/JaimeStill/graph-vis/internal/artifacts"
	"github.com/JaimeStill/graph-vis/internal/network"
	"github.com/JaimeStill/graph-vis/pkg/httpclient"
	"github.com/JaimeStill/graph-vis/pkg/pagination"
)

// APIError is a failure reported by the API in an error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type Client struct {
	http *httpclient.Client
}

func New(http *httpclient.Client) *Client {
	return &Client{http: http}
}

// Graph returns the whole network.
func (c *Client) Graph(ctx context.Context) (*network.Graph, error) {
	var g network.Graph
	if err := c.get(ctx, "/load_data", nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Neighborhood returns a node with its edges and neighbors.
func (c *Client) Neighborhood(ctx context.Context, nodeID string) (*network.Neighborhood, error) {
	var n network.Neighborhood
	if err := c.get(ctx, "/load_data/"+url.PathEscape(nodeID), nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// Refresh makes the server reload the network and reports its new size.
func (c *Client) Refresh(ctx context.Context) (*network.RefreshResult, error) {
	var env envelope
	if err := c.call(c.http.PostJSON(ctx, "/load_data/refresh", nil, &env)); err != nil {
		return nil, err
	}

	var r network.RefreshResult
	if err := unwrap(env, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Domains returns the domain pairs of every node touched by ids.
func (c *Client) Domains(ctx context.Context, ids []string) (map[string][]network.DomainPair, error) {
	var env envelope
	if err := c.call(c.http.PostJSON(ctx, "/load_data/batch", network.BatchRequest{IDs: ids}, &env)); err != nil {
		return nil, err
	}

	var domains map[string][]network.DomainPair
	if err := unwrap(env, &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// Sequence returns the amino acid sequence of a protein.
func (c *Client) Sequence(ctx context.Context, id string) (string, error) {
	var seq string
	err := c.get(ctx, "/sequence", url.Values{"id": {id}}, &seq)
	return seq, err
}

// Repeats returns the raw repeat document of a protein, or nil when the
// protein has none.
func (c *Client) Repeats(ctx context.Context, id string) (json.RawMessage, error) {
	var env envelope
	if err := c.call(c.http.GetJSON(ctx, "/repeat", url.Values{"id": {id}}, &env)); err != nil {
		return nil, err
	}
	if err := unwrap(env, nil); err != nil {
		return nil, err
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}
	return env.Data, nil
}

// Artifact returns the contents of a protein's svg, pdb or gbk file.
func (c *Client) Artifact(ctx context.Context, kind artifacts.Kind, id string) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %s", artifacts.ErrUnknownKind, kind)
	}

	var content string
	err := c.get(ctx, "/"+string(kind), url.Values{"id": {id}}, &content)
	return content, err
}

// SVGPage returns one page of the SVG diagrams for a node's proteins.
func (c *Client) SVGPage(ctx context.Context, nodeID string, page pagination.PageRequest) (*artifacts.SVGPage, error) {
	query := url.Values{"id": {nodeID}}
	if page.PageNum > 0 {
		query.Set("pageNum", strconv.Itoa(page.PageNum))
	}
	if page.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(page.PageSize))
	}

	var p artifacts.SVGPage
	if err := c.get(ctx, "/svg/page", query, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	var env envelope
	if err := c.call(c.http.GetJSON(ctx, path, query, &env)); err != nil {
		return err
	}
	return unwrap(env, out)
}

// call converts a non-2xx StatusError carrying an error envelope into an APIError.
func (c *Client) call(err error) error {
	var se *httpclient.StatusError
	if !errors.As(err, &se) {
		return err
	}

	var env envelope
	if json.Unmarshal(se.Body, &env) == nil && env.Status == "error" {
		return &APIError{StatusCode: se.StatusCode, Message: env.Message}
	}
	return err
}

func unwrap(env envelope, out any) error {
	if env.Status == "error" {
		return &APIError{Message: env.Message}
	}
	if env.Status != "success" {
		return fmt.Errorf("unexpected response status %q", env.Status)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
