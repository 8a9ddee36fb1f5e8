// Package osv queries the osv.dev API for advisories affecting a single package.
package osv

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"golang.org/x/xerrors"

	"github.com/aquasecurity/vulntrix/pkg/ecosystem"
	"github.com/aquasecurity/vulntrix/pkg/types"
)

const (
	DefaultBaseURL = "https://api.osv.dev"
	QueryEndpoint  = "/v1/query"

	DefaultTimeout = 5000 * time.Millisecond
)

// Query identifies the package to look up. An empty Version asks for every
// advisory of the package.
type Query struct {
	Package   string
	Ecosystem ecosystem.Type
	Version   string
}

type queryPackage struct {
	Name      string `json:"name"`
	Ecosystem string `json:"ecosystem"`
}

// request is the /v1/query body. OSV rejects "version": null, so the key is
// omitted when no version filter is given.
type request struct {
	Package queryPackage `json:"package"`
	Version string       `json:"version,omitempty"`
}

func newRequest(q Query) request {
	return request{
		Package: queryPackage{
			Name:      q.Package,
			Ecosystem: q.Ecosystem.WireName(),
		},
		Version: q.Version,
	}
}

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
}

// NewClient returns a client whose timeout bounds the full round trip.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		BaseURL:    DefaultBaseURL,
	}
}

// Query performs exactly one POST to /v1/query. There are no retries.
func (c *Client) Query(ctx context.Context, q Query) (types.Response, error) {
	body, err := json.Marshal(newRequest(q))
	if err != nil {
		return types.Response{}, xerrors.Errorf("failed to marshal the OSV query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+QueryEndpoint, bytes.NewReader(body))
	if err != nil {
		return types.Response{}, xerrors.Errorf("failed to build the OSV request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return types.Response{}, &TransportError{Op: opRequest, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Response{}, &TransportError{Op: opReadBody, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return types.Response{}, &ServiceError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(respBody),
		}
	}

	var osvResp types.Response
	if err = json.Unmarshal(respBody, &osvResp); err != nil {
		return types.Response{}, &DecodeError{Err: err}
	}
	return osvResp, nil
}
