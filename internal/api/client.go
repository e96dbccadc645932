package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/modelgrid/modelgrid/internal/domain/model"
	apperrors "github.com/modelgrid/modelgrid/internal/errors"
)

// maxErrorBodyBytes caps how much of an upstream error body is drained.
const maxErrorBodyBytes = 4 << 10

// Client fetches model schemas and record pages from an upstream REST
// layer. Endpoints follow the generic model API convention:
//
//	GET {base}/api/{app}/{model}/schema/          → Schema
//	GET {base}/api/{app}/{model}/?limit=&offset=  → Page
//
// The client owns no retry or backoff; a failed fetch surfaces as an
// unavailable result and recovery is the caller's next render.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// ClientOptions configures a Client.
type ClientOptions struct {
	// BaseURL is the upstream root, without the /api suffix.
	BaseURL string
	// Token, when set, is sent as "Authorization: Token <value>". The
	// client only forwards it; it implements no auth flow of its own.
	Token string
	// Timeout bounds each request. Zero means 10s.
	Timeout time.Duration
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// NewClient constructs a Client.
func NewClient(opts ClientOptions) *Client {
	httpc := opts.HTTPClient
	if httpc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.Token,
		httpc:   httpc,
	}
}

// GetSchema fetches the model's field schema.
func (c *Client) GetSchema(ctx context.Context, id model.RouteIdentity) (model.Schema, error) {
	var schema model.Schema
	endpoint := fmt.Sprintf("%s/api/%s/%s/schema/", c.baseURL, url.PathEscape(id.AppName), url.PathEscape(id.ModelName))
	if err := c.getJSON(ctx, endpoint, &schema); err != nil {
		return model.Schema{}, fmt.Errorf("get schema %s: %w", id, err)
	}
	return schema, nil
}

// ListRecords fetches one page of records. Zero query values are omitted
// from the URL so the upstream applies its own defaults.
func (c *Client) ListRecords(ctx context.Context, id model.RouteIdentity, pq model.PageQuery) (model.Page, error) {
	endpoint := fmt.Sprintf("%s/api/%s/%s/", c.baseURL, url.PathEscape(id.AppName), url.PathEscape(id.ModelName))
	q := url.Values{}
	if pq.Limit > 0 {
		q.Set("limit", strconv.Itoa(pq.Limit))
	}
	if pq.Offset > 0 {
		q.Set("offset", strconv.Itoa(pq.Offset))
	}
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var page model.Page
	if err := c.getJSON(ctx, endpoint, &page); err != nil {
		return model.Page{}, fmt.Errorf("list records %s: %w", id, err)
	}
	if page.Results == nil {
		page.Results = []model.Record{}
	}
	return page, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return apperrors.MapUpstreamError(err)
	}
	defer resp.Body.Close() //nolint:errcheck // nothing useful to do with a close error on a read path

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain a bounded amount so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, maxErrorBodyBytes)
		return apperrors.FromStatusCode(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "decode data service response")
	}
	return nil
}
