// Package restapi implements the repository ports against the resale REST backend.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/middleware"
	"github.com/SscSPs/resale_backoffice/internal/platform/metrics"
	"github.com/SscSPs/resale_backoffice/internal/utils/daterange"
)

// maxPages bounds how many "next" links a single list call follows.
const maxPages = 200

// Client performs authenticated JSON calls against the backend. The caller's
// bearer token is taken from the request context.
type Client struct {
	baseURL    string
	origin     *url.URL
	httpClient *http.Client
	now        func() time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithClock replaces the clock used to resolve month-only date filters.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a client for the backend rooted at baseURL (e.g. http://host/api).
func NewClient(baseURL string, timeout time.Duration, opts ...ClientOption) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid upstream base url %q", baseURL)
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		origin:     parsed,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// get decodes the JSON response of GET path into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any, fallback string) error {
	raw, err := c.send(ctx, http.MethodGet, c.endpoint(path, query), path, nil, fallback)
	if err != nil {
		return err
	}
	return decode(raw, out, path)
}

// post sends body to path and, when out is non-nil, decodes the response into it.
func (c *Client) post(ctx context.Context, path string, body, out any, fallback string) error {
	return c.write(ctx, http.MethodPost, path, body, out, fallback)
}

func (c *Client) put(ctx context.Context, path string, body, out any, fallback string) error {
	return c.write(ctx, http.MethodPut, path, body, out, fallback)
}

func (c *Client) delete(ctx context.Context, path string, fallback string) error {
	_, err := c.send(ctx, http.MethodDelete, c.endpoint(path, nil), path, nil, fallback)
	return err
}

func (c *Client) write(ctx context.Context, method, path string, body, out any, fallback string) error {
	raw, err := c.send(ctx, method, c.endpoint(path, nil), path, body, fallback)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(raw, out, path)
}

// listEnvelope is the paginated shape some collections come back in.
type listEnvelope[T any] struct {
	Results []T     `json:"results"`
	Next    *string `json:"next"`
}

// getList fetches a collection. Bare arrays and {results, next} envelopes decode
// the same way; "next" links are followed until exhausted.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values, fallback string) ([]T, error) {
	items := make([]T, 0)
	target := c.endpoint(path, query)
	seen := make(map[string]bool)

	for page := 0; target != "" && page < maxPages; page++ {
		if seen[target] {
			break
		}
		seen[target] = true

		raw, err := c.send(ctx, http.MethodGet, target, path, nil, fallback)
		if err != nil {
			return nil, err
		}

		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			break
		}
		if trimmed[0] == '[' {
			var arr []T
			if err := json.Unmarshal(trimmed, &arr); err != nil {
				return nil, fmt.Errorf("failed to decode %s list: %w", path, err)
			}
			items = append(items, arr...)
			break
		}

		var env listEnvelope[T]
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("failed to decode %s list: %w", path, err)
		}
		items = append(items, env.Results...)
		target = ""
		if env.Next != nil && *env.Next != "" {
			next, err := c.followable(*env.Next)
			if err != nil {
				middleware.GetLoggerFromCtx(ctx).Warn("Refusing list page link",
					slog.String("path", path), slog.String("next", *env.Next))
				return nil, fmt.Errorf("failed to follow %s list: %w", path, err)
			}
			target = next
		}
	}
	return items, nil
}

// followable resolves a "next" link against the backend and accepts it only
// when it points at the backend's own scheme and host.
func (c *Client) followable(link string) (string, error) {
	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("invalid next link %q: %w", link, err)
	}
	resolved := c.origin.ResolveReference(ref)
	if !strings.EqualFold(resolved.Scheme, c.origin.Scheme) || !strings.EqualFold(resolved.Host, c.origin.Host) {
		return "", fmt.Errorf("next link %q leaves %s://%s", link, c.origin.Scheme, c.origin.Host)
	}
	return resolved.String(), nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// send performs one request and returns the response body of a 2xx answer.
func (c *Client) send(ctx context.Context, method, target, path string, body any, fallback string) ([]byte, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	resource := resourceOf(path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := middleware.GetBearerTokenFromCtx(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(method, resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, resource, "error").Inc()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Error("Upstream call failed", slog.String("method", method), slog.String("path", path), slog.String("error", err.Error()))
		return nil, &apperrors.UpstreamError{Message: fallback, Err: err}
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestsTotal.WithLabelValues(method, resource, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &apperrors.UpstreamError{Status: resp.StatusCode, Message: fallback, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		upErr := &apperrors.UpstreamError{Status: resp.StatusCode, Message: ExtractMessage(raw, fallback)}
		if resp.StatusCode == http.StatusNotFound {
			upErr.Err = apperrors.ErrNotFound
		}
		logger.Warn("Upstream rejected call",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", upErr.Message))
		return nil, upErr
	}
	return raw, nil
}

// ExtractMessage picks the operator-facing message out of an error body: the
// "error" field, then "detail", then the first "non_field_errors" entry, then the
// first element of a top-level array, otherwise fallback.
func ExtractMessage(body []byte, fallback string) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return fallback
	}

	if trimmed[0] == '[' {
		var arr []json.RawMessage
		if err := json.Unmarshal(trimmed, &arr); err == nil && len(arr) > 0 {
			if msg := asText(arr[0]); msg != "" {
				return msg
			}
		}
		return fallback
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return fallback
	}
	for _, key := range []string{"error", "detail"} {
		if msg := asText(obj[key]); msg != "" {
			return msg
		}
	}
	if raw, ok := obj["non_field_errors"]; ok {
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
			if msg := asText(list[0]); msg != "" {
				return msg
			}
		}
	}
	return fallback
}

// asText renders a JSON string as itself and any other scalar as its JSON text.
func asText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if raw[0] == '{' || raw[0] == '[' {
		return ""
	}
	return string(raw)
}

func decode(raw []byte, out any, path string) error {
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// resourceOf returns the collection name of a path, used as a metric label.
func resourceOf(path string) string {
	trimmed := strings.Trim(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	if trimmed == "" {
		return "root"
	}
	return trimmed
}

// itemPath builds "/collection/{id}/suffix" paths.
func itemPath(collection string, id int64, suffix ...string) string {
	p := "/" + collection + "/" + strconv.FormatInt(id, 10) + "/"
	for _, s := range suffix {
		p += s + "/"
	}
	return p
}

// dateQuery adds date_from/date_to for the year/month selectors.
func (c *Client) dateQuery(q url.Values, year, month int) error {
	if err := daterange.Apply(q, year, month, c.now()); err != nil {
		return apperrors.NewValidationError("%s", err.Error())
	}
	return nil
}
