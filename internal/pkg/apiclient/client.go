// Package apiclient talks to the remote SPBU REST API.
//
// Every call carries the caller's bearer token, taken from the request
// context. Successful responses are unwrapped from their {"data": ...}
// envelope; failures surface as *Error with the server's message.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Encoding selects how a request body is serialised.
type Encoding int

const (
	JSON Encoding = iota
	Form
)

type tokenKey struct{}

// WithToken returns a context whose upstream calls authenticate with token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token stored by WithToken.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

type Client struct {
	baseURL string
	apiPath string
	timeout time.Duration
	base    http.RoundTripper
}

// New builds a client for baseURL, e.g. "http://host/api/v1". apiPath is the
// suffix of baseURL that is stripped when resolving media paths.
func New(baseURL, apiPath string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiPath: apiPath,
		timeout: timeout,
		base:    http.DefaultTransport,
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) httpClient(ctx context.Context) *http.Client {
	token := TokenFromContext(ctx)
	if token == "" {
		return &http.Client{Timeout: c.timeout, Transport: c.base}
	}
	return &http.Client{
		Timeout: c.timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.base,
		},
	}
}

// Get fetches path and decodes the unwrapped payload into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, JSON, out)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}, enc Encoding, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, enc, out)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}, enc Encoding, out interface{}) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, enc, out)
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, JSON, out)
}

// Do performs one request and decodes the unwrapped payload into out, which
// may be nil when the caller does not need the body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body interface{}, enc Encoding, out interface{}) error {
	raw, err := c.Raw(ctx, method, path, query, body, enc)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	payload := Unwrap(raw)
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, method, path, err)
	}
	return nil
}

// Raw performs one request and returns the undecoded body of a 2xx response.
func (c *Client) Raw(ctx context.Context, method, path string, query url.Values, body interface{}, enc Encoding) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, query, body, enc)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient(ctx).Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %v", ErrUnavailable, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}
	return data, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}, enc Encoding) (*http.Request, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		switch enc {
		case Form:
			reader = strings.NewReader(FormValues(body).Encode())
			contentType = "application/x-www-form-urlencoded"
		default:
			b, err := json.Marshal(body)
			if err != nil {
				return nil, fmt.Errorf("encode request body: %w", err)
			}
			reader = bytes.NewReader(b)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// FormValues flattens a request body into form fields. Maps are converted
// key by key; nil values are left out.
func FormValues(body interface{}) url.Values {
	switch b := body.(type) {
	case url.Values:
		return b
	case map[string]string:
		v := url.Values{}
		for k, s := range b {
			v.Set(k, s)
		}
		return v
	case map[string]interface{}:
		v := url.Values{}
		keys := make([]string, 0, len(b))
		for k := range b {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch x := b[k].(type) {
			case nil:
			case string:
				v.Set(k, x)
			case []string:
				for _, s := range x {
					v.Add(k, s)
				}
			case json.Number:
				v.Set(k, x.String())
			case float64:
				v.Set(k, strconv.FormatFloat(x, 'f', -1, 64))
			case fmt.Stringer:
				v.Set(k, x.String())
			default:
				v.Set(k, fmt.Sprint(x))
			}
		}
		return v
	default:
		// Structs go through their JSON field names.
		m := map[string]interface{}{}
		b2, err := json.Marshal(body)
		if err != nil {
			return url.Values{}
		}
		dec := json.NewDecoder(bytes.NewReader(b2))
		dec.UseNumber()
		if err := dec.Decode(&m); err != nil {
			return url.Values{}
		}
		return FormValues(m)
	}
}

// Unwrap returns the "data" member of an envelope, or raw unchanged when the
// body is not an envelope.
func Unwrap(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return trimmed
	}
	if data, ok := envelope["data"]; ok {
		return data
	}
	return trimmed
}

func errorMessage(status int, body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := flattenMessage(payload.Message); msg != "" {
			return msg
		}
		if msg := flattenMessage(payload.Error); msg != "" {
			return msg
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

// flattenMessage accepts a string or a list of strings.
func flattenMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}
	return ""
}

// ResolvePhotoURL turns a media path returned by the API into an absolute URL.
// Absolute URLs pass through; relative paths are served from the API host.
func (c *Client) ResolvePhotoURL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	origin := c.baseURL
	if c.apiPath != "" {
		origin = strings.Replace(origin, c.apiPath, "", 1)
	}
	origin = strings.TrimRight(origin, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return origin + path
}
