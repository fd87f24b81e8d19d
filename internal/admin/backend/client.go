// Package backend carries the HTTP plumbing shared by every console area's
// remote service: request construction against the store API origin, bearer
// auth, JSON and multipart encoding, and error extraction from failed
// responses.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// HTTPClient matches the subset of http.Client the backend client uses.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client issues requests against the remote store API.
type Client struct {
	base *url.URL
	http HTTPClient
}

// NewClient constructs a Client for the given API origin.
func NewClient(baseURL string, client HTTPClient) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("backend: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("backend: parse base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{base: parsed, http: client}, nil
}

// Error is a non-2xx backend response. Message carries the backend's own
// wording so handlers can surface it verbatim.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Code != "" {
		return fmt.Sprintf("backend error (%s): %s", e.Code, msg)
	}
	return fmt.Sprintf("backend error (%d): %s", e.StatusCode, msg)
}

// NewRequest builds a request with bearer auth resolved against the API origin.
func (c *Client) NewRequest(ctx context.Context, method, endpoint string, body io.Reader, token string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(endpoint), body)
	if err != nil {
		return nil, fmt.Errorf("backend: build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// NewJSONRequest builds a request with a JSON-encoded payload.
func (c *Client) NewJSONRequest(ctx context.Context, method, endpoint string, payload any, token string) (*http.Request, error) {
	var buf bytes.Buffer
	if payload != nil {
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(payload); err != nil {
			return nil, fmt.Errorf("backend: encode payload: %w", err)
		}
	}
	req, err := c.NewRequest(ctx, method, endpoint, &buf, token)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// FilePart is one file attached to a multipart request.
type FilePart struct {
	Field    string
	Filename string
	Content  io.Reader
}

// NewMultipartRequest builds a multipart/form-data request from text fields
// and optional file parts, as the backend expects for image-bearing CRUD.
func (c *Client) NewMultipartRequest(ctx context.Context, method, endpoint string, fields map[string]string, files []FilePart, token string) (*http.Request, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("backend: write form field %q: %w", name, err)
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return nil, fmt.Errorf("backend: create form file %q: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, fmt.Errorf("backend: copy form file %q: %w", file.Field, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("backend: finalize multipart body: %w", err)
	}

	req, err := c.NewRequest(ctx, method, endpoint, &buf, token)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req, nil
}

// Do executes the request, wrapping transport failures.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend: request failed: %w", err)
	}
	return resp, nil
}

// DecodeJSON executes the request, checks the response status against the
// allowed codes (200 when none given), and decodes the body into out when out
// is non-nil. The response body is always closed.
func (c *Client) DecodeJSON(req *http.Request, out any, okStatuses ...int) error {
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if len(okStatuses) == 0 {
		okStatuses = []int{http.StatusOK}
	}
	allowed := false
	for _, code := range okStatuses {
		if resp.StatusCode == code {
			allowed = true
			break
		}
	}
	if !allowed {
		return c.ErrorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode response: %w", err)
	}
	return nil
}

// ErrorFromResponse drains a failed response into an *Error, preferring the
// backend's {error} / {code,message} payload over the raw body.
func (c *Client) ErrorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		ErrMsg  string `json:"error"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil {
			msg := payload.Message
			if msg == "" {
				msg = payload.ErrMsg
			}
			if msg != "" {
				return &Error{StatusCode: resp.StatusCode, Code: payload.Code, Message: msg}
			}
		}
	}
	return &Error{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
}

func (c *Client) resolve(endpoint string) string {
	if endpoint == "" {
		return c.base.String()
	}
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	ref := &url.URL{Path: strings.TrimPrefix(endpoint, "/")}
	return c.base.ResolveReference(ref).String()
}
