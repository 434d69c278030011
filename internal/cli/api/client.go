// Package api is the typed HTTP client of the Rent&Co API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

// GenericMessage is used when the server did not provide one.
const GenericMessage = "request failed"

// Error is returned for network failures (Status 0) and non-2xx responses.
type Error struct {
	Status  int
	Message string
	Fields  []dto.FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// Page is one page of a paginated list.
type Page[T any] struct {
	Items []T
	dto.Pagination
}

// Client talks to the API. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu       sync.RWMutex
	token    string
	language string
}

// New creates a client; timeout applies to every request.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken sets the bearer token; empty clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetLanguage sets the Accept-Language sent with requests.
func (c *Client) SetLanguage(lang string) {
	c.mu.Lock()
	c.language = lang
	c.mu.Unlock()
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}
	c.mu.RUnlock()
	return req, nil
}

// do sends the request and decodes the envelope's data into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) (*dto.Pagination, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, &Error{Message: GenericMessage, Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Message: GenericMessage, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: GenericMessage, Err: err}
	}

	var env dto.RawEnvelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Message: GenericMessage}
		if decodeErr == nil {
			if env.Message != "" {
				apiErr.Message = env.Message
			}
			apiErr.Fields = env.Errors
		}
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, &Error{Status: resp.StatusCode, Message: GenericMessage, Err: fmt.Errorf("decode envelope: %w", decodeErr)}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, &Error{Status: resp.StatusCode, Message: GenericMessage, Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return env.Pagination, nil
}

func page[T any](items []T, p *dto.Pagination) Page[T] {
	out := Page[T]{Items: items}
	if p != nil {
		out.Pagination = *p
	}
	return out
}
