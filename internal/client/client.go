// Package client is the live-mode counterpart of the local services: it
// implements the same capability contracts by forwarding each operation to a
// remote task-tracker server. Expected failures arrive as failure envelopes
// and are returned as such; only transport problems surface as errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"task-tracker-api/internal/models"
)

// TokenStore persists the opaque bearer token between requests. The client
// only trusts its presence; it neither issues nor validates tokens.
type TokenStore interface {
	Token() string
	SetToken(token string)
	Clear()
}

// MemoryTokenStore keeps the token in memory.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Client talks to a remote task-tracker server.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

// New builds a Client for baseURL. A nil tokens falls back to an in-memory
// store; a nil httpClient falls back to a 10s-timeout default.
func New(baseURL string, tokens TokenStore, httpClient *http.Client) *Client {
	if tokens == nil {
		tokens = &MemoryTokenStore{}
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
	}
}

// envelope mirrors models.Response with the payload kept raw so each call
// site can decode it into the right concrete type.
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return envelope{}, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return envelope{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return envelope{}, err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("decode response (%s %s, status %d): %w", method, path, res.StatusCode, err)
	}
	return env, nil
}

// as decodes the raw payload of a success envelope into T.
func as[T any](env envelope) (models.Response, error) {
	resp := models.Response{
		Success:   env.Success,
		Message:   env.Message,
		Timestamp: env.Timestamp,
	}
	if !env.Success || len(env.Data) == 0 || string(env.Data) == "null" {
		return resp, nil
	}
	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return models.Response{}, err
	}
	resp.Data = v
	return resp, nil
}

func pagingValues(page, size int) url.Values {
	return url.Values{
		"page": {fmt.Sprint(page)},
		"size": {fmt.Sprint(size)},
	}
}
