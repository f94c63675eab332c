package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/animalia/listing-system/pkg/session"
)

const headerToken = "token"

// Client is a typed HTTP client for the listing backend. All methods
// take a context for cancellation and a session token; methods that
// allow anonymous access accept session.NoToken.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client, typically to
// set a transport or a custom timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New builds a Client against baseURL, e.g. "https://api.example.com".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetMetadata fetches the catalogue summary. The raw JSON document is
// decoded into Metadata; callers that only need the byte payload can
// re-marshal it.
func (c *Client) GetMetadata(ctx context.Context, token session.Token) (*Metadata, error) {
	const op = "get metadata"
	body, err := c.do(ctx, op, http.MethodGet, "/v0/metadata", nil, token, nil)
	if err != nil {
		return nil, err
	}
	var md Metadata
	if err := json.Unmarshal(body, &md); err != nil {
		return nil, &ProtocolError{Op: op, Message: fmt.Sprintf("decode metadata: %v", err)}
	}
	return &md, nil
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Hits    int64    `json:"hits"`
	Animals []Animal `json:"animals"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
}

// SearchAnimals runs a phrase search and returns the matching page as
// an ordered list. An empty query matches everything.
func (c *Client) SearchAnimals(ctx context.Context, token session.Token, q SearchQuery) (*AnimalList, error) {
	const op = "search animals"
	if q.Limit <= 0 {
		q.Limit = defaultSearchLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("offset", strconv.Itoa(q.Offset))

	body, err := c.do(ctx, op, http.MethodPost, "/v0/animal/search", params, token, searchRequest{Query: q.Query})
	if err != nil {
		return nil, err
	}
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ProtocolError{Op: op, Message: fmt.Sprintf("decode search response: %v", err)}
	}
	return NewAnimalList(resp.Hits, resp.Animals), nil
}

// GetAnimal fetches a single record by id. An id the backend does not
// know yields (nil, nil): absence is an expected outcome, not an error.
func (c *Client) GetAnimal(ctx context.Context, token session.Token, id string, q FetchQuery) (*Animal, error) {
	const op = "get animal"
	if id == "" {
		return nil, &ProtocolError{Op: op, Message: "empty animal id"}
	}
	if q.Limit <= 0 {
		q.Limit = defaultFetchLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	params := url.Values{}
	params.Set("id", id)
	params.Set("deactivated", strconv.FormatBool(q.IncludeDeactivated))
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("offset", strconv.Itoa(q.Offset))

	body, err := c.do(ctx, op, http.MethodGet, "/v0/animal", params, token, nil)
	if err != nil {
		return nil, err
	}
	var animals []Animal
	if err := json.Unmarshal(body, &animals); err != nil {
		return nil, &ProtocolError{Op: op, Message: fmt.Sprintf("decode animal response: %v", err)}
	}
	if len(animals) == 0 {
		return nil, nil
	}
	return &animals[0], nil
}

// CreateAnimal submits a completed draft and returns the stored record.
func (c *Client) CreateAnimal(ctx context.Context, token session.Token, draft Draft) (*Animal, error) {
	const op = "create animal"
	if !draft.Complete() {
		return nil, &ProtocolError{Op: op, Message: "incomplete draft"}
	}
	body, err := c.do(ctx, op, http.MethodPost, "/v0/animal", nil, token, draft)
	if err != nil {
		return nil, err
	}
	var a Animal
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, &ProtocolError{Op: op, Message: fmt.Sprintf("decode animal response: %v", err)}
	}
	return &a, nil
}

type loginRequest struct {
	HandleName string `json:"handle_name"`
	Password   string `json:"password"`
}

type loginResponse struct {
	UserID     string `json:"user_id"`
	HandleName string `json:"handle_name"`
	Token      string `json:"token"`
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, handleName, password string) (*session.Session, error) {
	const op = "login"
	body, err := c.do(ctx, op, http.MethodPost, "/v0/user/login", nil, session.NoToken, loginRequest{
		HandleName: handleName,
		Password:   password,
	})
	if err != nil {
		return nil, err
	}
	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ProtocolError{Op: op, Message: fmt.Sprintf("decode login response: %v", err)}
	}
	return &session.Session{
		UserID:     resp.UserID,
		HandleName: resp.HandleName,
		Token:      session.Token(resp.Token),
	}, nil
}

// do issues one request and returns the response body for 2xx statuses.
// 401 maps to ErrUnauthorized, other non-2xx statuses to ProtocolError,
// and failures before a response arrives to TransportError.
func (c *Client) do(ctx context.Context, op, method, path string, params url.Values, token session.Token, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, &ProtocolError{Op: op, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reqBody = bytes.NewReader(buf)
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !token.IsZero() {
		req.Header.Set(headerToken, string(token))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ProtocolError{Op: op, StatusCode: resp.StatusCode, Message: serverMessage(body)}
	}
	return body, nil
}

// serverMessage extracts the error envelope message, falling back to
// the raw body when the envelope does not decode.
func serverMessage(body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(body))
}
