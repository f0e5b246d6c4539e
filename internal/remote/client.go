package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/inovacc/clientdir/internal/model"
)

const (
	defaultTimeout = 30 * time.Second

	// maxErrorBody caps how much of a failed response is kept in HTTPError.
	maxErrorBody = 512

	contentTypeJSON = "application/json; charset=UTF-8"
	headerRequestID = "X-Request-ID"
)

// Client talks to the client collection resource.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

// ClientOptions configures the collection client
type ClientOptions struct {
	Logger     *slog.Logger
	Timeout    time.Duration
	HTTPClient *http.Client
	UserAgent  string
}

// NewClient creates a client for the collection at baseURL.
func NewClient(baseURL string, opts ClientOptions) (*Client, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("collection URL is required")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid collection URL %q: %w", baseURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid collection URL %q: scheme must be http or https", baseURL)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("invalid collection URL %q: missing host", baseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}

		httpClient = &http.Client{Timeout: timeout}
	}

	logger.Debug("creating collection client", slog.String("url", baseURL))

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  opts.UserAgent,
		logger:     logger,
	}, nil
}

// List fetches the whole collection.
func (c *Client) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := c.doRequest(ctx, "list clients", http.MethodGet, c.baseURL, nil, &clients); err != nil {
		return nil, err
	}

	for i := range clients {
		clients[i].Origin = model.OriginRemote
	}

	return clients, nil
}

// Create adds a record to the collection. The returned record carries the
// payload fields and the id echoed by the collection.
func (c *Client) Create(ctx context.Context, payload model.Payload) (*model.Client, error) {
	const op = "create client"

	var created model.Client
	if err := c.doRequest(ctx, op, http.MethodPost, c.baseURL, payload, &created); err != nil {
		return nil, err
	}

	if created.ID == 0 {
		return nil, &DecodeError{Operation: op, Err: ErrMissingID}
	}

	result := payload.Apply(created)

	return &result, nil
}

// Update replaces the record with the given id.
func (c *Client) Update(ctx context.Context, id int, payload model.Payload) (*model.Client, error) {
	var updated model.Client
	if err := c.doRequest(ctx, "update client", http.MethodPut, c.itemURL(id), payload, &updated); err != nil {
		return nil, err
	}

	updated.ID = id
	result := payload.Apply(updated)

	return &result, nil
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.doRequest(ctx, "delete client", http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) itemURL(id int) string {
	return c.baseURL + "/" + strconv.Itoa(id)
}

// doRequest performs one request against the collection. A nil body sends no
// request body; a nil result discards the response body.
func (c *Client) doRequest(ctx context.Context, op, method, target string, body, result any) error {
	requestID := uuid.NewString()

	logger := c.logger.With(
		slog.String("method", method),
		slog.String("url", target),
		slog.String("request_id", requestID),
	)

	logger.Debug("making collection request")

	var bodyReader io.Reader

	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)

	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("collection request failed", slog.String("error", err.Error()))
		return &NetworkError{Operation: op, Err: err}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	logger.Debug("collection response",
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		logger.Warn("collection returned an error status", slog.Int("status", resp.StatusCode))

		return &HTTPError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		// An empty body (e.g. 204) leaves result untouched.
		if errors.Is(err, io.EOF) {
			return nil
		}

		return &DecodeError{Operation: op, Err: err}
	}

	return nil
}
