package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultEndpoint is the public form-relay endpoint.
const DefaultEndpoint = "https://api.web3forms.com/submit"

// maxResponseBytes caps how much of a reply is read.
const maxResponseBytes = 64 << 10

// Client posts forms to the relay endpoint.
type Client struct {
	endpoint  string
	accessKey string
	http      *http.Client
	logger    *log.Logger
}

// Options configures a Client.
type Options struct {
	Endpoint  string
	AccessKey string
	Timeout   time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
	Logger     *log.Logger
}

// NewClient creates a client. An empty endpoint uses DefaultEndpoint.
func NewClient(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		endpoint:  opts.Endpoint,
		accessKey: opts.AccessKey,
		http:      hc,
		logger:    logger,
	}
}

// Result describes an accepted submission.
type Result struct {
	ID      string
	Message string
}

type payload struct {
	Form
	AccessKey string `json:"access_key"`
}

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit validates and sends the form.
func (c *Client) Submit(ctx context.Context, f Form) (Result, error) {
	f = f.Trimmed()
	if err := f.Validate(); err != nil {
		return Result{}, err
	}
	if c.accessKey == "" {
		return Result{}, ErrNotConfigured
	}

	id := uuid.NewString()
	body, err := json.Marshal(payload{Form: f, AccessKey: c.accessKey})
	if err != nil {
		return Result{}, fmt.Errorf("contact: cannot encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("contact: cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("contact submit failed", "id", id, "err", err)
		return Result{}, fmt.Errorf("contact: cannot send: %w", err)
	}
	defer resp.Body.Close()

	var out response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("%w: status %d with unreadable body: %v", ErrRejected, resp.StatusCode, err)
	}

	c.logger.Info("contact submit", "id", id, "status", resp.StatusCode, "success", out.Success, "took", time.Since(start))

	if resp.StatusCode >= 300 || !out.Success {
		if out.Message == "" {
			out.Message = http.StatusText(resp.StatusCode)
		}
		return Result{}, fmt.Errorf("%w: %s", ErrRejected, out.Message)
	}
	return Result{ID: id, Message: out.Message}, nil
}
