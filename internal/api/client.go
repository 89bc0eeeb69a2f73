// Package api implements the client side of the marketplace HTTP API.
// Persistence, validation, and retry policy all live on the server; this
// client's job ends at reporting a call's result to its caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Calphius18/service-provider/internal/catalog"
)

// DefaultTimeout bounds every call; the core carries no retry logic.
const DefaultTimeout = 5000 * time.Millisecond

// Client talks to the marketplace API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New builds a client for the given base endpoint. A non-positive timeout
// falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Providers fetches the full ordered provider collection.
func (c *Client) Providers(ctx context.Context) ([]catalog.Provider, error) {
	var wire []wireProvider
	if err := c.get(ctx, "/providers", &wire); err != nil {
		return nil, &FetchError{Op: "providers", Err: err}
	}
	out := make([]catalog.Provider, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// Provider fetches a single provider. A missing id yields ErrNotFound.
func (c *Client) Provider(ctx context.Context, id int64) (catalog.Provider, error) {
	var wire wireProvider
	err := c.get(ctx, "/providers/"+strconv.FormatInt(id, 10), &wire)
	if err == ErrNotFound {
		return catalog.Provider{}, ErrNotFound
	}
	if err != nil {
		return catalog.Provider{}, &FetchError{Op: "provider", Err: err}
	}
	return wire.toDomain(), nil
}

// Categories fetches the ordered category collection.
func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	var wire []wireCategory
	if err := c.get(ctx, "/categories", &wire); err != nil {
		return nil, &FetchError{Op: "categories", Err: err}
	}
	out := make([]catalog.Category, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// CreateBooking submits a draft and returns the server-confirmed booking
// with its assigned id and status. There is no partial success: on error
// the booking was not created.
func (c *Client) CreateBooking(ctx context.Context, draft catalog.Booking) (catalog.Booking, error) {
	body, err := json.Marshal(toWireBooking(draft))
	if err != nil {
		return catalog.Booking{}, &SubmissionError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return catalog.Booking{}, &SubmissionError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	var confirmed wireBooking
	if err := c.do(req, &confirmed); err != nil {
		return catalog.Booking{}, &SubmissionError{Err: err}
	}
	return confirmed.toDomain(), nil
}

// Bookings fetches the caller's bookings in server order.
func (c *Client) Bookings(ctx context.Context) ([]catalog.Booking, error) {
	var wire []wireBooking
	if err := c.get(ctx, "/bookings", &wire); err != nil {
		return nil, &FetchError{Op: "bookings", Err: err}
	}
	out := make([]catalog.Booking, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, v)
}

func (c *Client) do(req *http.Request, v any) error {
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("request_id", reqID),
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	c.log.Debug("request done",
		zap.String("request_id", reqID),
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
