package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/tumbleweedd/order_pipeline/internal/config"
	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const maxErrorBody = 4 << 10

// Client talks to the order service over HTTP. Connection failures and 5xx
// answers are retried; 4xx answers are final.
type Client struct {
	log     logger.Logger
	baseURL string
	http    *retryablehttp.Client
}

func New(log logger.Logger, cfg config.OrdersClientConfig) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.MaxRetries
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = time.Second
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = log
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		log:     log,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    rc,
	}
}

type statusBody struct {
	Status models.OrderStatus `json:"status"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// UpdateStatus issues PUT /{orderId}. An order that is no longer pending
// yields ErrInvalidTransition.
func (c *Client) UpdateStatus(ctx context.Context, orderUUID uuid.UUID, status models.OrderStatus) error {
	const op = "clients.orders.UpdateStatus"

	body, err := json.Marshal(statusBody{Status: status})
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", op, err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPut, c.orderURL(orderUUID), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// OrderStatus issues GET /{orderId} and returns the stored status.
func (c *Client) OrderStatus(ctx context.Context, orderUUID uuid.UUID) (models.OrderStatus, error) {
	const op = "clients.orders.OrderStatus"

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.orderURL(orderUUID), nil)
	if err != nil {
		return "", fmt.Errorf("%s: build request: %w", op, err)
	}

	resp, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	var order statusBody
	if err = json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", fmt.Errorf("%s: %w: decode order: %w", op, internalErrors.ErrUpstreamUnavailable, err)
	}

	return order.Status, nil
}

func (c *Client) orderURL(orderUUID uuid.UUID) string {
	return c.baseURL + "/" + orderUUID.String()
}

// do returns the response of a 200 answer and maps every other outcome onto
// the domain errors.
func (c *Client) do(req *retryablehttp.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internalErrors.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode == http.StatusOK {
		return resp, nil
	}
	defer resp.Body.Close()

	message := readMessage(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, internalErrors.ErrOrderNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", internalErrors.ErrInvalidTransition, message)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d: %s", internalErrors.ErrUpstreamUnavailable, resp.StatusCode, message)
	default:
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, message)
	}
}

func readMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}

	var resp errorResponse
	if err = json.Unmarshal(raw, &resp); err == nil && resp.Message != "" {
		return resp.Message
	}

	return strings.TrimSpace(string(raw))
}
