package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Astemirdum/bookreview-service/pkg/circuit_breaker"
	"github.com/Astemirdum/bookreview-service/webui/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// APIError is a 4xx or 5xx answer of the book service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("book service: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	client  *http.Client
	cb      circuit_breaker.CircuitBreaker
	log     *zap.Logger
}

// New returns a client for the books collection at baseURL,
// e.g. http://localhost:5000/api/books.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		cb:      circuit_breaker.New(10, 10*time.Second, 0.5, 2),
		log:     log.Named("client"),
	}
}

func (c *Client) ListBooks(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := c.do(ctx, http.MethodGet, "", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) GetBook(ctx context.Context, id string) (model.Book, error) {
	var book model.Book
	err := c.do(ctx, http.MethodGet, "/"+url.PathEscape(id), nil, &book)
	return book, err
}

func (c *Client) CreateBook(ctx context.Context, form model.BookForm) (model.Book, error) {
	var book model.Book
	err := c.do(ctx, http.MethodPost, "", form, &book)
	return book, err
}

// UpdateBook sends body as is: a model.BookForm from the edit form or a
// whole model.Book when reviews are replaced.
func (c *Client) UpdateBook(ctx context.Context, id string, body interface{}) (model.Book, error) {
	var book model.Book
	err := c.do(ctx, http.MethodPut, "/"+url.PathEscape(id), body, &book)
	return book, err
}

func (c *Client) DeleteBook(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/"+url.PathEscape(id), nil, nil)
}

func (c *Client) AppendReview(ctx context.Context, id string, review model.Review) (model.Book, error) {
	var book model.Book
	err := c.do(ctx, http.MethodPost, "/"+url.PathEscape(id)+"/reviews", review, &book)
	return book, err
}

// do counts transport errors and 5xx answers against the breaker. A 4xx is
// the caller's fault and leaves it alone.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var clientErr error
	err := c.cb.Call(func() error {
		var reqBody io.Reader = http.NoBody
		if body != nil {
			data, err := json.Marshal(body)
			if err != nil {
				return err
			}
			reqBody = bytes.NewReader(data)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
		if err != nil {
			return err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			apiErr := readError(resp)
			if resp.StatusCode >= http.StatusInternalServerError {
				return apiErr
			}
			clientErr = apiErr
			return nil
		}
		if out == nil {
			return nil
		}
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, "decode response")
		}
		return nil
	})
	if err != nil {
		c.log.Error("request", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return err
	}
	return clientErr
}

func readError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var msg struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(resp.Body)
	if json.Unmarshal(data, &msg) == nil && msg.Message != "" {
		apiErr.Message = msg.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	return apiErr
}
