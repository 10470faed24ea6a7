package formflow

import (
	"context"
	"fmt"
	"time"

	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/internal/domain"

	"github.com/go-resty/resty/v2"
)

// APIError carries the server's failure envelope back to the controller.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("submission failed with status %d", e.Status)
}

// Client posts completed drafts to the contact endpoint.
type Client struct {
	http *resty.Client
}

// NewClient builds a client for the API at baseURL (scheme and host, no
// trailing path).
func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second),
	}
}

// Submit sends the full payload. A non-2xx response or transport failure is
// returned as an error; the caller decides whether to retry.
func (c *Client) Submit(ctx context.Context, sub *domain.ContactSubmission) error {
	var errBody response.ErrorBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sub).
		SetError(&errBody).
		Post("/api/contact")
	if err != nil {
		return fmt.Errorf("formflow: submission request failed: %w", err)
	}

	if resp.IsError() {
		return &APIError{
			Status:  resp.StatusCode(),
			Code:    errBody.Code,
			Message: errBody.Error,
		}
	}
	return nil
}
