package invoicing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-faster/errors"

	"github.com/sweetbatch/orderdesk/internal/domain/order"
)

// ProviderError is a rejection from the invoicing provider.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("invoicing provider rejected payload: status %d: %s", e.Status, e.Message)
}

// Caller submits invoice payloads to the external provider endpoint.
type Caller struct {
	endpoint string
	client   *http.Client
}

// NewCaller creates a Caller for the given provider endpoint.
func NewCaller(endpoint string, client *http.Client) *Caller {
	if client == nil {
		client = http.DefaultClient
	}
	return &Caller{endpoint: endpoint, client: client}
}

// Submit builds the payload for the order and posts it, returning the
// provider acceptance code.
func (c *Caller) Submit(ctx context.Context, o *order.Order) (string, error) {
	payload := BuildPayload(o)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "call invoicing provider")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errors.Wrap(err, "read provider response")
	}

	if resp.StatusCode >= 300 {
		return "", &ProviderError{Status: resp.StatusCode, Message: string(body)}
	}

	var accepted struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(body, &accepted); err != nil {
		return "", errors.Wrap(err, "decode provider response")
	}
	return accepted.Code, nil
}
