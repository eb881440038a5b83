// Package lookup is the boundary client for the external document-lookup
// service (RUC/DNI). The provider's fallback strategy is its own business;
// we depend only on receiving normalized identity fields or a typed failure.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-faster/errors"
)

// DocType is the kind of identity document being looked up.
type DocType string

const (
	DocRUC DocType = "ruc"
	DocDNI DocType = "dni"
)

// Identity holds the normalized fields returned by the provider.
type Identity struct {
	DocType DocType `json:"type"`
	Number  string  `json:"number"`
	Name    string  `json:"name"`
	Address string  `json:"address,omitempty"`
}

// InvalidNumberError indicates the document number has the wrong shape for
// its type (RUC: 11 digits, DNI: 8 digits).
type InvalidNumberError struct {
	DocType DocType
	Number  string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid %s number %q", e.DocType, e.Number)
}

// ErrNotFound indicates the provider has no record for the number.
var ErrNotFound = errors.New("document not found")

// Client queries the document-lookup endpoint.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a lookup Client for the given endpoint.
func NewClient(endpoint string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{endpoint: endpoint, client: client}
}

// Lookup validates the number shape and queries the provider.
func (c *Client) Lookup(ctx context.Context, docType DocType, number string) (*Identity, error) {
	if err := validate(docType, number); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s?type=%s&number=%s", c.endpoint, docType, url.QueryEscape(number))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call lookup provider")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, errors.Errorf("lookup provider: status %d: %s", resp.StatusCode, body)
	}

	var id Identity
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return nil, errors.Wrap(err, "decode lookup response")
	}
	id.DocType = docType
	return &id, nil
}

func validate(docType DocType, number string) error {
	var wantLen int
	switch docType {
	case DocRUC:
		wantLen = 11
	case DocDNI:
		wantLen = 8
	default:
		return &InvalidNumberError{DocType: docType, Number: number}
	}

	if len(number) != wantLen {
		return &InvalidNumberError{DocType: docType, Number: number}
	}
	for i := range len(number) {
		if number[i] < '0' || number[i] > '9' {
			return &InvalidNumberError{DocType: docType, Number: number}
		}
	}
	return nil
}
