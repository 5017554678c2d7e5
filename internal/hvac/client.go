package hvac

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// API defines the operations the rest of the application needs from the
// inventory service. This interface is implemented by *Client and can be
// used for testing.
type API interface {
	ListConditioners(ctx context.Context) ([]Conditioner, error)
	GetConditioner(ctx context.Context, id int64) (*Conditioner, error)
	CreateConditioner(ctx context.Context, draft Draft) (*Conditioner, error)
	UpdateConditioner(ctx context.Context, id int64, draft Draft) (*Conditioner, error)
	DeleteConditioner(ctx context.Context, id int64) error
	FetchLookups(ctx context.Context) (Lookups, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the conditioner inventory HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "https://localhost:7063"
	defaultUserAgent = "coolant/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL, falling back to the
// default local address when empty.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ListConditioners retrieves the full collection in server order.
func (c *Client) ListConditioners(ctx context.Context) ([]Conditioner, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Conditioner
	if err := c.do(ctx, http.MethodGet, "/conditioners", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetConditioner retrieves a single record by id.
func (c *Client) GetConditioner(ctx context.Context, id int64) (*Conditioner, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Conditioner
	if err := c.do(ctx, http.MethodGet, conditionerPath(id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// CreateConditioner posts a draft; the server assigns id and timestamps.
func (c *Client) CreateConditioner(ctx context.Context, draft Draft) (*Conditioner, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Conditioner
	if err := c.do(ctx, http.MethodPost, "/conditioners", draft, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpdateConditioner replaces the record with the given id. Partial updates
// are not supported by the API; the draft must carry every field.
func (c *Client) UpdateConditioner(ctx context.Context, id int64, draft Draft) (*Conditioner, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Conditioner
	if err := c.do(ctx, http.MethodPut, conditionerPath(id), draft, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DeleteConditioner removes the record with the given id.
func (c *Client) DeleteConditioner(ctx context.Context, id int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, conditionerPath(id), nil, nil)
}

// FetchStatuses retrieves the status reference collection.
func (c *Client) FetchStatuses(ctx context.Context) ([]Status, error) {
	var payload []Status
	if err := c.do(ctx, http.MethodGet, "/conditioner-statuses", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchTypes retrieves the unit type reference collection.
func (c *Client) FetchTypes(ctx context.Context) ([]UnitType, error) {
	var payload []UnitType
	if err := c.do(ctx, http.MethodGet, "/conditioner-types", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchManufacturers retrieves the manufacturer reference collection.
func (c *Client) FetchManufacturers(ctx context.Context) ([]Manufacturer, error) {
	var payload []Manufacturer
	if err := c.do(ctx, http.MethodGet, "/manufacturers", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchLookups retrieves statuses, types, and manufacturers concurrently.
// The combined fetch fails as soon as any one of the three fails; partial
// lookup data silently resolving to "Unknown" is worse than an error.
func (c *Client) FetchLookups(ctx context.Context) (Lookups, error) {
	if c == nil {
		return Lookups{}, fmt.Errorf("client is nil")
	}
	var bundle Lookups
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		statuses, err := c.FetchStatuses(ctx)
		if err != nil {
			return err
		}
		bundle.Statuses = statuses
		return nil
	})
	g.Go(func() error {
		types, err := c.FetchTypes(ctx)
		if err != nil {
			return err
		}
		bundle.Types = types
		return nil
	})
	g.Go(func() error {
		manufacturers, err := c.FetchManufacturers(ctx)
		if err != nil {
			return err
		}
		bundle.Manufacturers = manufacturers
		return nil
	})
	if err := g.Wait(); err != nil {
		return Lookups{}, err
	}
	return bundle, nil
}

func conditionerPath(id int64) string {
	return "/conditioners/" + strconv.FormatInt(id, 10)
}

// do performs one request and normalizes every failure into an *APIError so
// upstream code has a single user-facing message to display.
func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return unknownError(fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return unknownError(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var serverBody struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&serverBody)
		return serverError(resp.StatusCode, strings.TrimSpace(serverBody.Message),
			fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode))
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return unknownError(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
