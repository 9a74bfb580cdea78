package nameres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/translator-sri/bioentity-mcp/internal/apierr"
	"github.com/translator-sri/bioentity-mcp/internal/logging"
)

const (
	// DefaultBaseURL is the public RENCI deployment of the service.
	DefaultBaseURL = "https://name-resolution-sri.renci.org"

	// DefaultLimit is the number of matches requested when the caller
	// does not say otherwise.
	DefaultLimit = 5

	serviceName = "name resolution service"
)

// Match is one ranked lookup result.
type Match struct {
	CURIE string   `json:"curie"`
	Label string   `json:"label"`
	Score float64  `json:"score"`
	Types []string `json:"types"`
}

// LookupRequest carries the entity name and the optional filters the
// service supports.
type LookupRequest struct {
	// Entity is the free-text name to resolve. Required.
	Entity string

	// Limit caps the number of matches. Zero means DefaultLimit.
	Limit int

	// BiolinkType restricts matches to one Biolink class, e.g. "Disease".
	BiolinkType string

	// OnlyPrefixes restricts matches to CURIE namespaces, e.g. MONDO, HGNC.
	OnlyPrefixes []string

	// OnlyTaxa restricts matches to organism taxa, e.g. NCBITaxon:9606.
	OnlyTaxa []string
}

// Client issues lookups against one Name Resolution deployment.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client during construction.
type Option func(*Client)

// WithBaseURL overrides the service base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient substitutes the HTTP client, e.g. to set a timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client for the public deployment unless overridden.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Lookup queries the service and returns its matches in the service's
// ranking order. Zero matches returns an empty slice and nil error. An
// empty entity name is rejected before any request is made.
func (c *Client) Lookup(ctx context.Context, req LookupRequest) ([]Match, error) {
	if strings.TrimSpace(req.Entity) == "" {
		return nil, apierr.ErrEmptyEntity
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	params := url.Values{}
	params.Set("string", req.Entity)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("autocomplete", "false")
	params.Set("highlighting", "false")
	if req.BiolinkType != "" {
		params.Set("biolink_type", req.BiolinkType)
	}
	for _, prefix := range req.OnlyPrefixes {
		params.Add("only_prefixes", prefix)
	}
	for _, taxon := range req.OnlyTaxa {
		params.Add("only_taxa", taxon)
	}

	lookupURL := c.baseURL + "/lookup?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build lookup request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &apierr.RequestError{Service: serviceName, URL: lookupURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apierr.StatusError{
			Service:    serviceName,
			URL:        lookupURL,
			StatusCode: resp.StatusCode,
			Body:       apierr.BodySnippet(resp.Body),
		}
	}

	var matches []Match
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, fmt.Errorf("decode lookup response: %w", err)
	}

	c.logger.Debug("name resolution lookup",
		"entity", req.Entity,
		"limit", limit,
		"matches", len(matches),
	)

	return matches, nil
}

// ResolveToCuries runs Lookup and extracts the CURIE of each match,
// preserving the service's ranking. Matches without a CURIE are skipped.
func (c *Client) ResolveToCuries(ctx context.Context, req LookupRequest) ([]string, error) {
	matches, err := c.Lookup(ctx, req)
	if err != nil {
		return nil, err
	}

	curies := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.CURIE != "" {
			curies = append(curies, m.CURIE)
		}
	}

	return curies, nil
}
