package nodenorm

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
	DefaultBaseURL = "https://nodenormalization-sri.renci.org"

	serviceName = "node normalization service"
)

// Options are the per-request normalization toggles. All default off.
type Options struct {
	// Conflate applies gene/protein conflation.
	Conflate bool

	// DrugChemicalConflate applies drug/chemical conflation.
	DrugChemicalConflate bool

	// Description asks for CURIE descriptions where available.
	Description bool

	// IndividualTypes asks for per-equivalent-identifier type lists.
	IndividualTypes bool
}

// Identifier is a single identifier record in a normalization response.
type Identifier struct {
	Identifier  string `json:"identifier"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
}

// EquivalentIdentifier is one member of a node's equivalence set. Types
// is populated only when Options.IndividualTypes is set.
type EquivalentIdentifier struct {
	Identifier  string   `json:"identifier"`
	Label       string   `json:"label,omitempty"`
	Description string   `json:"description,omitempty"`
	Types       []string `json:"type,omitempty"`
}

// NormalizedNode is the service's record for one input CURIE.
type NormalizedNode struct {
	ID                    Identifier             `json:"id"`
	EquivalentIdentifiers []EquivalentIdentifier `json:"equivalent_identifiers"`
	Types                 []string               `json:"type"`
	InformationContent    float64                `json:"information_content,omitempty"`
}

// Client issues normalization requests against one deployment.
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

// GetNormalizedNodes normalizes a batch of CURIEs in one request. The
// result maps each input CURIE to its record; a CURIE the service could
// not normalize maps to nil. An empty batch is rejected before any
// request is made.
func (c *Client) GetNormalizedNodes(ctx context.Context, curies []string, opts Options) (map[string]*NormalizedNode, error) {
	if len(curies) == 0 {
		return nil, apierr.ErrNoCuries
	}

	params := url.Values{}
	for _, curie := range curies {
		params.Add("curie", curie)
	}
	params.Set("conflate", strconv.FormatBool(opts.Conflate))
	params.Set("drug_chemical_conflate", strconv.FormatBool(opts.DrugChemicalConflate))
	params.Set("description", strconv.FormatBool(opts.Description))
	params.Set("individual_types", strconv.FormatBool(opts.IndividualTypes))

	normalizeURL := c.baseURL + "/get_normalized_nodes?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, normalizeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build normalization request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &apierr.RequestError{Service: serviceName, URL: normalizeURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apierr.StatusError{
			Service:    serviceName,
			URL:        normalizeURL,
			StatusCode: resp.StatusCode,
			Body:       apierr.BodySnippet(resp.Body),
		}
	}

	var nodes map[string]*NormalizedNode
	if err := json.NewDecoder(resp.Body).Decode(&nodes); err != nil {
		return nil, fmt.Errorf("decode normalization response: %w", err)
	}

	c.logger.Debug("node normalization batch",
		"curies", len(curies),
		"conflate", opts.Conflate,
		"drug_chemical_conflate", opts.DrugChemicalConflate,
	)

	return nodes, nil
}

// TypesForCuries normalizes a batch and returns the union of semantic
// type labels across every CURIE that normalized, duplicates removed, in
// first-seen order. A CURIE with no record contributes nothing.
func (c *Client) TypesForCuries(ctx context.Context, curies []string, opts Options) ([]string, error) {
	nodes, err := c.GetNormalizedNodes(ctx, curies, opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	types := make([]string, 0)
	for _, curie := range curies {
		node := nodes[curie]
		if node == nil {
			continue
		}
		for _, t := range node.Types {
			if seen[t] {
				continue
			}
			seen[t] = true
			types = append(types, t)
		}
	}

	return types, nil
}
