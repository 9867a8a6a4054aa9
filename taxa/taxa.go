package taxa

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/oceanbio/obisgo/client"
	"github.com/oceanbio/obisgo/query"
)

const (
	defaultBaseURL   = "https://api.obis.org/v3/"
	defaultMapperURL = "https://mapper.obis.org/"

	// jsonContentType is what OBIS declares on successful taxon queries.
	// Responses that match no records carry a different content type.
	jsonContentType = "application/json; charset=utf-8"

	// defaultUserAgent spoofs a browser; the OBIS API rejects some
	// non-browser agents.
	defaultUserAgent = "Mozilla/5.0 (X11; CrOS x86_64 12871.102.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/81.0.4044.141 Safari/537.36"
)

// Client queries the OBIS taxon endpoints.
type Client struct {
	hc *client.Client

	base      *url.URL
	rawBase   string
	rawMapper string
}

// New instantiates a taxa *Client with the provided options.
func New(optFns ...Option) (*Client, error) {
	opts := options{
		baseURL:   defaultBaseURL,
		mapperURL: defaultMapperURL,
	}
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying taxa option: %w", err)
		}
	}

	if !strings.HasSuffix(opts.baseURL, "/") {
		opts.baseURL += "/"
	}
	if !strings.HasSuffix(opts.mapperURL, "/") {
		opts.mapperURL += "/"
	}

	base, err := url.Parse(opts.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	clientOpts := append([]client.Option{client.WithUserAgent(defaultUserAgent)}, opts.clientOpts...)
	hc, err := client.Build(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("building http client: %w", err)
	}

	return &Client{
		hc:        hc,
		base:      base,
		rawBase:   opts.baseURL,
		rawMapper: opts.mapperURL,
	}, nil
}

// Search fetches taxon records matching one or more scientific names.
// All included and synonym taxa are included in the search.
// The name must not be absent or empty; validation fails before any
// network call is made.
func (c *Client) Search(ctx context.Context, scientificname query.StringArg, opts ...client.RequestOption) (*Result, error) {
	name, _ := scientificname.Value()
	if err := checkArgs(searchArgs{ScientificName: name}); err != nil {
		return nil, err
	}

	args := query.NewArgs()
	args.SetString("scientificname", scientificname)

	return c.get(ctx,
		c.rawBase+"taxon/"+name,
		c.base.JoinPath("taxon", name),
		args,
		opts...,
	)
}

// Taxon fetches a single taxon record by its OBIS identifier.
func (c *Client) Taxon(ctx context.Context, id int64, opts ...client.RequestOption) (*Result, error) {
	ids := strconv.FormatInt(id, 10)

	return c.get(ctx,
		c.rawBase+"taxon/"+ids,
		c.base.JoinPath("taxon", ids),
		query.NewArgs(),
		opts...,
	)
}

// Annotations fetches scientific name annotations by the WoRMS team.
// An absent scientificname includes all taxa.
func (c *Client) Annotations(ctx context.Context, scientificname query.StringArg, opts ...client.RequestOption) (*Result, error) {
	args := query.NewArgs()
	args.SetString("scientificname", scientificname)

	return c.get(ctx,
		c.rawBase+"taxon/annotations",
		c.base.JoinPath("taxon", "annotations"),
		args,
		opts...,
	)
}

// LookupTaxon resolves a scientific name against the OBIS completion
// endpoint and returns the best matches. Unlike the other operations the
// response's content type is not validated.
func (c *Client) LookupTaxon(ctx context.Context, scientificname string, opts ...client.RequestOption) ([]TaxonMatch, error) {
	if err := checkArgs(lookupArgs{ScientificName: scientificname}); err != nil {
		return nil, err
	}

	reqOpts := append([]client.RequestOption{client.WithCloseConnection()}, opts...)
	req, err := client.Request(ctx, c.base.JoinPath("taxon", "complete", scientificname), http.MethodGet, reqOpts...)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	var matches []TaxonMatch
	if err := c.hc.Do(req, http.StatusOK, client.WithDestination(&matches)); err != nil {
		return nil, err
	}

	return matches, nil
}

// MapperURL serializes the query held by res against the OBIS mapper host.
// When res carries no taxonid, the first LookupTaxon match for its
// scientificname is used to populate one. A result with neither field
// returns a *MissingFieldError.
func (c *Client) MapperURL(ctx context.Context, res *Result) (string, error) {
	if res == nil || res.Args == nil {
		return "", ErrNoQuery
	}

	args := res.Args.Clone()
	if _, ok := args.Get("taxonid"); !ok {
		name, ok := args.Get("scientificname")
		if !ok || name == "" {
			return "", &MissingFieldError{Field: "taxonid"}
		}

		matches, err := c.LookupTaxon(ctx, name)
		if err != nil {
			return "", fmt.Errorf("looking up taxon id: %w", err)
		}
		if len(matches) == 0 {
			return "", fmt.Errorf("no taxon match for %q", name)
		}

		args.SetInt("taxonid", query.Int(matches[0].ID))
	}

	return query.BuildURL(c.rawMapper, args), nil
}

// get executes a GET against endpoint with the encoded args, expecting a
// JSON body, and returns a Result carrying the built URL, the args, and
// the decoded body. Errors from the fetch propagate unchanged.
func (c *Client) get(ctx context.Context, displayURL string, endpoint *url.URL, args *query.Args, opts ...client.RequestOption) (*Result, error) {
	reqURL := *endpoint
	reqURL.RawQuery = args.Encode()

	reqOpts := append([]client.RequestOption{client.WithCloseConnection()}, opts...)
	req, err := client.Request(ctx, &reqURL, http.MethodGet, reqOpts...)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	var data any
	if err := c.hc.Do(req, http.StatusOK,
		client.WithDestination(&data),
		client.WithExpectedContentType(jsonContentType),
	); err != nil {
		return nil, err
	}

	return &Result{
		URL:  displayURL,
		Args: args,
		Data: data,
	}, nil
}

// Result carries the outcome of a single taxon query: the endpoint URL it
// was built against, the query arguments, and the decoded JSON body. It
// replaces hidden per-client "last query" state, so a shared *Client is
// safe to use from concurrent callers.
type Result struct {
	URL  string
	Args *query.Args
	Data any
}

// SearchURL re-serializes the query as a full API URL.
// A zero Result returns ErrNoQuery.
func (r *Result) SearchURL() (string, error) {
	if r == nil || r.URL == "" {
		return "", ErrNoQuery
	}
	return query.BuildURL(r.URL, r.Args), nil
}

// TaxonMatch is a single entry from the name completion endpoint.
type TaxonMatch struct {
	ID             int64  `json:"id"`
	ScientificName string `json:"scientificname"`
}

// ErrNoQuery is returned when a URL accessor is used before any query was made.
var ErrNoQuery = errors.New("no query has been made")

// MissingFieldError is returned when an operation needs a query argument
// the result does not carry.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Field)
}
