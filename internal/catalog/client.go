package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/movie-recommender/internal/config"
	"github.com/ytget/movie-recommender/internal/model"
)

// Endpoints relative to the catalog base URL
const (
	DiscoverEndpoint = "discover/movie"
	SearchEndpoint   = "search/movie"
)

// Query parameters
const (
	ParamAPIKey = "api_key"
	ParamPage   = "page"
	ParamGenres = "with_genres"
	ParamQuery  = "query"
)

// maxErrorBody bounds how much of a failed response body is kept
const maxErrorBody = 512

var _ Catalog = (*Client)(nil)

// Client queries the remote movie catalog
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a catalog client. The API key and base URL are read from
// cfg on every request, so saved settings apply to the next query.
func NewClient(cfg *config.Config, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     logger.With().Str("component", "catalog").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Discover returns one page of catalog movies, optionally narrowed to a genre
func (c *Client) Discover(ctx context.Context, page int, genre model.GenreID) Result {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set(ParamPage, strconv.Itoa(page))
	if !genre.IsAll() {
		params.Set(ParamGenres, strconv.Itoa(int(genre)))
	}

	return c.fetch(ctx, DiscoverEndpoint, params)
}

// Search returns catalog movies matching query
func (c *Client) Search(ctx context.Context, query string) Result {
	params := url.Values{}
	params.Set(ParamQuery, query)

	return c.fetch(ctx, SearchEndpoint, params)
}

// fetch performs one GET and decodes the results array
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) Result {
	requestID := uuid.NewString()
	log := c.logger.With().
		Str("request_id", requestID).
		Str("endpoint", endpoint).
		Logger()

	started := time.Now()
	body, err := c.doRequest(ctx, endpoint, params)
	if err != nil {
		log.Warn().Err(err).Dur("elapsed", time.Since(started)).Msg("Catalog request failed")
		return failed(err)
	}

	var page model.MoviePage
	if err := json.Unmarshal(body, &page); err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		log.Warn().Err(err).Msg("Catalog response could not be decoded")
		return failed(err)
	}

	log.Debug().
		Int("count", len(page.Results)).
		Int("page", page.Page).
		Dur("elapsed", time.Since(started)).
		Msg("Catalog request completed")

	return succeeded(page.Results)
}

// doRequest performs an HTTP GET with the API key and returns the body of a 200 response
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set(ParamAPIKey, c.cfg.EffectiveAPIKey())

	requestURL := c.endpointURL(endpoint) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// endpointURL joins the configured base URL and endpoint with exactly one slash
func (c *Client) endpointURL(endpoint string) string {
	base := c.cfg.BaseURL
	if base == "" {
		base = config.DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + endpoint
}
