package ddragon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/mmcdole/champdex/internal/config"
	"github.com/mmcdole/champdex/internal/domain"
)

const userAgent = "champdex/1.0"

// Client implements domain.CatalogClient for the Data Dragon CDN
type Client struct {
	baseURL    string
	locale     string
	httpClient *http.Client
	logger     *slog.Logger

	// version is resolved lazily when configured as "latest"
	versionMu sync.Mutex
	version   string
}

var _ domain.CatalogClient = (*Client)(nil)

// NewClient creates a new Data Dragon client
func NewClient(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		locale:  cfg.Locale,
		version: cfg.Version,
		httpClient: &http.Client{
			Timeout: cfg.Timeout, // zero means no timeout
		},
		logger: logger,
	}
}

// doRequest performs a GET and returns the body of a 200 response
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("ddragon request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("ddragon request failed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrNetwork, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden:
		// The CDN answers 403 AccessDenied for files that don't exist
		return nil, domain.ErrNotFound
	default:
		c.logger.Error("ddragon request error", "url", reqURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrNetwork, resp.StatusCode)
	}
}

// getJSON fetches path and decodes it into dest
func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	body, err := c.doRequest(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		c.logger.Error("JSON parse error", "path", path, "error", err, "bodyLen", len(body))
		return fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	return nil
}

// Version returns the asset version in use, resolving "latest" on first call
func (c *Client) Version(ctx context.Context) (string, error) {
	c.versionMu.Lock()
	defer c.versionMu.Unlock()

	if c.version != config.LatestVersion {
		return c.version, nil
	}

	var versions VersionsResponse
	if err := c.getJSON(ctx, "/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("%w: no versions available", domain.ErrDecode)
	}

	c.version = versions[0]
	c.logger.Info("resolved latest data dragon version", "version", c.version)
	return c.version, nil
}

// ImageURL returns the portrait URL for a champion ID at the given version
func (c *Client) ImageURL(version, id string) string {
	return fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", c.baseURL, version, url.PathEscape(id))
}

// GetChampions returns the full catalog sorted by ID
func (c *Client) GetChampions(ctx context.Context) ([]domain.Champion, error) {
	version, err := c.Version(ctx)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/cdn/%s/data/%s/champion.json", version, c.locale)

	var resp ChampionListResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// A missing listing means a bad version/locale, not a missing champion
			return nil, fmt.Errorf("%w: catalog %s/%s not published", domain.ErrNetwork, version, c.locale)
		}
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: listing has no data object", domain.ErrDecode)
	}

	imageURL := func(id string) string { return c.ImageURL(version, id) }
	champions := MapChampions(resp.Data, imageURL, c.logger)
	c.logger.Info("loaded catalog", "version", version, "count", len(champions))
	return champions, nil
}

// GetChampion returns the detail record for id
func (c *Client) GetChampion(ctx context.Context, id string) (*domain.ChampionDetail, error) {
	version, err := c.Version(ctx)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/cdn/%s/data/%s/champion/%s.json", version, c.locale, url.PathEscape(id))

	var resp ChampionDetailResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}

	imageURL := func(id string) string { return c.ImageURL(version, id) }
	detail := MapChampionDetail(resp.Data, id, imageURL)
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return detail, nil
}
