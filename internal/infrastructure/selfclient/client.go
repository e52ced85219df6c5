// Package selfclient fetches accounts through this service's own REST
// endpoint over loopback instead of reading the repository directly. The
// extra hop is kept on purpose so the summary path exercises the same
// surface external consumers see, including its failure modes.
package selfclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client implements domain.AccountFetcher over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// FetchAccount retrieves an account from the service's own read
// endpoint. A remote 404 becomes a not-found error; any other remote
// failure is surfaced as an upstream error carrying the remote status.
func (c *Client) FetchAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	url := fmt.Sprintf("%s/api/v1/accounts/%s", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewInternal("build self request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("self account call failed", zap.String("url", url), zap.Error(err))
		return nil, domain.NewUpstream(0, "self account call failed: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var account domain.Account
		if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
			return nil, domain.NewUpstream(resp.StatusCode, "decode self account response: %v", err)
		}
		return &account, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.NewNotFound("bank account with id %s not found", id)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("self account call returned error status",
			zap.String("url", url), zap.Int("status", resp.StatusCode))
		return nil, domain.NewUpstream(resp.StatusCode,
			"self account call returned status %d: %s", resp.StatusCode, string(body))
	}
}
