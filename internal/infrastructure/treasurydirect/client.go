package treasurydirect

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"TreasuryCalendar/internal/config"
	"TreasuryCalendar/internal/domain"
	"TreasuryCalendar/internal/ports"
)

// Client implements ports.SecuritySource against the TreasuryDirect
// announced-securities endpoint. One GET per run, no retries: a failure
// here fails the whole run.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ports.SecuritySource = (*Client)(nil)

// NewClient builds a client from configuration.
func NewClient(cfg config.SourceConfig, logger *slog.Logger) *Client {
	return &Client{
		url:        cfg.URL,
		httpClient: newHTTPClient(cfg.Timeout),
		logger:     logger,
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

// Fetch downloads and decodes the announced securities list. Network and
// HTTP failures surface as a domain.TransportError; malformed JSON or a
// record violating the required-field contract surfaces as a
// domain.DataFormatError.
func (c *Client) Fetch(ctx context.Context) ([]domain.Security, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("get announced securities: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.TransportError{Err: fmt.Errorf("announced securities: unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("read response body: %w", err)}
	}

	var securities []domain.Security
	if err := json.Unmarshal(body, &securities); err != nil {
		return nil, &domain.DataFormatError{Err: fmt.Errorf("decode announced securities: %w", err)}
	}

	for i := range securities {
		if err := securities[i].Validate(); err != nil {
			return nil, &domain.DataFormatError{Err: fmt.Errorf("record %d: %w", i, err)}
		}
	}

	c.logger.Debug("fetched announced securities", "count", len(securities))
	return securities, nil
}
