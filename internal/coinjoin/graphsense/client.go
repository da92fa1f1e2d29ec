// Package graphsense implements an enrichment source backed by a
// GraphSense-compatible HTTP API.
package graphsense

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/clock"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

const (
	retryAttempts = 3
	retryDelay    = 500 * time.Millisecond
)

type (
	// ClientMetrics records metrics for API calls.
	ClientMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client fetches transaction details, including resolved input values, from
// a GraphSense-compatible API. It satisfies the enrichment gateway's Source
// contract; per-request timeouts are applied by the gateway through the
// request context.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	currency   string
	metrics    ClientMetrics
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewClient constructs a Client for the given API base URL (scheme+host).
func NewClient(baseURL, apiKey string, metrics ClientMetrics) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse graphsense url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("graphsense url %q missing scheme or host", baseURL)
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    parsed.Scheme + "://" + parsed.Host,
		apiKey:     apiKey,
		currency:   "btc",
		metrics:    metrics,
		sleep:      clock.SleepWithContext,
	}, nil
}

type txResponse struct {
	TxHash string    `json:"tx_hash"`
	Inputs []txAsset `json:"inputs"`
}

type txAsset struct {
	Address []string `json:"address"`
	Value   txAmount `json:"value"`
}

type txAmount struct {
	Value uint64 `json:"value"`
}

// EnrichTransaction fetches the transaction from the API and returns a copy
// of tx with input values resolved positionally. The remote input list must
// match the local input count; anything else means the two views disagree
// and the transaction cannot be refined.
func (c *Client) EnrichTransaction(ctx context.Context, tx model.Transaction) (enriched model.Transaction, err error) {
	started := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.Observe("get_tx", err, started)
		}
	}()

	remote, err := c.getTx(ctx, tx.TxID)
	if err != nil {
		return model.Transaction{}, err
	}
	if len(remote.Inputs) != len(tx.Inputs) {
		return model.Transaction{}, fmt.Errorf("tx %s: remote has %d inputs, local has %d", tx.TxID, len(remote.Inputs), len(tx.Inputs))
	}

	enriched = tx
	enriched.Inputs = append([]model.TransactionInput(nil), tx.Inputs...)
	for i := range enriched.Inputs {
		if enriched.Inputs[i].IsCoinbase {
			continue
		}
		enriched.Inputs[i].Value = remote.Inputs[i].Value.Value
		enriched.Inputs[i].ValueKnown = true
	}
	return enriched, nil
}

// getTx retries transient failures: transport errors, 429 and 5xx
// responses. Anything else fails the lookup immediately.
func (c *Client) getTx(ctx context.Context, txid string) (*txResponse, error) {
	var lastErr error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			if err := c.sleep(ctx, retryDelay); err != nil {
				return nil, err
			}
		}

		parsed, retryable, err := c.doGetTx(ctx, txid)
		if err == nil {
			return parsed, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) doGetTx(ctx context.Context, txid string) (*txResponse, bool, error) {
	endpoint := fmt.Sprintf("%s/%s/txs/%s", c.baseURL, c.currency, url.PathEscape(txid))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("build request for tx %s: %w", txid, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("get tx %s: %w", txid, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode == http.StatusTooManyRequests ||
			resp.StatusCode >= http.StatusInternalServerError
		return nil, retryable, fmt.Errorf("get tx %s: unexpected status %d", txid, resp.StatusCode)
	}

	var parsed txResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, false, fmt.Errorf("decode tx %s: %w", txid, err)
	}
	return &parsed, false, nil
}
