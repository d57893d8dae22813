// Package transport delivers commit change sets to the downstream analysis
// endpoint as JSON over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/commitlens/commitlens/internal/domain/entities"
	"github.com/commitlens/commitlens/internal/domain/repositories"
)

const (
	requestTimeout = 30 * time.Second
	maxRetries     = 3
	// maxErrorBody bounds how much of a failing response is echoed in errors.
	maxErrorBody = 512
)

// HTTPPublisherFactory builds HTTP publishers bound to an endpoint.
type HTTPPublisherFactory struct{}

// NewHTTPPublisherFactory creates a new HTTPPublisherFactory.
func NewHTTPPublisherFactory() repositories.PublisherFactory {
	return &HTTPPublisherFactory{}
}

// Create returns a publisher posting to the given endpoint.
func (it *HTTPPublisherFactory) Create(endpoint string) repositories.PublisherRepository {
	client := retryablehttp.NewClient()
	client.RetryMax = maxRetries
	client.HTTPClient.Timeout = requestTimeout
	client.Logger = nil // retry noise is reported once, through the returned error

	return &HTTPPublisher{
		endpoint: endpoint,
		client:   client,
	}
}

// HTTPPublisher implements repositories.PublisherRepository over HTTP POST.
type HTTPPublisher struct {
	endpoint string
	client   *retryablehttp.Client
}

// Publish posts the change set as a JSON body. Any non-2xx response is a
// delivery failure for this commit only.
func (it *HTTPPublisher) Publish(ctx context.Context, changeSet entities.CommitChangeSet) error {
	body, err := json.Marshal(changeSet)
	if err != nil {
		return fmt.Errorf("failed to encode change set: %w", err)
	}

	req, reqErr := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, it.endpoint, body)
	if reqErr != nil {
		return fmt.Errorf("failed to build request for %q: %w", it.endpoint, reqErr)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := it.client.Do(req)
	if doErr != nil {
		return fmt.Errorf("failed to reach %q: %w", it.endpoint, doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("endpoint returned %s: %s", resp.Status, string(detail))
	}

	// Drain so the connection can be reused across commits.
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
