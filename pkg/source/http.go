package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTP returns a resolver fetching namespace fragments as JSON from
// {baseURL}/{locale}/{namespace}.json. A nil client gets a default one
// with a 10 second timeout; the per-call context still applies on top.
func HTTP(client *http.Client, baseURL, namespace string) func(ctx context.Context, locale string) (map[string]any, error) {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return func(ctx context.Context, locale string) (map[string]any, error) {
		url := fmt.Sprintf("%s/%s/%s.json", baseURL, locale, namespace)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("source: building request for %q: %w", url, err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("source: fetching %q: %w", url, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("source: fetching %q: unexpected status %d", url, resp.StatusCode)
		}

		var frag map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&frag); err != nil {
			return nil, fmt.Errorf("source: decoding %q: %w", url, err)
		}

		return frag, nil
	}
}
