package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// FniClient fetches the FNI dataset from the upstream backend. The caller's
// bearer token is forwarded as-is; the client never inspects it. Every call
// fetches fresh data, nothing is cached.
type FniClient struct {
	baseURL  string
	endpoint string
	http     *http.Client
}

func NewFniClient(baseURL, endpoint string) *FniClient {
	return &FniClient{
		baseURL:  baseURL,
		endpoint: endpoint,
		http:     &http.Client{},
	}
}

// FetchDataset retrieves the full FNI payload using the user's token.
// Non-200 responses and undecodable bodies are both fetch failures; there
// are no retries.
func (c *FniClient) FetchDataset(token string) (*FniPayload, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build FNI request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch FNI data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch FNI data: upstream returned %d", resp.StatusCode)
	}

	var payload FniPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse FNI data: %w", err)
	}

	total := 0
	for _, group := range payload.Data.Result {
		total += len(group.FnIs)
	}
	log.Printf("Loaded %d total FNI records across all results", total)

	return &payload, nil
}
