package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

type AnalyzeRequest struct {
	URL string `json:"url"`
}

type Analysis struct {
	ID string `json:"id"`

	Analysis string `json:"analysis"`
	Fallback bool   `json:"fallback,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

func (c *Client) Analyze(ctx context.Context, url string) (*Analysis, error) {
	body, err := json.Marshal(AnalyzeRequest{URL: url})

	if err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/v1/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result Analysis

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
