package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/medscan/medscan/pkg/provider"
)

// ErrStatus marks a download that reached the server but came back non-2xx.
var ErrStatus = errors.New("unexpected status")

type Client struct {
	client *http.Client
}

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithTimeout caps the whole download. The default client has no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client = &http.Client{
			Timeout: timeout,
		}
	}
}

func New(options ...Option) (*Client, error) {
	c := &Client{
		client: http.DefaultClient,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Fetch(ctx context.Context, rawURL string) (*provider.File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)

	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &provider.File{
		Name: fileName(rawURL),

		Content:     data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func fileName(rawURL string) string {
	u, err := url.Parse(rawURL)

	if err != nil {
		return ""
	}

	name := path.Base(u.Path)

	if name == "." || name == "/" {
		return ""
	}

	return name
}
