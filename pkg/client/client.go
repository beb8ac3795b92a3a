package client

import (
	"errors"
	"net/http"
	"strings"
)

type Client struct {
	client *http.Client

	url string
}

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		client: http.DefaultClient,

		url: strings.TrimRight(url, "/"),
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}
