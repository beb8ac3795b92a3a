package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/medscan/medscan/pkg/analyzer"
	"github.com/medscan/medscan/pkg/provider"
	"github.com/medscan/medscan/pkg/retry"
)

var _ analyzer.Provider = (*Client)(nil)

// systemPrompt carries the analysis instructions, including the advisory
// medical-domain restriction. The restriction depends entirely on the remote
// model honoring it; nothing here validates the response against it.
const systemPrompt = `You are an AI medical assistant that answers queries based on the given context and relevant medical knowledge.
Here are some guidelines:
- Prioritize information from the provided documents but supplement with general medical knowledge when necessary.
- Ensure accuracy, citing sources from the document where applicable.
- Provide confidence scoring based on probability and reasoning.
- Be concise, informative, and avoid speculation.
YOU WILL ANALYSE ONLY MEDICAL DATA, if other CONTEXT is PASSED you will say "Provide Relevant Medical Data. Thanks"
Answer:
- **Response:**
- **Reasoning:** (explain why this answer is correct and any potential limitations)`

type Client struct {
	completer provider.Completer

	policy retry.Policy
}

type Option func(*Client)

func WithPolicy(policy retry.Policy) Option {
	return func(c *Client) {
		c.policy = policy
	}
}

func New(completer provider.Completer, options ...Option) (*Client, error) {
	c := &Client{
		completer: completer,

		policy: retry.Default(),
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Analyze(ctx context.Context, input analyzer.Input, options *analyzer.AnalyzeOptions) (*analyzer.Analysis, error) {
	if options == nil {
		options = new(analyzer.AnalyzeOptions)
	}

	notify := options.Notify

	if notify == nil {
		notify = func(string) {}
	}

	policy := c.policy

	policy.Notify = func(err error, attempt int, delay time.Duration) {
		notify(fmt.Sprintf("An error occurred. Retrying in %.0f seconds... (Attempt %d/%d)", delay.Seconds(), attempt, policy.Attempts))
	}

	messages := []provider.Message{
		provider.SystemMessage(systemPrompt),
		provider.UserMessage(input.Content),
	}

	var completion *provider.Completion

	err := policy.Do(ctx, func(ctx context.Context) error {
		result, err := c.completer.Complete(ctx, messages, nil)

		if err != nil {
			return err
		}

		completion = result
		return nil
	})

	if err != nil {
		if !provider.IsTemporary(err) {
			return nil, err
		}

		notify(fmt.Sprintf("Failed to analyze the report after %d attempts. Error: %v", policy.Attempts, err))
		notify("Using fallback analysis method due to API issues.")

		return &analyzer.Analysis{
			Text: fallbackAnalysis(input),

			Fallback: true,
		}, nil
	}

	return &analyzer.Analysis{
		Text: completion.Message.Text(),
	}, nil
}
