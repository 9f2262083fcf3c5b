// Package client adapts an OpenAI-compatible backend for fetching raw
// recommendation reports. Report generation itself lives upstream; this is
// transport glue so the CLI can run end to end without a saved report file.
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ideabunch/reportkit/internal/profile"
)

// Client is the minimal surface needed to request a report. It mirrors the
// CreateChatCompletion call so any OpenAI-compatible or local backend can be
// adapted.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider adapts *openai.Client to the Client interface.
type OpenAIProvider struct {
	Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return p.Inner.CreateChatCompletion(ctx, request)
}

// New builds an OpenAIProvider for baseURL. An empty baseURL uses the
// default OpenAI endpoint.
func New(baseURL, apiKey string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if strings.TrimSpace(baseURL) != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{Inner: openai.NewClientWithConfig(cfg)}
}

// ErrEmptyReport signals that the backend returned no usable report text.
var ErrEmptyReport = errors.New("backend returned an empty report")

const reportSystemPrompt = "You are a startup advisor. Produce a comprehensive " +
	"markdown recommendation report for the founder profile you are given: a " +
	"numbered list of three ideas with bold titles, a risk matrix table, a " +
	"recommendation matrix, validation questions, a financial outlook, and a " +
	"90-day launch plan split into Days 0-30, Days 31-60 and Days 61-90."

// PromptFor renders the founder profile into the user prompt. Exposed so
// callers can derive cache keys from the exact request text.
func PromptFor(p profile.Profile) string {
	lines := []string{
		"Founder profile:",
		"- Goal: " + p.Goal(),
		"- Time commitment: " + p.Time(),
		"- Budget: " + p.Budget(),
		"- Strongest skill: " + p.Skill(),
		"- Work style: " + p.Style(),
		"- Focus area: " + p.Audience(),
	}
	return strings.Join(lines, "\n")
}

// FetchReport requests a raw recommendation report for the profile.
func FetchReport(ctx context.Context, c Client, model string, p profile.Profile) (string, error) {
	resp, err := c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: reportSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: PromptFor(p)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("fetch report: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyReport
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyReport
	}
	return content, nil
}
