// Package advisor generates a short plain-language narrative for a finished
// diagnostic report using the Anthropic API. It is strictly additive: every
// number and recommendation comes from the deterministic engine, the model
// only restates them for the owner.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const systemPrompt = "You are a small-business advisor. You will receive a markdown diagnostic report. " +
	"Write a short summary for the owner: 3 to 5 sentences, plain language, no new numbers, " +
	"no recommendations beyond the ones in the report. Respond with the summary text only."

const maxSummaryChars = 2000

type failureClass int

const (
	failureTimeout failureClass = iota
	failureRateLimit
	failureServer
	failureClient
)

// LLMCaller abstracts the model call for testing.
type LLMCaller interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type AnthropicCaller struct {
	messages AnthropicMessager
}

type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type AnthropicClientCreator func(apiKey string) AnthropicMessager

func defaultAnthropicCreator(apiKey string) AnthropicMessager {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c.Messages
}

var newAnthropicClient AnthropicClientCreator = defaultAnthropicCreator

func NewAnthropicCallerFromEnv() (*AnthropicCaller, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	return &AnthropicCaller{messages: newAnthropicClient(apiKey)}, nil
}

func (a *AnthropicCaller) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := a.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.ModelClaudeSonnet4_20250514,
		MaxTokens:   1024,
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(0),
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}

// Service retries transient transport failures and bounds the summary size.
type Service struct {
	caller LLMCaller
}

func NewService(caller LLMCaller) *Service {
	return &Service{caller: caller}
}

func (s *Service) Summarize(ctx context.Context, reportMarkdown string) (string, error) {
	if strings.TrimSpace(reportMarkdown) == "" {
		return "", errors.New("empty report")
	}

	prompt := "Summarize this diagnostic report for the business owner:\n\n" + reportMarkdown
	for attempt := 1; attempt <= 3; attempt++ {
		raw, err := s.caller.GenerateText(ctx, prompt)
		if err != nil {
			class := classifyTransportError(err)
			if attempt < 3 && (class == failureTimeout || class == failureRateLimit || class == failureServer) {
				time.Sleep(backoffDelay(attempt))
				continue
			}
			return "", fmt.Errorf("advisor transport failure: %w", err)
		}

		summary := strings.TrimSpace(raw)
		if summary == "" {
			if attempt < 3 {
				continue
			}
			return "", errors.New("advisor returned an empty summary")
		}
		if len(summary) > maxSummaryChars {
			summary = summary[:maxSummaryChars]
		}
		return summary, nil
	}
	return "", errors.New("advisor failed after retries")
}

func classifyTransportError(err error) failureClass {
	msg := strings.ToLower(err.Error())
	if errors.Is(err, context.DeadlineExceeded) {
		return failureTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return failureTimeout
	}
	switch {
	case strings.Contains(msg, "429"):
		return failureRateLimit
	case strings.Contains(msg, "status code: 5") || strings.Contains(msg, "server error"):
		return failureServer
	case strings.Contains(msg, "status code: 4"):
		return failureClient
	default:
		return failureServer
	}
}

func backoffDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 1 * time.Second
	}
	return 2 * time.Second
}
