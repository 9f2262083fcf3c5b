package client

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ideabunch/reportkit/internal/profile"
)

type fakeClient struct {
	lastRequest openai.ChatCompletionRequest
	response    openai.ChatCompletionResponse
	err         error
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastRequest = request
	return f.response, f.err
}

func TestFetchReport(t *testing.T) {
	fake := &fakeClient{response: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: "  # Report body  "}},
		},
	}}
	p := profile.Profile{GoalType: "extra income", FocusArea: "busy parents"}

	got, err := FetchReport(context.Background(), fake, "test-model", p)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != "# Report body" {
		t.Fatalf("content not trimmed: got %q", got)
	}
	if fake.lastRequest.Model != "test-model" {
		t.Fatalf("model: got %q", fake.lastRequest.Model)
	}
	if len(fake.lastRequest.Messages) != 2 {
		t.Fatalf("messages: got %d", len(fake.lastRequest.Messages))
	}
	if fake.lastRequest.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("first message role: got %q", fake.lastRequest.Messages[0].Role)
	}
	user := fake.lastRequest.Messages[1].Content
	if !strings.Contains(user, "extra income") || !strings.Contains(user, "busy parents") {
		t.Fatalf("profile missing from prompt: %q", user)
	}
}

func TestFetchReport_EmptyResponse(t *testing.T) {
	cases := []openai.ChatCompletionResponse{
		{},
		{Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "   "}}}},
	}
	for i, resp := range cases {
		fake := &fakeClient{response: resp}
		if _, err := FetchReport(context.Background(), fake, "m", profile.Profile{}); !errors.Is(err, ErrEmptyReport) {
			t.Fatalf("case %d: got err %v", i, err)
		}
	}
}

func TestFetchReport_BackendError(t *testing.T) {
	boom := errors.New("boom")
	fake := &fakeClient{err: boom}
	if _, err := FetchReport(context.Background(), fake, "m", profile.Profile{}); !errors.Is(err, boom) {
		t.Fatalf("got err %v", err)
	}
}

func TestPromptFor_FillsBlanks(t *testing.T) {
	got := PromptFor(profile.Profile{})
	for _, want := range []string{"your goal", "your budget", "your target customers"} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing filler %q: %q", want, got)
		}
	}
}
