package askdata

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/russross/blackfriday/v2"
	openai "github.com/sashabaranov/go-openai"

	"tweetlens/internal/clients"
	"tweetlens/internal/models"
)

const (
	completionModel = openai.GPT4oMini
	maxRetries      = 3
	answerCacheTTL  = time.Hour

	systemPrompt = "You are a social media analyst. Answer questions about the provided tweets concisely, in markdown."

	// Predefined prompts offered by the dashboard modal.
	SummarizePrompt = "Summarize the main insights from the following tweets:"
	SuggestPrompt   = "Based on these tweets, suggest 5 tweet ideas that could be part of the conversation:"
)

// Cache stores completed answers keyed by prompt hash. A nil Cache disables
// caching entirely.
type Cache interface {
	GetAnswer(ctx context.Context, key string) (string, bool)
	SetAnswer(ctx context.Context, key string, answer string, ttl time.Duration) error
}

type Service struct {
	client *clients.OpenAIClient
	cache  Cache
}

func NewService(client *clients.OpenAIClient, cache Cache) *Service {
	return &Service{client: client, cache: cache}
}

// PromptForMode maps a predefined mode onto its prompt; an unknown or empty
// mode falls through to the free-text question.
func PromptForMode(mode, question string) string {
	switch mode {
	case "summarize":
		return SummarizePrompt
	case "suggest":
		return SuggestPrompt
	}
	return question
}

// BuildPrompt flattens the displayed tweet contents under the question the
// same way the dashboard modal does.
func BuildPrompt(question string, tweets []models.AnnotatedTweet) string {
	contents := make([]string, 0, len(tweets))
	for _, tweet := range tweets {
		contents = append(contents, tweet.Tweet)
	}
	return question + "\n\nTweets:\n" + strings.Join(contents, " ")
}

// Answer runs the prompt through the completion endpoint, serving from the
// cache when an identical prompt was answered recently. Transient completion
// failures are retried with a linear backoff before giving up.
func (s *Service) Answer(ctx context.Context, prompt string) (models.AskAnswer, error) {
	requestID := uuid.NewString()
	key := cacheKey(prompt)

	if s.cache != nil {
		if answer, ok := s.cache.GetAnswer(ctx, key); ok {
			slog.Info("[AskData] Served answer from cache",
				slog.String("request_id", requestID))
			return newAnswer(requestID, answer, true), nil
		}
	}

	var resp openai.ChatCompletionResponse
	var completionErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		resp, completionErr = s.client.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: completionModel,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if completionErr == nil {
			break
		}

		slog.Warn("[AskData] Completion attempt failed",
			slog.String("request_id", requestID),
			slog.Int("attempt", attempt),
			slog.String("error", completionErr.Error()))
		time.Sleep(time.Second * time.Duration(attempt))
	}
	if completionErr != nil {
		return models.AskAnswer{}, fmt.Errorf("[AskData] completion failed after %d attempts: %w", maxRetries, completionErr)
	}
	if len(resp.Choices) == 0 {
		return models.AskAnswer{}, fmt.Errorf("[AskData] completion returned no choices")
	}

	answer := resp.Choices[0].Message.Content

	if s.cache != nil {
		if err := s.cache.SetAnswer(ctx, key, answer, answerCacheTTL); err != nil {
			slog.Warn("[AskData] Failed to cache answer",
				slog.String("request_id", requestID),
				slog.String("error", err.Error()))
		}
	}

	slog.Info("[AskData] Completion succeeded",
		slog.String("request_id", requestID),
		slog.Int("answer_length", len(answer)))
	return newAnswer(requestID, answer, false), nil
}

func newAnswer(requestID, markdown string, cached bool) models.AskAnswer {
	return models.AskAnswer{
		RequestID:  requestID,
		Answer:     markdown,
		AnswerHTML: string(blackfriday.Run([]byte(markdown))),
		Cached:     cached,
	}
}

func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "askdata:answer:" + hex.EncodeToString(sum[:])
}
