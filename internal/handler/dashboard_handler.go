package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tweetlens/internal/askdata"
	"tweetlens/internal/batching"
	"tweetlens/internal/insights"
	"tweetlens/internal/models"
	"tweetlens/internal/utils"
)

// AskService answers a fully-built prompt. Nil disables the ask endpoint.
type AskService interface {
	Answer(ctx context.Context, prompt string) (models.AskAnswer, error)
}

type DashboardHandler struct {
	store     batching.Store
	batchSize int64
	ask       AskService
}

func NewDashboardHandler(store batching.Store, batchSize int64, ask AskService) *DashboardHandler {
	return &DashboardHandler{store: store, batchSize: batchSize, ask: ask}
}

// GetBatches serves the full batch catalog. A store failure degrades to an
// empty catalog with HTTP 200; the UI treats empty as "no data".
func (h *DashboardHandler) GetBatches(c *gin.Context) {
	batches, err := batching.PlanBatches(c.Request.Context(), h.store, h.batchSize)
	if err != nil {
		slog.Error("[DashboardHandler] Failed to plan batches, serving empty catalog",
			slog.String("error", err.Error()))
		c.JSON(http.StatusOK, BatchesResponse{Batches: []models.Batch{}})
		return
	}

	c.JSON(http.StatusOK, BatchesResponse{Batches: batches})
}

// GetTweets resolves the selected batches, normalizes every tweet and
// attaches the insights summary. Store failures degrade to an empty feed.
func (h *DashboardHandler) GetTweets(c *gin.Context) {
	selected := ParseBatchNumbers(c.Query("batches"))

	tweets, err := h.fetchAnnotated(c.Request.Context(), selected)
	if err != nil {
		slog.Error("[DashboardHandler] Failed to resolve batches, serving empty feed",
			slog.String("error", err.Error()))
		c.JSON(http.StatusOK, TweetsResponse{
			Tweets:          []models.AnnotatedTweet{},
			Insights:        insights.BuildSummary(nil),
			SelectedBatches: selected,
		})
		return
	}

	c.JSON(http.StatusOK, TweetsResponse{
		Tweets:          tweets,
		Insights:        insights.BuildSummary(tweets),
		SelectedBatches: selected,
	})
}

// AskData forwards the selected tweets plus the user question to the
// completion service and returns the answer as markdown and rendered HTML.
func (h *DashboardHandler) AskData(c *gin.Context) {
	if h.ask == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ask-the-data is not configured"})
		return
	}

	var req models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	question := askdata.PromptForMode(req.Mode, strings.TrimSpace(req.Question))
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question or mode is required"})
		return
	}

	selected := ParseBatchNumbers(req.Batches)
	tweets, err := h.fetchAnnotated(c.Request.Context(), selected)
	if err != nil {
		slog.Error("[DashboardHandler] Failed to load tweets for ask request, answering without them",
			slog.String("error", err.Error()))
		tweets = nil
	}

	answer, err := h.ask.Answer(c.Request.Context(), askdata.BuildPrompt(question, tweets))
	if err != nil {
		slog.Error("[DashboardHandler] Ask request failed",
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch a response"})
		return
	}

	c.JSON(http.StatusOK, answer)
}

func (h *DashboardHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *DashboardHandler) fetchAnnotated(ctx context.Context, selected []int) ([]models.AnnotatedTweet, error) {
	raw, err := batching.ResolveBatches(ctx, h.store, selected, h.batchSize)
	if err != nil {
		return nil, err
	}

	tweets := make([]models.AnnotatedTweet, 0, len(raw))
	for _, r := range raw {
		tweets = append(tweets, utils.RawToAnnotatedTweet(r))
	}
	return tweets, nil
}

// ParseBatchNumbers applies the batches query contract: comma-separated
// positive integers, bad tokens silently dropped, and an empty selection
// (absent or fully unparseable) falls back to batch 1.
func ParseBatchNumbers(param string) []int {
	var batchNumbers []int
	for _, token := range strings.Split(param, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || n < 1 {
			continue
		}
		batchNumbers = append(batchNumbers, n)
	}

	if len(batchNumbers) == 0 {
		return []int{1}
	}
	return batchNumbers
}
