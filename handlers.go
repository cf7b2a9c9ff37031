package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// Canned response strings for the non-error chat outcomes. An empty query
// after cleaning and a query with no matches are distinct answers, not
// failures.
const (
	guidanceResponse = "Please specify what you'd like me to show, e.g. 'Show me FNI for Guarantee Agreement'."
	noMatchResponse  = "Hmm, I couldn't find any match for that. Try asking differently, e.g. 'Show me FNI in document type Guarantee Agreement'."
	fetchFailedError = "Failed to fetch FNI data from server."
)

// Bot wires the upstream client, the vocabulary store and the match policy
// behind the HTTP handlers. Handlers share no per-request state, so echo
// may run them concurrently without coordination.
type Bot struct {
	client *FniClient
	vocab  *VocabStore
	policy MatchPolicy
}

func NewBot(client *FniClient, vocab *VocabStore, policy MatchPolicy) *Bot {
	return &Bot{
		client: client,
		vocab:  vocab,
		policy: policy,
	}
}

func (b *Bot) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "LUAN - Infracredit AI Bot API is running",
	})
}

func (b *Bot) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"timestamp":    time.Now(),
		"match_policy": b.policy.String(),
	})
}

// bearerToken pulls the opaque token out of the Authorization header. The
// token is never validated here, only forwarded upstream.
func bearerToken(c echo.Context) string {
	auth := strings.TrimSpace(c.Request().Header.Get("Authorization"))
	if len(auth) >= 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return auth
}

func (b *Bot) handleWelcome(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Missing bearer token",
		})
	}

	payload, err := b.client.FetchDataset(token)
	if err != nil {
		log.Printf("Welcome fetch failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": fetchFailedError,
		})
	}

	return c.JSON(http.StatusOK, BuildIntro(payload))
}

func (b *Bot) handleChat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	token := bearerToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Missing bearer token",
		})
	}

	// Fetched fresh on every request and discarded when the request ends.
	payload, err := b.client.FetchDataset(token)
	if err != nil {
		log.Printf("Chat fetch failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": fetchFailedError,
		})
	}

	vocab := b.vocab.Current()
	classifier := NewClassifier(vocab)
	normalizer := NewNormalizer(vocab)

	intent := classifier.Classify(req.Query)
	if intent == IntentGreeting {
		return c.JSON(http.StatusOK, BuildIntro(payload))
	}

	q := normalizer.Query(req.Query, intent == IntentFuzzyCommand)
	log.Printf("Intent %s, cleaned query: %q", intent, q.Text)

	if !q.HasTerms(b.policy) {
		return c.JSON(http.StatusOK, ChatResponse{Response: guidanceResponse})
	}

	matches := Match(q, payload, b.policy)
	if len(matches) == 0 {
		return c.JSON(http.StatusOK, ChatResponse{Response: noMatchResponse})
	}

	return c.JSON(http.StatusOK, ChatResponse{Response: matches})
}

type ReloadResponse struct {
	Message    string    `json:"message"`
	ReloadedAt time.Time `json:"reloaded_at"`
}

func (b *Bot) handleReloadVocab(c echo.Context) error {
	if err := b.vocab.Reload(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, ReloadResponse{
		Message:    "Vocabulary reloaded",
		ReloadedAt: time.Now(),
	})
}

func (b *Bot) handleVocabInfo(c echo.Context) error {
	info := b.vocab.Info()
	info["timestamp"] = time.Now()
	return c.JSON(http.StatusOK, info)
}
