package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vibenav/models"

	"go.uber.org/zap"
)

var (
	ErrEmptyMessage  = errors.New("message is required")
	ErrNotConfigured = errors.New("chat model is not configured")
)

const (
	defaultPersonality = "explorer"
	defaultPreferred   = "interesting places"
	defaultCity        = "Unknown city"
)

// Assistant is the travel chat agent. Conversations with a session id are kept in Redis.
type Assistant struct {
	model   ChatModel
	store   *RedisContextStore
	timeout time.Duration
	logger  *zap.Logger
}

// NewAssistant builds the chat agent. A positive timeout bounds each model call.
func NewAssistant(model ChatModel, store *RedisContextStore, timeout time.Duration, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{model: model, store: store, timeout: timeout, logger: logger.With(zap.String("component", "assistant"))}
}

// SystemPrompt describes the assistant's persona for one user.
func SystemPrompt(profile models.Profile, cityContext string) string {
	personality := string(profile.PersonalityType)
	if personality == "" {
		personality = defaultPersonality
	}
	preferred := defaultPreferred
	if len(profile.PreferredPlaces) > 0 {
		places := profile.PreferredPlaces
		if len(places) > 3 {
			places = places[:3]
		}
		preferred = strings.Join(places, ", ")
	}
	if cityContext == "" {
		cityContext = defaultCity
	}
	return fmt.Sprintf(`You are Vibe Navigator AI, an intelligent assistant specializing in travel and local discovery.
The user's personality is %s, and they love places like %s.
The current city is %s. Be helpful, engaging, and concise.`, personality, preferred, cityContext)
}

func (a *Assistant) Reply(ctx context.Context, req models.ChatRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", ErrEmptyMessage
	}
	if a.model == nil {
		return "", ErrNotConfigured
	}

	history := req.ConversationHistory
	var stored *models.ChatContext
	if req.SessionID != "" && a.store != nil {
		var err error
		stored, err = a.store.Get(ctx, req.SessionID)
		if err != nil {
			a.logger.Warn("Failed to load chat context", zap.String("sessionId", req.SessionID), zap.Error(err))
			stored = &models.ChatContext{}
		}
		if len(history) == 0 {
			history = stored.History
		}
	}

	chatCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		chatCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	reply, err := a.model.Chat(chatCtx, SystemPrompt(req.Profile, req.CityContext), history, req.Message)
	if err != nil {
		return "", err
	}

	if stored != nil {
		stored.History = append(append([]models.ChatMessage(nil), history...),
			models.ChatMessage{Type: "user", Content: req.Message},
			models.ChatMessage{Type: "agent", Content: reply})
		if err := a.store.Set(ctx, req.SessionID, stored); err != nil {
			a.logger.Warn("Failed to save chat context", zap.String("sessionId", req.SessionID), zap.Error(err))
		}
	}
	return reply, nil
}
