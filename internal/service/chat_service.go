package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pgaray/landing-api/internal/common"
	"github.com/pgaray/landing-api/internal/domain"
	"github.com/pgaray/landing-api/pkg/llm"
	"github.com/rs/zerolog"
)

const systemPromptTemplate = `You are '%s's Assistant'.

INSTRUCTIONS:
1. **MAXIMUM 40 WORDS PER RESPONSE.** NO EXCEPTIONS.
2. Answer the user's question directly and briefly.
3. ALWAYS end with a short question engaging the user to ask more.
4. Speak in the user's language (Spanish preferred).
5. Do NOT list items. Do NOT summarize everything.

Bio Context:
%s

REMEMBER: BE BRIEF. MAX 40 WORDS.`

// DefaultAssistantOwner is the name the assistant speaks for
const DefaultAssistantOwner = "Dr. Pablo Garay"

// ChatService answers visitor questions through the configured LLM provider
type ChatService interface {
	Reply(ctx context.Context, message string) (*domain.ChatResponse, error)
	SystemPrompt() string
}

type chatService struct {
	provider     llm.Provider
	systemPrompt string
	log          zerolog.Logger
	now          func() time.Time
}

// NewChatService creates a ChatService. The biography is fixed for the
// lifetime of the service.
func NewChatService(provider llm.Provider, owner, biography string, log zerolog.Logger) ChatService {
	return &chatService{
		provider:     provider,
		systemPrompt: BuildSystemPrompt(owner, biography),
		log:          log,
		now:          time.Now,
	}
}

// BuildSystemPrompt renders the assistant instructions around the biography
func BuildSystemPrompt(owner, biography string) string {
	if owner == "" {
		owner = DefaultAssistantOwner
	}
	return fmt.Sprintf(systemPromptTemplate, owner, biography)
}

// SystemPrompt returns the prompt sent with every message
func (s *chatService) SystemPrompt() string {
	return s.systemPrompt
}

// Reply forwards message to the provider. Provider failures are turned into
// an apology for the visitor rather than an error.
func (s *chatService) Reply(ctx context.Context, message string) (*domain.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, common.ErrInvalidInput
	}

	s.log.Debug().Str("provider", s.provider.Name()).Int("message_len", len(message)).Msg("chat request")

	text, err := s.provider.Complete(ctx, s.systemPrompt, message)
	if err != nil {
		s.log.Warn().Err(err).Str("provider", s.provider.Name()).Msg("chat provider failed")
		text = fmt.Sprintf("I'm sorry, I encountered an error: %v", err)
	}

	return &domain.ChatResponse{Response: text, Timestamp: s.now()}, nil
}
