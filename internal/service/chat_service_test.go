package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pgaray/landing-api/internal/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	args := m.Called(ctx, systemPrompt, userMessage)
	return args.String(0), args.Error(1)
}

func (m *mockProvider) Name() string { return "mock" }

func newTestChatService(p *mockProvider) *chatService {
	svc := NewChatService(p, "", "Loves Go and mountains.", zerolog.Nop()).(*chatService)
	svc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt("", "BIO TEXT")

	assert.Contains(t, prompt, "You are 'Dr. Pablo Garay's Assistant'.")
	assert.Contains(t, prompt, "Bio Context:\nBIO TEXT\n")
	assert.Contains(t, prompt, "MAX 40 WORDS")

	assert.Contains(t, BuildSystemPrompt("Ada", "x"), "You are 'Ada's Assistant'.")
}

func TestReply_Success(t *testing.T) {
	p := new(mockProvider)
	svc := newTestChatService(p)

	p.On("Complete", mock.Anything, svc.SystemPrompt(), "Who are you?").Return("An assistant. Want to know more?", nil)

	resp, err := svc.Reply(context.Background(), "Who are you?")

	require.NoError(t, err)
	assert.Equal(t, "An assistant. Want to know more?", resp.Response)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), resp.Timestamp)
	assert.Contains(t, svc.SystemPrompt(), "Loves Go and mountains.")
	p.AssertExpectations(t)
}

func TestReply_ProviderErrorBecomesApology(t *testing.T) {
	p := new(mockProvider)
	svc := newTestChatService(p)

	p.On("Complete", mock.Anything, mock.Anything, "hola").Return("", errors.New("rate limited"))

	resp, err := svc.Reply(context.Background(), "hola")

	require.NoError(t, err)
	assert.Equal(t, "I'm sorry, I encountered an error: rate limited", resp.Response)
}

func TestReply_BlankMessage(t *testing.T) {
	p := new(mockProvider)
	svc := newTestChatService(p)

	_, err := svc.Reply(context.Background(), "   ")

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	p.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}
