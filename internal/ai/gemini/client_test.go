package gemini

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type scriptedReply struct {
	text string
	err  error
}

type recordedChat struct {
	model    string
	config   *genai.GenerateContentConfig
	messages []string
}

// scriptedChats hands out one chat per Create call, each answering with the
// next scripted reply.
type scriptedChats struct {
	mu      sync.Mutex
	replies []scriptedReply
	chats   []*recordedChat
}

type scriptedChat struct {
	owner  *scriptedChats
	record *recordedChat
	reply  scriptedReply
}

func (c *scriptedChat) SendMessage(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	c.owner.mu.Lock()
	defer c.owner.mu.Unlock()
	for _, part := range parts {
		c.record.messages = append(c.record.messages, part.Text)
	}
	if c.reply.err != nil {
		return nil, c.reply.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: c.reply.text}}},
		}},
	}, nil
}

func (s *scriptedChats) Create(_ context.Context, model string, config *genai.GenerateContentConfig, _ []*genai.Content) (chatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.replies) == 0 {
		return nil, errors.New("unexpected call")
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	record := &recordedChat{model: model, config: config}
	s.chats = append(s.chats, record)
	return &scriptedChat{owner: s, record: record, reply: reply}, nil
}

func noSleep(t *testing.T) *[]time.Duration {
	t.Helper()
	var delays []time.Duration
	original := sleep
	sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	t.Cleanup(func() { sleep = original })
	return &delays
}

func newTestGenerator(chats chatCreator, retries int) *Generator {
	return &Generator{chats: chats, model: "gemini-test", maxRetries: retries, logger: zap.NewNop()}
}

var internalErr = genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}

func TestGeneratorRetriesOnServerError(t *testing.T) {
	delays := noSleep(t)
	chats := &scriptedChats{replies: []scriptedReply{{err: internalErr}, {err: internalErr}, {text: ` {"technical_skills":["go"]} `}}}

	out, err := newTestGenerator(chats, 3).GenerateContent(context.Background(), "extract keywords", "Go developer")
	require.NoError(t, err)
	assert.Equal(t, `{"technical_skills":["go"]}`, out)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, *delays)

	require.Len(t, chats.chats, 3)
	for _, chat := range chats.chats {
		assert.Equal(t, "gemini-test", chat.model)
		require.NotNil(t, chat.config.SystemInstruction)
		assert.Equal(t, "extract keywords", chat.config.SystemInstruction.Parts[0].Text)
		assert.Equal(t, "application/json", chat.config.ResponseMIMEType)
		assert.Equal(t, []string{"Go developer"}, chat.messages)
	}
}

func TestGeneratorStopsAfterRetriesExhausted(t *testing.T) {
	noSleep(t)
	chats := &scriptedChats{replies: []scriptedReply{{err: internalErr}, {err: internalErr}}}

	_, err := newTestGenerator(chats, 2).GenerateContent(context.Background(), "sys", "msg")
	require.Error(t, err)

	var apiErr genai.APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Len(t, chats.chats, 2)
}

func TestGeneratorQuotaDelay(t *testing.T) {
	t.Run("short delay is honoured", func(t *testing.T) {
		delays := noSleep(t)
		quota := genai.APIError{Code: http.StatusTooManyRequests, Message: "Quota exceeded. Please retry in 7.5s."}
		chats := &scriptedChats{replies: []scriptedReply{{err: quota}, {text: "{}"}}}

		_, err := newTestGenerator(chats, 3).GenerateContent(context.Background(), "sys", "msg")
		require.NoError(t, err)
		assert.Equal(t, []time.Duration{7500 * time.Millisecond}, *delays)
	})

	t.Run("long delay gives up", func(t *testing.T) {
		noSleep(t)
		quota := genai.APIError{Code: http.StatusTooManyRequests, Message: "quota exhausted, retry after 60 seconds"}
		chats := &scriptedChats{replies: []scriptedReply{{err: quota}}}

		_, err := newTestGenerator(chats, 3).GenerateContent(context.Background(), "sys", "msg")
		require.Error(t, err)
		assert.Len(t, chats.chats, 1)
	})
}

func TestGeneratorDoesNotRetryClientErrors(t *testing.T) {
	noSleep(t)
	chats := &scriptedChats{replies: []scriptedReply{{err: genai.APIError{Code: http.StatusBadRequest}}}}

	_, err := newTestGenerator(chats, 3).GenerateContent(context.Background(), "sys", "msg")
	require.Error(t, err)
	assert.Len(t, chats.chats, 1)
}

func TestGeneratorStopsWhenContextCancelled(t *testing.T) {
	chats := &scriptedChats{replies: []scriptedReply{{err: internalErr}, {text: "{}"}}}
	original := sleep
	sleep = func(context.Context, time.Duration) error { return context.Canceled }
	t.Cleanup(func() { sleep = original })

	_, err := newTestGenerator(chats, 3).GenerateContent(context.Background(), "sys", "msg")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, chats.chats, 1)
}

func TestGeneratorValidation(t *testing.T) {
	var g *Generator
	_, err := g.GenerateContent(context.Background(), "sys", "msg")
	assert.Error(t, err)

	_, err = newTestGenerator(&scriptedChats{}, 1).GenerateContent(context.Background(), "sys", "  ")
	assert.EqualError(t, err, "message must not be empty")

	_, err = NewGenerator(context.Background(), " ", "", 0, nil)
	assert.EqualError(t, err, "gemini api key is required")
}

func TestResponseTextJoinsParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		nil,
		{Content: &genai.Content{Parts: []*genai.Part{{Text: " a "}, nil, {Text: ""}, {Text: "b"}}}},
	}}

	out, err := responseText(resp)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", out)

	_, err = responseText(&genai.GenerateContentResponse{})
	assert.EqualError(t, err, "gemini api returned empty response")
}
