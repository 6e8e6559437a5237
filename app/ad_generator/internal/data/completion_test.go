package data

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/ad_generator/app/ad_generator/internal/conf"
)

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// newFakeOpenAI 模拟 OpenAI chat/completions 接口
func newFakeOpenAI(t *testing.T, status int, content string, got *chatRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		if got != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "gpt-3.5-turbo",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestData(t *testing.T, baseURL string) *Data {
	t.Helper()
	d, cleanup, err := NewData(&conf.LLM{
		BaseUrl: baseURL,
		ApiKey:  "sk-test",
		Model:   "gpt-3.5-turbo",
		Timeout: "5s",
	}, log.DefaultLogger)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return d
}

func TestCompleter_OpenAI(t *testing.T) {
	var req chatRequest
	srv := newFakeOpenAI(t, http.StatusOK, "[Campaign Title]\nZero Sugar, Full Flavor", &req)
	c := NewCompleter(newTestData(t, srv.URL), log.DefaultLogger)

	text, err := c.Complete(context.Background(), "write an ad")
	require.NoError(t, err)
	assert.Equal(t, "[Campaign Title]\nZero Sugar, Full Flavor", text)

	assert.Equal(t, "gpt-3.5-turbo", req.Model)
	assert.InDelta(t, 0.7, req.Temperature, 1e-6)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Equal(t, "write an ad", req.Messages[0].Content)
}

func TestCompleter_OpenAIError(t *testing.T) {
	srv := newFakeOpenAI(t, http.StatusUnauthorized, "", nil)
	c := NewCompleter(newTestData(t, srv.URL), log.DefaultLogger)

	_, err := c.Complete(context.Background(), "write an ad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat completion")
}

// stubChatModel 用于覆盖超时与空响应分支
type stubChatModel struct {
	delay time.Duration
	resp  *schema.Message
}

func (m *stubChatModel) Generate(ctx context.Context, _ []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(m.delay):
		return m.resp, nil
	}
}

func (m *stubChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, nil
}

func TestCompleter_Timeout(t *testing.T) {
	d := &Data{chatModel: &stubChatModel{delay: time.Second}, timeout: 10 * time.Millisecond}
	c := NewCompleter(d, log.DefaultLogger)

	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCompleter_EmptyResponse(t *testing.T) {
	d := &Data{chatModel: &stubChatModel{}, timeout: time.Second}
	c := NewCompleter(d, log.DefaultLogger)

	_, err := c.Complete(context.Background(), "prompt")
	assert.EqualError(t, err, "chat completion: empty response")
}
