package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	lastPrompt string
	reply      string
	err        error
	closed     bool
}

func (s *stubClient) Generate(ctx context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func (s *stubClient) Close() error {
	s.closed = true
	return nil
}

// stubGenerator returns a Generator whose factory hands out the given client
// and records whether the factory ran at all.
func stubGenerator(client *stubClient, factoryErr error) (*Generator, *bool) {
	created := false
	g := &Generator{
		Model: "gemini-1.5-flash",
		NewClient: func(ctx context.Context, apiKey string) (Client, error) {
			created = true
			if factoryErr != nil {
				return nil, factoryErr
			}
			return client, nil
		},
	}
	return g, &created
}

func TestInBasketWithoutAPIKey(t *testing.T) {
	g, created := stubGenerator(&stubClient{}, nil)

	got := g.InBasket(context.Background(), "", "제목", strings.Repeat("본문 ", 100))
	assert.Equal(t, "⚠️ Gemini API 키가 설정되지 않았습니다.", got)
	assert.False(t, *created, "no client may be built without a key")

	got = g.InBasket(context.Background(), "   ", "제목", strings.Repeat("본문 ", 100))
	assert.Equal(t, "⚠️ Gemini API 키가 설정되지 않았습니다.", got)
}

func TestInBasketWithThinContent(t *testing.T) {
	g, created := stubGenerator(&stubClient{}, nil)

	got := g.InBasket(context.Background(), "key", "제목", "짧은 본문")
	assert.Equal(t, "⚠️ 분석할 내용이 충분하지 않습니다.", got)
	assert.False(t, *created)
}

func TestInBasketSendsTitleAndContent(t *testing.T) {
	client := &stubClient{reply: "상황 분석 보고서"}
	g, _ := stubGenerator(client, nil)

	content := strings.Repeat("의료기기 수출 동향. ", 20)
	got := g.InBasket(context.Background(), "key", "중요 공고", content)
	require.Equal(t, "상황 분석 보고서", got)

	assert.Contains(t, client.lastPrompt, "중요 공고")
	assert.Contains(t, client.lastPrompt, "의료기기 수출 동향.")
	assert.True(t, client.closed)
}

func TestInBasketTruncatesLongContent(t *testing.T) {
	client := &stubClient{reply: "ok"}
	g, _ := stubGenerator(client, nil)

	content := strings.Repeat("가", 20000)
	g.InBasket(context.Background(), "key", "제목", content)

	assert.Contains(t, client.lastPrompt, "...(이하 생략)")
	assert.NotContains(t, client.lastPrompt, strings.Repeat("가", 15001))
	assert.Contains(t, client.lastPrompt, strings.Repeat("가", 15000))
}

func TestInBasketDegradesOnFailure(t *testing.T) {
	t.Run("factory error", func(t *testing.T) {
		g, _ := stubGenerator(nil, errors.New("bad credentials"))
		got := g.InBasket(context.Background(), "key", "제목", strings.Repeat("본문 ", 100))
		assert.Equal(t, "⚠️ AI 분석 생성 실패: bad credentials", got)
	})

	t.Run("generate error", func(t *testing.T) {
		client := &stubClient{err: errors.New("quota exceeded")}
		g, _ := stubGenerator(client, nil)
		got := g.InBasket(context.Background(), "key", "제목", strings.Repeat("본문 ", 100))
		assert.Equal(t, "⚠️ AI 분석 생성 실패: quota exceeded", got)
		assert.True(t, client.closed)
	})
}

func TestForecast(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		g, created := stubGenerator(&stubClient{}, nil)
		got := g.Forecast(context.Background(), "")
		assert.Equal(t, "⚠️ Gemini API 키가 설정되지 않았습니다.", got)
		assert.False(t, *created)
	})

	t.Run("success", func(t *testing.T) {
		client := &stubClient{reply: "2026년 채용 전망"}
		g, _ := stubGenerator(client, nil)
		got := g.Forecast(context.Background(), "key")
		assert.Equal(t, "2026년 채용 전망", got)
		assert.Contains(t, client.lastPrompt, "채용")
		assert.True(t, client.closed)
	})

	t.Run("failure", func(t *testing.T) {
		client := &stubClient{err: errors.New("timeout")}
		g, _ := stubGenerator(client, nil)
		got := g.Forecast(context.Background(), "key")
		assert.Equal(t, "⚠️ 예측 생성 실패: timeout", got)
	})
}
