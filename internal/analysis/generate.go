package analysis

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// minContentRunes is the least amount of body text worth analyzing.
	minContentRunes = 100
	// maxContentRunes caps prompt size; longer bodies are truncated with an
	// explicit marker so the model knows the tail is missing.
	maxContentRunes = 15000

	truncationMarker = "\n...(이하 생략)"
)

// User-facing placeholders. The generators never return an error to the
// caller: every failure mode degrades into one of these strings.
const (
	msgNoAPIKey         = "⚠️ Gemini API 키가 설정되지 않았습니다."
	msgNotEnoughContent = "⚠️ 분석할 내용이 충분하지 않습니다."
)

type Generator struct {
	NewClient ClientFactory
	Model     string
}

func NewGenerator(model string) *Generator {
	return &Generator{
		NewClient: func(ctx context.Context, apiKey string) (Client, error) {
			return NewGemini(ctx, apiKey, model)
		},
		Model: model,
	}
}

// InBasket produces the in-basket style report for one briefing. Missing key
// and thin content short-circuit to placeholders before any outbound call.
func (g *Generator) InBasket(ctx context.Context, apiKey, title, content string) string {
	if strings.TrimSpace(apiKey) == "" {
		return msgNoAPIKey
	}
	if runeLen(content) < minContentRunes {
		return msgNotEnoughContent
	}

	if runeLen(content) > maxContentRunes {
		content = string([]rune(content)[:maxContentRunes]) + truncationMarker
	}

	client, err := g.NewClient(ctx, apiKey)
	if err != nil {
		return fmt.Sprintf("⚠️ AI 분석 생성 실패: %v", err)
	}
	defer client.Close()

	text, err := client.Generate(ctx, inbasketPrompt(title, content))
	if err != nil {
		return fmt.Sprintf("⚠️ AI 분석 생성 실패: %v", err)
	}
	return text
}

// Forecast predicts next year's hiring needs. No document input, so there is
// no minimum-length check.
func (g *Generator) Forecast(ctx context.Context, apiKey string) string {
	if strings.TrimSpace(apiKey) == "" {
		return msgNoAPIKey
	}

	client, err := g.NewClient(ctx, apiKey)
	if err != nil {
		return fmt.Sprintf("⚠️ 예측 생성 실패: %v", err)
	}
	defer client.Close()

	text, err := client.Generate(ctx, forecastPrompt)
	if err != nil {
		return fmt.Sprintf("⚠️ 예측 생성 실패: %v", err)
	}
	return text
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
