package assist

import (
    "context"
    "strings"

    "github.com/rs/zerolog/log"
    openai "github.com/sashabaranov/go-openai"

    "github.com/goldcore/pricewatch/internal/price"
)

// Client is the minimal chat-completion surface needed here. It mirrors
// the CreateChatCompletion method so any OpenAI-compatible or local
// backend can be adapted.
type Client interface {
    CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Extractor asks a chat model for a listing price when the regex heuristic
// comes up empty. The model's answer is trusted only when it contains a
// well-formed pound amount, validated with the same pattern that governs
// page scanning.
type Extractor struct {
    Client Client
    Model  string
    // MaxChars truncates the page text sent to the model. Zero means 6000.
    MaxChars int
}

const systemPrompt = "You read product page text from UK bullion dealers. " +
    "Reply with the total listed price of the product as a pound amount " +
    "like £1,234.56 and nothing else. If no price is listed reply NONE."

// Price returns the model's price for the page text, or false when the
// model is unavailable, declines, or answers with anything that is not a
// pound amount.
func (e *Extractor) Price(ctx context.Context, text string) (float64, bool) {
    if e == nil || e.Client == nil || strings.TrimSpace(text) == "" {
        return 0, false
    }
    max := e.MaxChars
    if max <= 0 {
        max = 6000
    }
    if len(text) > max {
        text = text[:max]
    }

    resp, err := e.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
        Model: e.Model,
        Messages: []openai.ChatCompletionMessage{
            {Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
            {Role: openai.ChatMessageRoleUser, Content: text},
        },
        Temperature: 0,
    })
    if err != nil {
        log.Debug().Err(err).Msg("assist completion failed")
        return 0, false
    }
    if len(resp.Choices) == 0 {
        return 0, false
    }
    answer := strings.TrimSpace(resp.Choices[0].Message.Content)
    if strings.EqualFold(answer, "NONE") {
        return 0, false
    }
    return price.Amount(answer)
}
