package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Expert represents a chat with a single persona.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send to make it simpler for callers.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content, nil
}

// NewCoach creates the trading-coach expert, primed with the journal
// rendered as markdown.
func NewCoach(journal string) *Expert {
	return &Expert{
		Name:      "Coach",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a trading coach reviewing a trader's journal.

			The journal below lists every reconstructed position: side, peak size,
			weighted average entry and exit prices, realized PnL net of fees, and
			the setup tag when the trader assigned one.

			Answer questions about these trades only. Point at concrete numbers
			from the journal. Do not predict markets and do not give financial
			advice beyond reviewing what is already recorded.

			` + journal}}},
		},
	}
}
