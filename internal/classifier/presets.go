package classifier

import "fmt"

// Preset names.
const (
	PresetWebhook = "webhook"
	PresetFeed    = "feed"
)

// WebhookTable is the table used for Statuspage webhook deliveries.
var WebhookTable = KeywordTable{
	Default: "OpenAI Platform / Multiple services",
	Products: []Product{
		{Label: "OpenAI API - Chat Completions", Keywords: []string{"chat completions", "gpt-4o", "gpt-4.1", "gpt-4", "gpt-3.5"}},
		{Label: "OpenAI API - Responses", Keywords: []string{"responses api", "responses endpoint", "response api"}},
		{Label: "OpenAI API - Assistants", Keywords: []string{"assistants api", "assistant api"}},
		{Label: "OpenAI API - Batch", Keywords: []string{"batch api", "batch jobs", "batch endpoint"}},
		{Label: "OpenAI API - Realtime", Keywords: []string{"realtime api", "webrtc", "realtime connections"}},
		{Label: "OpenAI API - Embeddings", Keywords: []string{"embeddings api", "embedding api", "embeddings endpoint"}},
		{Label: "OpenAI API - Moderation", Keywords: []string{"moderation api", "moderations endpoint"}},
		{Label: "OpenAI API - Vector Stores", Keywords: []string{"vector stores api", "vector store"}},
		{Label: "OpenAI API - Fine-tuning", Keywords: []string{"fine-tuning", "fine tuning"}},
		{Label: "OpenAI API - Images", Keywords: []string{"images api", "image generation", "image api", "dall-e"}},
	},
}

// FeedTable is the table used for RSS feed entries. Its triggers are broader
// than WebhookTable's because feed summaries are short.
var FeedTable = KeywordTable{
	Default: "OpenAI Platform / Multiple Services",
	Products: []Product{
		{Label: "Chat Completions API", Keywords: []string{"chat completions", "gpt-4", "gpt-4o", "gpt-3.5", "chatgpt"}},
		{Label: "Responses API", Keywords: []string{"responses api", "response endpoint"}},
		{Label: "Assistants API", Keywords: []string{"assistants api", "assistant"}},
		{Label: "Batch API", Keywords: []string{"batch api", "batch job"}},
		{Label: "Realtime API", Keywords: []string{"realtime api", "realtime"}},
		{Label: "Embeddings API", Keywords: []string{"embedding", "embeddings"}},
		{Label: "Moderation API", Keywords: []string{"moderation", "moderate"}},
		{Label: "Vector Stores API", Keywords: []string{"vector store", "vector database"}},
		{Label: "Fine-tuning API", Keywords: []string{"fine-tune", "fine tuning"}},
		{Label: "Image Generation API", Keywords: []string{"image", "dall-e"}},
	},
}

// Preset resolves a built-in table by name.
func Preset(name string) (KeywordTable, error) {
	switch name {
	case PresetWebhook:
		return WebhookTable, nil
	case PresetFeed:
		return FeedTable, nil
	default:
		return KeywordTable{}, fmt.Errorf("unknown classifier preset %q", name)
	}
}
