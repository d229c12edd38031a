package classifier

import (
	"reflect"
	"testing"
)

func TestClassify_NoKeywordsReturnsDefault(t *testing.T) {
	t.Parallel()

	c := New(WebhookTable)
	for _, text := range []string{"", "Elevated error rates", "Scheduled maintenance of the dashboard"} {
		if got := c.Classify(text); got != WebhookTable.Default {
			t.Fatalf("Classify(%q) = %q; want default %q", text, got, WebhookTable.Default)
		}
	}
}

func TestClassify_SingleProductRegardlessOfOrder(t *testing.T) {
	t.Parallel()

	c := New(WebhookTable)
	cases := []struct {
		name string
		text string
		want string
	}{
		{"realtime forward", "realtime api sessions dropping over webrtc", "OpenAI API - Realtime"},
		{"realtime reversed", "webrtc failures affecting the realtime api", "OpenAI API - Realtime"},
		{"images upper case", "DALL-E and Image Generation degraded", "OpenAI API - Images"},
		{"batch", "Batch jobs stuck in validating", "OpenAI API - Batch"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := c.Classify(tc.text); got != tc.want {
				t.Fatalf("Classify(%q) = %q; want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestClassify_TieKeepsEarlierProduct(t *testing.T) {
	t.Parallel()

	c := New(WebhookTable)
	// one trigger from Batch and one from Realtime; Batch is defined first
	if got := c.Classify("batch api and webrtc errors"); got != "OpenAI API - Batch" {
		t.Fatalf("tie resolved to %q; want OpenAI API - Batch", got)
	}

	swapped := New(KeywordTable{
		Default: "none",
		Products: []Product{
			{Label: "B", Keywords: []string{"webrtc"}},
			{Label: "A", Keywords: []string{"batch api"}},
		},
	})
	if got := swapped.Classify("batch api and webrtc errors"); got != "B" {
		t.Fatalf("tie resolved to %q; want B", got)
	}
}

func TestClassify_HigherScoreWins(t *testing.T) {
	t.Parallel()

	c := New(KeywordTable{
		Default: "none",
		Products: []Product{
			{Label: "first", Keywords: []string{"alpha"}},
			{Label: "second", Keywords: []string{"beta", "gamma"}},
		},
	})
	if got := c.Classify("alpha beta gamma"); got != "second" {
		t.Fatalf("got %q; want second", got)
	}
}

func TestMatch_ChatCompletionsExample(t *testing.T) {
	t.Parallel()

	c := New(WebhookTable)
	text := "Chat Completions API latency Investigating reports of elevated latency in gpt-4o responses"
	res := c.Match(text)
	if res.Label != "OpenAI API - Chat Completions" {
		t.Fatalf("label = %q", res.Label)
	}
	want := []string{"chat completions", "gpt-4o", "gpt-4"}
	if res.Score != len(want) || !reflect.DeepEqual(res.Matched, want) {
		t.Fatalf("score=%d matched=%v; want %v", res.Score, res.Matched, want)
	}

	if got := New(FeedTable).Classify(text); got != "Chat Completions API" {
		t.Fatalf("feed table label = %q", got)
	}
}

func TestNew_LowercasesTriggers(t *testing.T) {
	t.Parallel()

	c := New(KeywordTable{Default: "none", Products: []Product{{Label: "x", Keywords: []string{"GPT-4O"}}}})
	if got := c.Classify("gpt-4o is slow"); got != "x" {
		t.Fatalf("got %q; want x", got)
	}
	if c.Default() != "none" {
		t.Fatalf("default = %q", c.Default())
	}
}

func TestPreset(t *testing.T) {
	t.Parallel()

	if tbl, err := Preset(PresetFeed); err != nil || tbl.Default != FeedTable.Default {
		t.Fatalf("feed preset: %v %q", err, tbl.Default)
	}
	if tbl, err := Preset(PresetWebhook); err != nil || tbl.Default != WebhookTable.Default {
		t.Fatalf("webhook preset: %v %q", err, tbl.Default)
	}
	if _, err := Preset("bogus"); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}
