package preview

import (
	"strings"
	"testing"

	"github.com/copyforge/copyforge/internal/models"
	"github.com/copyforge/copyforge/internal/textutil"
)

func TestSimulateAdCopyClampsVariantCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"way above range", 999, 10},
		{"zero", 0, 1},
		{"negative", -5, 1},
		{"inside range", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := models.DefaultBrief()
			b.VariantCount = tt.count
			if got := len(SimulateAdCopy(b)); got != tt.want {
				t.Errorf("len(SimulateAdCopy) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSimulateHeadlinesClampsCount(t *testing.T) {
	b := models.DefaultBrief()

	b.HeadlineCount = 2
	if got := len(SimulateHeadlines(b)); got != 3 {
		t.Errorf("headlineCount=2: got %d items, want 3", got)
	}

	b.HeadlineCount = 50
	if got := len(SimulateHeadlines(b)); got != 20 {
		t.Errorf("headlineCount=50: got %d items, want 20", got)
	}
}

// The GlowSerum scenario: Sales goal, PAS framework, CTA on, hooks on.
func TestSimulateAdCopySalesScenario(t *testing.T) {
	b := models.DefaultBrief()
	b.Product = "GlowSerum"
	b.CampaignGoal = "Sales"
	b.Offer = "20% Off"
	b.Framework = "PAS (Problem-Agitate-Solution)"
	b.IncludeCTA = true
	b.CTAText = "Shop Now"
	b.WordLimit = 40
	b.AddHooks = true
	b.VariantCount = 1

	variations := SimulateAdCopy(b)
	if len(variations) != 1 {
		t.Fatalf("got %d variations, want 1", len(variations))
	}
	v := variations[0]

	salesHooks := hooksByGoal["Sales"]
	hooked := false
	for _, hook := range salesHooks {
		if strings.HasPrefix(v.Body, hook) {
			hooked = true
			break
		}
	}
	if !hooked {
		t.Errorf("body must start with a Sales hook, got: %s", v.Body)
	}

	if !strings.Contains(v.Body, "GlowSerum fixes it") {
		t.Errorf("PAS body must contain the product-fixes-it phrase, got: %s", v.Body)
	}
	if !strings.Contains(v.Body, "Offer: 20% Off") {
		t.Errorf("Sales goal must append the offer, got: %s", v.Body)
	}
	if !strings.HasSuffix(v.Body, "Shop Now") {
		t.Errorf("body must end with the CTA, got: %s", v.Body)
	}
}

func TestSimulateAdCopyHooksCycle(t *testing.T) {
	b := models.DefaultBrief()
	b.CampaignGoal = "Engagement"
	b.AddHooks = true
	b.VariantCount = 6

	variations := SimulateAdCopy(b)
	hooks := hooksByGoal["Engagement"]
	for i, v := range variations {
		if v.Hook != hooks[i%len(hooks)] {
			t.Errorf("variant %d hook = %q, want cycled %q", i, v.Hook, hooks[i%len(hooks)])
		}
	}
}

func TestSimulateAdCopyNoHooks(t *testing.T) {
	b := models.DefaultBrief()
	b.AddHooks = false
	b.VariantCount = 2

	for i, v := range SimulateAdCopy(b) {
		if v.Hook != "" {
			t.Errorf("variant %d: hook should be empty when AddHooks is off, got %q", i, v.Hook)
		}
	}
}

func TestSimulateAdCopyUnknownGoalFallsBackToAwareness(t *testing.T) {
	b := models.DefaultBrief()
	b.CampaignGoal = "Conquest"
	b.AddHooks = true
	b.VariantCount = 1

	v := SimulateAdCopy(b)[0]
	if v.Hook != hooksByGoal["Awareness"][0] {
		t.Errorf("unknown goal should use Awareness hooks, got %q", v.Hook)
	}
}

func TestSimulateAdCopyUSPFallbacks(t *testing.T) {
	b := models.DefaultBrief()
	b.Product = "GlowSerum"
	b.UniquePoints = ""
	b.Framework = "PAS (Problem-Agitate-Solution)"
	b.AddHooks = false
	b.IncludeCTA = false
	b.VariantCount = 1

	body := SimulateAdCopy(b)[0].Body
	if !strings.Contains(body, "targeted actives") || !strings.Contains(body, "clean formula") {
		t.Errorf("missing USP fallbacks in body: %s", body)
	}
}

func TestSimulateAdCopyHashtags(t *testing.T) {
	b := models.DefaultBrief()
	b.Brand = "Glow Co"
	b.CampaignGoal = "Lead Generation"
	b.IncludeHashtags = true
	b.IncludeCTA = false
	b.VariantCount = 1

	body := SimulateAdCopy(b)[0].Body
	if !strings.HasSuffix(body, "#GlowCo #LeadGeneration") {
		t.Errorf("hashtag suffix missing or malformed: %s", body)
	}
}

func TestSimulateAdCopyEmojiSuffix(t *testing.T) {
	b := models.DefaultBrief()
	b.IncludeEmojis = true
	b.IncludeCTA = false
	b.IncludeHashtags = false
	b.VariantCount = 2

	for i, v := range SimulateAdCopy(b) {
		if !strings.HasSuffix(v.Body, emojiCycle[i%len(emojiCycle)]) {
			t.Errorf("variant %d should end with cycled emoji, got: %s", i, v.Body)
		}
	}
}

func TestTextOnCreative(t *testing.T) {
	b := models.DefaultBrief()
	b.Product = "GlowSerum"
	b.CampaignGoal = "Awareness"
	b.VariantCount = 1

	b.IncludeTOC = false
	if toc := SimulateAdCopy(b)[0].TextOnCreative; toc != "" {
		t.Errorf("TOC should be empty when the option is off, got %q", toc)
	}

	b.IncludeTOC = true
	b.AddHooks = false
	toc := SimulateAdCopy(b)[0].TextOnCreative
	if !strings.Contains(toc, "GlowSerum") {
		t.Errorf("hookless TOC should fall back to product — goal, got %q", toc)
	}
	if words := len(strings.Fields(toc)); words > 9 {
		t.Errorf("TOC too long (%d words): %q", words, toc)
	}
}

func TestVariationClipboardText(t *testing.T) {
	v := Variation{Body: "body text"}
	if v.ClipboardText() != "body text" {
		t.Errorf("bare body expected, got %q", v.ClipboardText())
	}

	v.TextOnCreative = "short caption"
	want := "body text\nTOC: short caption"
	if v.ClipboardText() != want {
		t.Errorf("ClipboardText = %q, want %q", v.ClipboardText(), want)
	}
}

// The Mask scenario: Numbered/Listicle starters, 4 headlines of at most 4
// words, no dangling em-dashes after truncation.
func TestSimulateHeadlinesListicleScenario(t *testing.T) {
	b := models.DefaultBrief()
	b.Product = "Mask"
	b.HeadlineStyle = "Numbered / Listicle"
	b.HeadlineCount = 4
	b.HeadlineLength = 4

	headlines := SimulateHeadlines(b)
	if len(headlines) != 4 {
		t.Fatalf("got %d headlines, want 4", len(headlines))
	}

	starters := []string{"3 reasons", "5 ways", "Top 7", "The 2-step"}
	for i, h := range headlines {
		if !strings.HasPrefix(h, starters[i]) {
			t.Errorf("headline %d = %q, want prefix %q", i, h, starters[i])
		}

		words := strings.Fields(strings.TrimSuffix(h, textutil.Ellipsis))
		if len(words) > 4 {
			t.Errorf("headline %d has %d words, want at most 4: %q", i, len(words), h)
		}

		bare := strings.TrimRight(strings.TrimSuffix(h, textutil.Ellipsis), " ")
		if strings.HasSuffix(bare, "—") {
			t.Errorf("headline %d ends in a dangling em-dash: %q", i, h)
		}
	}
}

func TestSimulateHeadlinesGoalTag(t *testing.T) {
	b := models.DefaultBrief()
	b.Product = "Mask"
	b.HeadlineCount = 3
	b.HeadlineLength = 12

	b.CampaignGoal = "Sales"
	b.Offer = "20% Off"
	if h := SimulateHeadlines(b)[0]; !strings.HasSuffix(h, "20% Off") {
		t.Errorf("Sales headlines should end with the offer, got %q", h)
	}

	b.Offer = ""
	if h := SimulateHeadlines(b)[0]; !strings.HasSuffix(h, "Save today") {
		t.Errorf("Sales without offer should fall back to 'Save today', got %q", h)
	}

	b.CampaignGoal = "Engagement"
	if h := SimulateHeadlines(b)[0]; !strings.HasSuffix(h, "Engagement") {
		t.Errorf("non-Sales headlines should end with the goal name, got %q", h)
	}
}

func TestSimulateHeadlinesLowercasesProduct(t *testing.T) {
	b := models.DefaultBrief()
	b.Product = "GlowSerum"
	b.HeadlineCount = 3
	b.HeadlineLength = 12

	for _, h := range SimulateHeadlines(b) {
		if strings.Contains(h, "GlowSerum") {
			t.Errorf("product should be lower-cased in headlines: %q", h)
		}
		if !strings.Contains(h, "glowserum") {
			t.Errorf("lower-cased product missing from headline: %q", h)
		}
	}
}

func TestProofFragment(t *testing.T) {
	tests := []struct {
		name  string
		proof string
		want  string
	}{
		{"first sentence", "4.8 stars from 2,000 reviews. Dermatologist tested.", "4.8 stars from 2,000 reviews"},
		{"semicolon clause", "loved by many; trusted by more", "loved by many"},
		{"leading empties skipped", " . ; \nreal proof here. rest", "real proof here"},
		{"empty falls back", "", fallbackProofFragment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := proofFragment(tt.proof); got != tt.want {
				t.Errorf("proofFragment(%q) = %q, want %q", tt.proof, got, tt.want)
			}
		})
	}
}

func TestSimulatorsAreDeterministic(t *testing.T) {
	b := models.DefaultBrief()
	b.Product = "GlowSerum"
	b.UniquePoints = "vitamin C; vegan"

	first := SimulateAdCopy(b)
	second := SimulateAdCopy(b)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("ad-copy variant %d differs between runs", i)
		}
	}

	h1 := SimulateHeadlines(b)
	h2 := SimulateHeadlines(b)
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Errorf("headline %d differs between runs", i)
		}
	}
}
