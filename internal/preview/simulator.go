// Package preview mocks what generated ad copy or headlines might look like,
// entirely offline. The output is deterministic: canned tables indexed by
// catalog value, cycled by item index, with no randomness anywhere. It is a
// preview of shape and settings, not of quality.
package preview

import (
	"strings"

	"github.com/copyforge/copyforge/internal/models"
	"github.com/copyforge/copyforge/internal/textutil"
	"github.com/copyforge/copyforge/internal/validation"
)

// Variation is one mock ad-copy result. TextOnCreative is empty when the
// text-on-creative option is off.
type Variation struct {
	Hook           string
	Body           string
	TextOnCreative string
}

// ClipboardText is the form a single variation takes when copied: the body,
// plus a TOC trailer line when one exists.
func (v Variation) ClipboardText() string {
	if v.TextOnCreative == "" {
		return v.Body
	}
	return v.Body + "\nTOC: " + v.TextOnCreative
}

const (
	fallbackProofFragment = "Customers notice the difference"
	fallbackOffer         = "a limited-time deal"
	fallbackCTA           = "Learn more"
	fallbackSimProduct    = "your product"
	fallbackHashtagBrand  = "YourBrand"
)

// SimulateAdCopy produces clamp(VariantCount, 1, 10) mock variations. The
// whole slice is rebuilt from scratch on every call; there is no incremental
// update to get out of sync.
func SimulateAdCopy(b models.Brief) []Variation {
	n := validation.ClampInt(b.VariantCount, models.VariantCountMin, models.VariantCountMax)

	goal := textutil.SanitizeOrFallback(b.CampaignGoal, hookFallbackGoal)
	hooks, ok := hooksByGoal[goal]
	if !ok {
		hooks = hooksByGoal[hookFallbackGoal]
	}

	product := textutil.SanitizeOrFallback(b.Product, fallbackSimProduct)
	usps := textutil.SplitDelimitedList(b.UniquePoints)
	pick := func(i int) string {
		if i < len(usps) {
			return usps[i]
		}
		return uspFallbacks[i]
	}

	tmpl, ok := bodyByFramework[b.Framework]
	if !ok {
		tmpl = genericBody
	}

	body := tmpl(product, pick(0), pick(1), pick(2), proofFragment(b.Proof))
	if goal == "Sales" || goal == "Retargeting" {
		body += " Offer: " + textutil.SanitizeOrFallback(b.Offer, fallbackOffer) + ". Ends soon."
	}

	wordCap := validation.ClampInt(b.WordLimit, 15, 60)

	variations := make([]Variation, 0, n)
	for i := 0; i < n; i++ {
		hook := ""
		if b.AddHooks {
			hook = textutil.CyclicPick(hooks, i)
		}

		full := body
		if hook != "" {
			full = hook + " " + body
		}
		full = textutil.TruncateToWordLimit(full, wordCap)

		if b.IncludeCTA {
			full += " " + textutil.SanitizeOrFallback(b.CTAText, fallbackCTA)
		}
		if b.IncludeEmojis {
			full += " " + textutil.CyclicPick(emojiCycle, i)
		}
		if b.IncludeHashtags {
			full += " " + hashtagSuffix(b.Brand, goal)
		}

		variations = append(variations, Variation{
			Hook:           hook,
			Body:           full,
			TextOnCreative: textOnCreative(b, hook, product, goal),
		})
	}

	return variations
}

// SimulateHeadlines produces clamp(HeadlineCount, 3, 20) mock headlines.
func SimulateHeadlines(b models.Brief) []string {
	n := validation.ClampInt(b.HeadlineCount, models.HeadlineCountMin, models.HeadlineCountMax)
	maxWords := validation.ClampInt(b.HeadlineLength, models.HeadlineLengthMin, models.HeadlineLengthMax)

	style := textutil.SanitizeOrFallback(b.HeadlineStyle, starterFallbackStyle)
	starters, ok := startersByStyle[style]
	if !ok {
		starters = startersByStyle[starterFallbackStyle]
	}

	product := strings.ToLower(textutil.SanitizeOrFallback(b.Product, fallbackSimProduct))
	goalTag := goalTag(b)

	headlines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		raw := textutil.CyclicPick(starters, i) + " " + product + " — " + goalTag
		headlines = append(headlines, stripDanglingDash(textutil.TruncateToWordLimit(raw, maxWords)))
	}
	return headlines
}

// goalTag is the headline tail: the offer for Sales campaigns, the goal name
// otherwise.
func goalTag(b models.Brief) string {
	goal := textutil.SanitizeOrFallback(b.CampaignGoal, hookFallbackGoal)
	if goal == "Sales" {
		return textutil.SanitizeOrFallback(b.Offer, "Save today")
	}
	return goal
}

// proofFragment reduces proof text to its first sentence or clause.
func proofFragment(proof string) string {
	segments := strings.FieldsFunc(proof, func(r rune) bool {
		return r == '.' || r == ';' || r == '\n'
	})
	for _, seg := range segments {
		if trimmed := strings.TrimSpace(seg); trimmed != "" {
			return trimmed
		}
	}
	return fallbackProofFragment
}

// hashtagSuffix builds "#Brand #Goal" with spaces stripped from both parts.
func hashtagSuffix(brand, goal string) string {
	b := strings.ReplaceAll(textutil.SanitizeOrFallback(brand, fallbackHashtagBrand), " ", "")
	g := strings.ReplaceAll(goal, " ", "")
	return "#" + b + " #" + g
}

// textOnCreative is the short overlay caption: the hook when there is one,
// otherwise "product — goal", capped at 8 words.
func textOnCreative(b models.Brief, hook, product, goal string) string {
	if !b.IncludeTOC {
		return ""
	}
	source := hook
	if source == "" {
		source = product + " — " + goal
	}
	return textutil.TruncateToWordLimit(source, 8)
}

// stripDanglingDash drops an em-dash that truncation left dangling at the
// end of a headline, keeping the ellipsis if there was one.
func stripDanglingDash(s string) string {
	hadEllipsis := strings.HasSuffix(s, textutil.Ellipsis)
	core := strings.TrimRight(strings.TrimSuffix(s, textutil.Ellipsis), " ")
	if !strings.HasSuffix(core, "—") {
		return s
	}
	core = strings.TrimRight(strings.TrimSuffix(core, "—"), " ")
	if hadEllipsis {
		return core + textutil.Ellipsis
	}
	return core
}
