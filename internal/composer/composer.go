// Package composer turns a brief into the instruction prompt handed to a
// language model. Composition is deterministic and total: every field has a
// fallback or is simply omitted, so the same brief always yields the same
// byte-identical string.
package composer

import (
	"fmt"
	"strings"

	"github.com/copyforge/copyforge/internal/models"
	"github.com/copyforge/copyforge/internal/textutil"
)

// FallbackNegativeList backs the unconditional Avoid constraint when the
// brief leaves the negative list empty.
const FallbackNegativeList = "hype, unverifiable claims"

// Compose dispatches to the mode-specific composer. Unknown modes compose as
// ad copy so the function stays total.
func Compose(mode models.Mode, b models.Brief) string {
	if mode == models.ModeHeadlines {
		return ComposeHeadlines(b)
	}
	return ComposeAdCopy(b)
}

// ComposeAdCopy builds the instruction prompt for ad-copy generation.
func ComposeAdCopy(b models.Brief) string {
	var sb strings.Builder

	sb.WriteString(header("ad copy", b))
	sb.WriteString(contextBlock(b))

	sb.WriteString("\n**Output requirements:**\n")
	framework := textutil.SanitizeOrFallback(b.Framework, models.Frameworks[0])
	fmt.Fprintf(&sb, "- Write %d distinct ad copy variations using the %s framework.\n", b.VariantCount, framework)
	if b.AddHooks {
		sb.WriteString("- Start each variation with a strong one-line HOOK.\n")
	}
	if b.IncludeTOC {
		aspect := textutil.SanitizeOrFallback(b.AspectRatio, models.AspectRatios[0])
		fmt.Fprintf(&sb, "- For each variation, add a short text-on-creative line (max 8 words) suitable for a %s asset.\n", aspect)
	}
	sb.WriteString(constraintsBlock(b))
	sb.WriteString("- Do not write headlines; focus on body copy.\n")
	sb.WriteString(seedLine(b))

	return sb.String()
}

// ComposeHeadlines builds the instruction prompt for headline generation.
func ComposeHeadlines(b models.Brief) string {
	var sb strings.Builder

	sb.WriteString(header("headlines", b))
	sb.WriteString(contextBlock(b))

	sb.WriteString("\n**Output requirements:**\n")
	style := textutil.SanitizeOrFallback(b.HeadlineStyle, models.HeadlineStyles[0])
	fmt.Fprintf(&sb, "- Write %d headlines in the %q style.\n", b.HeadlineCount, style)
	fmt.Fprintf(&sb, "- Target about %d words per headline.\n", b.HeadlineLength)
	sb.WriteString("- Keep them punchy; skip end punctuation unless it earns its place.\n")
	sb.WriteString(constraintsBlock(b))
	sb.WriteString(seedLine(b))

	return sb.String()
}

// header is the single opening sentence shared by both modes. Tone is
// lower-cased here and only here.
func header(task string, b models.Brief) string {
	brand := textutil.SanitizeOrFallback(b.Brand, models.FallbackBrand)
	audience := textutil.SanitizeOrFallback(b.Audience, models.FallbackAudience)
	tone := strings.ToLower(textutil.SanitizeOrFallback(b.Tone, models.Tones[0]))
	language := textutil.SanitizeOrFallback(b.Language, models.Languages[0])
	platform := textutil.SanitizeOrFallback(b.Platform, models.DefaultPlatform)
	goal := textutil.SanitizeOrFallback(b.CampaignGoal, models.CampaignGoals[0])

	return fmt.Sprintf(
		"You are an expert performance marketer. Write high-converting %s for %s, speaking to %s, in a %s tone, in %s, for %s, with a campaign goal of %s.\n",
		task, brand, audience, tone, language, platform, goal,
	)
}

// contextBlock emits one `**Label:** value` line per non-empty product
// context field, in fixed order. Empty fields produce nothing at all.
func contextBlock(b models.Brief) string {
	var sb strings.Builder

	writeIfSet := func(label, value string) {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			fmt.Fprintf(&sb, "**%s:** %s\n", label, trimmed)
		}
	}

	writeIfSet("Product", b.Product)
	writeIfSet("Offer", b.Offer)
	writeIfSet("Unique Selling Points (USPs)", strings.Join(textutil.SplitDelimitedList(b.UniquePoints), "; "))
	writeIfSet("Proof / Social Proof", b.Proof)
	writeIfSet("Brand Voice", b.BrandVoiceRules)

	if sb.Len() == 0 {
		return ""
	}
	return "\n" + sb.String()
}

// constraintsBlock builds the shared constraint bullets. Items whose
// condition is off are omitted entirely; the order of the remaining items
// never changes. The word-limit and Avoid lines are unconditional.
func constraintsBlock(b models.Brief) string {
	var sb strings.Builder

	if b.ForceSimple {
		sb.WriteString("- Keep the reading level simple (grade 6 or below).\n")
	}
	if b.IncludeEmojis {
		sb.WriteString("- Include tasteful emojis where they fit.\n")
	}
	if cta := strings.TrimSpace(b.CTAText); b.IncludeCTA && cta != "" {
		fmt.Fprintf(&sb, "- End with the call to action: %q.\n", cta)
	}
	if b.IncludeHashtags {
		sb.WriteString("- Add 2-3 relevant hashtags at the end.\n")
	}
	fmt.Fprintf(&sb, "- Soft word limit: %d words per item.\n", b.WordLimit)
	fmt.Fprintf(&sb, "- Avoid: %s.\n", textutil.SanitizeOrFallback(b.NegativeList, FallbackNegativeList))

	return sb.String()
}

// seedLine appends the inspiration seed when one is set. The preface makes
// clear the seed is raw material, not copy to reuse.
func seedLine(b models.Brief) string {
	seed := strings.TrimSpace(b.Seed)
	if seed == "" {
		return ""
	}
	return fmt.Sprintf("\nInspiration seed (rewrite and improve it, never copy verbatim): %s\n", seed)
}
