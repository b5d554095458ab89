// Package validation enforces the brief's edit-boundary rules: numeric
// fields are clamped and enumerated fields are checked against their
// catalogs here, so the composer and simulator never have to.
package validation

import (
	"fmt"
	"strings"

	"github.com/copyforge/copyforge/internal/models"
)

// ClampInt bounds v to the inclusive range [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize clamps the brief's numeric fields to their documented ranges and
// fills empty choice fields with catalog defaults. It never rejects: text
// fields keep whatever the user typed.
func Normalize(b *models.Brief) {
	b.WordLimit = ClampInt(b.WordLimit, models.WordLimitMin, models.WordLimitMax)
	b.VariantCount = ClampInt(b.VariantCount, models.VariantCountMin, models.VariantCountMax)
	b.HeadlineCount = ClampInt(b.HeadlineCount, models.HeadlineCountMin, models.HeadlineCountMax)
	b.HeadlineLength = ClampInt(b.HeadlineLength, models.HeadlineLengthMin, models.HeadlineLengthMax)

	if strings.TrimSpace(b.Platform) == "" {
		b.Platform = models.DefaultPlatform
	}
	if strings.TrimSpace(b.AspectRatio) == "" {
		b.AspectRatio = models.AspectRatios[0]
	}
	if strings.TrimSpace(b.Tone) == "" {
		b.Tone = models.Tones[0]
	}
	if strings.TrimSpace(b.Framework) == "" {
		b.Framework = models.Frameworks[0]
	}
	if strings.TrimSpace(b.HeadlineStyle) == "" {
		b.HeadlineStyle = models.HeadlineStyles[0]
	}
	if strings.TrimSpace(b.Language) == "" {
		b.Language = models.Languages[0]
	}
	if strings.TrimSpace(b.CampaignGoal) == "" {
		b.CampaignGoal = models.CampaignGoals[0]
	}
}

// Validate reports enumerated fields that name values outside their catalog.
// Used for CLI brief files, where a typo should fail instead of composing
// with a fallback.
func Validate(b models.Brief) error {
	var problems []string

	check := func(field, value string, catalog []string) {
		if value == "" {
			return
		}
		for _, entry := range catalog {
			if entry == value {
				return
			}
		}
		problems = append(problems, fmt.Sprintf("%s %q is not one of: %s", field, value, strings.Join(catalog, ", ")))
	}

	check("tone", b.Tone, models.Tones)
	check("framework", b.Framework, models.Frameworks)
	check("headline_style", b.HeadlineStyle, models.HeadlineStyles)
	check("language", b.Language, models.Languages)
	check("campaign_goal", b.CampaignGoal, models.CampaignGoals)

	if len(problems) > 0 {
		return fmt.Errorf("invalid brief:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}
