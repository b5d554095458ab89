package models

// Mode selects which generation task the tool is building a prompt for.
// Exactly one mode is active at a time; modes are never combined.
type Mode string

const (
	ModeAdCopy    Mode = "ad copy"
	ModeHeadlines Mode = "headlines"
)

// Slug returns a filesystem-safe form of the mode ("ad-copy", "headlines").
func (m Mode) Slug() string {
	switch m {
	case ModeAdCopy:
		return "ad-copy"
	case ModeHeadlines:
		return "headlines"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeAdCopy {
		return ModeHeadlines
	}
	return ModeAdCopy
}

// Brief is the single source of truth for one composition: every field is
// caller-supplied, there is no hidden derived state. The struct is comparable
// on purpose: the TUI memoizes recomputation by value-equality.
type Brief struct {
	// Identity / context fields. Empty values get a literal fallback at
	// composition time, never here.
	Brand           string `yaml:"brand"`
	Product         string `yaml:"product"`
	Audience        string `yaml:"audience"`
	Offer           string `yaml:"offer"`
	UniquePoints    string `yaml:"unique_points"` // raw delimited text, parsed on demand
	Proof           string `yaml:"proof"`
	BrandVoiceRules string `yaml:"brand_voice"`
	NegativeList    string `yaml:"avoid"`
	Seed            string `yaml:"seed"`
	CTAText         string `yaml:"cta"`
	Platform        string `yaml:"platform"`
	AspectRatio     string `yaml:"aspect_ratio"`

	// Enumerated choices, each constrained to one fixed catalog.
	Tone          string `yaml:"tone"`
	Framework     string `yaml:"framework"`      // ad-copy mode only
	HeadlineStyle string `yaml:"headline_style"` // headline mode only
	Language      string `yaml:"language"`
	CampaignGoal  string `yaml:"campaign_goal"`

	// Numeric fields, clamped at the edit boundary (internal/validation),
	// never by the composer.
	WordLimit      int `yaml:"word_limit"`      // [20,120]
	VariantCount   int `yaml:"variant_count"`   // [1,10], ad-copy mode
	HeadlineCount  int `yaml:"headline_count"`  // [3,20], headline mode
	HeadlineLength int `yaml:"headline_length"` // [2,12] words, headline mode

	// Boolean options.
	IncludeEmojis   bool `yaml:"emojis"`
	IncludeCTA      bool `yaml:"include_cta"`
	IncludeHashtags bool `yaml:"hashtags"`
	ForceSimple     bool `yaml:"simple_language"`
	AddHooks        bool `yaml:"hooks"`
	IncludeTOC      bool `yaml:"text_on_creative"`
}

// Literal fallbacks substituted when the corresponding field is empty.
const (
	FallbackBrand    = "[Brand]"
	FallbackProduct  = "[Product]"
	FallbackAudience = "[target persona]"
)

// DefaultPlatform is the free-text platform default.
const DefaultPlatform = "Facebook & Instagram"

// Catalogs for the enumerated choice fields. These are fixed tables; the UI
// and the CLI validator treat them as closed sets, while the composer and
// simulator stay total by falling back on unknown values.
var (
	Tones = []string{
		"Friendly",
		"Professional",
		"Playful",
		"Bold",
		"Luxury",
		"Minimalist",
		"Urgent",
		"Empathetic",
	}

	Frameworks = []string{
		"AIDA (Attention-Interest-Desire-Action)",
		"PAS (Problem-Agitate-Solution)",
		"BAB (Before-After-Bridge)",
		"FAB (Features-Advantages-Benefits)",
		"4Cs (Clear-Concise-Compelling-Credible)",
		"QUEST (Qualify-Understand-Educate-Stimulate-Transition)",
		"Storytelling",
	}

	HeadlineStyles = []string{
		"Benefit-first",
		"Curiosity / Tease",
		"How-to",
		"Numbered / Listicle",
		"Question",
		"Social Proof",
		"Urgency / FOMO",
	}

	Languages = []string{
		"English",
		"Spanish",
		"French",
		"German",
		"Portuguese",
		"Italian",
		"Dutch",
		"Japanese",
	}

	CampaignGoals = []string{
		"Awareness",
		"Engagement",
		"Sales",
		"Lead Generation",
		"Retargeting",
	}

	AspectRatios = []string{
		"1:1 (square)",
		"4:5 (portrait)",
		"9:16 (story/reel)",
		"16:9 (landscape)",
	}
)

// Numeric bounds, enforced at the edit boundary.
const (
	WordLimitMin, WordLimitMax           = 20, 120
	VariantCountMin, VariantCountMax     = 1, 10
	HeadlineCountMin, HeadlineCountMax   = 3, 20
	HeadlineLengthMin, HeadlineLengthMax = 2, 12
)

// DefaultBrief returns the brief a fresh form starts from.
func DefaultBrief() Brief {
	return Brief{
		Platform:       DefaultPlatform,
		AspectRatio:    AspectRatios[0],
		Tone:           Tones[0],
		Framework:      Frameworks[0],
		HeadlineStyle:  HeadlineStyles[0],
		Language:       Languages[0],
		CampaignGoal:   CampaignGoals[0],
		WordLimit:      60,
		VariantCount:   3,
		HeadlineCount:  8,
		HeadlineLength: 6,
		IncludeCTA:     true,
		AddHooks:       true,
	}
}
