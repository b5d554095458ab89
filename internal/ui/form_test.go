package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/copyforge/copyforge/internal/models"
)

func TestBriefFormRoundTrip(t *testing.T) {
	want := models.DefaultBrief()
	want.Brand = "GlowCo"
	want.Product = "GlowSerum"
	want.UniquePoints = "vitamin C\nvegan"
	want.CampaignGoal = "Sales"
	want.VariantCount = 5

	form := NewBriefForm(want, models.ModeAdCopy)

	got := form.Brief()
	if got != want {
		t.Errorf("Brief round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestBriefFormModeVisibility(t *testing.T) {
	form := NewBriefForm(models.DefaultBrief(), models.ModeAdCopy)

	fieldByID := func(id fieldID) *formField {
		for i := range form.fields {
			if form.fields[i].id == id {
				return &form.fields[i]
			}
		}
		t.Fatalf("field %d not found", id)
		return nil
	}

	if !form.visible(*fieldByID(fieldFramework)) {
		t.Error("framework should be visible in ad-copy mode")
	}
	if form.visible(*fieldByID(fieldHeadlineStyle)) {
		t.Error("headline style should be hidden in ad-copy mode")
	}

	form.SetMode(models.ModeHeadlines)

	if form.visible(*fieldByID(fieldFramework)) {
		t.Error("framework should be hidden in headline mode")
	}
	if !form.visible(*fieldByID(fieldHeadlineCount)) {
		t.Error("headline count should be visible in headline mode")
	}
}

func TestBriefFormAspectVisibleOnlyWithTOC(t *testing.T) {
	b := models.DefaultBrief()
	b.IncludeTOC = false
	form := NewBriefForm(b, models.ModeAdCopy)

	var aspect formField
	for i := range form.fields {
		if form.fields[i].id == fieldAspect {
			aspect = form.fields[i]
		}
	}

	if form.visible(aspect) {
		t.Error("aspect ratio should be hidden while text-on-creative is off")
	}

	b.IncludeTOC = true
	form = NewBriefForm(b, models.ModeAdCopy)
	for i := range form.fields {
		if form.fields[i].id == fieldAspect {
			aspect = form.fields[i]
		}
	}
	if !form.visible(aspect) {
		t.Error("aspect ratio should be visible while text-on-creative is on")
	}
}

func TestBriefFormSkipsHiddenFieldsOnNavigation(t *testing.T) {
	form := NewBriefForm(models.DefaultBrief(), models.ModeHeadlines)

	seen := map[fieldID]bool{}
	for i := 0; i < len(form.fields)*2; i++ {
		id, _ := form.Focused()
		seen[id] = true
		form.nextField()
	}

	if seen[fieldFramework] || seen[fieldVariants] {
		t.Error("navigation must never land on ad-copy-only fields in headline mode")
	}
	if !seen[fieldHeadlineStyle] {
		t.Error("navigation should reach headline-only fields in headline mode")
	}
}

func TestBriefFormNumberStepperClamps(t *testing.T) {
	form := NewBriefForm(models.DefaultBrief(), models.ModeAdCopy)

	// Focus the variant count field.
	for {
		if id, _ := form.Focused(); id == fieldVariants {
			break
		}
		form.nextField()
	}

	right := tea.KeyMsg{Type: tea.KeyRight}
	for i := 0; i < 50; i++ {
		form.Update(right)
	}
	if got := form.Brief().VariantCount; got != models.VariantCountMax {
		t.Errorf("VariantCount = %d, want clamped max %d", got, models.VariantCountMax)
	}

	left := tea.KeyMsg{Type: tea.KeyLeft}
	for i := 0; i < 50; i++ {
		form.Update(left)
	}
	if got := form.Brief().VariantCount; got != models.VariantCountMin {
		t.Errorf("VariantCount = %d, want clamped min %d", got, models.VariantCountMin)
	}
}

func TestBriefFormToggle(t *testing.T) {
	form := NewBriefForm(models.DefaultBrief(), models.ModeAdCopy)

	for {
		if id, _ := form.Focused(); id == fieldEmojis {
			break
		}
		form.nextField()
	}

	if form.Brief().IncludeEmojis {
		t.Fatal("emojis should start off")
	}
	form.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !form.Brief().IncludeEmojis {
		t.Error("space should toggle the focused boolean field")
	}
}

func TestBriefFormChoiceCycling(t *testing.T) {
	form := NewBriefForm(models.DefaultBrief(), models.ModeAdCopy)

	for {
		if id, _ := form.Focused(); id == fieldTone {
			break
		}
		form.nextField()
	}

	form.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := form.Brief().Tone; got != models.Tones[1] {
		t.Errorf("right should cycle tone forward, got %q", got)
	}

	form.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := form.Brief().Tone; got != models.Tones[0] {
		t.Errorf("left should cycle tone back, got %q", got)
	}

	// Cycling left from the first entry wraps to the last.
	form.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := form.Brief().Tone; got != models.Tones[len(models.Tones)-1] {
		t.Errorf("left from first entry should wrap, got %q", got)
	}
}
