package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/copyforge/copyforge/internal/models"
	"github.com/copyforge/copyforge/internal/validation"
)

// fieldKind classifies what widget a form field renders and how it reacts
// to keys.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldArea
	fieldChoice
	fieldNumber
	fieldToggle
)

// fieldID names every brief field the form can edit.
type fieldID int

const (
	fieldBrand fieldID = iota
	fieldProduct
	fieldAudience
	fieldOffer
	fieldUniquePoints
	fieldProof
	fieldBrandVoice
	fieldNegative
	fieldSeed
	fieldPlatform
	fieldTone
	fieldFramework
	fieldHeadlineStyle
	fieldLanguage
	fieldGoal
	fieldWordLimit
	fieldVariants
	fieldHeadlineCount
	fieldHeadlineLen
	fieldHooks
	fieldCTAToggle
	fieldCTAText
	fieldEmojis
	fieldHashtags
	fieldSimple
	fieldTOC
	fieldAspect
)

// formField is one labeled, mode-aware entry in the brief form.
type formField struct {
	id    fieldID
	kind  fieldKind
	label string

	input textinput.Model // fieldText
	area  textarea.Model  // fieldArea

	options   []string // fieldChoice
	choiceIdx int

	number   int // fieldNumber
	min, max int

	flag bool // fieldToggle

	adOnly       bool // visible only in ad-copy mode
	headlineOnly bool // visible only in headline mode
	tocOnly      bool // visible only while text-on-creative is enabled
}

// BriefForm binds the input widgets to a brief. It owns widget state; the
// brief itself is assembled fresh on every Brief() call, never stored.
type BriefForm struct {
	fields  []formField
	focused int
	mode    models.Mode
}

func newTextField(id fieldID, label, value, placeholder string, width int) formField {
	in := textinput.New()
	in.SetValue(value)
	in.Placeholder = placeholder
	in.CharLimit = 200
	in.Width = width
	return formField{id: id, kind: fieldText, label: label, input: in}
}

// NewBriefForm builds the form pre-filled from a brief.
func NewBriefForm(b models.Brief, mode models.Mode) *BriefForm {
	uspArea := textarea.New()
	uspArea.SetValue(b.UniquePoints)
	uspArea.Placeholder = "one per line, or separated by ; or ,"
	uspArea.CharLimit = 0
	uspArea.ShowLineNumbers = false
	uspArea.SetWidth(44)
	uspArea.SetHeight(3)

	choiceIndex := func(options []string, value string) int {
		for i, opt := range options {
			if opt == value {
				return i
			}
		}
		return 0
	}

	fields := []formField{
		newTextField(fieldBrand, "Brand", b.Brand, models.FallbackBrand, 40),
		newTextField(fieldProduct, "Product", b.Product, models.FallbackProduct, 40),
		newTextField(fieldAudience, "Audience", b.Audience, models.FallbackAudience, 40),
		newTextField(fieldOffer, "Offer", b.Offer, "e.g. 20% Off", 40),
		{id: fieldUniquePoints, kind: fieldArea, label: "USPs", area: uspArea},
		newTextField(fieldProof, "Proof", b.Proof, "reviews, stats, awards", 44),
		newTextField(fieldBrandVoice, "Brand voice", b.BrandVoiceRules, "voice and style rules", 44),
		newTextField(fieldNegative, "Avoid", b.NegativeList, "words and claims to avoid", 44),
		newTextField(fieldSeed, "Seed", b.Seed, "optional inspiration line", 44),
		newTextField(fieldPlatform, "Platform", b.Platform, models.DefaultPlatform, 40),
		{id: fieldTone, kind: fieldChoice, label: "Tone", options: models.Tones, choiceIdx: choiceIndex(models.Tones, b.Tone)},
		{id: fieldFramework, kind: fieldChoice, label: "Framework", options: models.Frameworks, choiceIdx: choiceIndex(models.Frameworks, b.Framework), adOnly: true},
		{id: fieldHeadlineStyle, kind: fieldChoice, label: "Headline style", options: models.HeadlineStyles, choiceIdx: choiceIndex(models.HeadlineStyles, b.HeadlineStyle), headlineOnly: true},
		{id: fieldLanguage, kind: fieldChoice, label: "Language", options: models.Languages, choiceIdx: choiceIndex(models.Languages, b.Language)},
		{id: fieldGoal, kind: fieldChoice, label: "Campaign goal", options: models.CampaignGoals, choiceIdx: choiceIndex(models.CampaignGoals, b.CampaignGoal)},
		{id: fieldWordLimit, kind: fieldNumber, label: "Word limit", number: b.WordLimit, min: models.WordLimitMin, max: models.WordLimitMax},
		{id: fieldVariants, kind: fieldNumber, label: "Variations", number: b.VariantCount, min: models.VariantCountMin, max: models.VariantCountMax, adOnly: true},
		{id: fieldHeadlineCount, kind: fieldNumber, label: "Headlines", number: b.HeadlineCount, min: models.HeadlineCountMin, max: models.HeadlineCountMax, headlineOnly: true},
		{id: fieldHeadlineLen, kind: fieldNumber, label: "Headline words", number: b.HeadlineLength, min: models.HeadlineLengthMin, max: models.HeadlineLengthMax, headlineOnly: true},
		{id: fieldHooks, kind: fieldToggle, label: "Hooks", flag: b.AddHooks},
		{id: fieldCTAToggle, kind: fieldToggle, label: "Include CTA", flag: b.IncludeCTA},
		newTextField(fieldCTAText, "CTA text", b.CTAText, "e.g. Shop Now", 30),
		{id: fieldEmojis, kind: fieldToggle, label: "Emojis", flag: b.IncludeEmojis},
		{id: fieldHashtags, kind: fieldToggle, label: "Hashtags", flag: b.IncludeHashtags},
		{id: fieldSimple, kind: fieldToggle, label: "Simple language", flag: b.ForceSimple},
		{id: fieldTOC, kind: fieldToggle, label: "Text on creative", flag: b.IncludeTOC, adOnly: true},
		{id: fieldAspect, kind: fieldChoice, label: "Aspect ratio", options: models.AspectRatios, choiceIdx: choiceIndex(models.AspectRatios, b.AspectRatio), adOnly: true, tocOnly: true},
	}

	f := &BriefForm{fields: fields, mode: mode}
	f.focusField(0)
	return f
}

// visible reports whether a field participates in the current mode.
func (f *BriefForm) visible(field formField) bool {
	if field.adOnly && f.mode != models.ModeAdCopy {
		return false
	}
	if field.headlineOnly && f.mode != models.ModeHeadlines {
		return false
	}
	if field.tocOnly && !f.flagValue(fieldTOC) {
		return false
	}
	return true
}

func (f *BriefForm) flagValue(id fieldID) bool {
	for i := range f.fields {
		if f.fields[i].id == id {
			return f.fields[i].flag
		}
	}
	return false
}

// Mode returns the form's active mode.
func (f *BriefForm) Mode() models.Mode {
	return f.mode
}

// SetMode switches the visible field set. If the focused field disappears,
// focus moves to the next visible one.
func (f *BriefForm) SetMode(mode models.Mode) {
	f.mode = mode
	if !f.visible(f.fields[f.focused]) {
		f.nextField()
	}
}

// Focused returns the focused field's id and kind.
func (f *BriefForm) Focused() (fieldID, fieldKind) {
	field := f.fields[f.focused]
	return field.id, field.kind
}

// FocusedOptions returns the catalog behind the focused choice field, or nil.
func (f *BriefForm) FocusedOptions() (label string, options []string) {
	field := f.fields[f.focused]
	if field.kind != fieldChoice {
		return "", nil
	}
	return field.label, field.options
}

// SetChoice sets a choice field to the given catalog value, used when the
// fuzzy selector commits.
func (f *BriefForm) SetChoice(id fieldID, value string) {
	for i := range f.fields {
		if f.fields[i].id != id || f.fields[i].kind != fieldChoice {
			continue
		}
		for j, opt := range f.fields[i].options {
			if opt == value {
				f.fields[i].choiceIdx = j
				return
			}
		}
	}
}

// Update routes a message to the form. Navigation keys move focus; anything
// else goes to the focused widget.
func (f *BriefForm) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocusedWidget(msg)
	}

	field := &f.fields[f.focused]

	switch keyMsg.String() {
	case "tab", "shift+tab", "up", "down":
		// The textarea keeps up/down for line movement.
		if field.kind == fieldArea && (keyMsg.String() == "up" || keyMsg.String() == "down") {
			return f.updateFocusedWidget(msg)
		}
		if keyMsg.String() == "shift+tab" || keyMsg.String() == "up" {
			f.prevField()
		} else {
			f.nextField()
		}
		return nil

	case "left", "right":
		switch field.kind {
		case fieldChoice:
			step := 1
			if keyMsg.String() == "left" {
				step = len(field.options) - 1
			}
			field.choiceIdx = (field.choiceIdx + step) % len(field.options)
			return nil
		case fieldNumber:
			step := 1
			if keyMsg.String() == "left" {
				step = -1
			}
			field.number = validation.ClampInt(field.number+step, field.min, field.max)
			return nil
		case fieldToggle:
			field.flag = !field.flag
			return nil
		}

	case " ":
		if field.kind == fieldToggle {
			field.flag = !field.flag
			return nil
		}

	case "enter":
		switch field.kind {
		case fieldToggle:
			field.flag = !field.flag
			return nil
		case fieldText, fieldNumber, fieldChoice:
			f.nextField()
			return nil
		}
	}

	return f.updateFocusedWidget(msg)
}

func (f *BriefForm) updateFocusedWidget(msg tea.Msg) tea.Cmd {
	field := &f.fields[f.focused]
	var cmd tea.Cmd
	switch field.kind {
	case fieldText:
		field.input, cmd = field.input.Update(msg)
	case fieldArea:
		field.area, cmd = field.area.Update(msg)
	}
	return cmd
}

func (f *BriefForm) nextField() {
	f.blurField(f.focused)
	for i := 1; i <= len(f.fields); i++ {
		next := (f.focused + i) % len(f.fields)
		if f.visible(f.fields[next]) {
			f.focusField(next)
			return
		}
	}
}

func (f *BriefForm) prevField() {
	f.blurField(f.focused)
	for i := 1; i <= len(f.fields); i++ {
		prev := (f.focused - i + len(f.fields)) % len(f.fields)
		if f.visible(f.fields[prev]) {
			f.focusField(prev)
			return
		}
	}
}

func (f *BriefForm) focusField(i int) {
	f.focused = i
	switch f.fields[i].kind {
	case fieldText:
		f.fields[i].input.Focus()
	case fieldArea:
		f.fields[i].area.Focus()
	}
}

func (f *BriefForm) blurField(i int) {
	switch f.fields[i].kind {
	case fieldText:
		f.fields[i].input.Blur()
	case fieldArea:
		f.fields[i].area.Blur()
	}
}

// InTypingField reports whether the focused field consumes printable keys.
func (f *BriefForm) InTypingField() bool {
	kind := f.fields[f.focused].kind
	return kind == fieldText || kind == fieldArea
}

// Brief assembles the current form state into a brief. Numeric fields are
// already clamped by the stepper; the rest is passed through as typed.
func (f *BriefForm) Brief() models.Brief {
	var b models.Brief

	for i := range f.fields {
		field := &f.fields[i]
		switch field.id {
		case fieldBrand:
			b.Brand = field.input.Value()
		case fieldProduct:
			b.Product = field.input.Value()
		case fieldAudience:
			b.Audience = field.input.Value()
		case fieldOffer:
			b.Offer = field.input.Value()
		case fieldUniquePoints:
			b.UniquePoints = field.area.Value()
		case fieldProof:
			b.Proof = field.input.Value()
		case fieldBrandVoice:
			b.BrandVoiceRules = field.input.Value()
		case fieldNegative:
			b.NegativeList = field.input.Value()
		case fieldSeed:
			b.Seed = field.input.Value()
		case fieldPlatform:
			b.Platform = field.input.Value()
		case fieldTone:
			b.Tone = field.options[field.choiceIdx]
		case fieldFramework:
			b.Framework = field.options[field.choiceIdx]
		case fieldHeadlineStyle:
			b.HeadlineStyle = field.options[field.choiceIdx]
		case fieldLanguage:
			b.Language = field.options[field.choiceIdx]
		case fieldGoal:
			b.CampaignGoal = field.options[field.choiceIdx]
		case fieldAspect:
			b.AspectRatio = field.options[field.choiceIdx]
		case fieldWordLimit:
			b.WordLimit = field.number
		case fieldVariants:
			b.VariantCount = field.number
		case fieldHeadlineCount:
			b.HeadlineCount = field.number
		case fieldHeadlineLen:
			b.HeadlineLength = field.number
		case fieldHooks:
			b.AddHooks = field.flag
		case fieldCTAToggle:
			b.IncludeCTA = field.flag
		case fieldCTAText:
			b.CTAText = field.input.Value()
		case fieldEmojis:
			b.IncludeEmojis = field.flag
		case fieldHashtags:
			b.IncludeHashtags = field.flag
		case fieldSimple:
			b.ForceSimple = field.flag
		case fieldTOC:
			b.IncludeTOC = field.flag
		}
	}

	return b
}

// View renders the visible fields as a labeled column.
func (f *BriefForm) View() string {
	var sb strings.Builder

	for i := range f.fields {
		field := &f.fields[i]
		if !f.visible(*field) {
			continue
		}

		label := styleFieldLabel.Render(field.label)
		if i == f.focused {
			label = styleFieldFocused.Render("> " + field.label)
		}

		var value string
		switch field.kind {
		case fieldText:
			value = field.input.View()
		case fieldArea:
			sb.WriteString(label + "\n" + field.area.View() + "\n")
			continue
		case fieldChoice:
			value = styleFieldValue.Render("◂ " + field.options[field.choiceIdx] + " ▸")
		case fieldNumber:
			value = styleFieldValue.Render(fmt.Sprintf("◂ %d ▸  (%d–%d)", field.number, field.min, field.max))
		case fieldToggle:
			if field.flag {
				value = styleToggleOn.Render("[x] on")
			} else {
				value = styleToggleOff.Render("[ ] off")
			}
		}

		sb.WriteString(label + " " + value + "\n")
	}

	return sb.String()
}
