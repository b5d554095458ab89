package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// OptionSelector is the modal picker for choice fields: type to fuzzy-filter
// the catalog, enter to commit, esc to cancel.
type OptionSelector struct {
	title    string
	target   fieldID
	options  []string
	filtered []string
	cursor   int
	input    textinput.Model

	submitted bool
	canceled  bool
}

// NewOptionSelector opens a selector over a catalog for the given field.
func NewOptionSelector(title string, options []string, target fieldID) *OptionSelector {
	in := textinput.New()
	in.Placeholder = "type to filter"
	in.CharLimit = 60
	in.Width = 36
	in.Focus()

	return &OptionSelector{
		title:    title,
		target:   target,
		options:  options,
		filtered: options,
		input:    in,
	}
}

// Update handles selector keys and filter input.
func (s *OptionSelector) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "esc":
		s.canceled = true
		return nil
	case "enter":
		if len(s.filtered) > 0 {
			s.submitted = true
		}
		return nil
	case "up", "ctrl+k":
		if len(s.filtered) == 0 {
			return nil
		}
		if s.cursor > 0 {
			s.cursor--
		} else {
			s.cursor = len(s.filtered) - 1
		}
		return nil
	case "down", "ctrl+j":
		if len(s.filtered) == 0 {
			return nil
		}
		if s.cursor < len(s.filtered)-1 {
			s.cursor++
		} else {
			s.cursor = 0
		}
		return nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.refilter()
	return cmd
}

// refilter recomputes the filtered list from the current query. Fuzzy match
// order (best first) is kept; an empty query shows the full catalog.
func (s *OptionSelector) refilter() {
	query := strings.TrimSpace(s.input.Value())
	if query == "" {
		s.filtered = s.options
	} else {
		matches := fuzzy.Find(query, s.options)
		filtered := make([]string, 0, len(matches))
		for _, m := range matches {
			filtered = append(filtered, s.options[m.Index])
		}
		s.filtered = filtered
	}

	if s.cursor < 0 || s.cursor >= len(s.filtered) {
		s.cursor = 0
	}
}

// Target returns the field the selection applies to.
func (s *OptionSelector) Target() fieldID {
	return s.target
}

// Selected returns the committed value once the selector is submitted.
func (s *OptionSelector) Selected() (string, bool) {
	if !s.submitted || s.cursor >= len(s.filtered) {
		return "", false
	}
	return s.filtered[s.cursor], true
}

// Done reports whether the selector should close.
func (s *OptionSelector) Done() bool {
	return s.submitted || s.canceled
}

// Canceled reports whether the selector was dismissed without a choice.
func (s *OptionSelector) Canceled() bool {
	return s.canceled
}

// View renders the modal box.
func (s *OptionSelector) View() string {
	var sb strings.Builder

	sb.WriteString(styleSectionLabel.Render(s.title) + "\n")
	sb.WriteString(s.input.View() + "\n\n")

	if len(s.filtered) == 0 {
		sb.WriteString(styleSelectorItem.Render("no matches") + "\n")
	}
	for i, opt := range s.filtered {
		if i == s.cursor {
			sb.WriteString(styleSelectorCur.Render("▸ "+opt) + "\n")
		} else {
			sb.WriteString(styleSelectorItem.Render("  "+opt) + "\n")
		}
	}

	sb.WriteString("\n" + styleHelpText.Render("enter select · esc cancel"))
	return styleModal.Render(sb.String())
}
