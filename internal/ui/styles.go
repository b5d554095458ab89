package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors, picked once at startup based on the terminal background.
var (
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorAccent    lipgloss.Color

	ColorSuccess lipgloss.Color
	ColorError   lipgloss.Color

	ColorText      lipgloss.Color
	ColorTextMuted lipgloss.Color
	ColorTextDim   lipgloss.Color
	ColorBorder    lipgloss.Color
)

// initializeColors sets up adaptive colors based on terminal background.
// GLAMOUR_STYLE overrides the detection, mirroring the markdown renderer.
func initializeColors() {
	switch os.Getenv("GLAMOUR_STYLE") {
	case "light":
		setLightThemeColors()
		return
	case "dark":
		setDarkThemeColors()
		return
	}

	if lipgloss.HasDarkBackground() {
		setDarkThemeColors()
	} else {
		setLightThemeColors()
	}
}

func setDarkThemeColors() {
	ColorPrimary = lipgloss.Color("205")
	ColorSecondary = lipgloss.Color("33")
	ColorAccent = lipgloss.Color("214")

	ColorSuccess = lipgloss.Color("10")
	ColorError = lipgloss.Color("9")

	ColorText = lipgloss.Color("252")
	ColorTextMuted = lipgloss.Color("244")
	ColorTextDim = lipgloss.Color("240")
	ColorBorder = lipgloss.Color("238")
}

func setLightThemeColors() {
	ColorPrimary = lipgloss.Color("125")
	ColorSecondary = lipgloss.Color("24")
	ColorAccent = lipgloss.Color("130")

	ColorSuccess = lipgloss.Color("22")
	ColorError = lipgloss.Color("160")

	ColorText = lipgloss.Color("232")
	ColorTextMuted = lipgloss.Color("240")
	ColorTextDim = lipgloss.Color("244")
	ColorBorder = lipgloss.Color("248")
}

// Component styles. Built lazily in initializeStyles because the palette is
// not known until initializeColors has run.
var (
	styleTitle        lipgloss.Style
	styleSectionLabel lipgloss.Style
	styleFieldLabel   lipgloss.Style
	styleFieldFocused lipgloss.Style
	styleFieldValue   lipgloss.Style
	styleToggleOn     lipgloss.Style
	styleToggleOff    lipgloss.Style
	styleStatusOK     lipgloss.Style
	styleStatusErr    lipgloss.Style
	styleHelpText     lipgloss.Style
	stylePaneBorder   lipgloss.Style
	styleModal        lipgloss.Style
	styleSelectorItem lipgloss.Style
	styleSelectorCur  lipgloss.Style
	stylePreviewHead  lipgloss.Style
)

func initializeStyles() {
	styleTitle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	styleSectionLabel = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	styleFieldLabel = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Width(18)

	styleFieldFocused = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Width(18)

	styleFieldValue = lipgloss.NewStyle().
		Foreground(ColorText)

	styleToggleOn = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	styleToggleOff = lipgloss.NewStyle().
		Foreground(ColorTextDim)

	styleStatusOK = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true).
		Padding(0, 1)

	styleStatusErr = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true).
		Padding(0, 1)

	styleHelpText = lipgloss.NewStyle().
		Foreground(ColorTextDim)

	stylePaneBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	styleModal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(1, 2)

	styleSelectorItem = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	styleSelectorCur = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	stylePreviewHead = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
}
