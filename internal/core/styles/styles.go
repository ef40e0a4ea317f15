// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Semantic colors of the active palette.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style
	SuccessStyle       lipgloss.Style
	WarningStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style

	// Text helpers.
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextPrimaryStyle        lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextSecondaryStyle      lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSurfaceStyle        lipgloss.Style

	// Header and tabs.
	TitleStyle       lipgloss.Style
	TabActiveStyle   lipgloss.Style
	TabInactiveStyle lipgloss.Style
	TabCountStyle    lipgloss.Style

	// Search bar.
	SearchBarStyle        lipgloss.Style
	SearchBarFocusedStyle lipgloss.Style
	SearchFieldStyle      lipgloss.Style
	SearchPendingStyle    lipgloss.Style

	// Item cards.
	CardStyle         lipgloss.Style
	CardSelectedStyle lipgloss.Style
	CardNameStyle     lipgloss.Style
	CardEmailStyle    lipgloss.Style
	CardPhraseStyle   lipgloss.Style
	CardIndexStyle    lipgloss.Style

	// List states and footer.
	FooterStyle      lipgloss.Style
	LoadingStyle     lipgloss.Style
	EmptyStateStyle  lipgloss.Style
	ErrorTitleStyle  lipgloss.Style
	ErrorDetailStyle lipgloss.Style
	ScrollTrackStyle lipgloss.Style
	ScrollThumbStyle lipgloss.Style

	// Modals.
	ModalStyle             lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalHelpStyle         lipgloss.Style
	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = TextForegroundStyle.Bold(true)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextSurfaceStyle = lipgloss.NewStyle().Foreground(ColorSurface)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		PaddingRight(2)
	TabActiveStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	TabInactiveStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(ColorMuted)
	TabCountStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		PaddingLeft(1)

	SearchBarStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	SearchBarFocusedStyle = SearchBarStyle.
		BorderForeground(ColorPrimary)
	SearchFieldStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorSecondary)
	SearchPendingStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	CardSelectedStyle = CardStyle.
		BorderForeground(ColorPrimary)
	CardNameStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	CardEmailStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	CardPhraseStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	CardIndexStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	LoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	ErrorTitleStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
	ErrorDetailStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	ScrollTrackStyle = lipgloss.NewStyle().
		Foreground(ColorSurface)
	ScrollThumbStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	HelpDialogModalStyle = ModalStyle
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	HelpDialogHelpStyle = ModalHelpStyle
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
