package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple (violet-400)
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red (red-400)
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray (brighter for readability)
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray (gray-500)

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Surface   = lipgloss.NewStyle().Background(SurfaceColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		PaddingBottom(1)

	// Footer / status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Padding(0, 1)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Glyph grid cells
	Cell = lipgloss.NewStyle().
		Foreground(TextColor).
		Padding(0, 1)

	CellCursor = lipgloss.NewStyle().
			Bold(true).
			Foreground(SurfaceColor).
			Background(PrimaryColor).
			Padding(0, 1)

	CellSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor).
			Padding(0, 1)

	CellSelectedCursor = lipgloss.NewStyle().
				Bold(true).
				Foreground(SurfaceColor).
				Background(SecondaryColor).
				Padding(0, 1)

	// Category sidebar
	Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 1)

	SidebarTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	SidebarItem = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	SidebarItemActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextColor).
				Background(PrimaryColor).
				Padding(0, 1)

	SidebarItemMuted = lipgloss.NewStyle().
				Foreground(MutedColor).
				Padding(0, 1)

	// Search bar
	SearchBar = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	SearchPrompt = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	SearchInput = lipgloss.NewStyle().
			Foreground(TextColor)

	// Type filter toggles in the status bar
	FilterToggleOn = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true).
			MarginRight(2)

	FilterToggleOff = lipgloss.NewStyle().
			Foreground(MutedColor).
			MarginRight(2)

	// Detail panel
	DetailBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2)

	DetailGlyph = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	DetailLabel = lipgloss.NewStyle().
			Foreground(MutedColor)

	DetailValue = lipgloss.NewStyle().
			Foreground(TextColor)

	// Similar character strip inside the detail panel
	SimilarStrip = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			MarginTop(1)

	// Draw mode canvas
	CanvasBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(0, 1)

	CanvasPen = lipgloss.NewStyle().
			Foreground(SurfaceColor).
			Background(SecondaryColor)

	CanvasInk = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	// Error message
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Success message
	SuccessMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)
)

// UseMonochrome swaps the palette for terminals without color support.
// Styles keep their layout attributes; only colors change.
func UseMonochrome() {
	white := lipgloss.Color("15")
	gray := lipgloss.Color("7")
	black := lipgloss.Color("0")

	Primary = Primary.Foreground(white)
	Secondary = Secondary.Foreground(white)
	Warning = Warning.Foreground(white)
	Error = Error.Foreground(white)
	Muted = Muted.Foreground(gray)
	Text = Text.Foreground(white)

	Title = Title.Foreground(white)
	Header = Header.Foreground(white).BorderForeground(gray)
	StatusBar = StatusBar.Foreground(white).Background(black)
	HelpKey = HelpKey.Foreground(white)

	CellCursor = CellCursor.Foreground(black).Background(white)
	CellSelected = CellSelected.Foreground(white).Underline(true)
	CellSelectedCursor = CellSelectedCursor.Foreground(black).Background(gray)

	SidebarItemActive = SidebarItemActive.Background(white).Foreground(black)
	SearchBar = SearchBar.BorderForeground(white)
	DetailBox = DetailBox.BorderForeground(white)
	DetailGlyph = DetailGlyph.Foreground(white)
	CanvasBox = CanvasBox.BorderForeground(white)
	CanvasPen = CanvasPen.Foreground(black).Background(white)
	CanvasInk = CanvasInk.Foreground(white)
	ErrorMsg = ErrorMsg.Foreground(white)
	SuccessMsg = SuccessMsg.Foreground(white)
}
