package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/lipi/internal/tui/components"
	"github.com/f3rmion/lipi/internal/tui/views"
)

// AppModel is the main TUI model
type AppModel struct {
	converter views.ConverterModel
	help      help.Model

	// Layout state
	width  int
	height int
	ready  bool

	// Help overlay
	showHelp bool
}

// NewApp creates a new TUI application around a converter view.
func NewApp(opts views.ConverterOptions) AppModel {
	h := help.New()
	h.Styles.ShortKey = HelpKeyStyle.UnsetWidth()
	h.Styles.ShortDesc = HelpCloseStyle

	return AppModel{
		converter: views.NewConverterModel(opts),
		help:      h,
	}
}

// Converter returns the converter view.
func (m AppModel) Converter() views.ConverterModel {
	return m.converter
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch {
		case key.Matches(msg, components.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, components.Keys.Help):
			m.showHelp = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width

		m.converter.SetSize(m.width-2, m.height-m.chromeHeight())
		return m, nil
	}

	var cmd tea.Cmd
	m.converter, cmd = m.converter.Update(msg)
	return m, cmd
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	content := ContentStyle.Width(m.width).Render(m.converter.View())
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		" "+m.help.View(components.Keys),
	)
}

func (m AppModel) renderHeader() string {
	title := TitleStyle.Render("अ  Roman to Nepali Converter")
	subtitle := SubtitleStyle.Render("Type Roman Nepali and get instant Devanagari transliteration")
	return HeaderStyle.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, title, subtitle))
}

// chromeHeight is the number of rows taken by header and footer.
func (m AppModel) chromeHeight() int {
	return lipgloss.Height(m.renderHeader()) + 2
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	helpText := HelpTitleStyle.Render("lipi - Roman to Nepali") + "\n"

	helpText += HelpSectionStyle.Render("Editing") + "\n"
	helpText += HelpKeyStyle.Render("any key") + HelpDescStyle.Render("Type Roman Nepali; output updates live") + "\n"
	helpText += HelpKeyStyle.Render("enter") + HelpDescStyle.Render("New line") + "\n"

	helpText += HelpSectionStyle.Render("Actions") + "\n"
	for _, b := range components.Keys.ShortHelp() {
		helpText += HelpKeyStyle.Render(b.Help().Key) + HelpDescStyle.Render(b.Help().Desc) + "\n"
	}

	helpText += "\n" + HelpCloseStyle.Render("Press any key to close")

	helpBox := HelpBoxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
