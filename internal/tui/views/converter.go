package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/lipi/internal/clipboard"
	"github.com/f3rmion/lipi/internal/logging"
	"github.com/f3rmion/lipi/internal/session"
	"github.com/f3rmion/lipi/internal/translit"
	"github.com/f3rmion/lipi/internal/tui/components"
)

// CopyFeedbackDuration is how long "Copied!" stays visible.
const CopyFeedbackDuration = 2 * time.Second

// sideBySideWidth is the narrowest content width that still fits both panes
// next to each other.
const sideBySideWidth = 80

const outputPlaceholder = "Your Nepali transliteration will appear here..."

var tips = []string{
	"Use standard Roman spelling (e.g., 'cha' not 'chha')",
	"Type naturally as you would speak",
	"Use spaces between words for better accuracy",
}

// Message types
type conversionResultMsg struct {
	ticket    session.Ticket
	converted string
	err       error
}

type debounceMsg struct {
	gen  uint64
	text string
}

type clearCopiedMsg struct {
	gen uint64
}

// Timer schedules msg to be delivered after d.
type Timer func(d time.Duration, msg tea.Msg) tea.Cmd

func tickTimer(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// ConverterOptions configures a ConverterModel.
type ConverterOptions struct {
	Transliterator translit.Transliterator
	Clipboard      clipboard.Writer
	Policy         session.StalePolicy
	Debounce       time.Duration
	Timer          Timer // nil uses tea.Tick
}

// ConverterModel is the transliteration view: Roman input on one side,
// Devanagari output on the other.
type ConverterModel struct {
	input   textarea.Model
	spinner spinner.Model
	state   *session.State

	tr       translit.Transliterator
	clip     clipboard.Writer
	debounce time.Duration
	after    Timer

	showTips bool

	width  int
	height int
}

// NewConverterModel creates a new converter view model.
func NewConverterModel(opts ConverterOptions) ConverterModel {
	ta := textarea.New()
	ta.Placeholder = "Start typing Roman Nepali here...\nExample: 'namaste', 'kasto cha', 'tapai kaha basnu huncha'"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	after := opts.Timer
	if after == nil {
		after = tickTimer
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.Default()
	}

	return ConverterModel{
		input:    ta,
		spinner:  sp,
		state:    session.New(opts.Policy),
		tr:       opts.Transliterator,
		clip:     clip,
		debounce: opts.Debounce,
		after:    after,
		showTips: true,
	}
}

// State exposes the view state.
func (m ConverterModel) State() *session.State {
	return m.state
}

// SetSize updates the view dimensions.
func (m *ConverterModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	paneWidth := m.paneWidth()
	m.input.SetWidth(paneWidth - 4)
	m.input.SetHeight(m.bodyHeight())
}

// Update handles messages.
func (m ConverterModel) Update(msg tea.Msg) (ConverterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, components.Keys.Copy):
			return m, m.CopyOutput()
		case key.Matches(msg, components.Keys.Clear):
			m.ClearAll()
			return m, nil
		case key.Matches(msg, components.Keys.Tips):
			m.showTips = !m.showTips
			m.SetSize(m.width, m.height)
			return m, nil
		}

		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		if v := m.input.Value(); v != m.state.RawInput {
			cmds = append(cmds, m.OnTextChanged(v))
		}
		return m, tea.Batch(cmds...)

	case conversionResultMsg:
		m.state.Finish(msg.ticket, msg.converted, msg.err)
		return m, nil

	case debounceMsg:
		if m.state.IsLatestChange(msg.gen) {
			return m, m.Convert(msg.text)
		}
		return m, nil

	case clearCopiedMsg:
		m.state.ResetCopyFeedback(msg.gen)
		return m, nil

	case spinner.TickMsg:
		// Letting the tick drop stops the spinner until the next request.
		if !m.state.ConversionInFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// OnTextChanged stores text as the raw input and starts its conversion,
// immediately or after the debounce delay.
func (m *ConverterModel) OnTextChanged(text string) tea.Cmd {
	if m.input.Value() != text {
		m.input.SetValue(text)
	}
	gen := m.state.SetInput(text)

	if m.debounce > 0 && strings.TrimSpace(text) != "" {
		return m.after(m.debounce, debounceMsg{gen: gen, text: text})
	}
	return m.Convert(text)
}

// Convert dispatches a conversion of text. The returned command performs the
// HTTP call off the event loop; its result comes back as a message.
func (m *ConverterModel) Convert(text string) tea.Cmd {
	ticket, ok := m.state.Begin(text)
	if !ok {
		return nil
	}
	if m.tr == nil {
		m.state.Finish(ticket, "", fmt.Errorf("no transliterator configured"))
		return nil
	}

	logging.Debugf("converting #%d (%d bytes)", ticket.Seq, len(ticket.Text))

	tr := m.tr
	request := func() tea.Msg {
		converted, err := tr.Transliterate(context.Background(), ticket.Text)
		return conversionResultMsg{ticket: ticket, converted: converted, err: err}
	}
	return tea.Batch(m.spinner.Tick, request)
}

// CopyOutput copies the converted text and schedules the feedback reset.
func (m *ConverterModel) CopyOutput() tea.Cmd {
	gen, ok := m.state.CopyOutput(m.clip)
	if !ok {
		return nil
	}
	return m.after(CopyFeedbackDuration, clearCopiedMsg{gen: gen})
}

// ClearAll empties input and output.
func (m *ConverterModel) ClearAll() {
	m.state.Clear()
	m.input.Reset()
}

// View renders the converter view.
func (m ConverterModel) View() string {
	in := m.renderInputPane()
	out := m.renderOutputPane()

	var panes string
	if m.sideBySide() {
		panes = lipgloss.JoinHorizontal(lipgloss.Top, in, " ", out)
	} else {
		arrow := lipgloss.PlaceHorizontal(m.paneWidth(), lipgloss.Center, arrowStyle.Render("↓"))
		panes = lipgloss.JoinVertical(lipgloss.Left, in, arrow, out)
	}

	if !m.showTips {
		return panes
	}
	return lipgloss.JoinVertical(lipgloss.Left, panes, m.renderTips())
}

func (m ConverterModel) renderInputPane() string {
	var b strings.Builder

	b.WriteString(paneTitleStyle.Render("Roman Input"))
	b.WriteString("\n")
	b.WriteString(paneSubtitleStyle.Render("Type in Roman Nepali"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	footer := countStyle.Render(fmt.Sprintf("%d characters", components.CharCount(m.state.RawInput)))
	if m.state.RawInput != "" {
		footer += "  " + clearStyle.Render("Clear All (ctrl+x)")
	}
	b.WriteString(footer)

	return paneStyle.Width(m.paneWidth() - 2).Render(b.String())
}

func (m ConverterModel) renderOutputPane() string {
	var b strings.Builder
	output := m.state.ConvertedOutput

	header := paneTitleStyle.Render("Nepali Output") + "\n" + paneSubtitleStyle.Render("Devanagari script")
	if output != "" {
		label := copyStyle.Render("Copy (ctrl+y)")
		if m.state.CopyFeedbackActive {
			label = copiedStyle.Render("Copied!")
		}
		gap := m.paneWidth() - 6 - lipgloss.Width(header) - lipgloss.Width(label)
		if gap < 1 {
			gap = 1
		}
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, strings.Repeat(" ", gap), label)
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	textWidth := m.paneWidth() - 6
	var body string
	if output != "" {
		body = outputTextStyle.Render(components.Wrap(output, textWidth))
	} else {
		body = placeholderStyle.Render(outputPlaceholder + "\nStart typing Roman Nepali on the input side")
	}
	if m.state.ConversionInFlight {
		body = m.spinner.View() + loadingStyle.Render(" Converting...") + "\n" + body
	}
	b.WriteString(lipgloss.NewStyle().Height(m.bodyHeight()).Render(body))
	b.WriteString("\n\n")

	if output != "" {
		b.WriteString(countStyle.Render(fmt.Sprintf("%d characters • %d words",
			components.CharCount(output), components.WordCount(output))))
	}

	style := outputPaneStyle
	if output == "" {
		style = emptyPaneStyle
	}
	return style.Width(m.paneWidth() - 2).Render(b.String())
}

func (m ConverterModel) renderTips() string {
	var lines []string
	lines = append(lines, tipsTitleStyle.Render("Tips for better results"))
	for _, tip := range tips {
		lines = append(lines, tipBulletStyle.Render("•")+" "+tipStyle.Render(tip))
	}
	return tipsBoxStyle.Width(m.contentWidth() - 2).Render(strings.Join(lines, "\n"))
}

func (m ConverterModel) contentWidth() int {
	if m.width <= 0 {
		return sideBySideWidth
	}
	return m.width
}

func (m ConverterModel) sideBySide() bool {
	return m.contentWidth() >= sideBySideWidth
}

func (m ConverterModel) paneWidth() int {
	if m.sideBySide() {
		return (m.contentWidth() - 1) / 2
	}
	return m.contentWidth()
}

// bodyHeight is the number of rows left for the text area of a pane.
func (m ConverterModel) bodyHeight() int {
	h := m.height
	if h <= 0 {
		h = 24
	}
	if m.showTips {
		h -= len(tips) + 4
	}
	// Pane chrome: borders, title, subtitle, spacing, footer.
	h -= 8
	if !m.sideBySide() {
		h = (h - 9) / 2
	}
	if h < 3 {
		h = 3
	}
	return h
}
