package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slang"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

func replCommand() error {
	p := tea.NewProgram(newREPLModel())
	_, err := p.Run()
	return err
}

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput textinput.Model

	// committed holds statements that already compiled; pending holds the
	// lines of an unfinished block (open braces).
	committed []string
	pending   []string

	history    []historyEntry
	cmdHistory []string
	historyIdx int

	width       int
	height      int
	showHelp    bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	CtrlH key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous line"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next line"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add line / compile"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear history"),
	),
	CtrlH: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("ctrl+h", "toggle help"),
	),
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "type a statement..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "slang> "

	return replModel{
		textInput:  ti,
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlH):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(input)
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			m = m.submitLine(input)
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":reset", ":r":
		m.committed = nil
		m.pending = nil
		m.history = append(m.history, historyEntry{input: input, output: "Program reset"})
	case ":python", ":p":
		m = m.showPipeline(input, func(source string) (string, error) {
			return slang.Compile(source)
		})
	case ":tokens", ":t":
		m = m.showPipeline(input, func(source string) (string, error) {
			tokens, err := slang.Tokenize(source)
			if err != nil {
				return "", err
			}
			return slang.DumpTokens(tokens), nil
		})
	case ":ast", ":a":
		m = m.showPipeline(input, func(source string) (string, error) {
			tokens, err := slang.Tokenize(source)
			if err != nil {
				return "", err
			}
			program, err := slang.Parse(tokens)
			if err != nil {
				return "", err
			}
			return slang.DumpAST(program), nil
		})
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}
	return m, nil
}

func (m replModel) showPipeline(input string, stage func(string) (string, error)) replModel {
	source := strings.Join(m.committed, "\n")
	if source == "" {
		m.history = append(m.history, historyEntry{input: input, output: "(empty program)"})
		return m
	}
	output, err := stage(source)
	if err != nil {
		m.history = append(m.history, historyEntry{input: input, output: err.Error(), isErr: true})
		return m
	}
	m.history = append(m.history, historyEntry{input: input, output: strings.TrimRight(output, "\n")})
	return m
}

// submitLine buffers lines until braces balance, then compiles the whole
// program. On failure the unfinished lines are dropped so a typo never
// wedges the session.
func (m replModel) submitLine(input string) replModel {
	m.pending = append(m.pending, input)
	if braceDepth(m.pending) > 0 {
		m.history = append(m.history, historyEntry{input: input, output: "..."})
		return m
	}

	candidate := append(append([]string{}, m.committed...), m.pending...)
	source := strings.Join(candidate, "\n")
	pending := m.pending
	m.pending = nil

	python, err := slang.Compile(source)
	if err != nil {
		m.history = append(m.history, historyEntry{
			input:  strings.Join(pending, " "),
			output: err.Error(),
			isErr:  true,
		})
		return m
	}

	m.committed = candidate
	m.history = append(m.history, historyEntry{
		input:  strings.Join(pending, " "),
		output: strings.TrimRight(python, "\n"),
	})
	return m
}

func braceDepth(lines []string) int {
	depth := 0
	for _, line := range lines {
		depth += strings.Count(line, "{") - strings.Count(line, "}")
	}
	return depth
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("SimpleLang Compile Explorer")
	b.WriteString(header + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(max(m.width-2, 0), 60))) + "\n\n")

	for _, entry := range m.history {
		if entry.input != "" {
			b.WriteString(promptStyle.Render("slang> ") + entry.input + "\n")
		}
		if entry.output != "" {
			style := resultStyle
			if entry.isErr {
				style = errorStyle
			}
			for _, line := range strings.Split(entry.output, "\n") {
				b.WriteString(style.Render(line) + "\n")
			}
		}
	}

	b.WriteString("\n" + m.textInput.View() + "\n")

	if m.showHelp {
		b.WriteString("\n" + renderHelp() + "\n")
	} else {
		b.WriteString(mutedStyle.Render("\n:help for commands, ctrl+c to quit\n"))
	}

	return b.String()
}

func renderHelp() string {
	rows := []struct{ key, desc string }{
		{":python, :p", "show the generated Python for the program"},
		{":tokens, :t", "show the token sequence"},
		{":ast, :a", "show the AST"},
		{":reset, :r", "discard the program"},
		{":clear, :c", "clear the screen"},
		{":quit, :q", "exit"},
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(helpKeyStyle.Render(fmt.Sprintf("  %-12s", row.key)))
		b.WriteString(helpDescStyle.Render(row.desc) + "\n")
	}
	return b.String()
}
