package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/promptstage/scene-engine/pkg/scenescript"
	"github.com/promptstage/scene-engine/pkg/world"
)

const PlaceHolderText = "Describe what should happen on stage..."

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// sceneEntry is one prompt/response pair in the session transcript.
type sceneEntry struct {
	prompt string
	resp   *SceneResponse
	err    error
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config        *ConsoleConfig
	client        *http.Client
	world         *world.World
	entries       []sceneEntry
	stageViewport viewport.Model
	metaViewport  viewport.Model
	textarea      textarea.Model
	ready         bool
	width         int
	height        int
	err           error
	loading       bool

	// World selection state
	showWorldModal bool
	worlds         []world.World
	selectedWorld  int
	loadingWorlds  bool

	// Quit confirmation state
	showQuitModal bool

	// Progress bar state
	progressTick int
}

type sceneResponseMsg struct {
	prompt   string
	response *SceneResponse
	err      error
}

type worldsLoadedMsg struct {
	worlds []world.World
	err    error
}

type progressTickMsg struct{}

var (
	stagePanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // grey

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	feedbackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")) // pale yellow

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")). // bright green
			Bold(true)

	partialStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // orange
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213")). // magenta
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 500
	ta.SetWidth(50)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	stageVp := viewport.New(50, 20)
	stageVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:         cfg,
		client:         client,
		textarea:       ta,
		stageViewport:  stageVp,
		metaViewport:   metaVp,
		ready:          false,
		showWorldModal: true,
		loadingWorlds:  true,
		selectedWorld:  0,
	}
}

func (m *ConsoleUI) writeInitialContent(stageWidth int) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("PROMPT STAGE") + "\n\n")
	if m.world != nil {
		content.WriteString(fmt.Sprintf("%s %s\n", m.world.Emoji, m.world.Hook))
		content.WriteString(promptStyle.Render("Try: "+m.world.Placeholder) + "\n\n")
	}
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(stageWidth-6, 1))) + "\n\n")
	return content.String()
}

func (m *ConsoleUI) writeMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("WORLD") + "\n\n")

	if m.world != nil {
		content.WriteString(fmt.Sprintf("%s %s\n\n", m.world.Emoji, m.world.Label))
		content.WriteString("Characters:\n")
		for _, c := range m.world.Characters {
			content.WriteString("• " + c + "\n")
		}
		content.WriteString("\nProps:\n")
		for _, p := range m.world.Props {
			content.WriteString("• " + p + "\n")
		}
		content.WriteString("\n")
	}

	if last := m.lastResponse(); last != nil {
		content.WriteString("Last scene:\n")
		content.WriteString(fmt.Sprintf("• source: %s\n", last.Source))
		content.WriteString(fmt.Sprintf("• latency: %.0fms\n", last.LatencyMs))
		if last.Script != nil {
			content.WriteString(fmt.Sprintf("• actions: %d\n", len(last.Script.Actions)))
			if last.Script.GuideHint != "" {
				content.WriteString("\nGuide hint:\n")
				content.WriteString(last.Script.GuideHint + "\n")
			}
		}
		content.WriteString("\n")
	}

	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• /help: Help\n")
	content.WriteString("• /copy: Copy last script\n")
	content.WriteString("• /worlds: Switch world\n")

	return content.String()
}

func (m *ConsoleUI) lastResponse() *SceneResponse {
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].resp != nil {
			return m.entries[i].resp
		}
	}
	return nil
}

// writeStageContent rebuilds the transcript for the current viewport width.
func (m *ConsoleUI) writeStageContent() {
	stageWidth := m.stageViewport.Width - 6 // Account for left(3) + right(3) padding

	var content strings.Builder
	content.WriteString(m.writeInitialContent(stageWidth))

	for _, entry := range m.entries {
		content.WriteString(userStyle.Render("You: ") + wordwrap.String(entry.prompt, max(stageWidth-6, 10)) + "\n\n")
		switch {
		case entry.err != nil:
			content.WriteString(errorStyle.Render("Error: "+entry.err.Error()) + "\n\n")
		case entry.resp != nil && entry.resp.Script != nil:
			content.WriteString(formatScene(entry.resp.Script, stageWidth) + "\n")
		}
	}

	if m.loading {
		content.WriteString(m.renderProgressBar())
	}

	m.stageViewport.SetContent(content.String())
	m.stageViewport.GotoBottom()
}

// formatScene renders a resolved script: success banner, narration,
// then the action timeline and coaching feedback.
func formatScene(script *scenescript.SceneScript, width int) string {
	var b strings.Builder

	switch script.SuccessLevel {
	case scenescript.FullSuccess:
		b.WriteString(successStyle.Render("★ FULL SUCCESS") + "\n")
	case scenescript.PartialSuccess:
		b.WriteString(partialStyle.Render("◐ PARTIAL SUCCESS") + "\n")
	case scenescript.FunnyFail:
		b.WriteString(failStyle.Render("⊘ FUNNY FAIL") + "\n")
	}

	b.WriteString(narratorStyle.Render(wordwrap.String(script.Narration, max(width-4, 10))) + "\n\n")

	for _, a := range script.Actions {
		b.WriteString(actionStyle.Render("  "+formatAction(a)) + "\n")
	}
	if len(script.Actions) > 0 {
		b.WriteString("\n")
	}

	if script.PromptFeedback != "" {
		b.WriteString(feedbackStyle.Render(wordwrap.String("Coach: "+script.PromptFeedback, max(width-4, 10))) + "\n")
	}
	if len(script.MissingElements) > 0 {
		b.WriteString(promptStyle.Render("Missing: "+strings.Join(script.MissingElements, ", ")) + "\n")
	}

	return b.String()
}

func formatAction(a scenescript.Action) string {
	switch a.Type {
	case scenescript.ActionSpawn:
		return fmt.Sprintf("▸ spawn %s at %s", a.Target, a.Position)
	case scenescript.ActionMove:
		if a.Style != "" {
			return fmt.Sprintf("▸ move %s to %s (%s)", a.Target, a.To, a.Style)
		}
		return fmt.Sprintf("▸ move %s to %s", a.Target, a.To)
	case scenescript.ActionAnimate:
		return fmt.Sprintf("▸ %s plays %s", a.Target, a.Anim)
	case scenescript.ActionReact:
		return fmt.Sprintf("▸ %s burst at %s", a.Effect, a.Position)
	case scenescript.ActionEmote:
		if a.Emoji != "" {
			return fmt.Sprintf("▸ %s emotes %s", a.Target, a.Emoji)
		}
		return fmt.Sprintf("▸ %s says %q", a.Target, a.Text)
	case scenescript.ActionSfx:
		return fmt.Sprintf("▸ sound: %s", a.Sound)
	case scenescript.ActionWait:
		if a.DurationMs != nil {
			return fmt.Sprintf("▸ wait %dms", *a.DurationMs)
		}
		return "▸ wait"
	case scenescript.ActionRemove:
		return fmt.Sprintf("▸ remove %s", a.Target)
	default:
		return fmt.Sprintf("▸ %s", a.Type)
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	if m.showWorldModal {
		return m.loadWorlds()
	}
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle world modal first
	if m.showWorldModal {
		return m.updateWorldModal(msg)
	}

	// Handle quit modal second
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.stageViewport, vpCmd = m.stageViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanels()
		m.writeStageContent()
		m.metaViewport.SetContent(m.writeMetadata())
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}

			m.textarea.Reset()
			m.loading = true
			m.progressTick = 0

			m.writeStageContent()
			return m, tea.Batch(m.sendSceneRequest(input), progressTick())
		}

	case sceneResponseMsg:
		m.loading = false
		m.entries = append(m.entries, sceneEntry{
			prompt: msg.prompt,
			resp:   msg.response,
			err:    msg.err,
		})
		m.writeStageContent()
		m.metaViewport.SetContent(m.writeMetadata())
		m.stageViewport.GotoBottom()
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeStageContent()
			return m, progressTick()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.stageViewport, vpCmd = m.stageViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m *ConsoleUI) resizePanels() {
	stageWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - stageWidth - 6

	m.stageViewport.Width = stageWidth - 2
	m.stageViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.textarea.SetWidth(stageWidth - 4)
}

func (m ConsoleUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	cmd := strings.ToLower(strings.TrimSpace(input))

	switch cmd {
	case "/help":
		helpText := `
Commands:
• /help - Show this help
• /copy - Copy the last scene script JSON to the clipboard
• /worlds - Switch to a different world
• Ctrl+C - Quit

How to play:
• Describe what should happen on stage and press Enter
• Name your characters, give them actions, add details
• Better prompts earn FULL SUCCESS scenes
`
		currentContent := m.stageViewport.View()
		m.stageViewport.SetContent(currentContent + titleStyle.Render("Help:") + helpText + "\n")
		m.stageViewport.GotoBottom()

	case "/copy":
		var note string
		if last := m.lastResponse(); last != nil && last.Script != nil {
			data, err := json.MarshalIndent(last.Script, "", "  ")
			if err == nil {
				err = clipboardWriteAll(string(data))
			}
			if err != nil {
				note = errorStyle.Render("Copy failed: "+err.Error()) + "\n\n"
			} else {
				note = loadingStyle.Render("Scene script copied to clipboard.") + "\n\n"
			}
		} else {
			note = promptStyle.Render("No scene to copy yet.") + "\n\n"
		}
		currentContent := m.stageViewport.View()
		m.stageViewport.SetContent(currentContent + note)
		m.stageViewport.GotoBottom()

	case "/worlds":
		m.showWorldModal = true
		m.loadingWorlds = true
		m.textarea.Reset()
		return m, m.loadWorlds()
	}

	m.textarea.Reset()
	return m, nil
}

func (m ConsoleUI) sendSceneRequest(input string) tea.Cmd {
	return func() tea.Msg {
		resp, err := sendScene(m.client, m.config.APIBaseURL, m.world.ID, input)
		return sceneResponseMsg{prompt: input, response: resp, err: err}
	}
}

func (m ConsoleUI) loadWorlds() tea.Cmd {
	return func() tea.Msg {
		worlds, err := listWorlds(m.client, m.config.APIBaseURL)
		return worldsLoadedMsg{worlds, err}
	}
}

func (m ConsoleUI) updateWorldModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case worldsLoadedMsg:
		m.loadingWorlds = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.worlds = msg.worlds
		}

	case tea.KeyMsg:
		if m.loadingWorlds {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}

		if m.err != nil {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyUp:
			if m.selectedWorld > 0 {
				m.selectedWorld--
			}
		case tea.KeyDown:
			if m.selectedWorld < len(m.worlds)-1 {
				m.selectedWorld++
			}
		case tea.KeyEnter:
			if len(m.worlds) > 0 {
				chosen := m.worlds[m.selectedWorld]
				m.world = &chosen
				m.entries = nil
				m.showWorldModal = false
				if m.width > 0 && m.height > 0 {
					m.resizePanels()
				}
				m.writeStageContent()
				m.metaViewport.SetContent(m.writeMetadata())
				m.textarea.Placeholder = chosen.Placeholder
				m.textarea.Focus()
				m.ready = true
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if m.showWorldModal {
					return m, nil
				}
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Leave the Stage?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to quit?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderWorldModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	if m.loadingWorlds {
		content.WriteString(modalTitleStyle.Render("Loading Worlds..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Fetching the world list from the API..."))
	} else if m.err != nil {
		content.WriteString(modalTitleStyle.Render("Error"))
		content.WriteString("\n\n")
		content.WriteString(errorStyle.Render(fmt.Sprintf("Failed to load worlds: %v", m.err)))
		content.WriteString("\n\n")
		content.WriteString("Press Ctrl+C to exit")
	} else {
		content.WriteString(modalTitleStyle.Render("Pick a World"))
		content.WriteString("\n\n")

		for i, w := range m.worlds {
			label := fmt.Sprintf("%s %s", w.Emoji, w.Label)
			if i == m.selectedWorld {
				content.WriteString(modalSelectedItemStyle.Render("▶ " + label))
			} else {
				content.WriteString(modalItemStyle.Render("  " + label))
			}
			content.WriteString("\n")
		}

		content.WriteString("\n")
		content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Ctrl+C to exit"))
	}

	modal := modalStyle.Width(60).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showWorldModal {
		return m.renderWorldModal()
	}

	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	stageWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - stageWidth - 6

	stagePanel := stagePanelStyle.Width(stageWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.stageViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(stageWidth-4, 1))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, stagePanel, metaPanel)
}

// renderProgressBar creates an animated progress bar for loading states
func (m ConsoleUI) renderProgressBar() string {
	usable := m.stageViewport.Width - 6
	if usable <= 0 {
		usable = 30 // fallback before sizing
	}
	if usable > 80 {
		usable = 80
	} else if usable < 10 {
		usable = 10
	}

	const totalFrames = 40
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		if i < filled {
			bar.WriteString("█")
		} else if i == filled && frame%4 < 2 {
			bar.WriteString("▓")
		} else {
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

// progressTick creates a command that sends a progress tick message
func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
