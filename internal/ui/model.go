package ui

import (
	"fmt"
	"log"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"menuflow/internal/config"
	"menuflow/internal/eventbus"
	"menuflow/internal/nav"
	"menuflow/internal/stream"
)

// menuTop is the screen row of the first menu entry: one row of padding, the
// title and its bottom margin.
const menuTop = 3

// Model is the bubbletea model for the menu widget. It feeds raw input into
// the pipeline's source channels and receives the coordinators' output back
// as PipelineMsg values; all navigation state lives in the pipeline, not
// here.
type Model struct {
	cfg    *config.Config
	bus    eventbus.Bus
	menu   *Menu
	keys   chan<- string
	hover  chan<- int
	toggle *stream.Toggle
	styles *Styles

	help    help.Model
	keymap  helpKeyMap
	status  string
	width   int
	height  int
	last    int // last highlight position seen, -1 for none
	program *tea.Program
}

// NewModel creates the UI model around an already-wired pipeline.
func NewModel(cfg *config.Config, bus eventbus.Bus, menu *Menu, keys chan<- string, hover chan<- int, toggle *stream.Toggle, styles *Styles) *Model {
	return &Model{
		cfg:    cfg,
		bus:    bus,
		menu:   menu,
		keys:   keys,
		hover:  hover,
		toggle: toggle,
		styles: styles,
		help:   help.New(),
		keymap: newHelpKeyMap(cfg.Keys),
		last:   -1,
	}
}

// SetProgram hands the model its program, needed to release the terminal for
// the help pager.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

func (m *Model) Init() tea.Cmd {
	// Input flows once the widget is up.
	m.toggle.Set(true)
	m.bus.Publish(eventbus.GateToggledEvent{Open: true})
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.FocusMsg:
		m.toggle.Set(true)
		m.bus.Publish(eventbus.GateToggledEvent{Open: true})
		m.status = ""

	case tea.BlurMsg:
		m.toggle.Set(false)
		m.bus.Publish(eventbus.GateToggledEvent{Open: false})
		m.status = "input paused while unfocused"

	case PipelineMsg:
		m.handlePipeline(msg.Value)

	case helpClosedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("help pager: %v", msg.err)
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	switch {
	case slices.Contains(m.cfg.Keys.Quit, s):
		return m, tea.Quit
	case slices.Contains(m.cfg.Keys.Help, s):
		return m, m.showHelp()
	default:
		m.pushKey(s)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.cfg.UI.MouseEnabled {
		return
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.pushKey(m.cfg.Keys.Previous[0])
	case msg.Button == tea.MouseButtonWheelDown:
		m.pushKey(m.cfg.Keys.Next[0])
	case msg.Action == tea.MouseActionMotion,
		msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		// Hovering or clicking a row moves the highlight there. Selection
		// stays on the keyboard so it always applies to the highlight the
		// pipeline has actually processed.
		m.pushHover(msg.Y - menuTop)
	}
}

func (m *Model) handlePipeline(v any) {
	switch v := v.(type) {
	case nav.Index:
		to := int(v)
		m.bus.Publish(eventbus.HighlightMovedEvent{From: m.last, To: to})
		m.last = to
		if v.IsSome() {
			m.status = fmt.Sprintf("%d/%d", to+1, m.menu.Count())
		} else {
			m.status = ""
		}
	case nav.Selection[Item]:
		m.bus.Publish(eventbus.SelectionMadeEvent{Index: int(v.Index), Label: v.Item.Label})
		m.status = fmt.Sprintf("selected: %s", v.Item.Label)
	}
}

// pushKey forwards a key name to the pipeline without ever blocking the UI
// loop.
func (m *Model) pushKey(s string) {
	select {
	case m.keys <- s:
	default:
		log.Println("key channel full, dropping key")
	}
}

func (m *Model) pushHover(idx int) {
	select {
	case m.hover <- idx:
	default:
		log.Println("hover channel full, dropping event")
	}
}

func (m *Model) showHelp() tea.Cmd {
	content := renderHelpContent(m.cfg)
	return func() tea.Msg {
		return helpClosedMsg{err: showInPager(m.program, content)}
	}
}

func (m *Model) View() string {
	var view string
	view += m.styles.Title.Render(m.cfg.Title)
	view += "\n"
	view += m.menu.Render()
	view += "\n"
	if m.status != "" {
		view += m.styles.Status.Render(m.status)
		view += "\n"
	}
	view += m.help.View(m.keymap)
	return m.styles.Main.Render(view)
}

// helpKeyMap adapts the configured bindings to the bubbles help footer.
type helpKeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Select   key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newHelpKeyMap(keys config.KeyBindings) helpKeyMap {
	mk := func(names []string, desc string) key.Binding {
		display := ""
		if len(names) > 0 {
			display = names[0]
		}
		return key.NewBinding(key.WithKeys(names...), key.WithHelp(display, desc))
	}
	return helpKeyMap{
		Next:     mk(keys.Next, "next"),
		Previous: mk(keys.Previous, "previous"),
		Select:   mk(keys.Select, "select"),
		Clear:    mk(keys.Clear, "clear"),
		Help:     mk(keys.Help, "help"),
		Quit:     mk(keys.Quit, "quit"),
	}
}

func (k helpKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Select, k.Quit}
}

func (k helpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Clear},
		{k.Select, k.Help, k.Quit},
	}
}
