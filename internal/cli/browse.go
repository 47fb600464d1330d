package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rsoares/roadmap/internal/cli/formatter"
	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/roadmap"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the roadmap interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newBrowseModel(app)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type browseTab int

const (
	tabItems browseTab = iota
	tabDashboard
	tabTimeline
	tabCount
)

func (t browseTab) title() string {
	switch t {
	case tabItems:
		return "Items"
	case tabDashboard:
		return "Dashboard"
	default:
		return "Timeline"
	}
}

// browseLoadedMsg carries a refreshed snapshot of everything the tabs
// render.
type browseLoadedMsg struct {
	items      []*domain.Item
	milestones []*domain.Milestone
	metrics    *roadmap.Metrics
	err        error
}

type browseKeymap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultBrowseKeymap() browseKeymap {
	return browseKeymap{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseModel is a three-tab read-only TUI over the roadmap data.
type browseModel struct {
	app    *App
	keys   browseKeymap
	tab    browseTab
	cursor int

	items      []*domain.Item
	milestones []*domain.Milestone
	metrics    *roadmap.Metrics

	vp      viewport.Model
	ready   bool
	loading bool
	err     error
}

func newBrowseModel(app *App) *browseModel {
	return &browseModel{
		app:     app,
		keys:    defaultBrowseKeymap(),
		loading: true,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *browseModel) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()

		items, err := app.Items.List(ctx)
		if err != nil {
			return browseLoadedMsg{err: err}
		}
		milestones, err := app.Milestones.List(ctx)
		if err != nil {
			return browseLoadedMsg{err: err}
		}
		metrics, err := app.Dashboard.Metrics(ctx, domain.Criteria{})
		if err != nil {
			return browseLoadedMsg{err: err}
		}

		return browseLoadedMsg{items: items, milestones: milestones, metrics: metrics}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case browseLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.items = msg.items
			m.milestones = msg.milestones
			m.metrics = msg.metrics
			if m.cursor >= len(m.items) {
				m.cursor = 0
			}
		}
		m.syncViewport()
		return m, nil

	case tea.WindowSizeMsg:
		headerHeight := 3
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight
		}
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
			m.syncViewport()
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.syncViewport()
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadData()
		case key.Matches(msg, m.keys.Up):
			if m.tab == tabItems && m.cursor > 0 {
				m.cursor--
				m.syncViewport()
			} else {
				m.vp.LineUp(1)
			}
		case key.Matches(msg, m.keys.Down):
			if m.tab == tabItems && m.cursor < len(m.items)-1 {
				m.cursor++
				m.syncViewport()
			} else {
				m.vp.LineDown(1)
			}
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *browseModel) syncViewport() {
	if !m.ready {
		return
	}
	m.vp.SetContent(m.tabContent())
}

func (m *browseModel) tabContent() string {
	if m.loading {
		return formatter.Dim("Loading...")
	}
	if m.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err))
	}

	now := time.Now().UTC()
	switch m.tab {
	case tabItems:
		return m.itemsContent(now)
	case tabDashboard:
		if m.metrics == nil {
			return formatter.Dim("No data.")
		}
		return formatter.FormatMetrics(m.metrics, now)
	default:
		return formatter.RenderTimeline(m.items, m.milestones, now)
	}
}

// itemsContent renders the item table plus an inline detail pane for
// the item under the cursor.
func (m *browseModel) itemsContent(now time.Time) string {
	if len(m.items) == 0 {
		return formatter.Dim("No items yet. Add one with `roadmap item add`.")
	}

	var b strings.Builder
	b.WriteString(formatter.FormatItemList(m.items, now))

	if m.cursor < len(m.items) {
		b.WriteString("\n")
		b.WriteString(formatter.FormatItemInspect(m.items[m.cursor], now))
	}
	return b.String()
}

func (m *browseModel) View() string {
	var tabs []string
	for t := browseTab(0); t < tabCount; t++ {
		label := " " + t.title() + " "
		if t == m.tab {
			tabs = append(tabs, formatter.StyleHeader.Render(label))
		} else {
			tabs = append(tabs, formatter.StyleDim.Render(label))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	help := formatter.Dim("tab: switch · ↑/↓: move · r: refresh · q: quit")

	if !m.ready {
		return header + "\n" + m.tabContent()
	}
	return header + "\n" + m.vp.View() + "\n" + help
}
