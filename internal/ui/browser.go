package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/Xyedo/message-benchmark/internal/results"
)

type browserKeyMap struct {
	Quit key.Binding
}

var browserKeys = browserKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}

type workloadItem struct {
	group results.WorkloadGroup
}

func (i workloadItem) Title() string { return i.group.Name }

func (i workloadItem) Description() string {
	drivers := make([]string, len(i.group.Results))
	for j, r := range i.group.Results {
		drivers[j] = r.Driver
	}
	return fmt.Sprintf("%d drivers: %s", len(drivers), strings.Join(drivers, ", "))
}

func (i workloadItem) FilterValue() string { return i.group.Name }

// BrowserModel is the workload explorer TUI: a workload list on the left,
// the selected workload's per-driver metrics on the right.
type BrowserModel struct {
	list   list.Model
	width  int
	height int
}

// NewBrowser creates the explorer model over the grouped results.
func NewBrowser(groups []results.WorkloadGroup) BrowserModel {
	items := make([]list.Item, len(groups))
	for i, g := range groups {
		items[i] = workloadItem{group: g}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Workloads"
	l.SetShowStatusBar(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{browserKeys.Quit}
	}

	return BrowserModel{list: l}
}

func (m BrowserModel) Init() tea.Cmd {
	return nil
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, browserKeys.Quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := browserAppStyle.GetFrameSize()
		m.list.SetSize(msg.Width/2-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) View() string {
	detail := dimStyle.Render("No workload selected")
	if item, ok := m.list.SelectedItem().(workloadItem); ok {
		detail = renderWorkloadDetail(item.group)
	}

	return browserAppStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.list.View(),
			detailsStyle.Render(detail),
		),
	)
}

func renderWorkloadDetail(g results.WorkloadGroup) string {
	var sb strings.Builder
	sb.WriteString(workloadTitleStyle.Render(g.Name) + "\n\n")

	for _, r := range g.Results {
		sb.WriteString(columnHeaderStyle.Render(r.Driver) + "\n")
		sb.WriteString(fmt.Sprintf("  publish rate  %s msg/s\n", humanize.CommafWithDigits(r.PublishRate.Mean(), 0)))
		sb.WriteString(fmt.Sprintf("  consume rate  %s msg/s\n", humanize.CommafWithDigits(r.ConsumeRate.Mean(), 0)))
		sb.WriteString(fmt.Sprintf("  publish p50   %.2f ms\n", r.PublishLatencyP50.Mean()))
		sb.WriteString(fmt.Sprintf("  publish p99   %.2f ms\n", r.PublishLatencyP99.Mean()))
		sb.WriteString(fmt.Sprintf("  e2e avg       %.2f ms\n", r.EndToEndLatencyAvg.Mean()))
		sb.WriteString(fmt.Sprintf("  e2e p99       %.2f ms\n\n", r.EndToEndLatencyP99.Mean()))
	}

	bestTP, _ := g.BestThroughput()
	bestLat, _ := g.LowestP99()
	sb.WriteString(dimStyle.Render("best throughput: ") + winnerStyle.Render(bestTP.Driver) + "\n")
	sb.WriteString(dimStyle.Render("lowest p99: ") + winnerStyle.Render(bestLat.Driver))

	return sb.String()
}
