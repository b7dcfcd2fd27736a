package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	pagerTitleStyle  = lipgloss.NewStyle().Bold(true)
	pagerFooterStyle = lipgloss.NewStyle().Faint(true)
)

// pageContent shows content through an interactive viewport. Short content
// is printed directly without entering the alternate screen.
func pageContent(output io.Writer, content string) error {
	width, height := 80, 24

	if f, ok := output.(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			width, height = w, h
		}
	}

	if strings.Count(content, "\n") < height-2 {
		_, err := fmt.Fprint(output, content)
		return err
	}

	model := newReportPagerModel(content, width, height)

	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// reportPagerModel is the Bubble Tea model paging saved reports.
type reportPagerModel struct {
	viewport viewport.Model
	content  string
}

func newReportPagerModel(content string, width, height int) reportPagerModel {
	vp := viewport.New(width, height-2)
	vp.SetContent(content)

	return reportPagerModel{viewport: vp, content: content}
}

// Init implements tea.Model.
func (p reportPagerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p reportPagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		p.viewport.Width = msg.Width
		p.viewport.Height = msg.Height - 2
		p.viewport.SetContent(p.content)
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

// View implements tea.Model.
func (p reportPagerModel) View() string {
	header := pagerTitleStyle.Render("flowlint reports")
	footer := pagerFooterStyle.Render(fmt.Sprintf("%3.f%% · q to quit", p.viewport.ScrollPercent()*100))

	return header + "\n" + p.viewport.View() + "\n" + footer
}
