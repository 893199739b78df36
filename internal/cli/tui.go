package cli

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakret/gir/office"
)

// tickMsg advances the search animation by one generation.
type tickMsg time.Time

// searchModel is the bubbletea model replaying a finished office search:
// one explored generation per frame, then the path.
type searchModel struct {
	base    officeFrame
	outcome *office.Outcome
	frame   time.Duration
	gen     int
	paused  bool
}

func newSearchModel(base officeFrame, outcome *office.Outcome, frame time.Duration) searchModel {
	if frame <= 0 {
		frame = 80 * time.Millisecond
	}
	return searchModel{base: base, outcome: outcome, frame: frame}
}

func (m searchModel) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// finished reports whether every generation is on screen.
func (m searchModel) finished() bool {
	return m.gen >= len(m.outcome.Explored)
}

func (m searchModel) Init() tea.Cmd {
	return m.tick()
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.gen = 0
		}
	case tickMsg:
		// One tick chain runs for the program's lifetime.
		if !m.paused && !m.finished() {
			m.gen++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m searchModel) View() string {
	frame := newOfficeFrame(m.base.fav, m.base.size, m.base.start, m.base.goal).
		withGenerations(m.outcome.Explored, m.gen)
	if m.finished() {
		frame = frame.withPath(m.outcome.Path)
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Breadth-first search"))
	b.WriteString("\n\n")
	b.WriteString(frame.render())
	b.WriteString("\n\n")
	if m.finished() {
		b.WriteString(summary(m.outcome))
	} else {
		b.WriteString(StyleDim.Render("generation "))
		b.WriteString(StyleNumber.Render(strings.Repeat("▮", min(m.gen, 40))))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("space pause  r restart  q quit"))
	b.WriteString("\n")

	return b.String()
}
