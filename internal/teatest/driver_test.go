package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type bumpMsg struct{}

// counter bumps on '+' through a Cmd, so draining is exercised.
type counter struct {
	n     int
	width int
}

func (c counter) Init() tea.Cmd { return func() tea.Msg { return bumpMsg{} } }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case bumpMsg:
		c.n++
	case tea.KeyMsg:
		switch msg.String() {
		case "+":
			return c, tea.Batch(nil, func() tea.Msg { return bumpMsg{} })
		case "q":
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string { return "" }

func TestDriver_DrainsInitBatchAndQuit(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))
	d.DrainInit()
	assert.Equal(t, 80, d.Model.(counter).width)
	assert.Equal(t, 1, d.Model.(counter).n)

	d.Type("++")
	assert.Equal(t, 3, d.Model.(counter).n)

	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.PressKey('+')
	assert.Equal(t, 3, d.Model.(counter).n, "keys after quit are ignored")
}
