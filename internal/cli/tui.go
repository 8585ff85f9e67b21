package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
	"github.com/cipherstack/cipherstack/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// StackBuilderModel - Interactive layer stack builder
// =============================================================================

type builderMode int

const (
	modeSelect builderMode = iota // choosing the next algorithm
	modeKey                       // typing the key for the chosen algorithm
)

// StackBuilderModel is the bubbletea model for building a layer stack.
// The menu lists every algorithm followed by a final "save" entry.
type StackBuilderModel struct {
	Algorithms []*cipher.Algorithm
	Layers     []pipeline.LayerSpec
	Cursor     int
	Mode       builderMode
	Input      []rune
	Err        string
	Saved      bool
}

// NewStackBuilderModel creates a builder offering algs.
func NewStackBuilderModel(algs []*cipher.Algorithm) StackBuilderModel {
	return StackBuilderModel{Algorithms: algs}
}

func (m StackBuilderModel) Init() tea.Cmd {
	return nil
}

func (m StackBuilderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.Mode == modeKey {
		return m.updateKey(key)
	}
	return m.updateSelect(key)
}

func (m StackBuilderModel) updateSelect(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Algorithms) {
			m.Cursor++
		}
	case "backspace", "d":
		if n := len(m.Layers); n > 0 {
			m.Layers = m.Layers[:n-1]
		}
		m.Err = ""
	case "enter":
		if m.Cursor == len(m.Algorithms) {
			if len(m.Layers) == 0 {
				m.Err = "add at least one layer before saving"
				return m, nil
			}
			m.Saved = true
			return m, tea.Quit
		}
		m.Mode = modeKey
		m.Input = nil
		m.Err = ""
	}
	return m, nil
}

func (m StackBuilderModel) updateKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.Mode = modeSelect
		m.Err = ""
	case tea.KeyBackspace:
		if n := len(m.Input); n > 0 {
			m.Input = m.Input[:n-1]
		}
	case tea.KeySpace:
		m.Input = append(m.Input, ' ')
	case tea.KeyRunes:
		m.Input = append(m.Input, key.Runes...)
	case tea.KeyEnter:
		alg := m.Algorithms[m.Cursor]
		k := string(m.Input)
		if err := alg.ValidateKey(k); err != nil {
			m.Err = errs.UserMessage(err)
			return m, nil
		}
		m.Layers = append(m.Layers, pipeline.LayerSpec{Algorithm: string(alg.ID), Key: k})
		m.Mode = modeSelect
		m.Input = nil
		m.Err = ""
	}
	return m, nil
}

func (m StackBuilderModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Build Layer Stack"))
	b.WriteString("\n")
	if m.Mode == modeKey {
		b.WriteString(listDimStyle.Render("type the key  ⏎ add layer  esc back"))
	} else {
		b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  d remove last  q quit"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.stackTable())
	b.WriteString("\n\n")

	if m.Mode == modeKey {
		alg := m.Algorithms[m.Cursor]
		b.WriteString(listSelectedStyle.Render(fmt.Sprintf("%s key", alg.ID)))
		b.WriteString(" " + listDimStyle.Render("("+alg.KeyHint+")"))
		b.WriteString("\n> " + string(m.Input) + "█\n")
	} else {
		for i, alg := range m.Algorithms {
			b.WriteString(m.menuLine(i, fmt.Sprintf("%-24s %s", alg.ID, listDimStyle.Render(alg.Name))))
		}
		b.WriteString(m.menuLine(len(m.Algorithms), StyleSuccess.Render("save stack")))
	}

	if m.Err != "" {
		b.WriteString("\n" + StyleWarning.Render("! "+m.Err) + "\n")
	}
	return b.String()
}

func (m StackBuilderModel) menuLine(i int, label string) string {
	if i == m.Cursor {
		return listSelectedStyle.Render("▸ ") + label + "\n"
	}
	return "  " + listNormalStyle.Render(label) + "\n"
}

// stackTable renders the layers chosen so far, in encryption order.
func (m StackBuilderModel) stackTable() string {
	if len(m.Layers) == 0 {
		return listDimStyle.Render("  (no layers yet)")
	}

	rows := make([][]string, len(m.Layers))
	for i, l := range m.Layers {
		rows[i] = []string{fmt.Sprint(i + 1), l.Algorithm, l.Key}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Algorithm", "Key").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}
