package field

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldpad/fieldpad/internal/format/table"
)

// Input is the adapter capability the controller edits through. Each input
// kind implements reading and writing its own value shape; the controller
// never branches on the control variety itself.
type Input interface {
	Read() Reading
	Write(value string)
	Focus() tea.Cmd
	Blur()
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// NewInput builds the adapter for a descriptor and seeds it with the
// descriptor's current value.
func NewInput(d Descriptor) (Input, error) {
	switch d.Kind {
	case KindInput:
		in := newTextInput(d)
		in.Write(d.Value)
		return in, nil
	case KindTextArea:
		in := newTextArea(d)
		in.Write(d.Value)
		return in, nil
	case KindSelect:
		if len(d.Options) == 0 {
			return nil, fmt.Errorf("select field %q has no options", d.Name)
		}
		in := newSelect(d)
		in.Write(d.Value)
		return in, nil
	}
	return nil, fmt.Errorf("unknown input kind for field %q", d.Name)
}

type textInput struct {
	model textinput.Model
}

func newTextInput(d Descriptor) *textInput {
	ti := textinput.New()
	ti.Placeholder = d.Placeholder
	ti.CharLimit = 512
	ti.Prompt = "> "
	return &textInput{model: ti}
}

func (t *textInput) Read() Reading {
	value := strings.TrimSpace(t.model.Value())
	if value == "" {
		return Reading{}
	}
	return Reading{Values: []string{value}}
}

func (t *textInput) Write(value string) {
	t.model.SetValue(value)
	t.model.CursorEnd()
}

func (t *textInput) Focus() tea.Cmd { return t.model.Focus() }
func (t *textInput) Blur()          { t.model.Blur() }

func (t *textInput) Update(msg tea.Msg) tea.Cmd {
	updated, cmd := t.model.Update(msg)
	t.model = updated
	return cmd
}

func (t *textInput) View() string { return t.model.View() }

type textArea struct {
	model textarea.Model
}

func newTextArea(d Descriptor) *textArea {
	ta := textarea.New()
	ta.Placeholder = d.Placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	return &textArea{model: ta}
}

func (t *textArea) Read() Reading {
	value := strings.TrimSpace(t.model.Value())
	if value == "" {
		return Reading{}
	}
	return Reading{Values: []string{value}}
}

func (t *textArea) Write(value string) {
	t.model.SetValue(value)
}

func (t *textArea) Focus() tea.Cmd { return t.model.Focus() }
func (t *textArea) Blur()          { t.model.Blur() }

func (t *textArea) Update(msg tea.Msg) tea.Cmd {
	updated, cmd := t.model.Update(msg)
	t.model = updated
	return cmd
}

func (t *textArea) View() string { return t.model.View() }

// selectInput covers both the single- and multi-valued select variants.
type selectInput struct {
	options  []Option
	multiple bool
	cursor   int
	chosen   int // single-select: index of the picked option, -1 for none
	selected map[string]struct{}
	focused  bool
}

func newSelect(d Descriptor) *selectInput {
	return &selectInput{
		options:  append([]Option(nil), d.Options...),
		multiple: d.Multiple,
		chosen:   -1,
		selected: make(map[string]struct{}),
	}
}

func (s *selectInput) Read() Reading {
	if s.multiple {
		values := make([]string, 0, len(s.selected))
		labels := make([]string, 0, len(s.selected))
		for _, opt := range s.options {
			if _, ok := s.selected[opt.Value]; ok {
				values = append(values, opt.Value)
				labels = append(labels, opt.Label)
			}
		}
		return Reading{Values: values, Multiple: true, Labels: labels}
	}
	if s.chosen < 0 || s.chosen >= len(s.options) {
		return Reading{}
	}
	opt := s.options[s.chosen]
	return Reading{Values: []string{opt.Value}, Labels: []string{opt.Label}}
}

// Write clears all selections, then re-selects options whose value matches;
// multi-valued controls split the incoming value on commas.
func (s *selectInput) Write(value string) {
	s.selected = make(map[string]struct{})
	s.chosen = -1
	if s.multiple {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			for _, opt := range s.options {
				if opt.Value == part {
					s.selected[opt.Value] = struct{}{}
				}
			}
		}
		return
	}
	trimmed := strings.TrimSpace(value)
	for i, opt := range s.options {
		if opt.Value == trimmed {
			s.chosen = i
			s.cursor = i
			return
		}
	}
}

func (s *selectInput) Focus() tea.Cmd {
	s.focused = true
	return nil
}

func (s *selectInput) Blur() { s.focused = false }

func (s *selectInput) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused || len(s.options) == 0 {
		return nil
	}
	switch key.String() {
	case "up":
		if s.cursor > 0 {
			s.cursor--
		} else {
			s.cursor = len(s.options) - 1
		}
	case "down":
		if s.cursor < len(s.options)-1 {
			s.cursor++
		} else {
			s.cursor = 0
		}
	case " ", "tab":
		s.toggle()
	}
	return nil
}

func (s *selectInput) toggle() {
	opt := s.options[s.cursor]
	if s.multiple {
		if _, ok := s.selected[opt.Value]; ok {
			delete(s.selected, opt.Value)
		} else {
			s.selected[opt.Value] = struct{}{}
		}
		return
	}
	if s.chosen == s.cursor {
		s.chosen = -1
		return
	}
	s.chosen = s.cursor
}

func (s *selectInput) View() string {
	rows := make([][]string, 0, len(s.options))
	for i, opt := range s.options {
		indicator := " "
		if i == s.cursor && s.focused {
			indicator = "▌"
		}
		mark := "( )"
		if s.multiple {
			mark = "[ ]"
			if _, ok := s.selected[opt.Value]; ok {
				mark = "[x]"
			}
		} else if i == s.chosen {
			mark = "(•)"
		}
		rows = append(rows, []string{indicator, mark, opt.Label})
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft})
	return strings.Join(lines, "\n")
}
