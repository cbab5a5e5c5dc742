package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/herald"
)

const paragraphHeight = 3

// formField is one input of an open form. Paragraph fields use a textarea,
// short ones a single-line input.
type formField struct {
	field herald.Field
	input textinput.Model
	area  textarea.Model
}

func newFormField(f herald.Field, width int) *formField {
	ff := &formField{field: f}
	if ff.paragraph() {
		ta := textarea.New()
		ta.Placeholder = f.Placeholder
		ta.ShowLineNumbers = false
		ta.Prompt = "┃ "
		ta.CharLimit = f.MaxLength
		ta.SetHeight(paragraphHeight)
		ff.area = ta
	} else {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.Prompt = "┃ "
		ti.CharLimit = f.MaxLength
		ff.input = ti
	}
	ff.setWidth(width)
	return ff
}

func (f *formField) paragraph() bool { return f.field.Style == herald.TextParagraph }

func (f *formField) height() int {
	if f.paragraph() {
		return 1 + paragraphHeight
	}
	return 2
}

func (f *formField) setWidth(w int) {
	if f.paragraph() {
		f.area.SetWidth(max(w, 10))
		return
	}
	f.input.Width = max(w-2, 8)
}

func (f *formField) value() string {
	if f.paragraph() {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *formField) focus() tea.Cmd {
	if f.paragraph() {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *formField) blur() {
	if f.paragraph() {
		f.area.Blur()
		return
	}
	f.input.Blur()
}

func (f *formField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.paragraph() {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}
	return cmd
}

func (f *formField) view(s Styles, focused bool) string {
	label := f.field.Label
	if f.field.Required {
		label += " *"
	}
	style := s.FormBlur
	if focused {
		style = s.FormFocus
	}
	var body string
	if f.paragraph() {
		body = f.area.View()
	} else {
		body = f.input.View()
	}
	return style.Render(label) + "\n" + body
}

// formState is an open form, the console's stand-in for a modal.
type formState struct {
	form   herald.Form
	fields []*formField
	focus  int
}

func newFormState(f herald.Form, width int) *formState {
	fs := &formState{form: f}
	for _, fd := range f.Fields {
		fs.fields = append(fs.fields, newFormField(fd, width))
	}
	return fs
}

func (fs *formState) height() int {
	h := 1
	for _, f := range fs.fields {
		h += f.height()
	}
	return h
}

func (fs *formState) setWidth(w int) {
	for _, f := range fs.fields {
		f.setWidth(w)
	}
}

// move shifts focus by delta, wrapping around.
func (fs *formState) move(delta int) tea.Cmd {
	if len(fs.fields) == 0 {
		return nil
	}
	fs.fields[fs.focus].blur()
	fs.focus = (fs.focus + delta + len(fs.fields)) % len(fs.fields)
	return fs.fields[fs.focus].focus()
}

func (fs *formState) focused() *formField {
	if len(fs.fields) == 0 {
		return nil
	}
	return fs.fields[fs.focus]
}

func (fs *formState) last() bool { return fs.focus == len(fs.fields)-1 }

// values collects every field, including empty ones, keyed by field ID.
func (fs *formState) values() map[string]string {
	out := make(map[string]string, len(fs.fields))
	for _, f := range fs.fields {
		out[f.field.ID] = f.value()
	}
	return out
}

func (fs *formState) view(s Styles) string {
	parts := []string{s.Accent.Render(fs.form.Title)}
	for i, f := range fs.fields {
		parts = append(parts, f.view(s, i == fs.focus))
	}
	return strings.Join(parts, "\n")
}
