package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/freshcms/payadm/internal/list"
	"github.com/freshcms/payadm/internal/model"
)

// filterPopup edits the advanced filters of a screen. It works on text
// buffers and commits into the form only on apply, so cancelling leaves
// the applied filters untouched.
type filterPopup struct {
	form    *list.SearchForm
	fields  []model.SearchOption
	cursor  int
	edits   map[string]string
	optIdx  map[string]int
	opIdx   map[string]int
	errText string
	restore func()
}

func newFilterPopup(form *list.SearchForm) *filterPopup {
	snap := form.Snapshot()
	p := &filterPopup{
		form:    form,
		edits:   map[string]string{},
		optIdx:  map[string]int{},
		opIdx:   map[string]int{},
		restore: func() { form.Restore(snap) },
	}
	for _, opt := range form.Options() {
		if !opt.InPopup() {
			continue
		}
		p.fields = append(p.fields, opt)
		v := form.Value(opt.Name)
		if opt.HasOptions() {
			p.optIdx[opt.Name] = optionIndex(opt, v)
		} else {
			p.edits[opt.Name] = valueText(v)
		}
		p.opIdx[opt.Name] = operatorIndex(opt, form.Operator(opt.Name))
	}
	return p
}

func optionIndex(opt model.SearchOption, v any) int {
	if v == nil {
		return -1
	}
	want := fmt.Sprint(v)
	for i, item := range opt.Options {
		if fmt.Sprint(item.ID) == want {
			return i
		}
	}
	return -1
}

func operatorIndex(opt model.SearchOption, op model.Operator) int {
	key := model.OperatorKey(op)
	for i, allowed := range model.AllowedOperatorKeys(opt) {
		if allowed == key {
			return i
		}
	}
	return 0
}

func valueText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case model.Date:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func (p *filterPopup) current() model.SearchOption {
	return p.fields[p.cursor]
}

func (p *filterPopup) moveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *filterPopup) moveDown() {
	if p.cursor < len(p.fields)-1 {
		p.cursor++
	}
}

// cycleOperator advances the current field to its next allowed operator.
func (p *filterPopup) cycleOperator() {
	opt := p.current()
	keys := model.AllowedOperatorKeys(opt)
	p.opIdx[opt.Name] = (p.opIdx[opt.Name] + 1) % len(keys)
}

// cycleOption steps through the fixed value list of the current field,
// with "any" before the first entry. A no-op on free-form fields.
func (p *filterPopup) cycleOption(delta int) {
	opt := p.current()
	if !opt.HasOptions() {
		return
	}
	i := p.optIdx[opt.Name] + delta
	switch {
	case i < -1:
		i = len(opt.Options) - 1
	case i >= len(opt.Options):
		i = -1
	}
	p.optIdx[opt.Name] = i
}

func (p *filterPopup) typeText(s string) {
	opt := p.current()
	if opt.HasOptions() {
		return
	}
	p.edits[opt.Name] += s
	p.errText = ""
}

func (p *filterPopup) backspace() {
	opt := p.current()
	if opt.HasOptions() {
		return
	}
	if cur := p.edits[opt.Name]; cur != "" {
		p.edits[opt.Name] = cur[:len(cur)-1]
	}
	p.errText = ""
}

func (p *filterPopup) clearField() {
	opt := p.current()
	if opt.HasOptions() {
		p.optIdx[opt.Name] = -1
		return
	}
	p.edits[opt.Name] = ""
}

// reset clears every field buffer. The show-all action applies the
// cleared buffers and searches right away.
func (p *filterPopup) reset() {
	for _, opt := range p.fields {
		if opt.HasOptions() {
			p.optIdx[opt.Name] = -1
		} else {
			p.edits[opt.Name] = ""
		}
		p.opIdx[opt.Name] = 0
	}
	p.errText = ""
}

// apply validates the buffers and commits them into the form. It reports
// whether the popup may close.
func (p *filterPopup) apply() bool {
	values := map[string]any{}
	for _, opt := range p.fields {
		v, err := p.fieldValue(opt)
		if err != nil {
			p.errText = err.Error()
			return false
		}
		values[opt.Name] = v
	}
	for _, opt := range p.fields {
		keys := model.AllowedOperatorKeys(opt)
		_ = p.form.SetOperatorKey(opt.Name, keys[p.opIdx[opt.Name]])
		_ = p.form.SetValue(opt.Name, values[opt.Name])
	}
	return true
}

// cancel rolls the form back to the state captured when the popup
// opened.
func (p *filterPopup) cancel() {
	p.restore()
}

func (p *filterPopup) fieldValue(opt model.SearchOption) (any, error) {
	if opt.HasOptions() {
		i := p.optIdx[opt.Name]
		if i < 0 {
			return nil, nil
		}
		return opt.Options[i].ID, nil
	}
	text := strings.TrimSpace(p.edits[opt.Name])
	if text == "" {
		return nil, nil
	}
	switch opt.Type {
	case model.OptionNumber:
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: not a number", opt.Label)
		}
		return n, nil
	case model.OptionDate:
		d, err := model.ParseDate(text)
		if err != nil {
			return nil, fmt.Errorf("%s: expected yyyy-mm-dd", opt.Label)
		}
		return d, nil
	default:
		return text, nil
	}
}

// fieldDisplay renders one field's value buffer for the popup body.
func (p *filterPopup) fieldDisplay(opt model.SearchOption) string {
	if opt.HasOptions() {
		i := p.optIdx[opt.Name]
		if i < 0 {
			return "(any)"
		}
		return opt.Options[i].Label
	}
	return p.edits[opt.Name]
}

func (p *filterPopup) operatorKey(opt model.SearchOption) string {
	return model.AllowedOperatorKeys(opt)[p.opIdx[opt.Name]]
}
