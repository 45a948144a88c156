package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/freshcms/payadm/internal/editor"
	"github.com/freshcms/payadm/internal/history"
	"github.com/freshcms/payadm/internal/list"
	"github.com/freshcms/payadm/internal/model"
	"github.com/freshcms/payadm/internal/progress"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeFilter
)

// perPageSteps are the rows-per-page choices the p key cycles through.
var perPageSteps = []int{10, 20, 50, 100}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("74"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	popupStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
)

type rowsMsg struct{ err error }

type historyMsg struct {
	items []model.HistoryItem
	err   error
}

type searchFiredMsg struct{}

type busyMsg struct{ count int }

// Browser is the interactive list screen. It owns the cursor and input
// focus; paging, searching and filtering all go through the screen's
// controller so the one-shot commands and the browser behave the same.
type Browser struct {
	ctx     context.Context
	screen  *Screen
	viewer  *history.Viewer
	counter *progress.Counter

	input    textinput.Model
	deb      *list.Debouncer
	searchCh chan struct{}
	busyCh   chan int

	// quick are the choice fields placed beside the search box; cycling
	// one searches immediately instead of waiting for the popup.
	quick []model.SearchOption

	mode    mode
	cursor  int
	busy    int
	status  string
	width   int
	height  int
	started bool

	popup      *filterPopup
	filterDlg  editor.Dialog[*filterPopup, bool]
	filterDone <-chan editor.Result[bool]
	histOpen   bool
	histItems  []model.HistoryItem
	histCursor int
}

// NewBrowser creates a browser over one screen. viewer may be nil for
// resources without a version timeline; counter may be nil.
func NewBrowser(screen *Screen, viewer *history.Viewer, counter *progress.Counter) *Browser {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.CharLimit = 120
	ti.Prompt = "/ "

	b := &Browser{
		ctx:      context.Background(),
		screen:   screen,
		viewer:   viewer,
		counter:  counter,
		input:    ti,
		deb:      list.NewDebouncer(list.SearchDebounce),
		searchCh: make(chan struct{}, 1),
		busyCh:   make(chan int, 8),
	}
	for _, opt := range screen.Form().Options() {
		if !opt.InPopup() && opt.HasOptions() {
			b.quick = append(b.quick, opt)
		}
	}
	if counter != nil {
		counter.Subscribe(func(count int) {
			select {
			case b.busyCh <- count:
			default:
			}
		})
	}
	return b
}

// Run launches the browser program over the full terminal.
func Run(screen *Screen, viewer *history.Viewer, counter *progress.Counter) error {
	p := tea.NewProgram(NewBrowser(screen, viewer, counter), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init fires the initial load and arms the channel listeners.
func (b *Browser) Init() tea.Cmd {
	return tea.Batch(b.loadCmd(b.screen.Start), b.waitSearch(), b.waitBusy())
}

func (b *Browser) loadCmd(fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return rowsMsg{err: fn(b.ctx)}
	}
}

func (b *Browser) waitSearch() tea.Cmd {
	return func() tea.Msg {
		<-b.searchCh
		return searchFiredMsg{}
	}
}

func (b *Browser) waitBusy() tea.Cmd {
	if b.counter == nil {
		return nil
	}
	return func() tea.Msg {
		return busyMsg{count: <-b.busyCh}
	}
}

func (b *Browser) triggerSearch() {
	b.deb.Trigger(func() {
		select {
		case b.searchCh <- struct{}{}:
		default:
		}
	})
}

func (b *Browser) historyCmd() tea.Cmd {
	if b.viewer == nil || b.screen.Component() == "" {
		return nil
	}
	id := b.screen.RowID(b.cursor)
	if id == "" {
		return nil
	}
	component := b.screen.Component()
	return func() tea.Msg {
		items, err := b.viewer.Open(b.ctx, component, id)
		return historyMsg{items: items, err: err}
	}
}

// Update routes messages by input mode.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil

	case busyMsg:
		b.busy = msg.count
		return b, b.waitBusy()

	case searchFiredMsg:
		b.screen.Form().SetSearch(b.input.Value())
		return b, tea.Batch(b.loadCmd(b.screen.Search), b.waitSearch())

	case rowsMsg:
		if msg.err != nil {
			b.status = msg.err.Error()
		} else {
			b.status = ""
		}
		if !b.started {
			b.started = true
			b.input.SetValue(b.screen.Form().Search())
		}
		if n := len(b.screen.Rows()); b.cursor >= n {
			b.cursor = n - 1
		}
		if b.cursor < 0 {
			b.cursor = 0
		}
		return b, nil

	case historyMsg:
		if msg.err != nil {
			if b.ctx.Err() == nil {
				b.status = msg.err.Error()
			}
			return b, nil
		}
		b.histItems = msg.items
		b.histOpen = true
		b.histCursor = 0
		return b, nil

	case tea.KeyPressMsg:
		switch b.mode {
		case modeSearch:
			return b.updateSearch(msg)
		case modeFilter:
			return b.updateFilter(msg)
		default:
			return b.updateList(msg)
		}
	}
	return b, nil
}

func (b *Browser) updateSearch(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		b.mode = modeList
		b.input.Blur()
		return b, nil
	case "enter":
		b.mode = modeList
		b.input.Blur()
		b.deb.Stop()
		b.screen.Form().SetSearch(b.input.Value())
		return b, b.loadCmd(b.screen.Search)
	}
	before := b.input.Value()
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	if b.input.Value() != before {
		b.triggerSearch()
	}
	return b, cmd
}

func (b *Browser) updateFilter(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	p := b.popup
	switch msg.String() {
	case "esc":
		p.cancel()
		b.closeFilter(false)
		return b, nil
	case "enter":
		if !p.apply() {
			return b, nil
		}
		b.closeFilter(true)
		return b, b.loadCmd(b.screen.Search)
	case "up":
		p.moveUp()
	case "down":
		p.moveDown()
	case "tab":
		p.cycleOperator()
	case "left":
		p.cycleOption(-1)
	case "right":
		p.cycleOption(1)
	case "ctrl+u":
		p.clearField()
	case "ctrl+r":
		p.reset()
		b.screen.Form().Reset()
		b.closeFilter(true)
		return b, b.loadCmd(b.screen.Search)
	case "backspace":
		p.backspace()
	case "space":
		p.typeText(" ")
	default:
		if s := msg.String(); len([]rune(s)) == 1 {
			p.typeText(s)
		}
	}
	return b, nil
}

func (b *Browser) updateList(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		b.deb.Stop()
		b.screen.Close()
		if b.viewer != nil {
			b.viewer.Close()
		}
		return b, tea.Quit

	case "esc":
		if b.histOpen {
			b.closeHistory()
		}
		return b, nil

	case "enter":
		if b.histOpen && !model.NoHistory(b.histItems) {
			effective := b.histItems[b.histCursor].Effective()
			row := b.cursor
			b.closeHistory()
			return b, b.loadCmd(func(ctx context.Context) error {
				return b.screen.ReloadAsOf(ctx, row, effective)
			})
		}
		return b, nil

	case "/":
		b.mode = modeSearch
		cmd := b.input.Focus()
		return b, tea.Batch(cmd, textinput.Blink)

	case "f":
		p := newFilterPopup(b.screen.Form())
		done, err := b.filterDlg.Open(p)
		if err != nil {
			return b, nil
		}
		b.filterDone = done
		b.popup = p
		b.mode = modeFilter
		return b, nil

	case "v":
		return b, b.historyCmd()

	case "r":
		return b, b.loadCmd(b.screen.Refresh)

	case "p":
		return b, b.cyclePerPage()

	case "j", "down":
		if b.histOpen {
			if b.histCursor < len(b.histItems)-1 {
				b.histCursor++
			}
			return b, nil
		}
		if b.cursor < len(b.screen.Rows())-1 {
			b.cursor++
		}
		return b, nil
	case "k", "up":
		if b.histOpen {
			if b.histCursor > 0 {
				b.histCursor--
			}
			return b, nil
		}
		if b.cursor > 0 {
			b.cursor--
		}
		return b, nil

	case "h", "left":
		page := b.screen.Page()
		if page.HasPrev() {
			return b, b.goToCmd(page.PageNo - 1)
		}
		return b, nil
	case "l", "right":
		page := b.screen.Page()
		if page.HasNext() {
			return b, b.goToCmd(page.PageNo + 1)
		}
		return b, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return b, b.cycleQuick(int(msg.String()[0] - '1'))

	case "g":
		return b, b.goToCmd(0)
	case "G":
		page := b.screen.Page()
		if page.TotalPage > 0 {
			return b, b.goToCmd(page.TotalPage - 1)
		}
		return b, nil
	}
	return b, nil
}

// cycleQuick steps quick field i through its value list, "any" after the
// last entry, and searches with the updated form right away.
func (b *Browser) cycleQuick(i int) tea.Cmd {
	if i < 0 || i >= len(b.quick) {
		return nil
	}
	opt := b.quick[i]
	form := b.screen.Form()
	idx := optionIndex(opt, form.Value(opt.Name)) + 1
	var v any
	if idx < len(opt.Options) {
		v = opt.Options[idx].ID
	}
	if err := form.SetValue(opt.Name, v); err != nil {
		return nil
	}
	return b.loadCmd(b.screen.Search)
}

// closeFilter resolves the filter dialog session and drains its result.
func (b *Browser) closeFilter(applied bool) {
	if applied {
		b.filterDlg.Close(true)
	} else {
		b.filterDlg.Cancel()
	}
	if b.filterDone != nil {
		<-b.filterDone
		b.filterDone = nil
	}
	b.popup = nil
	b.mode = modeList
}

func (b *Browser) closeHistory() {
	b.histOpen = false
	b.histItems = nil
	b.histCursor = 0
}

func (b *Browser) goToCmd(pageNo int) tea.Cmd {
	return b.loadCmd(func(ctx context.Context) error {
		return b.screen.GoTo(ctx, pageNo)
	})
}

func (b *Browser) cyclePerPage() tea.Cmd {
	current := b.screen.Page().PerPage
	next := perPageSteps[0]
	for i, step := range perPageSteps {
		if step == current {
			next = perPageSteps[(i+1)%len(perPageSteps)]
			break
		}
	}
	return b.loadCmd(func(ctx context.Context) error {
		return b.screen.SetPerPage(ctx, next)
	})
}

// View renders the table, panels and footer.
func (b *Browser) View() string {
	var sb strings.Builder

	title := titleStyle.Render(b.screen.Title())
	if b.busy > 0 {
		title += mutedStyle.Render("  loading...")
	}
	sb.WriteString(title + "\n")

	searchLine := b.input.View()
	for i, opt := range b.quick {
		label := "any"
		if j := optionIndex(opt, b.screen.Form().Value(opt.Name)); j >= 0 {
			label = opt.Options[j].Label
		}
		searchLine += mutedStyle.Render(fmt.Sprintf("  (%d) %s: ", i+1, opt.Label)) + label
	}
	if n := b.screen.Form().FilterCount(); n > 0 {
		searchLine += "  " + badgeStyle.Render(fmt.Sprintf("[%d filter(s)]", n))
	}
	sb.WriteString(searchLine + "\n\n")

	sb.WriteString(b.renderTable())

	if b.mode == modeFilter && b.popup != nil {
		sb.WriteString("\n" + b.renderPopup())
	}
	if b.histOpen {
		sb.WriteString("\n" + b.renderHistory())
	}

	sb.WriteString("\n" + b.renderFooter())
	if b.status != "" {
		sb.WriteString("\n" + errorStyle.Render(b.status))
	}
	hints := "j/k move  h/l page  / search  f filter  v history  p per-page  r refresh  q quit"
	if len(b.quick) > 0 {
		hints = "1-9 cycle filter  " + hints
	}
	sb.WriteString("\n" + mutedStyle.Render(hints))
	return sb.String()
}

func (b *Browser) renderTable() string {
	columns := b.screen.Columns()
	rows := b.screen.Rows()

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(padCells(columns, widths)) + "\n")
	if len(rows) == 0 {
		sb.WriteString(mutedStyle.Render("no rows") + "\n")
		return sb.String()
	}
	for i, row := range rows {
		line := padCells(row, widths)
		if i == b.cursor {
			line = selectedStyle.Render(line)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func padCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.Join(parts, "  ")
}

func (b *Browser) renderPopup() string {
	p := b.popup
	lines := []string{"Filters (enter apply, esc cancel, tab operator, ctrl+r show all)"}
	for i, opt := range p.fields {
		indicator := "  "
		if i == p.cursor {
			indicator = "> "
		}
		value := p.fieldDisplay(opt)
		if value == "" {
			value = mutedStyle.Render("(unset)")
		}
		lines = append(lines, fmt.Sprintf("%s%-24s %-2s %s", indicator, opt.Label, p.operatorKey(opt), value))
	}
	if p.errText != "" {
		lines = append(lines, errorStyle.Render(p.errText))
	}
	return popupStyle.Render(strings.Join(lines, "\n"))
}

func (b *Browser) renderHistory() string {
	lines := []string{headerStyle.Render("History (enter pick, esc close)")}
	if model.NoHistory(b.histItems) {
		lines = append(lines, mutedStyle.Render("no history"))
		return popupStyle.Render(strings.Join(lines, "\n"))
	}
	for i, h := range b.histItems {
		from := h.EffectiveStart.Display()
		if from == "" {
			from = "the beginning"
		}
		to := h.EffectiveEnd.Display()
		if to == "" {
			to = "open"
		}
		line := fmt.Sprintf("%2d. %s .. %s", i+1, from, to)
		if i == b.histCursor {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return popupStyle.Render(strings.Join(lines, "\n"))
}

func (b *Browser) renderFooter() string {
	page := b.screen.Page()
	if page.TotalRow == 0 {
		return mutedStyle.Render("no rows")
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "rows %d-%d of %d   ", page.StartRow, page.EndRow, page.TotalRow)
	for _, p := range page.Pages {
		label := fmt.Sprintf("%d", p+1)
		if p == page.PageNo {
			label = titleStyle.Render("[" + label + "]")
		}
		sb.WriteString(label + " ")
	}
	return sb.String()
}
