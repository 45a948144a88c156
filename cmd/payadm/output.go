package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gosuri/uitable"

	"github.com/freshcms/payadm/internal/list"
	"github.com/freshcms/payadm/internal/model"
	"github.com/freshcms/payadm/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func newTable(headers ...any) *uitable.Table {
	t := uitable.New()
	t.MaxColWidth = 50
	t.AddRow(headers...)
	return t
}

// printPageFooter renders the row bounds and the page window under a list
// table.
func printPageFooter(p list.Page) {
	if p.TotalRow == 0 {
		fmt.Println(ui.RenderMuted("no rows"))
		return
	}
	window := ""
	for _, n := range p.Pages {
		label := fmt.Sprintf(" %d", n+1)
		if n == p.PageNo {
			label = ui.RenderAccent(fmt.Sprintf(" [%d]", n+1))
		}
		window += label
	}
	fmt.Printf("\nrows %d-%d of %d  pages:%s\n", p.StartRow, p.EndRow, p.TotalRow, window)
}

func displayDate(d model.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Display()
}

func displayFlag(f model.Flag) string {
	if f.Bool() {
		return "yes"
	}
	return "no"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, ui.RenderError("Error: ")+format+"\n", args...)
	os.Exit(1)
}
