// Package list implements the paginated, searchable list framework shared
// by every payadm screen: a pagination calculator, a filter form, and a
// controller tying fetches to persisted list state.
package list

const (
	// DefaultPerPage is the rows-per-page used before the user picks one.
	DefaultPerPage = 10
	// PagesToShow is the width of the page-number window.
	PagesToShow = 7
)

// Page is the derived view of one result page: row bounds, page count and
// the window of page numbers to display. All page numbers are 0-based.
type Page struct {
	PageNo    int
	PerPage   int
	TotalRow  int
	TotalPage int
	StartRow  int // 1-based ordinal of the first row, 0 when empty
	EndRow    int // 1-based ordinal of the last row
	Pages     []int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.PageNo > 0 }

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool { return p.PageNo < p.TotalPage-1 }

// CalculatePage derives the pagination view for a page position. The
// window is centered on the current page where possible and shifted to
// stay inside [0, totalPage), never exceeding pagesToShow entries.
func CalculatePage(pageNo, perPage, totalRow, pagesToShow int) Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if pagesToShow <= 0 {
		pagesToShow = PagesToShow
	}

	totalPage := (totalRow + perPage - 1) / perPage

	startRow := 0
	endRow := 0
	if totalRow > 0 {
		startRow = perPage*pageNo + 1
		endRow = startRow + perPage - 1
		if endRow > totalRow {
			endRow = totalRow
		}
	}

	start := pageNo - (pagesToShow+1)/2 + 1
	if start < 0 {
		start = 0
	}
	end := start + pagesToShow - 1
	if end > totalPage-1 {
		end = totalPage - 1
		start = end - pagesToShow + 1
		if start < 0 {
			start = 0
		}
	}

	var pages []int
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	return Page{
		PageNo:    pageNo,
		PerPage:   perPage,
		TotalRow:  totalRow,
		TotalPage: totalPage,
		StartRow:  startRow,
		EndRow:    endRow,
		Pages:     pages,
	}
}
