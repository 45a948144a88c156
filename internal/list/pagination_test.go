package list

import (
	"reflect"
	"testing"
)

func TestCalculatePage(t *testing.T) {
	tests := []struct {
		name        string
		pageNo      int
		perPage     int
		totalRow    int
		pagesToShow int
		want        Page
	}{
		{
			name:   "first page",
			pageNo: 0, perPage: 10, totalRow: 95, pagesToShow: 7,
			want: Page{
				PageNo: 0, PerPage: 10, TotalRow: 95, TotalPage: 10,
				StartRow: 1, EndRow: 10,
				Pages: []int{0, 1, 2, 3, 4, 5, 6},
			},
		},
		{
			name:   "last page shifts window back",
			pageNo: 9, perPage: 10, totalRow: 95, pagesToShow: 7,
			want: Page{
				PageNo: 9, PerPage: 10, TotalRow: 95, TotalPage: 10,
				StartRow: 91, EndRow: 95,
				Pages: []int{3, 4, 5, 6, 7, 8, 9},
			},
		},
		{
			name:   "middle page centers window",
			pageNo: 5, perPage: 10, totalRow: 95, pagesToShow: 7,
			want: Page{
				PageNo: 5, PerPage: 10, TotalRow: 95, TotalPage: 10,
				StartRow: 51, EndRow: 60,
				Pages: []int{2, 3, 4, 5, 6, 7, 8},
			},
		},
		{
			name:   "fewer pages than window",
			pageNo: 1, perPage: 10, totalRow: 25, pagesToShow: 7,
			want: Page{
				PageNo: 1, PerPage: 10, TotalRow: 25, TotalPage: 3,
				StartRow: 11, EndRow: 20,
				Pages: []int{0, 1, 2},
			},
		},
		{
			name:   "exact multiple",
			pageNo: 0, perPage: 10, totalRow: 100, pagesToShow: 7,
			want: Page{
				PageNo: 0, PerPage: 10, TotalRow: 100, TotalPage: 10,
				StartRow: 1, EndRow: 10,
				Pages: []int{0, 1, 2, 3, 4, 5, 6},
			},
		},
		{
			name:   "no rows",
			pageNo: 0, perPage: 10, totalRow: 0, pagesToShow: 7,
			want: Page{
				PageNo: 0, PerPage: 10, TotalRow: 0, TotalPage: 0,
				StartRow: 0, EndRow: 0,
				Pages: nil,
			},
		},
		{
			name:   "single short page",
			pageNo: 0, perPage: 10, totalRow: 3, pagesToShow: 7,
			want: Page{
				PageNo: 0, PerPage: 10, TotalRow: 3, TotalPage: 1,
				StartRow: 1, EndRow: 3,
				Pages: []int{0},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePage(tt.pageNo, tt.perPage, tt.totalRow, tt.pagesToShow)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CalculatePage(%d, %d, %d, %d) = %+v, want %+v",
					tt.pageNo, tt.perPage, tt.totalRow, tt.pagesToShow, got, tt.want)
			}
			if len(got.Pages) > tt.pagesToShow {
				t.Errorf("window of %d pages exceeds pagesToShow %d", len(got.Pages), tt.pagesToShow)
			}
		})
	}
}

func TestCalculatePageDefaults(t *testing.T) {
	got := CalculatePage(0, 0, 42, 0)
	if got.PerPage != DefaultPerPage {
		t.Errorf("PerPage = %d, want %d", got.PerPage, DefaultPerPage)
	}
	if got.TotalPage != 5 {
		t.Errorf("TotalPage = %d, want 5", got.TotalPage)
	}
	if len(got.Pages) != 5 {
		t.Errorf("Pages = %v", got.Pages)
	}
}

func TestPageNavigation(t *testing.T) {
	first := CalculatePage(0, 10, 95, 7)
	if first.HasPrev() {
		t.Errorf("first page reports a previous page")
	}
	if !first.HasNext() {
		t.Errorf("first page reports no next page")
	}
	last := CalculatePage(9, 10, 95, 7)
	if !last.HasPrev() || last.HasNext() {
		t.Errorf("last page: HasPrev=%v HasNext=%v", last.HasPrev(), last.HasNext())
	}
}
