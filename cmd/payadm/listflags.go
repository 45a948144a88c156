package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/freshcms/payadm/internal/list"
	"github.com/freshcms/payadm/internal/model"
)

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 0, "page number (1-based; default: last visited)")
	cmd.Flags().Int("per-page", 0, "rows per page")
	cmd.Flags().StringP("search", "q", "", "free-text search")
	cmd.Flags().StringArrayP("filter", "f", nil, "field filter (field=value, field~value, field>=value, ...; repeatable)")
	cmd.Flags().StringSlice("sort", nil, "sort fields, prefix - for descending")
	cmd.Flags().Bool("all", false, "fetch every page")
}

// filter operator tokens, longest first so <= is not read as <.
var operatorTokens = []string{
	model.KeyLessThanEqual, model.KeyGreaterThanEqual, model.KeyNotEqual,
	model.KeyEqual, model.KeyContain, model.KeyLessThan, model.KeyGreaterThan,
}

func parseFilter(expr string) (field, opKey, value string, err error) {
	best := -1
	for _, tok := range operatorTokens {
		i := strings.Index(expr, tok)
		if i > 0 && (best == -1 || i < best) {
			best = i
			opKey = tok
		}
	}
	if best == -1 {
		return "", "", "", fmt.Errorf("invalid filter %q (expected field<op>value)", expr)
	}
	field = strings.TrimSpace(expr[:best])
	value = strings.TrimSpace(expr[best+len(opKey):])
	if field == "" || value == "" {
		return "", "", "", fmt.Errorf("invalid filter %q (expected field<op>value)", expr)
	}
	return field, opKey, value, nil
}

// runList drives one paginated listing the way the interactive screens
// do: persisted state is restored first, then explicit flags are applied
// as user actions (a search resets the page, a page move keeps the
// criteria).
func runList[T any](cmd *cobra.Command, name string, opts []model.SearchOption, fetch list.Fetcher[T], render func([]T)) error {
	form, err := list.NewSearchForm(opts...)
	if err != nil {
		return err
	}
	ctrl := list.NewController(name, fetch, form, listStore)
	defer ctrl.Close()

	sorts, _ := cmd.Flags().GetStringSlice("sort")
	if len(sorts) > 0 {
		ctrl.SetSorts(sorts...)
	}

	ctx := cmd.Context()
	if err := ctrl.Start(ctx); err != nil {
		return err
	}

	searchChanged := cmd.Flags().Changed("search")
	filterExprs, _ := cmd.Flags().GetStringArray("filter")
	if searchChanged || len(filterExprs) > 0 {
		if searchChanged {
			q, _ := cmd.Flags().GetString("search")
			form.SetSearch(q)
		}
		for _, expr := range filterExprs {
			field, opKey, value, err := parseFilter(expr)
			if err != nil {
				return err
			}
			if err := form.SetValue(field, value); err != nil {
				return err
			}
			if err := form.SetOperatorKey(field, opKey); err != nil {
				return err
			}
		}
		if err := ctrl.OnSearch(ctx); err != nil {
			return err
		}
	}

	if all, _ := cmd.Flags().GetBool("all"); all {
		rows, err := fetchAll(ctx, form, sorts, fetch)
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(rows)
			return nil
		}
		render(rows)
		fmt.Printf("\n%d row(s)\n", len(rows))
		return nil
	}

	if cmd.Flags().Changed("per-page") {
		perPage, _ := cmd.Flags().GetInt("per-page")
		if err := ctrl.SetPerPage(ctx, perPage); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("page") {
		page, _ := cmd.Flags().GetInt("page")
		if err := ctrl.OnPageChange(ctx, page-1); err != nil {
			return err
		}
	}

	if jsonOutput {
		printJSON(ctrl.Rows())
		return nil
	}
	render(ctrl.Rows())
	printPageFooter(ctrl.Page())
	return nil
}

// fetchAll sweeps every page for the committed criteria without
// touching the persisted page position.
func fetchAll[T any](ctx context.Context, form *list.SearchForm, sorts []string, fetch list.Fetcher[T]) ([]T, error) {
	searchText, filters := form.Criteria()
	var rows []T
	for pageNo := 0; ; pageNo++ {
		resp, err := fetch(ctx, &model.SearchCriteria{
			PageNo:     pageNo,
			PerPage:    100,
			SearchText: searchText,
			Filters:    filters,
			Sorts:      sorts,
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Rows) == 0 {
			return rows, nil
		}
		rows = append(rows, resp.Rows...)
		if len(rows) >= resp.TotalRow {
			return rows, nil
		}
	}
}
