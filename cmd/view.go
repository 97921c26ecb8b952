package cmd

import (
	"context"

	"github.com/srm221B/cmms/internal/listview"
)

// fetchRows routes a list fetch through a view controller, so the rows
// rendered always belong to the most recently issued fetch.
func fetchRows[T any](ctx context.Context, fetch listview.FetchFunc[T]) ([]T, error) {
	view := listview.NewController[T]()
	if err := view.Refresh(ctx, fetch); err != nil {
		return nil, err
	}
	return view.Rows(), nil
}
