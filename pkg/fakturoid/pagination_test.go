package fakturoid_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPageFetch = errors.New("page fetch failed")

// makePage returns n sequential items offset for the given 1-based page.
func makePage(page, n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = (page-1)*fakturoid.PerPage + i
	}

	return items
}

func TestIteratorShortPageTerminates(t *testing.T) {
	t.Parallel()

	var calls int

	fetch := func(ctx context.Context, page int) ([]int, error) {
		calls++

		return makePage(page, 39), nil
	}

	it := fakturoid.NewIterator(context.Background(), fetch)

	all, err := it.All()
	require.NoError(t, err)

	assert.Len(t, all, 39)
	assert.Equal(t, 1, calls, "a page shorter than PerPage must be the last fetch")
}

func TestIteratorFullPageFetchesNext(t *testing.T) {
	t.Parallel()

	var calls int

	fetch := func(ctx context.Context, page int) ([]int, error) {
		calls++
		if page == 1 {
			return makePage(page, fakturoid.PerPage), nil
		}

		return makePage(page, 3), nil
	}

	it := fakturoid.NewIterator(context.Background(), fetch)

	all, err := it.All()
	require.NoError(t, err)

	assert.Len(t, all, fakturoid.PerPage+3)
	assert.Equal(t, 2, calls, "a full page must trigger exactly one more fetch")
}

func TestIteratorEmptyFirstPage(t *testing.T) {
	t.Parallel()

	fetch := func(ctx context.Context, page int) ([]int, error) {
		return nil, nil
	}

	it := fakturoid.NewIterator(context.Background(), fetch)

	assert.False(t, it.HasNext())

	_, err := it.Next()
	require.ErrorIs(t, err, fakturoid.ErrNoMoreItems)
}

func TestIteratorNextAfterExhaustion(t *testing.T) {
	t.Parallel()

	fetch := func(ctx context.Context, page int) ([]int, error) {
		return []int{1}, nil
	}

	it := fakturoid.NewIterator(context.Background(), fetch)

	item, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, *item)

	_, err = it.Next()
	require.ErrorIs(t, err, fakturoid.ErrNoMoreItems)
}

func TestIteratorSurfacesFetchError(t *testing.T) {
	t.Parallel()

	fetch := func(ctx context.Context, page int) ([]int, error) {
		if page == 2 {
			return nil, errPageFetch
		}

		return makePage(page, fakturoid.PerPage), nil
	}

	it := fakturoid.NewIterator(context.Background(), fetch)

	_, err := it.All()
	require.ErrorIs(t, err, errPageFetch)
}

func TestIteratorForEachStopsOnCallbackError(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop")

	fetch := func(ctx context.Context, page int) ([]int, error) {
		return makePage(page, 5), nil
	}

	it := fakturoid.NewIterator(context.Background(), fetch)

	var seen int

	err := it.ForEach(func(item int) error {
		seen++
		if seen == 2 {
			return errStop
		}

		return nil
	})

	require.ErrorIs(t, err, errStop)
	assert.Equal(t, 2, seen)
}

func TestIteratorPassesSequentialPages(t *testing.T) {
	t.Parallel()

	var pages []int

	fetch := func(ctx context.Context, page int) ([]int, error) {
		pages = append(pages, page)
		if page < 3 {
			return makePage(page, fakturoid.PerPage), nil
		}

		return makePage(page, 1), nil
	}

	it := fakturoid.NewIterator(context.Background(), fetch)

	all, err := it.All()
	require.NoError(t, err)

	assert.Len(t, all, 2*fakturoid.PerPage+1)
	assert.Equal(t, []int{1, 2, 3}, pages)
}

func TestStreamPages(t *testing.T) {
	t.Parallel()

	fetch := func(ctx context.Context, page int) ([]int, error) {
		if page == 1 {
			return makePage(page, fakturoid.PerPage), nil
		}

		return makePage(page, 2), nil
	}

	var (
		pages int
		items int
	)

	for result := range fakturoid.StreamPages(context.Background(), fetch) {
		require.NoError(t, result.Err)

		pages++
		items += len(result.Items)
	}

	assert.Equal(t, 2, pages)
	assert.Equal(t, fakturoid.PerPage+2, items)
}

func TestStreamPagesDeliversError(t *testing.T) {
	t.Parallel()

	fetch := func(ctx context.Context, page int) ([]int, error) {
		return nil, fmt.Errorf("page %d: %w", page, errPageFetch)
	}

	var results []fakturoid.PageResult[int]

	for result := range fakturoid.StreamPages(context.Background(), fetch) {
		results = append(results, result)
	}

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, errPageFetch)
}

func TestStreamPagesStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	fetch := func(ctx context.Context, page int) ([]int, error) {
		return makePage(page, fakturoid.PerPage), nil
	}

	results := fakturoid.StreamPages(ctx, fetch)

	_, ok := <-results
	require.True(t, ok)

	cancel()

	// The channel closes after cancellation; drain whatever page was already
	// in flight.
	for range results {
	}
}
