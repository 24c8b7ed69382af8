package fakturoid

import (
	"context"
)

// PerPage is the fixed page size of every collection endpoint. The server
// guarantees that a page shorter than this is the last one; that short page
// is the sole termination condition, there is no total-count header.
const PerPage = 40

// PageFetcher fetches one page of results. Page numbers are 1-based.
type PageFetcher[T any] func(ctx context.Context, page int) ([]T, error)

// Iterator lazily walks a paginated collection, fetching the next page only
// when the buffered one is exhausted. It is forward-only and single-use; each
// accessor call hands out a fresh iterator starting at page 1.
type Iterator[T any] struct {
	ctx   context.Context
	fetch PageFetcher[T]
	page  int
	items []T
	pos   int
	done  bool
	err   error
}

// NewIterator creates an iterator over the given page fetcher.
func NewIterator[T any](ctx context.Context, fetch PageFetcher[T]) *Iterator[T] {
	return &Iterator[T]{
		ctx:   ctx,
		fetch: fetch,
		page:  1,
	}
}

// HasNext reports whether Next will yield another item or a pending error.
// It fetches the next page when the current one is consumed.
func (it *Iterator[T]) HasNext() bool {
	if it.err != nil {
		return true
	}

	if it.pos < len(it.items) {
		return true
	}

	if it.done {
		return false
	}

	it.fetchPage()

	return it.err != nil || it.pos < len(it.items)
}

// Next returns the next item, fetching pages as needed. It returns
// ErrNoMoreItems once the collection is exhausted.
func (it *Iterator[T]) Next() (*T, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true

		return nil, err
	}

	item := &it.items[it.pos]
	it.pos++

	return item, nil
}

// All materializes the remaining items, draining the iterator.
func (it *Iterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, *item)
	}

	return all, nil
}

// ForEach applies fn to every remaining item. Iteration stops on the first
// error from fn or from a page fetch.
func (it *Iterator[T]) ForEach(fn func(item T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(*item)
		if err != nil {
			return err
		}
	}

	return nil
}

// fetchPage loads the next page and applies the short-page termination rule:
// a page shorter than PerPage is the last one.
func (it *Iterator[T]) fetchPage() {
	items, err := it.fetch(it.ctx, it.page)
	if err != nil {
		it.err = err

		return
	}

	it.items = items
	it.pos = 0
	it.page++

	if len(items) < PerPage {
		it.done = true
	}
}

// PageResult carries one fetched page or the error that ended streaming.
type PageResult[T any] struct {
	Page  int
	Items []T
	Err   error
}

// StreamPages fetches pages on a goroutine and delivers each one whole on the
// returned channel, letting consumers interleave work between pages. The
// channel closes after the short page, an error, or context cancellation.
func StreamPages[T any](ctx context.Context, fetch PageFetcher[T]) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		for page := 1; ; page++ {
			items, err := fetch(ctx, page)

			select {
			case results <- PageResult[T]{Page: page, Items: items, Err: err}:
			case <-ctx.Done():
				return
			}

			if err != nil || len(items) < PerPage {
				return
			}
		}
	}()

	return results
}
