package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fakturoid-community/fakturoid-go/internal/http"
	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
)

// EventsClient implements fakturoid.EventsClient for one resource collection.
// Events travel as a query parameter on a bodyless POST.
type EventsClient[A ~string] struct {
	httpClient *http.Client
	session    fakturoid.RouteParams
	resource   string
}

// NewEventsClient creates an action invoker for the named resource.
func NewEventsClient[A ~string](httpClient *http.Client, session fakturoid.RouteParams, resource string) *EventsClient[A] {
	return &EventsClient[A]{
		httpClient: httpClient,
		session:    session,
		resource:   resource,
	}
}

// Fire triggers the named lifecycle event on the identified entity.
func (c *EventsClient[A]) Fire(ctx context.Context, id int64, event A) error {
	path, err := fakturoid.ResolveRoute(fireTemplate, c.session,
		fakturoid.RouteParams{"resource": c.resource, "id": strconv.FormatInt(id, 10)})
	if err != nil {
		return err
	}

	query := url.Values{"event": []string{string(event)}}

	_, err = c.httpClient.PostQuery(ctx, path, query)
	if err != nil {
		return fmt.Errorf("firing %s on %s %d: %w", string(event), c.resource, id, err)
	}

	return nil
}
