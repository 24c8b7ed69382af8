package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fakturoid-community/fakturoid-go/internal/http"
	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
)

// LoadableClient implements fakturoid.LoadableClient for singleton resources
// such as the account detail and the current user.
type LoadableClient[T any, P entityPtr[T]] struct {
	httpClient *http.Client
	session    fakturoid.RouteParams
	template   string
	resource   string
}

// NewLoadableClient creates an accessor for a singleton resource at the given
// route template.
func NewLoadableClient[T any, P entityPtr[T]](httpClient *http.Client, session fakturoid.RouteParams, template, resource string) *LoadableClient[T, P] {
	return &LoadableClient[T, P]{
		httpClient: httpClient,
		session:    session,
		template:   template,
		resource:   resource,
	}
}

// Load fetches the resource. The returned entity is bound so later field
// changes are visible to the change tracker, even though singleton resources
// have no update endpoint of their own.
func (c *LoadableClient[T, P]) Load(ctx context.Context) (*T, error) {
	path, err := fakturoid.ResolveRoute(c.template, c.session)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c.resource, err)
	}

	var entity T

	err = json.Unmarshal(resp.Body, &entity)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.resource, err)
	}

	err = fakturoid.Bind(P(&entity), path)
	if err != nil {
		return nil, fmt.Errorf("binding %s: %w", c.resource, err)
	}

	return &entity, nil
}
