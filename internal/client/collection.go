package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fakturoid-community/fakturoid-go/internal/http"
	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/go-playground/validator/v10"
)

// entityPtr constrains P to a pointer to T that satisfies fakturoid.Entity,
// so the accessor can bind snapshots and read schemas on values it allocates.
type entityPtr[T any] interface {
	*T
	fakturoid.Entity
}

// CollectionClient implements fakturoid.CollectionClient for one resource
// collection.
type CollectionClient[T any, P entityPtr[T]] struct {
	httpClient *http.Client
	validate   *validator.Validate
	session    fakturoid.RouteParams
	resource   string
}

// NewCollectionClient creates an accessor for the named resource, e.g.
// "subjects".
func NewCollectionClient[T any, P entityPtr[T]](httpClient *http.Client, validate *validator.Validate, session fakturoid.RouteParams, resource string) *CollectionClient[T, P] {
	return &CollectionClient[T, P]{
		httpClient: httpClient,
		validate:   validate,
		session:    session,
		resource:   resource,
	}
}

func (c *CollectionClient[T, P]) resolve(template string, extra fakturoid.RouteParams) (string, error) {
	return fakturoid.ResolveRoute(template, c.session, fakturoid.RouteParams{"resource": c.resource}, extra)
}

// basePath is the collection path stamped onto every bound entity.
func (c *CollectionClient[T, P]) basePath() (string, error) {
	return c.resolve(basePathTemplate, nil)
}

// bind stamps the collection path onto the entity and captures its snapshot.
func (c *CollectionClient[T, P]) bind(entity P) error {
	basePath, err := c.basePath()
	if err != nil {
		return err
	}

	err = fakturoid.Bind(entity, basePath)
	if err != nil {
		return fmt.Errorf("binding %s: %w", c.resource, err)
	}

	return nil
}

// Get implements fakturoid.CollectionClient.Get.
func (c *CollectionClient[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	path, err := c.resolve(detailTemplate, fakturoid.RouteParams{"id": strconv.FormatInt(id, 10)})
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s %d: %w", c.resource, id, err)
	}

	return c.decodeEntity(resp.Body)
}

// List implements fakturoid.CollectionClient.List by draining Index.
func (c *CollectionClient[T, P]) List(ctx context.Context, params *fakturoid.ListParams) ([]T, error) {
	items, err := c.Index(ctx, params).All()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.resource, err)
	}

	return items, nil
}

// Index implements fakturoid.CollectionClient.Index. Each call starts a fresh
// page-1 request.
func (c *CollectionClient[T, P]) Index(ctx context.Context, params *fakturoid.ListParams) *fakturoid.Iterator[T] {
	return fakturoid.NewIterator(ctx, c.pageFetcher(collectionTemplate, params.ToValues()))
}

// Search implements fakturoid.CollectionClient.Search against the full-text
// endpoint.
func (c *CollectionClient[T, P]) Search(ctx context.Context, params *fakturoid.SearchParams) *fakturoid.Iterator[T] {
	return fakturoid.NewIterator(ctx, c.pageFetcher(searchTemplate, params.ToValues()))
}

// pageFetcher fetches one page of the collection at the given template. The
// page parameter is 1-based; the iterator owns the short-page termination.
func (c *CollectionClient[T, P]) pageFetcher(template string, query url.Values) fakturoid.PageFetcher[T] {
	return func(ctx context.Context, page int) ([]T, error) {
		path, err := c.resolve(template, nil)
		if err != nil {
			return nil, err
		}

		paged := url.Values{}
		for key, values := range query {
			paged[key] = values
		}

		paged.Set("page", strconv.Itoa(page))

		resp, err := c.httpClient.Get(ctx, path, paged)
		if err != nil {
			return nil, fmt.Errorf("fetching %s page %d: %w", c.resource, page, err)
		}

		var items []T

		err = json.Unmarshal(resp.Body, &items)
		if err != nil {
			return nil, fmt.Errorf("parsing %s page %d: %w", c.resource, page, err)
		}

		for i := range items {
			err = c.bind(P(&items[i]))
			if err != nil {
				return nil, err
			}
		}

		return items, nil
	}
}

// Find implements fakturoid.CollectionClient.Find. The filters are passed
// through as query parameters and then re-checked client-side for exact
// equality, so this is a full O(n) scan over Index when the server ignores a
// filter key.
func (c *CollectionClient[T, P]) Find(ctx context.Context, filters map[string]interface{}) ([]T, error) {
	params := fakturoid.NewListParams()

	wanted := make(map[string]json.RawMessage, len(filters))

	for key, value := range filters {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding filter %q: %w", key, err)
		}

		wanted[key] = raw
		params.WithFilter(key, fmt.Sprintf("%v", value))
	}

	var matched []T

	err := c.Index(ctx, params).ForEach(func(item T) error {
		data, err := json.Marshal(&item)
		if err != nil {
			return fmt.Errorf("serializing %s for matching: %w", c.resource, err)
		}

		var fields map[string]json.RawMessage

		err = json.Unmarshal(data, &fields)
		if err != nil {
			return fmt.Errorf("decoding %s for matching: %w", c.resource, err)
		}

		for key, want := range wanted {
			got, ok := fields[key]
			if !ok || !bytes.Equal(got, want) {
				return nil
			}
		}

		matched = append(matched, item)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("finding %s: %w", c.resource, err)
	}

	return matched, nil
}

// Create implements fakturoid.CollectionClient.Create. Only explicitly-set
// fields travel in the body; unset optional fields are nil pointers and stay
// out of the payload.
func (c *CollectionClient[T, P]) Create(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, fakturoid.ErrEntityRequired
	}

	err := c.validate.Struct(entity)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", c.resource, err)
	}

	path, err := c.resolve(collectionTemplate, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, entity)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.resource, err)
	}

	return c.decodeEntity(resp.Body)
}

// Update implements fakturoid.CollectionClient.Update. The body is the
// change-tracker diff: fields changed since the entity was loaded plus the
// schema's always-include fields. The detail path is resolved from the
// entity's own contributed route parameters, so an entity without an id fails
// with a RouteError naming "id".
func (c *CollectionClient[T, P]) Update(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, fakturoid.ErrEntityRequired
	}

	err := c.validate.Struct(entity)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", c.resource, err)
	}

	pointer := P(entity)

	path, err := c.resolve(detailTemplate, pointer.RouteParams())
	if err != nil {
		return nil, err
	}

	payload, err := fakturoid.PatchPayload(pointer)
	if err != nil {
		return nil, fmt.Errorf("computing %s patch: %w", c.resource, err)
	}

	resp, err := c.httpClient.Patch(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.resource, err)
	}

	return c.decodeEntity(resp.Body)
}

// Delete implements fakturoid.CollectionClient.Delete. A non-2xx response
// surfaces as an error carrying the id and the raw response body.
func (c *CollectionClient[T, P]) Delete(ctx context.Context, id int64) error {
	path, err := c.resolve(detailTemplate, fakturoid.RouteParams{"id": strconv.FormatInt(id, 10)})
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", c.resource, id, err)
	}

	return nil
}

// Save implements fakturoid.CollectionClient.Save: Update when the entity has
// an id, Create otherwise.
func (c *CollectionClient[T, P]) Save(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, fakturoid.ErrEntityRequired
	}

	if P(entity).ResourceID() != nil {
		return c.Update(ctx, entity)
	}

	return c.Create(ctx, entity)
}

func (c *CollectionClient[T, P]) decodeEntity(body []byte) (*T, error) {
	var entity T

	err := json.Unmarshal(body, &entity)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.resource, err)
	}

	err = c.bind(P(&entity))
	if err != nil {
		return nil, err
	}

	return &entity, nil
}
