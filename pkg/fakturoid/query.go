package fakturoid

import (
	"net/url"
	"strings"
	"time"
)

// ListParams represents query parameters for listing collection resources.
// The page parameter is owned by the paginator and must not be set here.
type ListParams struct {
	// Since filters to records created at or after the given instant.
	Since *time.Time

	// UpdatedSince filters to records updated at or after the given instant.
	UpdatedSince *time.Time

	// CustomID filters to records carrying the given custom identifier.
	CustomID string

	// Filters are free-form query parameters passed through verbatim.
	Filters map[string]string
}

// NewListParams creates empty list parameters.
func NewListParams() *ListParams {
	return &ListParams{
		Filters: make(map[string]string),
	}
}

// WithSince adds a created-since filter.
func (p *ListParams) WithSince(since time.Time) *ListParams {
	p.Since = &since

	return p
}

// WithUpdatedSince adds an updated-since filter.
func (p *ListParams) WithUpdatedSince(updatedSince time.Time) *ListParams {
	p.UpdatedSince = &updatedSince

	return p
}

// WithCustomID adds a custom id filter.
func (p *ListParams) WithCustomID(customID string) *ListParams {
	p.CustomID = customID

	return p
}

// WithFilter adds a free-form query parameter.
func (p *ListParams) WithFilter(key, value string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string]string)
	}

	p.Filters[key] = value

	return p
}

// ToValues converts the parameters to url.Values.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.Since != nil {
		values.Set("since", p.Since.Format(time.RFC3339))
	}

	if p.UpdatedSince != nil {
		values.Set("updated_since", p.UpdatedSince.Format(time.RFC3339))
	}

	if p.CustomID != "" {
		values.Set("custom_id", p.CustomID)
	}

	for key, value := range p.Filters {
		values.Set(key, value)
	}

	return values
}

// SearchParams represents query parameters for full-text search endpoints.
type SearchParams struct {
	// Query is the full-text search term.
	Query string

	// Tags narrows the search to records carrying all given tags.
	Tags []string
}

// NewSearchParams creates search parameters with the given query.
func NewSearchParams(query string) *SearchParams {
	return &SearchParams{Query: query}
}

// WithTags adds tag filters.
func (p *SearchParams) WithTags(tags ...string) *SearchParams {
	p.Tags = append(p.Tags, tags...)

	return p
}

// ToValues converts the parameters to url.Values.
func (p *SearchParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.Query != "" {
		values.Set("query", p.Query)
	}

	if len(p.Tags) > 0 {
		values.Set("tags", strings.Join(p.Tags, ","))
	}

	return values
}
