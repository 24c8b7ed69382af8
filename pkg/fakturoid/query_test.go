package fakturoid_test

import (
	"testing"
	"time"

	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/stretchr/testify/assert"
)

func TestListParamsToValues(t *testing.T) {
	t.Parallel()

	since := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC)

	params := fakturoid.NewListParams().
		WithSince(since).
		WithUpdatedSince(updated).
		WithCustomID("ext-7").
		WithFilter("status", "open")

	values := params.ToValues()

	assert.Equal(t, "2024-03-01T12:00:00Z", values.Get("since"))
	assert.Equal(t, "2024-06-15T08:30:00Z", values.Get("updated_since"))
	assert.Equal(t, "ext-7", values.Get("custom_id"))
	assert.Equal(t, "open", values.Get("status"))
}

func TestListParamsEmpty(t *testing.T) {
	t.Parallel()

	values := fakturoid.NewListParams().ToValues()
	assert.Empty(t, values)
}

func TestListParamsNilReceiver(t *testing.T) {
	t.Parallel()

	var params *fakturoid.ListParams

	values := params.ToValues()
	assert.Empty(t, values)
}

func TestSearchParamsToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    *fakturoid.SearchParams
		wantQuery string
		wantTags  string
	}{
		{
			name:      "query only",
			params:    fakturoid.NewSearchParams("acme"),
			wantQuery: "acme",
			wantTags:  "",
		},
		{
			name:      "query with tags",
			params:    fakturoid.NewSearchParams("acme").WithTags("vip", "2024"),
			wantQuery: "acme",
			wantTags:  "vip,2024",
		},
		{
			name:      "empty query omitted",
			params:    fakturoid.NewSearchParams("").WithTags("vip"),
			wantQuery: "",
			wantTags:  "vip",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values := tt.params.ToValues()
			assert.Equal(t, tt.wantQuery, values.Get("query"))
			assert.Equal(t, tt.wantTags, values.Get("tags"))
		})
	}
}
