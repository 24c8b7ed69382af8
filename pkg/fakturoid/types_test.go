package fakturoid_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	t.Parallel()

	date := fakturoid.NewDate(2024, time.March, 15)

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(data))

	var parsed fakturoid.Date

	err = json.Unmarshal(data, &parsed)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", parsed.String())
}

func TestDateUnmarshalNull(t *testing.T) {
	t.Parallel()

	var date fakturoid.Date

	err := json.Unmarshal([]byte("null"), &date)
	require.NoError(t, err)
	assert.True(t, date.IsZero())
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	date, err := fakturoid.ParseDate("2023-12-31")
	require.NoError(t, err)
	assert.Equal(t, 2023, date.Year())
	assert.Equal(t, time.December, date.Month())
	assert.Equal(t, 31, date.Day())

	_, err = fakturoid.ParseDate("31.12.2023")
	require.Error(t, err)
}

func TestDateInsideEntity(t *testing.T) {
	t.Parallel()

	invoice := &fakturoid.Invoice{
		SubjectID: fakturoid.Ptr(int64(3)),
		IssuedOn:  fakturoid.Ptr(fakturoid.NewDate(2024, time.January, 2)),
	}

	data, err := json.Marshal(invoice)
	require.NoError(t, err)
	assert.JSONEq(t, `{"subject_id":3,"issued_on":"2024-01-02"}`, string(data))
}

func TestPtr(t *testing.T) {
	t.Parallel()

	value := fakturoid.Ptr("hello")
	require.NotNil(t, value)
	assert.Equal(t, "hello", *value)
}
