package fakturoid_test

import (
	"encoding/json"
	"testing"

	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindCapturesSnapshot(t *testing.T) {
	t.Parallel()

	subject := &fakturoid.Subject{
		ID:   fakturoid.Ptr(int64(1)),
		Name: fakturoid.Ptr("Acme Corp"),
	}

	require.False(t, subject.Bound())

	err := fakturoid.Bind(subject, "/accounts/acme/subjects")
	require.NoError(t, err)

	assert.True(t, subject.Bound())
	assert.Equal(t, "/accounts/acme/subjects", subject.ResourcePath())

	// An unchanged bound entity produces an empty diff.
	changed, err := fakturoid.ChangedFields(subject)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestChangedFieldsDetectsModification(t *testing.T) {
	t.Parallel()

	subject := &fakturoid.Subject{
		ID:    fakturoid.Ptr(int64(1)),
		Name:  fakturoid.Ptr("Acme Corp"),
		Email: fakturoid.Ptr("billing@acme.example"),
	}

	err := fakturoid.Bind(subject, "/accounts/acme/subjects")
	require.NoError(t, err)

	subject.Name = fakturoid.Ptr("Acme Corp Ltd")

	changed, err := fakturoid.ChangedFields(subject)
	require.NoError(t, err)

	require.Len(t, changed, 1)
	assert.JSONEq(t, `"Acme Corp Ltd"`, string(changed["name"]))
}

func TestChangedFieldsClearedFieldBecomesNull(t *testing.T) {
	t.Parallel()

	subject := &fakturoid.Subject{
		ID:   fakturoid.Ptr(int64(1)),
		Name: fakturoid.Ptr("Acme Corp"),
		Note: fakturoid.Ptr("preferred customer"),
	}

	err := fakturoid.Bind(subject, "/accounts/acme/subjects")
	require.NoError(t, err)

	subject.Note = nil

	changed, err := fakturoid.ChangedFields(subject)
	require.NoError(t, err)

	require.Len(t, changed, 1)
	assert.Equal(t, json.RawMessage("null"), changed["note"])
}

func TestChangedFieldsSkipsReadOnly(t *testing.T) {
	t.Parallel()

	subject := &fakturoid.Subject{
		ID:   fakturoid.Ptr(int64(1)),
		Name: fakturoid.Ptr("Acme Corp"),
	}

	err := fakturoid.Bind(subject, "/accounts/acme/subjects")
	require.NoError(t, err)

	// Server-computed fields never enter the patch body.
	subject.HTMLURL = fakturoid.Ptr("https://app.fakturoid.cz/acme/subjects/1")
	subject.Name = fakturoid.Ptr("Acme Corp Ltd")

	changed, err := fakturoid.ChangedFields(subject)
	require.NoError(t, err)

	require.Len(t, changed, 1)
	assert.Contains(t, changed, "name")
	assert.NotContains(t, changed, "html_url")
	assert.NotContains(t, changed, "id")
}

func TestChangedFieldsAlwaysIncludesSubjectID(t *testing.T) {
	t.Parallel()

	invoice := &fakturoid.Invoice{
		ID:        fakturoid.Ptr(int64(7)),
		SubjectID: fakturoid.Ptr(int64(3)),
		Note:      fakturoid.Ptr("first draft"),
	}

	err := fakturoid.Bind(invoice, "/accounts/acme/invoices")
	require.NoError(t, err)

	invoice.Note = fakturoid.Ptr("final")

	changed, err := fakturoid.ChangedFields(invoice)
	require.NoError(t, err)

	require.Len(t, changed, 2)
	assert.JSONEq(t, `"final"`, string(changed["note"]))
	assert.JSONEq(t, `3`, string(changed["subject_id"]))
}

func TestChangedFieldsUnboundEntityIncludesAllSetFields(t *testing.T) {
	t.Parallel()

	subject := &fakturoid.Subject{
		Name:  fakturoid.Ptr("Fresh Co"),
		Email: fakturoid.Ptr("hello@fresh.example"),
	}

	changed, err := fakturoid.ChangedFields(subject)
	require.NoError(t, err)

	assert.Len(t, changed, 2)
	assert.Contains(t, changed, "name")
	assert.Contains(t, changed, "email")
}

func TestPatchPayload(t *testing.T) {
	t.Parallel()

	subject := &fakturoid.Subject{
		ID:   fakturoid.Ptr(int64(1)),
		Name: fakturoid.Ptr("Acme Corp"),
	}

	err := fakturoid.Bind(subject, "/accounts/acme/subjects")
	require.NoError(t, err)

	subject.Name = fakturoid.Ptr("Acme Corp Ltd")

	payload, err := fakturoid.PatchPayload(subject)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Acme Corp Ltd"}`, string(payload))
}

func TestRebindResetsSnapshot(t *testing.T) {
	t.Parallel()

	subject := &fakturoid.Subject{
		ID:   fakturoid.Ptr(int64(1)),
		Name: fakturoid.Ptr("Acme Corp"),
	}

	err := fakturoid.Bind(subject, "/accounts/acme/subjects")
	require.NoError(t, err)

	subject.Name = fakturoid.Ptr("Acme Corp Ltd")

	// Binding again, as the accessor does after a successful update, makes
	// the current state the new baseline.
	err = fakturoid.Bind(subject, "/accounts/acme/subjects")
	require.NoError(t, err)

	changed, err := fakturoid.ChangedFields(subject)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestTrackedExcludedFromWire(t *testing.T) {
	t.Parallel()

	subject := &fakturoid.Subject{Name: fakturoid.Ptr("Acme Corp")}

	err := fakturoid.Bind(subject, "/accounts/acme/subjects")
	require.NoError(t, err)

	data, err := json.Marshal(subject)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Acme Corp"}`, string(data))
}
