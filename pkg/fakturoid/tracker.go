package fakturoid

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var jsonNull = json.RawMessage("null")

// Schema declares how an entity's fields participate in partial updates.
// Field names are the JSON wire names.
type Schema struct {
	// ReadOnly fields are server-computed and never sent in a patch body.
	ReadOnly []string

	// AlwaysInclude fields are sent on every update even when unchanged,
	// typically required foreign keys such as subject_id.
	AlwaysInclude []string
}

// Entity is implemented by every resource type. Entities embed Tracked, which
// carries the bookkeeping state the collection accessor stamps onto every
// instance it returns.
type Entity interface {
	RouteParamProvider

	// ResourceID returns the server-assigned identifier, nil for unsaved
	// entities.
	ResourceID() *int64

	// Schema declares the entity's read-only and always-include fields.
	Schema() Schema

	tracked() *Tracked
}

// Tracked holds the state needed for partial updates: the collection path the
// entity was bound to and the wire-form snapshot captured at bind time. The
// snapshot is captured exactly once per bind and never mutated afterwards, so
// later field changes diff against the state the server last confirmed.
type Tracked struct {
	resourcePath string
	snapshot     map[string]json.RawMessage
}

func (t *Tracked) tracked() *Tracked { return t }

// ResourcePath returns the collection path the entity was bound to, empty for
// entities that were never returned by an accessor.
func (t *Tracked) ResourcePath() string {
	return t.resourcePath
}

// Bound reports whether the entity has been bound to a collection.
func (t *Tracked) Bound() bool {
	return t.snapshot != nil
}

// Bind stamps the collection path onto the entity and captures its wire-form
// snapshot. Accessors call it on every entity they return; callers only need
// it when reloading an entity outside the accessor.
func Bind(entity Entity, resourcePath string) error {
	snapshot, err := wireForm(entity)
	if err != nil {
		return fmt.Errorf("capturing snapshot: %w", err)
	}

	state := entity.tracked()
	state.resourcePath = resourcePath
	state.snapshot = snapshot

	return nil
}

// ChangedFields returns the fields whose current wire value differs from the
// bind-time snapshot, minus the schema's read-only fields, plus its
// always-include fields. A field present in the snapshot but cleared since
// maps to JSON null so the server unsets it. An unbound entity diffs against
// an empty snapshot, i.e. every set field counts as changed.
func ChangedFields(entity Entity) (map[string]json.RawMessage, error) {
	current, err := wireForm(entity)
	if err != nil {
		return nil, fmt.Errorf("serializing entity: %w", err)
	}

	schema := entity.Schema()
	readOnly := make(map[string]bool, len(schema.ReadOnly))

	for _, name := range schema.ReadOnly {
		readOnly[name] = true
	}

	snapshot := entity.tracked().snapshot
	changed := make(map[string]json.RawMessage)

	for name, value := range current {
		if readOnly[name] {
			continue
		}

		previous, ok := snapshot[name]
		if !ok || !bytes.Equal(previous, value) {
			changed[name] = value
		}
	}

	for name := range snapshot {
		if readOnly[name] {
			continue
		}

		if _, ok := current[name]; !ok {
			changed[name] = jsonNull
		}
	}

	for _, name := range schema.AlwaysInclude {
		if _, ok := changed[name]; ok {
			continue
		}

		if value, ok := current[name]; ok {
			changed[name] = value
		}
	}

	return changed, nil
}

// PatchPayload serializes exactly the ChangedFields set, ready for a PATCH
// request body.
func PatchPayload(entity Entity) ([]byte, error) {
	changed, err := ChangedFields(entity)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(changed)
	if err != nil {
		return nil, fmt.Errorf("serializing patch payload: %w", err)
	}

	return payload, nil
}

// wireForm renders the entity the way it would travel on the wire: a map of
// JSON field name to raw value, with unset optional fields absent.
func wireForm(entity Entity) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("marshaling entity: %w", err)
	}

	var fields map[string]json.RawMessage

	err = json.Unmarshal(data, &fields)
	if err != nil {
		return nil, fmt.Errorf("decoding entity wire form: %w", err)
	}

	return fields, nil
}
