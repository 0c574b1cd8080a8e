package audit_test

import (
	"testing"
	"time"

	"travelorders/internal/core/domain/model/audit"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry_Valid(t *testing.T) {
	id := kernel.NewUUID()
	actor := kernel.NewUUID()
	subject := kernel.NewUUID()
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

	entry, err := audit.NewEntry(id, actor, audit.SubjectOrder, subject,
		audit.ActionOrderStatusUpdated,
		map[string]any{"old_status": "requested", "new_status": "approved"}, now)

	require.NoError(t, err)
	assert.Equal(t, id, entry.ID())
	assert.Equal(t, actor, entry.ActorID())
	assert.Equal(t, audit.SubjectOrder, entry.SubjectType())
	assert.Equal(t, subject, entry.SubjectID())
	assert.Equal(t, "Updated order status", entry.Action())
	assert.Equal(t, "approved", entry.Properties()["new_status"])
	assert.Equal(t, now, entry.CreatedAt())
	assert.NoError(t, entry.Validate())
}

func TestNewEntry_CopiesProperties(t *testing.T) {
	props := map[string]any{"destination": "Lisbon"}

	entry, err := audit.NewEntry(kernel.NewUUID(), kernel.NewUUID(),
		audit.SubjectOrder, kernel.NewUUID(), audit.ActionOrderCreated, props, time.Now())
	require.NoError(t, err)

	// Mutating the caller's map must not alter the recorded snapshot.
	props["destination"] = "Madrid"
	assert.Equal(t, "Lisbon", entry.Properties()["destination"])

	// Mutating a returned copy must not alter the record either.
	snapshot := entry.Properties()
	snapshot["destination"] = "Porto"
	assert.Equal(t, "Lisbon", entry.Properties()["destination"])
}

func TestNewEntry_NilProperties(t *testing.T) {
	entry, err := audit.NewEntry(kernel.NewUUID(), kernel.NewUUID(),
		audit.SubjectOrderStatus, kernel.NewUUID(), audit.ActionCustomStatusDeleted, nil, time.Now())

	require.NoError(t, err)
	assert.NotNil(t, entry.Properties())
	assert.Empty(t, entry.Properties())
}

func TestNewEntry_RequiredFields(t *testing.T) {
	id := kernel.NewUUID()
	now := time.Now()

	t.Run("missing action", func(t *testing.T) {
		_, err := audit.NewEntry(id, id, audit.SubjectOrder, id, "", nil, now)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing subject type", func(t *testing.T) {
		_, err := audit.NewEntry(id, id, "", id, audit.ActionOrderCreated, nil, now)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing actor", func(t *testing.T) {
		_, err := audit.NewEntry(id, kernel.UUID{}, audit.SubjectOrder, id, audit.ActionOrderCreated, nil, now)
		assert.Error(t, err)
	})
}

func TestEntry_Validate_ZeroValue(t *testing.T) {
	var entry audit.Entry

	err := entry.Validate()

	require.Error(t, err)
	assert.Equal(t, audit.ErrEntryIsNotConstructed, err)
}
