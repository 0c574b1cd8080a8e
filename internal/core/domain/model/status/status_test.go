package status_test

import (
	"testing"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/status"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomStatus_Valid(t *testing.T) {
	id := kernel.NewUUID()

	st, err := status.NewCustomStatus(id, "urgent")

	require.NoError(t, err)
	assert.Equal(t, id, st.ID())
	assert.Equal(t, "urgent", st.Name())
	assert.True(t, st.IsCustom())
	assert.False(t, st.IsBuiltIn())
	assert.NoError(t, st.Validate())
}

func TestNewCustomStatus_EmptyName(t *testing.T) {
	_, err := status.NewCustomStatus(kernel.NewUUID(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCustomStatus_BuiltInNameCollision(t *testing.T) {
	for _, name := range status.BuiltInNames() {
		t.Run(name, func(t *testing.T) {
			_, err := status.NewCustomStatus(kernel.NewUUID(), name)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrDuplicateName)
		})
	}
}

func TestNewCustomStatus_InvalidID(t *testing.T) {
	_, err := status.NewCustomStatus(kernel.UUID{}, "urgent")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRestoreStatus(t *testing.T) {
	id := kernel.NewUUID()

	st, err := status.RestoreStatus(id, status.ApprovedName, false)

	require.NoError(t, err)
	assert.Equal(t, status.ApprovedName, st.Name())
	assert.True(t, st.IsBuiltIn())
}

func TestStatus_EnsureDeletable(t *testing.T) {
	t.Run("built-in statuses are protected", func(t *testing.T) {
		for _, name := range status.BuiltInNames() {
			st, err := status.RestoreStatus(kernel.NewUUID(), name, false)
			require.NoError(t, err)

			err = st.EnsureDeletable()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrProtectedStatus)
		}
	})

	t.Run("custom statuses are deletable", func(t *testing.T) {
		st, err := status.NewCustomStatus(kernel.NewUUID(), "urgent")
		require.NoError(t, err)

		assert.NoError(t, st.EnsureDeletable())
	})
}

func TestIsBuiltInName(t *testing.T) {
	assert.True(t, status.IsBuiltInName("requested"))
	assert.True(t, status.IsBuiltInName("approved"))
	assert.True(t, status.IsBuiltInName("cancelled"))
	assert.False(t, status.IsBuiltInName("urgent"))
	// Comparison is case-sensitive.
	assert.False(t, status.IsBuiltInName("Requested"))
}

func TestStatus_Validate_ZeroValue(t *testing.T) {
	var st status.Status

	err := st.Validate()

	require.Error(t, err)
	assert.Equal(t, status.ErrStatusIsNotConstructed, err)
}
