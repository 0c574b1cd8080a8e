package queries_test

import (
	"testing"
	"time"

	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery_Defaults(t *testing.T) {
	q, err := queries.NewListOrdersQuery(kernel.NewUUID(), queries.ListOrdersFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page())
	assert.Equal(t, queries.DefaultOrdersPerPage, q.PerPage())
}

func TestNewListOrdersQuery_PerPageBound(t *testing.T) {
	_, err := queries.NewListOrdersQuery(kernel.NewUUID(), queries.ListOrdersFilter{}, 1, queries.MaxPerPage+1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewListOrdersQuery_InvalidDepartureWindow(t *testing.T) {
	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	_, err := queries.NewListOrdersQuery(kernel.NewUUID(), queries.ListOrdersFilter{
		DepartureFrom: &from,
		DepartureTo:   &to,
	}, 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListOrdersQuery_InvalidActor(t *testing.T) {
	_, err := queries.NewListOrdersQuery(kernel.UUID{}, queries.ListOrdersFilter{}, 0, 0)
	require.Error(t, err)
}

func TestNewGetOrderQuery(t *testing.T) {
	actorID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	q, err := queries.NewGetOrderQuery(actorID, orderID)
	require.NoError(t, err)
	assert.Equal(t, actorID, q.ActorID())
	assert.Equal(t, orderID, q.OrderID())

	_, err = queries.NewGetOrderQuery(actorID, kernel.UUID{})
	require.Error(t, err)
}

func TestNewListNotificationsQuery_Defaults(t *testing.T) {
	q, err := queries.NewListNotificationsQuery(kernel.NewUUID(), true, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page())
	assert.Equal(t, queries.DefaultNotificationsPerPage, q.PerPage())
	assert.True(t, q.UnreadOnly())
}

func TestNewListAuditEntriesQuery_Defaults(t *testing.T) {
	q, err := queries.NewListAuditEntriesQuery(kernel.NewUUID(), queries.ListAuditEntriesFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page())
	assert.Equal(t, queries.DefaultAuditEntriesPerPage, q.PerPage())
}

func TestNewListAuditEntriesQuery_InvalidWindow(t *testing.T) {
	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	_, err := queries.NewListAuditEntriesQuery(kernel.NewUUID(), queries.ListAuditEntriesFilter{
		From: &from,
		To:   &to,
	}, 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestQueryValidate_NotConstructed(t *testing.T) {
	assert.Error(t, queries.ListOrdersQuery{}.Validate())
	assert.Error(t, queries.GetOrderQuery{}.Validate())
	assert.Error(t, queries.ListOrderStatusesQuery{}.Validate())
	assert.Error(t, queries.ListNotificationsQuery{}.Validate())
	assert.Error(t, queries.UnreadNotificationCountQuery{}.Validate())
	assert.Error(t, queries.ListAuditEntriesQuery{}.Validate())
}
