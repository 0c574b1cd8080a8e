package queries_test

import (
	"context"
	"testing"
	"time"

	"travelorders/internal/adapters/out/postgres/orderrepo"
	"travelorders/internal/adapters/out/postgres/statusrepo"
	"travelorders/internal/adapters/out/postgres/userdir"
	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/model/status"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersQueryHandler
	get       queries.GetOrderQueryHandler

	adminID   kernel.UUID
	ownerID   kernel.UUID
	requested *status.Status
	approved  *status.Status
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&statusrepo.StatusDTO{}, &orderrepo.OrderDTO{}, &userdir.UserDTO{})
	suite.Require().NoError(err)

	users := userdir.NewGormUserDirectory(db)
	suite.handler = queries.NewListOrdersQueryHandler(db, users)
	suite.get = queries.NewGetOrderQueryHandler(db, users)
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_statuses, users CASCADE").Error
	suite.Require().NoError(err)

	ctx := context.Background()
	statusRepo := statusrepo.NewGormStatusRepository(suite.db)
	for _, name := range status.BuiltInNames() {
		s, restoreErr := status.RestoreStatus(kernel.NewUUID(), name, false)
		suite.Require().NoError(restoreErr)
		suite.Require().NoError(statusRepo.Add(ctx, s))
	}
	suite.requested, err = statusRepo.GetByName(ctx, status.RequestedName)
	suite.Require().NoError(err)
	suite.approved, err = statusRepo.GetByName(ctx, status.ApprovedName)
	suite.Require().NoError(err)

	suite.adminID = suite.seedUser("Admin Root", "admin@example.com", true)
	suite.ownerID = suite.seedUser("Maria Silva", "maria@example.com", false)
}

func (suite *ListOrdersQueryHandlerTestSuite) seedUser(name, email string, isAdmin bool) kernel.UUID {
	id := kernel.NewUUID()
	dto := userdir.UserDTO{
		ID:      id.Bytes(),
		Name:    name,
		Email:   email,
		IsAdmin: isAdmin,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *ListOrdersQueryHandlerTestSuite) seedOrder(
	ownerID kernel.UUID,
	destination string,
	departure time.Time,
	current *status.Status,
	createdAt time.Time,
) *order.Order {
	period, err := kernel.NewTravelPeriod(departure, departure.AddDate(0, 0, 5))
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), ownerID, "Maria Silva", destination, period, suite.requested, createdAt)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), o))

	if !current.IsEqual(suite.requested) {
		suite.Require().NoError(o.ChangeStatus(current))
		suite.Require().NoError(repo.Update(context.Background(), o))
	}
	return o
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_OwnerSeesOnlyOwnOrders() {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	departure := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	mine := suite.seedOrder(suite.ownerID, "Recife", departure, suite.requested, base.Add(time.Hour))
	suite.seedOrder(kernel.NewUUID(), "Natal", departure, suite.requested, base)

	query, err := queries.NewListOrdersQuery(suite.ownerID, queries.ListOrdersFilter{}, 1, 0)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Require().Len(page.Items, 1)
	suite.True(page.Items[0].ID.IsEqual(mine.ID()))
	suite.True(page.Items[0].OwnerID.IsEqual(suite.ownerID))
	suite.Equal("Recife", page.Items[0].Destination)
	suite.Equal(status.RequestedName, page.Items[0].StatusName)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_AdminSeesEveryOrderNewestFirst() {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	departure := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	older := suite.seedOrder(suite.ownerID, "Recife", departure, suite.requested, base)
	newer := suite.seedOrder(kernel.NewUUID(), "Natal", departure, suite.requested, base.Add(time.Hour))

	query, err := queries.NewListOrdersQuery(suite.adminID, queries.ListOrdersFilter{}, 1, 0)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(2), page.Total)
	suite.Require().Len(page.Items, 2)
	suite.True(page.Items[0].ID.IsEqual(newer.ID()))
	suite.True(page.Items[1].ID.IsEqual(older.ID()))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_FiltersCombine() {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	marchTenth := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	aprilFirst := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	match := suite.seedOrder(suite.ownerID, "Recife", marchTenth, suite.approved, base)
	suite.seedOrder(suite.ownerID, "Recife", marchTenth, suite.requested, base)
	suite.seedOrder(suite.ownerID, "Natal", marchTenth, suite.approved, base)
	suite.seedOrder(suite.ownerID, "Recife", aprilFirst, suite.approved, base)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	query, err := queries.NewListOrdersQuery(suite.adminID, queries.ListOrdersFilter{
		StatusName:          status.ApprovedName,
		DestinationContains: "reci",
		DepartureFrom:       &from,
		DepartureTo:         &to,
	}, 1, 0)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Require().Len(page.Items, 1)
	suite.True(page.Items[0].ID.IsEqual(match.ID()))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_PaginatesWithTotal() {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	departure := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		suite.seedOrder(suite.ownerID, "Recife", departure, suite.requested, base.Add(time.Duration(i)*time.Minute))
	}

	query, err := queries.NewListOrdersQuery(suite.adminID, queries.ListOrdersFilter{}, 2, 2)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(5), page.Total)
	suite.Len(page.Items, 2)
	suite.Equal(2, page.Page)
	suite.Equal(2, page.PerPage)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestGetOrder_OwnerReadsOwn_StrangerForbidden() {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	departure := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	o := suite.seedOrder(suite.ownerID, "Recife", departure, suite.requested, base)

	query, err := queries.NewGetOrderQuery(suite.ownerID, o.ID())
	suite.Require().NoError(err)
	item, err := suite.get.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.True(item.ID.IsEqual(o.ID()))

	strangerID := suite.seedUser("Joao Santos", "joao@example.com", false)
	query, err = queries.NewGetOrderQuery(strangerID, o.ID())
	suite.Require().NoError(err)
	_, err = suite.get.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrForbidden)
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
