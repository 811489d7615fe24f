package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/adapters/out/postgres/returnrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueriesIntegrationTestSuite provides integration tests for the raw-SQL
// query handlers using PostgreSQL containers, seeding rows through the
// persistence DTOs.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&userrepo.UserDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&returnrepo.ReturnRequestDTO{},
	))
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE return_requests, order_items, orders, products, users",
	).Error)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) seedUser(name, email, role string) uuid.UUID {
	dto := userrepo.UserDTO{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
		Active:       true,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *QueriesIntegrationTestSuite) seedProduct(wholesalerID uuid.UUID, name string) uuid.UUID {
	dto := productrepo.ProductDTO{
		ID:           uuid.New(),
		WholesalerID: wholesalerID,
		Name:         name,
		Category:     "Grains",
		Brand:        "Hillside",
		UnitType:     "bag",
		Price:        10.0,
		Quantity:     100,
		MinThreshold: 5,
		Active:       true,
		CreatedDate:  time.Now(),
		UpdatedDate:  time.Now(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

type seededOrder struct {
	orderID uuid.UUID
	itemIDs []uuid.UUID
}

func (suite *QueriesIntegrationTestSuite) seedOrder(
	retailerID uuid.UUID, productIDs []uuid.UUID, status string, orderDate time.Time, active bool,
) seededOrder {
	seeded := seededOrder{orderID: uuid.New()}
	items := make([]orderrepo.OrderItemDTO, 0, len(productIDs))
	for _, productID := range productIDs {
		item := orderrepo.OrderItemDTO{
			ID:              uuid.New(),
			OrderID:         seeded.orderID,
			ProductID:       productID,
			Quantity:        2,
			PriceAtPurchase: 10.0,
		}
		items = append(items, item)
		seeded.itemIDs = append(seeded.itemIDs, item.ID)
	}

	dto := orderrepo.OrderDTO{
		ID:          seeded.orderID,
		RetailerID:  retailerID,
		OrderDate:   orderDate,
		TotalAmount: 20.0 * float64(len(productIDs)),
		Status:      status,
		Items:       items,
		Active:      active,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return seeded
}

func (suite *QueriesIntegrationTestSuite) seedReturn(orderItemID, retailerID uuid.UUID, status string) {
	dto := returnrepo.ReturnRequestDTO{
		ID:          uuid.New(),
		OrderItemID: orderItemID,
		RetailerID:  retailerID,
		Quantity:    1,
		Reason:      "damaged",
		Status:      status,
		RequestDate: time.Now(),
		UpdatedDate: time.Now(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_PaginatesByOrderNotByRow() {
	ctx := context.Background()
	retailerID := suite.seedUser("Corner Shop", "shop@example.com", "RETAILER")
	wholesalerID := suite.seedUser("Fresh Farms", "farms@example.com", "WHOLESALER")
	productA := suite.seedProduct(wholesalerID, "Rice")
	productB := suite.seedProduct(wholesalerID, "Lentils")

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	// Three orders, the newest with two items: a row-level LIMIT would
	// split that order across pages.
	suite.seedOrder(retailerID, []uuid.UUID{productA}, "PLACED", base, true)
	suite.seedOrder(retailerID, []uuid.UUID{productA}, "PLACED", base.AddDate(0, 0, 1), true)
	suite.seedOrder(retailerID, []uuid.UUID{productA, productB}, "PLACED", base.AddDate(0, 0, 2), true)

	handler := queries.NewListOrdersQueryHandler(suite.db)
	query, err := queries.NewListRetailerOrdersQuery("shop@example.com")
	suite.Require().NoError(err)

	first, err := handler.Handle(ctx, query.WithPage(0, 2))
	suite.Require().NoError(err)
	suite.Equal(3, first.TotalOrders)
	suite.Require().Len(first.Orders, 2)
	suite.Len(first.Orders[0].Items, 2)
	suite.True(first.Orders[0].OrderDate.After(first.Orders[1].OrderDate))

	second, err := handler.Handle(ctx, query.WithPage(1, 2))
	suite.Require().NoError(err)
	suite.Equal(3, second.TotalOrders)
	suite.Require().Len(second.Orders, 1)
	suite.Equal(base, second.Orders[0].OrderDate.UTC())
}

func (suite *QueriesIntegrationTestSuite) TestReturnStats_WholesalerScopeOnlyCountsOwnProducts() {
	ctx := context.Background()
	retailerID := suite.seedUser("Corner Shop", "shop@example.com", "RETAILER")
	farmsID := suite.seedUser("Fresh Farms", "farms@example.com", "WHOLESALER")
	millsID := suite.seedUser("Golden Mills", "mills@example.com", "WHOLESALER")
	farmsProduct := suite.seedProduct(farmsID, "Rice")
	millsProduct := suite.seedProduct(millsID, "Flour")

	day := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	farmsOrder := suite.seedOrder(retailerID, []uuid.UUID{farmsProduct}, "DELIVERED", day, true)
	millsOrder := suite.seedOrder(retailerID, []uuid.UUID{millsProduct}, "DELIVERED", day, true)
	suite.seedReturn(farmsOrder.itemIDs[0], retailerID, "REQUESTED")
	suite.seedReturn(millsOrder.itemIDs[0], retailerID, "APPROVED")

	handler := queries.NewReturnStatsQueryHandler(suite.db)

	scoped, err := queries.NewWholesalerReturnStatsQuery("farms@example.com", time.Time{}, time.Time{})
	suite.Require().NoError(err)
	stats, err := handler.Handle(ctx, scoped)
	suite.Require().NoError(err)
	suite.Equal(map[string]int{"REQUESTED": 1}, stats.CountsByStatus)
	suite.Require().Len(stats.MostReturned, 1)
	suite.Equal("Rice", stats.MostReturned[0].Name)

	global, err := queries.NewReturnStatsQuery(time.Time{}, time.Time{})
	suite.Require().NoError(err)
	all, err := handler.Handle(ctx, global)
	suite.Require().NoError(err)
	suite.Equal(map[string]int{"REQUESTED": 1, "APPROVED": 1}, all.CountsByStatus)
	suite.Len(all.MostReturned, 2)
}

func (suite *QueriesIntegrationTestSuite) TestTotalSalesStats_IgnoresInactiveOrders() {
	ctx := context.Background()
	retailerID := suite.seedUser("Corner Shop", "shop@example.com", "RETAILER")
	wholesalerID := suite.seedUser("Fresh Farms", "farms@example.com", "WHOLESALER")
	productID := suite.seedProduct(wholesalerID, "Rice")

	day := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	suite.seedOrder(retailerID, []uuid.UUID{productID}, "DELIVERED", day, true)
	// Same shape, soft-deleted: must contribute nothing.
	suite.seedOrder(retailerID, []uuid.UUID{productID}, "DELIVERED", day, false)

	handler := queries.NewTotalSalesStatsQueryHandler(suite.db)
	query, err := queries.NewTotalSalesStatsQuery(time.Time{}, time.Time{})
	suite.Require().NoError(err)

	totals, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(1, totals.OrderCount)
	suite.InDelta(20.0, totals.Revenue, 0.001)
	suite.Equal(2, totals.UnitsSold)
}

func (suite *QueriesIntegrationTestSuite) TestRecentOrders_IgnoresInactiveOrders() {
	ctx := context.Background()
	retailerID := suite.seedUser("Corner Shop", "shop@example.com", "RETAILER")
	wholesalerID := suite.seedUser("Fresh Farms", "farms@example.com", "WHOLESALER")
	productID := suite.seedProduct(wholesalerID, "Rice")

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	active := suite.seedOrder(retailerID, []uuid.UUID{productID}, "PLACED", base, true)
	// Newer but soft-deleted: must not appear in the feed.
	suite.seedOrder(retailerID, []uuid.UUID{productID}, "PLACED", base.AddDate(0, 0, 1), false)

	handler := queries.NewRecentOrdersQueryHandler(suite.db)
	result, err := handler.Handle(ctx, queries.NewRecentOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(active.orderID.String(), result[0].ID.String())
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
