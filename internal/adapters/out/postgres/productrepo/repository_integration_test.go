package productrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProductRepositoryIntegrationTestSuite provides integration tests for
// GormProductRepository using PostgreSQL containers, with a focus on the
// atomic stock decrement used during checkout.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)
	suite.repository = productrepo.NewGormProductRepository(suite.db)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(quantity, minThreshold int) *product.Product {
	p, err := product.NewProduct(
		kernel.NewUUID(), kernel.NewUUID(),
		"Basmati Rice", "Long grain rice", "Grains", "Golden Harvest", "kg",
		45.50, quantity, minThreshold,
		[]string{"https://cdn.example.com/rice.jpg"},
		time.Now(),
	)
	suite.Require().NoError(err)
	return p
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	p := suite.createTestProduct(30, 5)

	suite.Require().NoError(suite.repository.Add(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(p.ID()))
	suite.True(loaded.WholesalerID().IsEqual(p.WholesalerID()))
	suite.Equal("Basmati Rice", loaded.Name())
	suite.Equal("Grains", loaded.Category())
	suite.Equal(45.50, loaded.Price())
	suite.Equal(30, loaded.Quantity())
	suite.Equal(5, loaded.MinThreshold())
	suite.Equal([]string{"https://cdn.example.com/rice.jpg"}, loaded.ImageURLs())
	suite.True(loaded.IsActive())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()
	p := suite.createTestProduct(30, 5)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	updated, err := product.RestoreProduct(
		p.ID(), p.WholesalerID(),
		"Basmati Rice Premium", p.Description(), p.Category(), p.Brand(), p.UnitType(),
		52.00, 25, p.MinThreshold(), p.ImageURLs(), true,
		p.CreatedDate(), time.Now(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, updated))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("Basmati Rice Premium", loaded.Name())
	suite.Equal(52.00, loaded.Price())
	suite.Equal(25, loaded.Quantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_ReturnsRemaining() {
	ctx := context.Background()
	p := suite.createTestProduct(10, 2)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	remaining, err := suite.repository.DecrementStock(ctx, p.ID(), 7)
	suite.Require().NoError(err)
	suite.Equal(3, remaining)

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(3, loaded.Quantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_InsufficientStock() {
	ctx := context.Background()
	p := suite.createTestProduct(3, 1)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	_, err := suite.repository.DecrementStock(ctx, p.ID(), 4)
	suite.Require().ErrorIs(err, errs.ErrInsufficientStock)

	// Stock must be untouched after a rejected decrement.
	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(3, loaded.Quantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_UnknownProduct() {
	_, err := suite.repository.DecrementStock(context.Background(), kernel.NewUUID(), 1)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_ConcurrentCheckoutsNeverOversell() {
	ctx := context.Background()
	p := suite.createTestProduct(10, 0)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	const workers = 20
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.repository.DecrementStock(ctx, p.ID(), 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			suite.Require().ErrorIs(err, errs.ErrInsufficientStock)
		}
	}
	suite.Equal(10, succeeded)

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(0, loaded.Quantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetBelowThreshold_StrictInequality() {
	ctx := context.Background()
	wholesalerID := kernel.NewUUID()

	makeProduct := func(name string, quantity, minThreshold int, active bool) {
		p, err := product.RestoreProduct(
			kernel.NewUUID(), wholesalerID,
			name, "", "Grains", "", "kg",
			10.0, quantity, minThreshold, nil, active,
			time.Now(), time.Now(),
		)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, p))
	}

	makeProduct("Below", 2, 5, true)
	makeProduct("AtThreshold", 5, 5, true)
	makeProduct("Above", 8, 5, true)
	makeProduct("BelowButInactive", 1, 5, false)

	low, err := suite.repository.GetBelowThreshold(ctx, wholesalerID)
	suite.Require().NoError(err)
	suite.Require().Len(low, 1)
	suite.Equal("Below", low[0].Name())
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
