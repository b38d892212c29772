// Package pgtest starts a disposable PostgreSQL for integration suites and
// seeds the read-only catalog and customer tables.
package pgtest

import (
	"context"
	"time"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/catalogrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Start runs a postgres:15-alpine container, connects GORM to it and migrates
// the schema. The caller terminates the container.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
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
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return container, nil, err
	}

	if err = postgres_adapter.Migrate(db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every table between tests.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE order_line_items, orders, products, customers CASCADE").Error
}

// SeedProduct inserts a catalog product and returns it as the domain sees it.
func SeedProduct(db *gorm.DB, number, price string) (catalog.Product, error) {
	unitPrice, err := kernel.MoneyFromString(price)
	if err != nil {
		return catalog.Product{}, err
	}

	product, err := catalog.NewProduct(kernel.NewUUID(), number, unitPrice)
	if err != nil {
		return catalog.Product{}, err
	}

	dto := catalogrepo.ProductDTO{
		ID:            product.ID().Bytes(),
		ProductNumber: product.Number(),
		UnitPrice:     unitPrice.Decimal(),
	}
	if err = db.Create(&dto).Error; err != nil {
		return catalog.Product{}, err
	}

	return product, nil
}

// SeedCustomer inserts a customer record and returns its id.
func SeedCustomer(db *gorm.DB, firstName, lastName, email string) (kernel.UUID, error) {
	id := kernel.NewUUID()
	dto := orderrepo.CustomerDTO{
		ID:        id.Bytes(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
	if err := db.Create(&dto).Error; err != nil {
		return kernel.UUID{}, err
	}
	return id, nil
}
