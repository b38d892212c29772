package postgres

import (
	"ordering/internal/adapters/out/postgres/catalogrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service reads or writes.
// The products and customers tables are owned by other parts of the system and
// are only created here when missing, for local and test databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.ProductDTO{},
		&orderrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
	)
}
