package postgres

import (
	"fmt"

	"catering/internal/adapters/out/postgres/cartrepo"
	"catering/internal/adapters/out/postgres/catalogrepo"
	"catering/internal/adapters/out/postgres/eventrepo"
	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/outboxrepo"

	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects through the lib/pq driver, which lets repositories recognise
// unique violations by their SQLSTATE.
func Open(dsn string, opts ...gorm.Option) (*gorm.DB, error) {
	dialector := gormpostgres.New(gormpostgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	})
	if len(opts) == 0 {
		opts = []gorm.Option{&gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}}
	}

	db, err := gorm.Open(dialector, opts...)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// DSN builds a libpq key/value connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

// Models lists every persisted row type in dependency order.
func Models() []any {
	return []any{
		&catalogrepo.ProviderDTO{},
		&catalogrepo.FoodItemDTO{},
		&catalogrepo.MenuDTO{},
		&catalogrepo.ReviewDTO{},
		&eventrepo.EventDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&outboxrepo.MessageDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
