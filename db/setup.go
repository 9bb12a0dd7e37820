package db

import (
	"database/sql"
	"errors"

	"github.com/foodshare-dev/foodshare/internal/models"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// uniqueViolation is the Postgres error code for unique_violation.
const uniqueViolation = "23505"

// ConnectDatabase opens the connection through lib/pq so that constraint
// violations surface as *pq.Error and can be mapped by IsUniqueViolation.
func ConnectDatabase(dsn string) error {
	sqlDB, err := sql.Open("postgres", dsn)

	if err != nil {
		return err
	}

	DB, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Favorite{},
		&models.ShoppingCartEntry{},
		&models.Subscription{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation, e.g. a concurrent duplicate insert of a join row.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}

	return false
}
