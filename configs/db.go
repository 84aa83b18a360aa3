package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
)

// ConnectDB opens the database and applies the schema. TranslateError is
// on so unique-constraint violations surface as gorm.ErrDuplicatedKey and
// repositories can map them to duplicate outcomes instead of 500s.
func ConnectDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.OperatingHours{},
		&entity.Review{},
		&entity.Favorite{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
