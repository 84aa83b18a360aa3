package configs

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/utils"
)

// SeedAdmin creates the administrator account once. Role escalation has
// no API path; this out-of-band seed is the only way ADMIN comes to exist.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		slog.Info("skip admin seed: ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("admin already exists", "email", cfg.AdminEmail)
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "Admin",
		Email:    cfg.AdminEmail,
		Password: hash,
		Role:     entity.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	slog.Info("admin created", "email", cfg.AdminEmail)
	return nil
}
