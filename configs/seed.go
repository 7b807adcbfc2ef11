package configs

import (
	"lemonapi/entity"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first staff account from env, once.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.WithField("email", cfg.AdminEmail).Info("admin already exists")
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Username: "admin",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		IsStaff:  true,
	}
	return db.Create(&admin).Error
}

// SeedGroups ensures the two role groups exist.
func SeedGroups() error {
	db := DB()
	for _, name := range []string{"Manager", "Delivery crew"} {
		if err := db.FirstOrCreate(&entity.Group{}, entity.Group{Name: name}).Error; err != nil {
			return err
		}
	}
	log.Info("role groups seeded")
	return nil
}
