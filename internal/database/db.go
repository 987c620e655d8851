package database

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/austintylerallen/civicstack/internal/models"
)

var DB *gorm.DB

func Init(dsn, adminEmail, adminPassword string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Info().Int("attempt", i).Int("max", maxAttempts).Msg("connecting to database")

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Info().Msg("connected to database")
			break
		}

		log.Warn().Err(err).Msg("database connection failed, retrying")
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatal().Err(err).Int("attempts", maxAttempts).Msg("could not connect to database")
	}

	if err := Migrate(DB); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	createDefaultAdmin(adminEmail, adminPassword)
	seedDefaultStaff()
}

// Migrate applies the schema. Exposed separately so tests can run it against
// their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Issue{},
		&models.IssueComment{},
		&models.WorkOrder{},
		&models.FormRequest{},
		&models.ApprovalEntry{},
		&models.Announcement{},
		&models.DevelopmentProject{},
		&models.DepartmentReview{},
		&models.ProjectComment{},
		&models.Job{},
		&models.Application{},
		&models.RecruitmentRequest{},
		&models.Notification{},
		&models.AuditLog{},
		&models.Setting{},
	)
}

// admin comes from config only, never from a registration form
func createDefaultAdmin(email, password string) {
	if email == "" {
		email = "admin@civicstack.gov"
	}
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Warn().Err(err).Msg("failed to check for admin user")
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Warn().Err(err).Msg("failed to hash default admin password")
		return
	}

	admin := models.User{
		Email:        email,
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Warn().Err(err).Msg("failed to create default admin")
		return
	}

	log.Info().Str("email", email).Msg("created default admin user")
}

// a demo staff account so the portal is usable right after first boot
func seedDefaultStaff() {
	type seedUser struct {
		Email    string
		Name     string
		Password string
	}

	users := []seedUser{
		{Email: "staff@civicstack.gov", Name: "Staff Member", Password: "Staff123!"},
	}

	for _, u := range users {
		var count int64
		if err := DB.Model(&models.User{}).
			Where("email = ?", u.Email).
			Count(&count).Error; err != nil {
			log.Warn().Err(err).Str("email", u.Email).Msg("failed to check seed user")
			continue
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Warn().Err(err).Str("email", u.Email).Msg("failed to hash seed password")
			continue
		}

		user := models.User{
			Email:        u.Email,
			Name:         u.Name,
			PasswordHash: string(hash),
			Role:         models.RoleStaff,
		}

		if err := DB.Create(&user).Error; err != nil {
			log.Warn().Err(err).Str("email", u.Email).Msg("failed to create seed user")
			continue
		}

		log.Info().Str("email", u.Email).Str("role", string(models.RoleStaff)).Msg("created seed user")
	}
}
