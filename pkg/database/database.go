package database

import (
	"assessment_backend/internal/config"
	"assessment_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Survey{},
		&model.Section{},
		&model.Question{},
		&model.Option{},
		&model.TestSession{},
		&model.TestAnswer{},
		&model.TestResult{},
		&model.Certificate{},
		&model.SystemSetting{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedDefaults(db)

	return db, nil
}

// seedDefaults inserts the baseline roles and settings on an empty database.
func seedDefaults(db *gorm.DB) {
	var roleCount int64
	db.Model(&model.Role{}).Count(&roleCount)
	if roleCount == 0 {
		defaultRoles := []model.Role{
			{Name: "Admin", Description: "Platform administrator", Level: 1, IsActive: true,
				MenuAccess: model.StringList{"dashboard", "users", "roles", "surveys", "questions", "tests", "certificates", "settings"}},
			{Name: "Zonal Manager", Description: "Zone-level oversight", Level: 2, IsActive: true,
				MenuAccess: model.StringList{"dashboard", "users", "surveys", "tests", "certificates"}},
			{Name: "Regional Manager", Description: "Region-level oversight", Level: 3, IsActive: true,
				MenuAccess: model.StringList{"dashboard", "surveys", "tests", "certificates"}},
			{Name: "District Coordinator", Description: "District coordination", Level: 4, IsActive: true,
				MenuAccess: model.StringList{"dashboard", "tests", "certificates"}},
			{Name: "Field Officer", Description: "Takes assessments", Level: 5, IsActive: true,
				MenuAccess: model.StringList{"dashboard", "tests"}},
		}
		for _, r := range defaultRoles {
			db.Create(&r)
		}
	}

	var settingCount int64
	db.Model(&model.SystemSetting{}).Count(&settingCount)
	if settingCount == 0 {
		defaultSettings := []model.SystemSetting{
			{Category: "assessment", SettingKey: "default_passing_score", SettingValue: "60",
				Description: "Passing score applied when a survey does not set one", ValueType: "number", IsEditable: true},
			{Category: "assessment", SettingKey: "default_max_attempts", SettingValue: "1",
				Description: "Attempts allowed when a survey does not set a limit", ValueType: "number", IsEditable: true},
			{Category: "certificate", SettingKey: "certificate_validity_months", SettingValue: "24",
				Description: "Default certificate validity; empty means no expiry", ValueType: "number", IsEditable: true},
			{Category: "platform", SettingKey: "platform_name", SettingValue: "eSigma Assessment Platform",
				Description: "Display name shown in the frontend", ValueType: "string", IsEditable: true},
			{Category: "platform", SettingKey: "schema_version", SettingValue: "1",
				Description: "Internal schema marker", ValueType: "number", IsEditable: false},
		}
		for _, s := range defaultSettings {
			db.Create(&s)
		}
	}
}
