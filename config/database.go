package config

import (
	"fmt"
	model "sportcal/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func InitDB(host string, port string, user string, password string, dbName string) (*gorm.DB, error) {
	// keyword/value form so a password with special characters needs no escaping
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "sportcal.",
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	x := db.Exec(`CREATE SCHEMA IF NOT EXISTS sportcal`)
	if x.Error != nil {
		return nil, x.Error
	}

	err = db.AutoMigrate(
		&model.Sport{},
		&model.Competition{},
		&model.Team{},
		&model.CompetitionSeason{},
		&model.Venue{},
		&model.Event{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
