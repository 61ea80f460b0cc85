package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "flowdesk.com/flowdesk/internal/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Workspace{},
		&model.WorkspaceMember{},
		&model.Board{},
		&model.List{},
		&model.Tag{},
		&model.Task{},
		&model.Comment{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
