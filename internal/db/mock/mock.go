package mock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "moodquote/internal/log"
	"moodquote/models"
)

// DSN names the shared in-memory sqlite database backing the mock inbox.
const DSN = "file:moodquote-mock?mode=memory&cache=shared"

// New returns an in-memory sqlite inbox seeded with a welcome message.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open(DSN), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.ContactMessage{}); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.ContactMessage{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		applog.Debug(ctx, "mock database already seeded", "messages", count)
		return nil
	}

	welcome := models.ContactMessage{
		Reference:  uuid.NewString(),
		Name:       "Mood Quote",
		Email:      "hello@moodquote.local",
		Message:    "Welcome to the inbox. New contact form submissions will show up here.",
		ReceivedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(&welcome).Error; err != nil {
		return err
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
