package mock

import (
	"context"
	"testing"

	"moodquote/models"
)

func TestNewSeedsWelcomeMessage(t *testing.T) {
	ctx := context.Background()
	db, err := New(ctx)
	if err != nil {
		t.Fatalf("mock database initialization failed: %v", err)
	}

	var messages []models.ContactMessage
	if err := db.WithContext(ctx).Find(&messages).Error; err != nil {
		t.Fatalf("query contact messages: %v", err)
	}
	if len(messages) == 0 {
		t.Fatal("expected seeded contact message")
	}
	if messages[0].Reference == "" {
		t.Fatal("expected seeded message to carry a reference")
	}
}

func TestNewIsIdempotent(t *testing.T) {
	ctx := context.Background()
	first, err := New(ctx)
	if err != nil {
		t.Fatalf("first New() error = %v", err)
	}
	if _, err := New(ctx); err != nil {
		t.Fatalf("second New() error = %v", err)
	}

	var count int64
	if err := first.WithContext(ctx).Model(&models.ContactMessage{}).Count(&count).Error; err != nil {
		t.Fatalf("count messages: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single seeded message, got %d", count)
	}
}
