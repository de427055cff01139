package repository

import (
	"context"

	"github.com/akfoods/pos-api/internal/domain/entity"
)

// SettingsRepository defines the interface for store settings data operations
type SettingsRepository interface {
	GetAll(ctx context.Context) ([]entity.Setting, error)
	Get(ctx context.Context, key string) (*entity.Setting, error)
	// UpsertBatch inserts or updates every given key/value pair
	UpsertBatch(ctx context.Context, settings []entity.Setting) error
}
