package database

import (
	"context"

	"github.com/akyairhashvil/contribcheck/internal/models"
)

// SettingsRepository stores UI preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// HistoryRepository stores applied fetch outcomes.
type HistoryRepository interface {
	RecordFetch(ctx context.Context, rec models.FetchRecord) error
	RecentFetches(ctx context.Context, limit int) ([]models.FetchRecord, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	SettingsRepository
	HistoryRepository
}

var _ Repository = (*Database)(nil)
