package session

import (
	"context"
	"errors"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionRepository struct {
	Store contracts.SessionStore
	Log   *zap.Logger
}

func NewSessionRepository(store contracts.SessionStore, logger *zap.Logger) contracts.SessionRepository {
	return &sessionRepository{
		Store: store,
		Log:   logger,
	}
}

func (r *sessionRepository) LoadPatient(ctx context.Context) (*models.Patient, error) {
	raw, err := r.Store.Get(ctx, constvars.StorageKeyPatient)
	if err != nil {
		if !errors.Is(err, contracts.ErrKeyNotFound) {
			r.Log.Warn("failed to load persisted patient, starting without one",
				zap.Error(err),
			)
		}
		return nil, nil
	}

	patient := new(models.Patient)
	if err := json.Unmarshal([]byte(raw), patient); err != nil {
		// Not fatal: an unreadable session means the patient scans or
		// registers again.
		r.Log.Warn("persisted patient blob is not valid JSON, starting without one",
			zap.Error(err),
		)
		return nil, nil
	}
	return patient, nil
}

func (r *sessionRepository) SavePatient(ctx context.Context, patient *models.Patient) error {
	if patient == nil {
		return r.Store.Delete(ctx, constvars.StorageKeyPatient)
	}

	raw, err := json.Marshal(patient)
	if err != nil {
		return err
	}
	return r.Store.Set(ctx, constvars.StorageKeyPatient, string(raw))
}

func (r *sessionRepository) LoadTheme(ctx context.Context) (string, error) {
	theme, err := r.Store.Get(ctx, constvars.StorageKeyTheme)
	if err != nil {
		if !errors.Is(err, contracts.ErrKeyNotFound) {
			r.Log.Warn("failed to load persisted theme, using default",
				zap.Error(err),
			)
		}
		return "", nil
	}
	if theme != constvars.ThemeLight && theme != constvars.ThemeDark {
		return "", nil
	}
	return theme, nil
}

func (r *sessionRepository) SaveTheme(ctx context.Context, theme string) error {
	return r.Store.Set(ctx, constvars.StorageKeyTheme, theme)
}
