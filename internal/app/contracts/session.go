package contracts

import (
	"context"
	"errors"
	"pacientes-service/internal/app/models"
)

// ErrKeyNotFound marks absence in a SessionStore. Deserialization
// failures upstream are folded into the same signal.
var ErrKeyNotFound = errors.New("key not found")

// SessionStore is the durable key-value storage under the session layer.
// Values are opaque serialized text; exactly two logical keys exist.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// SessionRepository serializes the session entities over a SessionStore.
type SessionRepository interface {
	// LoadPatient returns nil, nil when nothing is stored or the stored
	// blob cannot be deserialized; loss of the persisted session must
	// never crash the app.
	LoadPatient(ctx context.Context) (*models.Patient, error)
	// SavePatient persists the identity; nil removes the stored key.
	SavePatient(ctx context.Context, patient *models.Patient) error
	LoadTheme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, theme string) error
}

// SessionManager owns the single resident Patient identity. Every
// mutation is written through the repository before the in-memory slot
// updates, so a caller that returns from SetPatient and navigates is
// guaranteed the next load observes the new value.
type SessionManager interface {
	// Start performs the initial load. Failures still leave the manager
	// ready with no identity; it never hangs waiting on storage.
	Start(ctx context.Context)
	Ready() bool
	Patient() *models.Patient
	SetPatient(ctx context.Context, patient *models.Patient)
	ClearPatient(ctx context.Context)
	Theme() string
	SetTheme(ctx context.Context, theme string)
}
