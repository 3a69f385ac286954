package session

import (
	"context"
	"sync"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// sessionManager holds the single resident Patient identity. It is
// explicitly constructed and injected; nothing else in the app keeps
// cross-screen mutable state. Writes go through the repository before
// the in-memory slot updates (write-through, not write-back), so a
// caller that returns from SetPatient and navigates is guaranteed the
// next load observes the new value. Two unrelated writers race as
// last-write-wins; there is no merging.
type sessionManager struct {
	Repository   contracts.SessionRepository
	Log          *zap.Logger
	defaultTheme string

	mu      sync.RWMutex
	ready   bool
	patient *models.Patient
	theme   string
}

func NewSessionManager(repository contracts.SessionRepository, defaultTheme string, logger *zap.Logger) contracts.SessionManager {
	if defaultTheme != constvars.ThemeLight && defaultTheme != constvars.ThemeDark {
		defaultTheme = constvars.ThemeLight
	}
	return &sessionManager{
		Repository:   repository,
		Log:          logger,
		defaultTheme: defaultTheme,
		theme:        defaultTheme,
	}
}

// Start loads the persisted session. Whatever happens, the manager ends
// up ready; a load failure means starting without an identity, never a
// manager stuck loading.
func (m *sessionManager) Start(ctx context.Context) {
	patient, _ := m.Repository.LoadPatient(ctx)
	theme, _ := m.Repository.LoadTheme(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.patient = patient
	if theme != "" {
		m.theme = theme
	}
	m.ready = true

	m.Log.Info("session manager ready",
		zap.Bool("has_patient", patient != nil),
		zap.String("theme", m.theme),
	)
}

func (m *sessionManager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

func (m *sessionManager) Patient() *models.Patient {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.patient == nil {
		return nil
	}
	copied := *m.patient
	return &copied
}

// SetPatient replaces the resident identity, nil clears it. The durable
// write must succeed before the in-memory slot changes; on a storage
// failure the previous identity stays in force and the failure is only
// logged, since losing session persistence must never block the patient.
func (m *sessionManager) SetPatient(ctx context.Context, patient *models.Patient) {
	if err := m.Repository.SavePatient(ctx, patient); err != nil {
		m.Log.Error("failed to persist patient, keeping previous in-memory identity",
			zap.Error(err),
		)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.patient = patient
}

func (m *sessionManager) ClearPatient(ctx context.Context) {
	m.SetPatient(ctx, nil)
}

func (m *sessionManager) Theme() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

func (m *sessionManager) SetTheme(ctx context.Context, theme string) {
	if theme != constvars.ThemeLight && theme != constvars.ThemeDark {
		return
	}
	if err := m.Repository.SaveTheme(ctx, theme); err != nil {
		m.Log.Error("failed to persist theme, keeping previous value",
			zap.Error(err),
		)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = theme
}
