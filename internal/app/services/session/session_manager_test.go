package session

import (
	"context"
	"testing"

	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T, store *fakeStore) *sessionManager {
	t.Helper()
	repo := NewSessionRepository(store, zap.NewNop())
	return NewSessionManager(repo, constvars.ThemeLight, zap.NewNop()).(*sessionManager)
}

func TestSessionManagerStart(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Store", func(t *testing.T) {
		manager := newTestManager(t, newFakeStore())
		assert.False(t, manager.Ready())

		manager.Start(ctx)

		assert.True(t, manager.Ready())
		assert.Nil(t, manager.Patient())
		assert.Equal(t, constvars.ThemeLight, manager.Theme())
	})

	t.Run("Restores Persisted Patient", func(t *testing.T) {
		store := newFakeStore()
		store.put(constvars.StorageKeyPatient, `{"dni":"30123456","nombre":"JUAN","apellido":"PEREZ"}`)
		store.put(constvars.StorageKeyTheme, "dark")
		manager := newTestManager(t, store)

		manager.Start(ctx)

		patient := manager.Patient()
		require.NotNil(t, patient)
		assert.Equal(t, "30123456", patient.DNI)
		assert.Equal(t, "JUAN", patient.Nombre)
		assert.Equal(t, constvars.ThemeDark, manager.Theme())
	})

	t.Run("Load Failure Still Reaches Ready", func(t *testing.T) {
		store := newFakeStore()
		store.failGet = true
		manager := newTestManager(t, store)

		manager.Start(ctx)

		assert.True(t, manager.Ready(), "a broken store must not leave the manager stuck loading")
		assert.Nil(t, manager.Patient())
	})

	t.Run("Corrupt Patient Blob Treated As Absent", func(t *testing.T) {
		store := newFakeStore()
		store.put(constvars.StorageKeyPatient, "{not json")
		manager := newTestManager(t, store)

		manager.Start(ctx)

		assert.True(t, manager.Ready())
		assert.Nil(t, manager.Patient())
	})
}

func TestSessionManagerSetPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("Write Through Then Load", func(t *testing.T) {
		store := newFakeStore()
		manager := newTestManager(t, store)
		manager.Start(ctx)

		manager.SetPatient(ctx, &models.Patient{DNI: "30123456", Nombre: "JUAN", Apellido: "PEREZ"})

		raw, ok := store.raw(constvars.StorageKeyPatient)
		require.True(t, ok, "durable write must complete before SetPatient returns")
		assert.Contains(t, raw, "30123456")

		// A second manager over the same store simulates an app restart.
		restarted := newTestManager(t, store)
		restarted.Start(ctx)
		patient := restarted.Patient()
		require.NotNil(t, patient)
		assert.Equal(t, "30123456", patient.DNI)
		assert.Equal(t, "JUAN", patient.Nombre)
		assert.Equal(t, "PEREZ", patient.Apellido)
	})

	t.Run("Replaces Never Merges", func(t *testing.T) {
		store := newFakeStore()
		manager := newTestManager(t, store)
		manager.Start(ctx)

		manager.SetPatient(ctx, &models.Patient{DNI: "30123456", Email: "juan@example.com"})
		manager.SetPatient(ctx, &models.Patient{DNI: "40123456"})

		patient := manager.Patient()
		require.NotNil(t, patient)
		assert.Equal(t, "40123456", patient.DNI)
		assert.Empty(t, patient.Email, "the new identity fully replaces the previous one")
	})

	t.Run("Idempotent", func(t *testing.T) {
		store := newFakeStore()
		manager := newTestManager(t, store)
		manager.Start(ctx)

		identity := &models.Patient{DNI: "30123456", Nombre: "JUAN"}
		manager.SetPatient(ctx, identity)
		first, _ := store.raw(constvars.StorageKeyPatient)
		manager.SetPatient(ctx, identity)
		second, _ := store.raw(constvars.StorageKeyPatient)

		assert.Equal(t, first, second)
		assert.Equal(t, "30123456", manager.Patient().DNI)
	})

	t.Run("Nil Clears Store", func(t *testing.T) {
		store := newFakeStore()
		manager := newTestManager(t, store)
		manager.Start(ctx)

		manager.SetPatient(ctx, &models.Patient{DNI: "30123456"})
		manager.SetPatient(ctx, nil)

		_, ok := store.raw(constvars.StorageKeyPatient)
		assert.False(t, ok, "clearing must remove the stored key entirely")
		assert.Nil(t, manager.Patient())
	})

	t.Run("ClearPatient Alias", func(t *testing.T) {
		store := newFakeStore()
		manager := newTestManager(t, store)
		manager.Start(ctx)

		manager.SetPatient(ctx, &models.Patient{DNI: "30123456"})
		manager.ClearPatient(ctx)

		assert.Nil(t, manager.Patient())
		assert.Equal(t, 1, store.deleteCalls)
	})

	t.Run("Storage Failure Keeps Previous Identity", func(t *testing.T) {
		store := newFakeStore()
		manager := newTestManager(t, store)
		manager.Start(ctx)
		manager.SetPatient(ctx, &models.Patient{DNI: "30123456"})

		store.failSet = true
		manager.SetPatient(ctx, &models.Patient{DNI: "40123456"})

		patient := manager.Patient()
		require.NotNil(t, patient)
		assert.Equal(t, "30123456", patient.DNI, "memory must not run ahead of a failed durable write")
	})

	t.Run("Returned Patient Is A Copy", func(t *testing.T) {
		store := newFakeStore()
		manager := newTestManager(t, store)
		manager.Start(ctx)
		manager.SetPatient(ctx, &models.Patient{DNI: "30123456", Nombre: "JUAN"})

		patient := manager.Patient()
		patient.Nombre = "MUTATED"

		assert.Equal(t, "JUAN", manager.Patient().Nombre)
	})
}

func TestSessionManagerTheme(t *testing.T) {
	ctx := context.Background()

	t.Run("Set And Restore", func(t *testing.T) {
		store := newFakeStore()
		manager := newTestManager(t, store)
		manager.Start(ctx)

		manager.SetTheme(ctx, constvars.ThemeDark)

		restarted := newTestManager(t, store)
		restarted.Start(ctx)
		assert.Equal(t, constvars.ThemeDark, restarted.Theme())
	})

	t.Run("Invalid Value Ignored", func(t *testing.T) {
		store := newFakeStore()
		manager := newTestManager(t, store)
		manager.Start(ctx)

		manager.SetTheme(ctx, "sepia")

		assert.Equal(t, constvars.ThemeLight, manager.Theme())
		_, ok := store.raw(constvars.StorageKeyTheme)
		assert.False(t, ok)
	})

	t.Run("Storage Failure Keeps Previous Value", func(t *testing.T) {
		store := newFakeStore()
		manager := newTestManager(t, store)
		manager.Start(ctx)
		manager.SetTheme(ctx, constvars.ThemeDark)

		store.failSet = true
		manager.SetTheme(ctx, constvars.ThemeLight)

		assert.Equal(t, constvars.ThemeDark, manager.Theme())
	})
}
