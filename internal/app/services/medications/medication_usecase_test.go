package medications

import (
	"context"
	"testing"

	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMedicationClient struct {
	results []models.Medication
	err     error
	calls   int
	lastQ   string
}

func (f *fakeMedicationClient) Search(ctx context.Context, query string) ([]models.Medication, error) {
	f.calls++
	f.lastQ = query
	return f.results, f.err
}

func TestMedicationSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards trimmed query and returns results", func(t *testing.T) {
		client := &fakeMedicationClient{
			results: []models.Medication{{ID: 1, Nombre: "Ibuprofeno 600"}},
		}
		usecase := NewMedicationUsecase(client, 10, 10, zap.NewNop())

		results, err := usecase.Search(ctx, "  ibuprofeno  ")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "ibuprofeno", client.lastQ)
	})

	t.Run("blank query short circuits without a backend call", func(t *testing.T) {
		client := &fakeMedicationClient{}
		usecase := NewMedicationUsecase(client, 10, 10, zap.NewNop())

		results, err := usecase.Search(ctx, "   ")
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Zero(t, client.calls)
	})

	t.Run("nil backend result renders as empty list", func(t *testing.T) {
		client := &fakeMedicationClient{}
		usecase := NewMedicationUsecase(client, 10, 10, zap.NewNop())

		results, err := usecase.Search(ctx, "amoxicilina")
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("burst exhaustion throttles further searches", func(t *testing.T) {
		client := &fakeMedicationClient{}
		// One token, refilled too slowly to matter within the test.
		usecase := NewMedicationUsecase(client, 0.001, 1, zap.NewNop())

		_, err := usecase.Search(ctx, "ibuprofeno")
		require.NoError(t, err)

		_, err = usecase.Search(ctx, "ibuprofeno")
		require.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)
		assert.Equal(t, 1, client.calls)
	})
}
