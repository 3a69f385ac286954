package records

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

type fakeRecordsClient struct {
	prescriptions []models.Prescription
	studies       []models.Prescription
	certificates  []models.Prescription
	err           error
}

func (f *fakeRecordsClient) PrescriptionsByDNI(ctx context.Context, dni string) ([]models.Prescription, error) {
	return f.prescriptions, f.err
}

func (f *fakeRecordsClient) StudiesByDNI(ctx context.Context, dni string) ([]models.Prescription, error) {
	return f.studies, f.err
}

func (f *fakeRecordsClient) CertificatesByDNI(ctx context.Context, dni string) ([]models.Prescription, error) {
	return f.certificates, f.err
}

func TestRecordsUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("passes documents through per kind", func(t *testing.T) {
		client := &fakeRecordsClient{
			prescriptions: []models.Prescription{{ID: "rx-1"}},
			studies:       []models.Prescription{{ID: "st-1"}, {ID: "st-2"}},
			certificates:  []models.Prescription{{ID: "ct-1"}},
		}
		usecase := NewRecordsUsecase(client, zap.NewNop())

		prescriptions, err := usecase.Prescriptions(ctx, "30123456")
		require.NoError(t, err)
		assert.Len(t, prescriptions, 1)

		studies, err := usecase.Studies(ctx, "30123456")
		require.NoError(t, err)
		assert.Len(t, studies, 2)

		certificates, err := usecase.Certificates(ctx, "30123456")
		require.NoError(t, err)
		assert.Len(t, certificates, 1)
	})

	t.Run("nil backend result renders as empty list", func(t *testing.T) {
		usecase := NewRecordsUsecase(&fakeRecordsClient{}, zap.NewNop())

		prescriptions, err := usecase.Prescriptions(ctx, "30123456")
		require.NoError(t, err)
		assert.NotNil(t, prescriptions)
		assert.Empty(t, prescriptions)
	})

	t.Run("backend failures pass through untouched", func(t *testing.T) {
		client := &fakeRecordsClient{
			err: exceptions.ErrBackendStatus(constvars.StatusInternalServerError, "", constvars.ResourcePrescriptions),
		}
		usecase := NewRecordsUsecase(client, zap.NewNop())

		_, err := usecase.Prescriptions(ctx, "30123456")
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindServer))
	})
}
