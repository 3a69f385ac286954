package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/dto/requests"
	"pacientes-service/internal/pkg/dto/responses"
	"pacientes-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fullPayload = "00123456@PEREZ@JUAN@M@30123456@A@01/01/1985@EXT"

type fakePatientClient struct {
	checkResult *responses.CheckPatient
	checkErr    error
	checkCalls  int
	lastDNI     string
	lastScan    *models.DNIScanData

	registerPatient *models.Patient
	registerErr     error
	lastRegister    *requests.RegisterPatient

	updatePatient *models.Patient
	updateErr     error
	lastUpdateID  string

	// enteredCheck and releaseCheck let a test hold a verification open
	// while a second one is attempted.
	enteredCheck chan struct{}
	releaseCheck chan struct{}
}

func (f *fakePatientClient) CheckByDNI(ctx context.Context, dni string, scanData *models.DNIScanData) (*responses.CheckPatient, error) {
	f.checkCalls++
	f.lastDNI = dni
	f.lastScan = scanData
	if f.enteredCheck != nil {
		close(f.enteredCheck)
		<-f.releaseCheck
	}
	return f.checkResult, f.checkErr
}

func (f *fakePatientClient) Register(ctx context.Context, request *requests.RegisterPatient) (*models.Patient, error) {
	f.lastRegister = request
	return f.registerPatient, f.registerErr
}

func (f *fakePatientClient) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	f.lastUpdateID = patientID
	return f.updatePatient, f.updateErr
}

type fakeSessionManager struct {
	patient  *models.Patient
	theme    string
	setCalls int
}

func (f *fakeSessionManager) Start(ctx context.Context) {}
func (f *fakeSessionManager) Ready() bool              { return true }
func (f *fakeSessionManager) Patient() *models.Patient { return f.patient }
func (f *fakeSessionManager) SetPatient(ctx context.Context, patient *models.Patient) {
	f.setCalls++
	f.patient = patient
}
func (f *fakeSessionManager) ClearPatient(ctx context.Context)           { f.SetPatient(ctx, nil) }
func (f *fakeSessionManager) Theme() string                              { return f.theme }
func (f *fakeSessionManager) SetTheme(ctx context.Context, theme string) { f.theme = theme }

var _ contracts.PatientBackendClient = (*fakePatientClient)(nil)
var _ contracts.SessionManager = (*fakeSessionManager)(nil)

func newTestUsecase(client *fakePatientClient, session *fakeSessionManager) contracts.IdentityUsecase {
	return NewIdentityUsecase(client, session, zap.NewNop())
}

func TestVerifyScan(t *testing.T) {
	ctx := context.Background()

	t.Run("existing record resolves to login and becomes the session identity", func(t *testing.T) {
		existing := &models.Patient{ID: "77", DNI: "30123456", Nombre: "Juan", Apellido: "Perez"}
		client := &fakePatientClient{
			checkResult: &responses.CheckPatient{Success: true, Exists: true, Updated: true, Patient: existing},
		}
		session := &fakeSessionManager{}

		result, err := newTestUsecase(client, session).VerifyScan(ctx, fullPayload)
		require.NoError(t, err)
		assert.Equal(t, responses.VerifyOutcomeLogin, result.Outcome)
		assert.True(t, result.Updated)
		assert.Nil(t, result.Prefill)
		require.NotNil(t, result.Patient)
		assert.Equal(t, "77", result.Patient.ID)
		assert.Equal(t, existing, session.patient)

		assert.Equal(t, "30123456", client.lastDNI)
		require.NotNil(t, client.lastScan)
		assert.Equal(t, "PEREZ", client.lastScan.Apellido)
	})

	t.Run("unknown document resolves to registration with prefill", func(t *testing.T) {
		client := &fakePatientClient{
			checkResult: &responses.CheckPatient{Success: true, Exists: false},
		}
		session := &fakeSessionManager{}

		result, err := newTestUsecase(client, session).VerifyScan(ctx, fullPayload)
		require.NoError(t, err)
		assert.Equal(t, responses.VerifyOutcomeRegister, result.Outcome)
		assert.Nil(t, result.Patient)
		require.NotNil(t, result.Prefill)
		assert.Equal(t, "30123456", result.Prefill.DNI)
		assert.Equal(t, "JUAN", result.Prefill.Nombre)
		assert.Equal(t, "PEREZ", result.Prefill.Apellido)
		assert.Equal(t, "M", result.Prefill.Sexo)
		assert.Equal(t, "1985-01-01", result.Prefill.FecNac)
		assert.True(t, result.Prefill.FromDNIScan)

		assert.Nil(t, session.patient)
		assert.Zero(t, session.setCalls)
	})

	t.Run("backend failure still routes to registration", func(t *testing.T) {
		client := &fakePatientClient{
			checkErr: exceptions.ErrBackendNoResponse(errors.New("dial tcp: timeout"), constvars.ResourcePatientCheck),
		}
		session := &fakeSessionManager{}

		result, err := newTestUsecase(client, session).VerifyScan(ctx, fullPayload)
		require.NoError(t, err)
		assert.Equal(t, responses.VerifyOutcomeRegister, result.Outcome)
		require.NotNil(t, result.Prefill)
		assert.Equal(t, "30123456", result.Prefill.DNI)
		assert.Zero(t, session.setCalls)
	})

	t.Run("unreadable payload never reaches the backend", func(t *testing.T) {
		client := &fakePatientClient{}
		session := &fakeSessionManager{}

		_, err := newTestUsecase(client, session).VerifyScan(ctx, "sin datos utiles")
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindScanParse))
		assert.Zero(t, client.checkCalls)
	})

	t.Run("second scan while one is resolving is rejected", func(t *testing.T) {
		client := &fakePatientClient{
			checkResult:  &responses.CheckPatient{Success: true, Exists: false},
			enteredCheck: make(chan struct{}),
			releaseCheck: make(chan struct{}),
		}
		session := &fakeSessionManager{}
		usecase := newTestUsecase(client, session)

		firstDone := make(chan error, 1)
		go func() {
			_, err := usecase.VerifyScan(ctx, fullPayload)
			firstDone <- err
		}()

		select {
		case <-client.enteredCheck:
		case <-time.After(time.Second):
			t.Fatal("first verification never reached the backend")
		}

		_, err := usecase.VerifyScan(ctx, fullPayload)
		require.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientScanInProgress, customErr.ClientMessage)

		close(client.releaseCheck)
		require.NoError(t, <-firstDone)
		assert.Equal(t, 1, client.checkCalls)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	validForm := func() *requests.RegisterPatient {
		return &requests.RegisterPatient{
			DNI:      "30123456",
			Nombre:   "Juan",
			Apellido: "Perez",
			Sexo:     constvars.SexMale,
			FecNac:   "1985-01-01",
		}
	}

	t.Run("created record becomes the session identity", func(t *testing.T) {
		created := &models.Patient{ID: "88", DNI: "30123456", Nombre: "Juan", Apellido: "Perez"}
		client := &fakePatientClient{registerPatient: created}
		session := &fakeSessionManager{}

		patient, err := newTestUsecase(client, session).Register(ctx, validForm())
		require.NoError(t, err)
		assert.Equal(t, created, patient)
		assert.Equal(t, created, session.patient)
	})

	t.Run("invalid form never reaches the backend", func(t *testing.T) {
		client := &fakePatientClient{}
		session := &fakeSessionManager{}
		form := validForm()
		form.Sexo = "Z"

		_, err := newTestUsecase(client, session).Register(ctx, form)
		require.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Nil(t, client.lastRegister)
	})

	t.Run("conflict is an implicit login with the submitted data", func(t *testing.T) {
		client := &fakePatientClient{
			registerErr: exceptions.ErrBackendStatus(constvars.StatusConflict, "", constvars.ResourcePatients),
		}
		session := &fakeSessionManager{}

		patient, err := newTestUsecase(client, session).Register(ctx, validForm())
		require.NoError(t, err)
		require.NotNil(t, patient)
		assert.Equal(t, "30123456", patient.DNI)
		assert.Equal(t, "Juan", patient.Nombre)
		assert.Equal(t, patient, session.patient)
	})

	t.Run("other backend failures pass through untouched", func(t *testing.T) {
		client := &fakePatientClient{
			registerErr: exceptions.ErrBackendStatus(constvars.StatusInternalServerError, "", constvars.ResourcePatients),
		}
		session := &fakeSessionManager{}

		_, err := newTestUsecase(client, session).Register(ctx, validForm())
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindServer))
		assert.Zero(t, session.setCalls)
	})

	t.Run("acknowledgement without a record synthesizes one from the form", func(t *testing.T) {
		client := &fakePatientClient{}
		session := &fakeSessionManager{}

		patient, err := newTestUsecase(client, session).Register(ctx, validForm())
		require.NoError(t, err)
		require.NotNil(t, patient)
		assert.Equal(t, "30123456", patient.DNI)
		assert.Equal(t, "1985-01-01", patient.FecNac)
		assert.Equal(t, patient, session.patient)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("backend record replaces the session identity", func(t *testing.T) {
		updated := &models.Patient{ID: "77", DNI: "30123456", Ciudad: "Rosario"}
		client := &fakePatientClient{updatePatient: updated}
		session := &fakeSessionManager{patient: &models.Patient{ID: "77", DNI: "30123456"}}

		patient, err := newTestUsecase(client, session).UpdateProfile(ctx, "77", &requests.UpdatePatient{Ciudad: "Rosario"})
		require.NoError(t, err)
		assert.Equal(t, "77", client.lastUpdateID)
		assert.Equal(t, updated, patient)
		assert.Equal(t, updated, session.patient)
	})

	t.Run("bare acknowledgement folds the form onto the resident record", func(t *testing.T) {
		client := &fakePatientClient{}
		session := &fakeSessionManager{
			patient: &models.Patient{ID: "77", DNI: "30123456", Email: "juan@example.com", Ciudad: "Santa Fe"},
		}

		patient, err := newTestUsecase(client, session).UpdateProfile(ctx, "77", &requests.UpdatePatient{Ciudad: "Rosario"})
		require.NoError(t, err)
		assert.Equal(t, "Rosario", patient.Ciudad)
		assert.Equal(t, "juan@example.com", patient.Email)
		assert.Equal(t, "30123456", patient.DNI)
	})

	t.Run("invalid email never reaches the backend", func(t *testing.T) {
		client := &fakePatientClient{}
		session := &fakeSessionManager{}

		_, err := newTestUsecase(client, session).UpdateProfile(ctx, "77", &requests.UpdatePatient{Email: "not-an-email"})
		require.Error(t, err)
		assert.Empty(t, client.lastUpdateID)
	})
}
