package responses

import "pacientes-service/internal/app/models"

// CheckPatient is the backend envelope for the existence lookup.
type CheckPatient struct {
	Success bool            `json:"success"`
	Exists  bool            `json:"exists"`
	Updated bool            `json:"updated,omitempty"`
	Patient *models.Patient `json:"patient,omitempty"`
	Message string          `json:"message,omitempty"`
}

// PatientEnvelope wraps the single-patient responses of the backend
// (registration and profile update).
type PatientEnvelope struct {
	Success bool            `json:"success"`
	Patient *models.Patient `json:"patient,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Verification outcomes the bridge reports back to the UI shell.
const (
	VerifyOutcomeLogin    = "login"
	VerifyOutcomeRegister = "register"
)

// VerifyScan tells the shell where to route the user after a scan:
// Outcome login carries the authoritative backend record, outcome
// register carries the scanned fragment for form prefill.
type VerifyScan struct {
	Outcome string           `json:"outcome"`
	Patient *models.Patient  `json:"patient,omitempty"`
	Prefill *RegisterPrefill `json:"prefill,omitempty"`
	Updated bool             `json:"updated,omitempty"`
}

// RegisterPrefill is the scanned fragment shaped for the registration
// form, birth date already in ISO form.
type RegisterPrefill struct {
	DNI         string `json:"dni"`
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido"`
	Sexo        string `json:"sexo"`
	FecNac      string `json:"fecnac"`
	FromDNIScan bool   `json:"fromDniScan"`
}

// Session is the bridge view of the resident identity.
type Session struct {
	Ready   bool            `json:"ready"`
	Patient *models.Patient `json:"patient,omitempty"`
	Theme   string          `json:"theme"`
}
