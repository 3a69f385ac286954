package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Session messages
	GetSessionSuccessMessage   = "get session successfully"
	ClearSessionSuccessMessage = "session cleared successfully"
	SetThemeSuccessMessage     = "theme preference saved successfully"

	// Identity messages
	VerifyScanSuccessMessage      = "scan verified successfully"
	RegisterPatientSuccessMessage = "patient registered successfully"
	UpdatePatientSuccessMessage   = "patient updated successfully"

	// Records messages
	GetPrescriptionsSuccessMessage = "get prescriptions successfully"
	GetStudiesSuccessMessage       = "get studies successfully"
	GetCertificatesSuccessMessage  = "get certificates successfully"

	// Lookup messages
	GetObrasSocialesSuccessMessage  = "get obras sociales successfully"
	SearchMedicationsSuccessMessage = "search medications successfully"
)
