package models

// DNIScanData is the fragment extracted from a PDF417 document payload.
// It lives only for the handoff from scanner to verification or
// registration and is never persisted.
type DNIScanData struct {
	NumeroTramite string `json:"numeroTramite,omitempty"`
	Apellido      string `json:"apellido"`
	Nombre        string `json:"nombre"`
	Sexo          string `json:"sexo"`
	DNI           string `json:"dni"`
	FecNac        string `json:"fecnac"`
}
