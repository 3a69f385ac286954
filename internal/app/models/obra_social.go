package models

// ObraSocial is an insurance plan reference fetched for selection during
// registration or profile edit. It is read through per invocation and
// never persisted locally.
type ObraSocial struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Sigla  string `json:"sigla,omitempty"`
}
