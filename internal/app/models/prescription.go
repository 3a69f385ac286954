package models

// Prescription covers the three read-only document kinds the backend
// serves under /prescriptions: recetas, estudios and certificados share
// the same envelope and differ only in Tipo.
type Prescription struct {
	ID          string `json:"id"`
	Tipo        string `json:"tipo,omitempty"`
	Fecha       string `json:"fecha"`
	Medico      string `json:"medico,omitempty"`
	Matricula   string `json:"matricula,omitempty"`
	Diagnostico string `json:"diagnostico,omitempty"`
	Detalle     string `json:"detalle,omitempty"`
	Estado      string `json:"estado,omitempty"`
	PDFUrl      string `json:"pdfUrl,omitempty"`
}
