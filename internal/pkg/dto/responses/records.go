package responses

import "pacientes-service/internal/app/models"

type Prescriptions struct {
	Success       bool                  `json:"success"`
	Prescriptions []models.Prescription `json:"prescriptions"`
	Message       string                `json:"message,omitempty"`
}

type Studies struct {
	Success bool                  `json:"success"`
	Studies []models.Prescription `json:"studies"`
	Message string                `json:"message,omitempty"`
}

type Certificates struct {
	Success      bool                  `json:"success"`
	Certificates []models.Prescription `json:"certificates"`
	Message      string                `json:"message,omitempty"`
}

type ObrasSociales struct {
	Success       bool                `json:"success"`
	ObrasSociales []models.ObraSocial `json:"obrasSociales"`
	Message       string              `json:"message,omitempty"`
}

type MedicationSearch struct {
	Success bool                `json:"success"`
	Results []models.Medication `json:"results"`
	Count   int                 `json:"count"`
	Message string              `json:"message,omitempty"`
}
