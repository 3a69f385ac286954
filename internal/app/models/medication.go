package models

type Medication struct {
	ID             int     `json:"id"`
	Nombre         string  `json:"nombre"`
	Laboratorio    string  `json:"laboratorio,omitempty"`
	Presentacion   string  `json:"presentacion,omitempty"`
	Precio         float64 `json:"precio,omitempty"`
	RequiereReceta bool    `json:"requiereReceta"`
}
