package models

// Patient is the locally cached record of the patient using the device.
// At most one Patient is resident in the session at any time; setting a
// new one fully replaces the previous, never merges.
type Patient struct {
	ID           string   `json:"id,omitempty"`
	DNI          string   `json:"dni"`
	Nombre       string   `json:"nombre"`
	Apellido     string   `json:"apellido"`
	Sexo         string   `json:"sexo,omitempty"`
	FecNac       string   `json:"fecnac,omitempty"`
	Email        string   `json:"email,omitempty"`
	Telefono     string   `json:"telefono,omitempty"`
	Calle        string   `json:"calle,omitempty"`
	Numero       string   `json:"numero,omitempty"`
	Piso         string   `json:"piso,omitempty"`
	Departamento string   `json:"departamento,omitempty"`
	Ciudad       string   `json:"ciudad,omitempty"`
	Provincia    string   `json:"provincia,omitempty"`
	CPostal      string   `json:"cpostal,omitempty"`
	Peso         *float64 `json:"peso,omitempty"`
	Talla        *float64 `json:"talla,omitempty"`
	IDObraSocial string   `json:"idobrasocial,omitempty"`
	NroAfiliado  string   `json:"nroafiliado,omitempty"`
}
