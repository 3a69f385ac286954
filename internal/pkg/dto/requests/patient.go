package requests

// RegisterPatient mirrors the registration form. The first five fields
// come prefilled from the scan when the journey started at the scanner.
type RegisterPatient struct {
	DNI          string   `json:"dni" validate:"required,dni"`
	Nombre       string   `json:"nombre" validate:"required"`
	Apellido     string   `json:"apellido" validate:"required"`
	Sexo         string   `json:"sexo" validate:"required,oneof=M F X"`
	FecNac       string   `json:"fecnac" validate:"required,iso_date"`
	Email        string   `json:"email,omitempty" validate:"omitempty,email"`
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

// UpdatePatient carries only the editable profile fields; empty values
// are dropped before the request goes out so the backend never blanks a
// stored field by accident.
type UpdatePatient struct {
	Email        string   `json:"email,omitempty" validate:"omitempty,email"`
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
