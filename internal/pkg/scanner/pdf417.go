// Package scanner extracts the identity fragment encoded in the PDF417
// barcode printed on the Argentine DNI. The machine-readable block is a
// single @-delimited string with a fixed positional layout.
package scanner

import (
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/exceptions"
	"regexp"
	"strings"
)

// Positional layout of the @-delimited payload.
const (
	fieldNumeroTramite = 0
	fieldApellido      = 1
	fieldNombre        = 2
	fieldSexo          = 3
	fieldDNI           = 4
	fieldFecNac        = 6
)

var (
	dniRegex      = regexp.MustCompile(constvars.RegexDNI)
	looseDNIRegex = regexp.MustCompile(constvars.RegexLooseDNI)
)

// ParsePDF417 parses a scanned payload into a DNIScanData fragment.
// A payload with the full field count yields every positional field; a
// payload that fails positional extraction but still contains a bare
// 7-8 digit number yields a fragment with only the DNI populated. Anything
// else fails with a scan-parse error and never reaches the backend.
func ParsePDF417(payload string) (*models.DNIScanData, error) {
	if strings.Contains(payload, "@") {
		parts := strings.Split(payload, "@")
		if len(parts) >= constvars.DNIPayloadMinFields {
			data := &models.DNIScanData{
				NumeroTramite: strings.TrimSpace(parts[fieldNumeroTramite]),
				Apellido:      strings.TrimSpace(parts[fieldApellido]),
				Nombre:        strings.TrimSpace(parts[fieldNombre]),
				Sexo:          strings.TrimSpace(parts[fieldSexo]),
				DNI:           strings.TrimSpace(parts[fieldDNI]),
				FecNac:        strings.TrimSpace(parts[fieldFecNac]),
			}
			if dniRegex.MatchString(data.DNI) {
				return data, nil
			}
		}
	}

	// Some readers deliver a truncated or reordered payload; a bare
	// document number is still enough to attempt the backend lookup.
	if match := looseDNIRegex.FindString(payload); match != "" {
		return &models.DNIScanData{DNI: match}, nil
	}

	if strings.Contains(payload, "@") {
		return nil, exceptions.ErrScanTooFewFields(constvars.DNIPayloadMinFields)
	}
	return nil, exceptions.ErrScanNoDNI()
}
