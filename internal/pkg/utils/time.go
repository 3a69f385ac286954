package utils

import (
	"fmt"
	"strings"
)

// FormatDateToISO converts the DD/MM/YYYY date printed on the document
// into ISO YYYY-MM-DD. Anything that does not split into three parts maps
// to empty, matching the fields the scanner could not read.
func FormatDateToISO(dateString string) string {
	if dateString == "" || dateString == "No disponible" {
		return ""
	}
	parts := strings.Split(dateString, "/")
	if len(parts) != 3 {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", parts[2], parts[1], parts[0])
}
