package constvars

const (
	RegexDNI          = `^\d{7,8}$`
	RegexLooseDNI     = `\b\d{7,8}\b`
	RegexDateDDMMYYYY = `^\d{2}/\d{2}/\d{4}$`
	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
)
