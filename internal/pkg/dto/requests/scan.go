package requests

// VerifyScan carries the raw decoded barcode payload from the scanner.
type VerifyScan struct {
	Payload string `json:"payload" validate:"required"`
}

type SetTheme struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}
