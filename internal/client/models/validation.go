package models

// Validation is the outcome of the registration form check.
type Validation int

const (
	ValidationValid Validation = iota
	ValidationMismatch
)

func (v Validation) String() string {
	switch v {
	case ValidationValid:
		return "valid"
	case ValidationMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Message is the text shown next to the form, empty when valid.
func (v Validation) Message() string {
	if v == ValidationMismatch {
		return "Passwords do not match"
	}
	return ""
}
