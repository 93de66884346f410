package models

// User is the backend user record. ID is assigned by the service; Username
// is the lookup key until the ID is known.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

// Credentials is the request body of both create and update calls.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserDraft is the registration form input. It lives only on the client and
// is discarded after a submission attempt.
type UserDraft struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// Credentials returns the part of the draft that is sent to the backend.
func (d UserDraft) Credentials() Credentials {
	return Credentials{Username: d.Username, Password: d.Password}
}

// Validate applies the single local check: the confirmation must match.
func (d UserDraft) Validate() Validation {
	if d.Password != d.ConfirmPassword {
		return ValidationMismatch
	}
	return ValidationValid
}
