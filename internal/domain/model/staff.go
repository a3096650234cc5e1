package model

// Staff is a console operator allowed to sign in.
type Staff struct {
	ID           int64
	Login        string
	PasswordHash string
}
