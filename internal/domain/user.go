package domain

// User is an account in the auth collaborator. Not part of the ledger core.
type User struct {
	ID           int32  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CreatedOn    string `json:"created_on"`
}
