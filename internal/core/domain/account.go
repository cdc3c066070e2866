package domain

// Account is a registered user credential record.
// PasswordHash is never serialized into any response.
type Account struct {
	ID           string `json:"id,omitempty"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
}

// Public returns the externally visible projection of the account.
// The hash and store identifier never leave the service layer.
func (a Account) Public() AccountPublic {
	return AccountPublic{Email: a.Email, Phone: a.Phone}
}

// AccountPublic is the {email, phone} projection exposed by login,
// registration and the admin account listing.
type AccountPublic struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}
