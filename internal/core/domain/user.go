package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether r is one of the recognised role claims.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// AuthUser is the credential row of the internal identity provider. It is
// never exposed over HTTP directly; Account endpoints return the Profile.
type AuthUser struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the directory row shown by the Account endpoints. It shares its
// primary key with the AuthUser it belongs to and is created in the same
// transaction, so an account can never exist half-made.
type Profile struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	Username  *string   `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
