package models

type Role string

const (
	RoleAdmin Role = "ADMIN"
)

// AdminAccount is the single back-office login, configured from the environment.
type AdminAccount struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // never expose
	Role         Role   `json:"role"`
}
