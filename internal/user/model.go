package user

import "time"

const RoleAdmin = "admin"

// User is an administrator identity linked to a tenant and a gym. Identities
// created by the registration flow are auto-confirmed: no verification step
// blocks login.
type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	TenantID     int       `db:"tenant_id" json:"tenant_id"`
	GymID        int       `db:"gym_id" json:"gym_id"`
	IsConfirmed  bool      `db:"is_confirmed" json:"is_confirmed"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// CreateAdminParams is the create-admin-user operation input: the plaintext
// password is the freshly generated temporary credential and never leaves
// this call except inside the welcome email.
type CreateAdminParams struct {
	Email    string
	Password string
	GymName  string
	GymID    int
	TenantID int
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
