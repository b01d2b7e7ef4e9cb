package models

import "time"

// User is the row shape of the users table.
type User struct {
	UserID                 string     `db:"user_id"`
	Username               string     `db:"username"`
	Name                   string     `db:"name"`
	Email                  string     `db:"email"`
	PasswordHash           string     `db:"password_hash"`
	AuthProvider           string     `db:"auth_provider"`
	RefreshTokenHash       string     `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
