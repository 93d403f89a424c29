package models

import "time"

// Roles a user account can hold. Admin accounts are never created through
// signup; use cmd/seed-admin.
const (
	RoleWriter   = "writer"
	RoleVocalist = "vocalist"
	RoleBlogger  = "blogger"
	RoleAdmin    = "admin"
	RoleSubAdmin = "sub-admin"
)

type User struct {
	ID           int        `gorm:"primaryKey;column:id" json:"id"`
	Email        string     `gorm:"column:email;unique" json:"email"`
	Name         string     `gorm:"column:name" json:"name"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	Role         string     `gorm:"column:role" json:"role"`
	Country      string     `gorm:"column:country" json:"country"`
	City         string     `gorm:"column:city" json:"city"`
	IsRegistered bool       `gorm:"column:is_registered" json:"is_registered"`
	OTP          *string    `gorm:"column:otp" json:"-"`
	OTPExpiry    *time.Time `gorm:"column:otp_expiry" json:"-"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// SignupRole reports whether a role may be chosen at signup.
func SignupRole(role string) bool {
	switch role {
	case RoleWriter, RoleVocalist, RoleBlogger:
		return true
	}
	return false
}
