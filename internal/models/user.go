package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// User roles. Every account carries RoleUser; RoleSeller is added on request
// at registration or by a privileged role update.
const (
	RoleUser   = "USER"
	RoleSeller = "SELLER"
)

type User struct {
	BaseModel
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Surname      string         `json:"surname"`
	CIN          string         `json:"cin"`
	Phone        string         `json:"phone"`
	Roles        pq.StringArray `gorm:"type:text[]" json:"roles"`

	EmailConfirmed       bool       `gorm:"default:false" json:"emailConfirmed"`
	ConfirmationToken    string     `json:"-"`
	ConfirmationTokenExp *time.Time `json:"-"`
	ResetToken           string     `json:"-"`
	ResetTokenExp        *time.Time `json:"-"`

	Plans []Plan `gorm:"foreignKey:UserID" json:"plans,omitempty"`
}

// NormalizeRoles maps the requested role names onto the stored role set.
// RoleUser is always present; RoleSeller is added when requested.
func NormalizeRoles(requested []string) []string {
	roles := []string{RoleUser}
	for _, r := range requested {
		if strings.EqualFold(r, RoleSeller) {
			roles = append(roles, RoleSeller)
			break
		}
	}
	return roles
}

// HasRole reports whether the user's role set contains role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
