package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email     string  `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Username  *string `gorm:"size:150;uniqueIndex" json:"username"`
	FirstName string  `gorm:"size:150" json:"first_name"`
	LastName  string  `gorm:"size:150" json:"last_name"`

	Role         Role   `gorm:"size:20;not null;default:'user';check:chk_users_role,role IN ('user','admin')" json:"role"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// Avatar is a storage key, not a URL.
	Avatar *string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) UsernameOrEmpty() string {
	if u.Username == nil {
		return ""
	}
	return *u.Username
}
