// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Name                  string       `json:"name" gorm:"size:255;not null"`
	Email                 string       `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash          string       `json:"-" gorm:"size:255"`
	Role                  UserRole     `json:"role" gorm:"type:varchar(20);default:'User';index"`
	MobileNumber          string       `json:"mobile_number" gorm:"size:50"`
	SignInMethod          SignInMethod `json:"sign_in_method" gorm:"type:varchar(20);default:'email'"`
	IsNotificationEnabled bool         `json:"is_notification_enabled" gorm:"default:true"`
	LastLoginAt           *time.Time   `json:"last_login_at"`

	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
