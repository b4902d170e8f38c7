package models

import "time"

// User holds the member account. Passwords are stored and compared as plain
// text, matching the current mobile app login contract.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;index" json:"username"`
	Email    string `gorm:"unique;index" json:"email"`
	Password string `json:"-"`

	TubaraoID *string    `json:"tubarao_id"`
	FullName  *string    `json:"full_name"`
	CPF       *string    `json:"cpf"`
	BirthDate *time.Time `json:"birth_date"`
	Gender    *string    `json:"gender"`
	Phone     *string    `json:"phone"`
}
