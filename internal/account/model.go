package account

import "time"

type Account struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // hash bcrypt, jamais exposé
}

func (Account) TableName() string {
	return "accounts"
}
