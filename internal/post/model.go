package post

import "time"

type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	AccountID uint      `json:"account_id" gorm:"index;not null"`
	MediaRef  string    `json:"media_ref" gorm:"not null"` // référence opaque renvoyée par le stockage
	Caption   string    `json:"caption"`
}

func (Post) TableName() string {
	return "posts"
}
