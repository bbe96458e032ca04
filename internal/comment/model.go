package comment

import "time"

// Comment est append-only : pas d'édition ni de suppression individuelle,
// seul le retrait du post parent l'emporte.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	PostID    uint      `json:"post_id" gorm:"index;not null"`
	AccountID uint      `json:"account_id" gorm:"not null"`
	Body      string    `json:"body" gorm:"not null"`
}

func (Comment) TableName() string {
	return "comments"
}
