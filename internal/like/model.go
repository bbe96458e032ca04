package like

import "time"

// Like matérialise la relation « ce compte aime ce post ».
// Au plus un Like par couple (post, compte) : contrainte unique en base.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	PostID    uint      `json:"post_id" gorm:"uniqueIndex:idx_likes_post_account;not null"`
	AccountID uint      `json:"account_id" gorm:"uniqueIndex:idx_likes_post_account;not null"`
}

type LikeResponse struct {
	PostID    uint  `json:"post_id"`
	LikeCount int64 `json:"like_count"`
	IsLiked   bool  `json:"is_liked"`
}

func (Like) TableName() string {
	return "likes"
}
