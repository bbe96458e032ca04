package like

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ClaraVasseur/InstaLite-Back/internal/database"
	"github.com/ClaraVasseur/InstaLite-Back/internal/post"
)

var ErrPostNotFound = errors.New("post non trouvé")

// Toggle insère d'abord, sans pré-vérification : si la contrainte unique
// refuse l'insertion, c'est que le like existait déjà et on bascule en
// suppression. Deux toggles concurrents du même compte ne peuvent donc
// jamais créer de doublon.
func Toggle(postID, accountID uint) (bool, error) {
	exists, err := post.Exists(postID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrPostNotFound
	}

	newLike := Like{
		PostID:    postID,
		AccountID: accountID,
	}
	err = database.DB.Create(&newLike).Error
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, err
	}

	// Déjà liké : branche unlike
	err = database.DB.Where("post_id = ? AND account_id = ?", postID, accountID).
		Delete(&Like{}).Error
	if err != nil {
		return false, err
	}
	return false, nil
}

func CountForPost(postID uint) (int64, error) {
	var count int64
	err := database.DB.Model(&Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func IsLikedBy(postID, accountID uint) (bool, error) {
	if accountID == 0 {
		return false, nil
	}
	var count int64
	err := database.DB.Model(&Like{}).
		Where("post_id = ? AND account_id = ?", postID, accountID).
		Count(&count).Error
	return count > 0, err
}

// Status regroupe compteur et drapeau is_liked pour les réponses HTTP.
func Status(postID, accountID uint) (LikeResponse, error) {
	count, err := CountForPost(postID)
	if err != nil {
		return LikeResponse{}, err
	}
	isLiked, err := IsLikedBy(postID, accountID)
	if err != nil {
		return LikeResponse{}, err
	}
	return LikeResponse{
		PostID:    postID,
		LikeCount: count,
		IsLiked:   isLiked,
	}, nil
}
