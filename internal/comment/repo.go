package comment

import (
	"errors"
	"strings"

	"github.com/ClaraVasseur/InstaLite-Back/internal/database"
	"github.com/ClaraVasseur/InstaLite-Back/internal/post"
)

var (
	ErrPostNotFound = errors.New("post non trouvé")
	ErrEmptyBody    = errors.New("commentaire vide")
)

// Add vérifie l'existence du post avant d'insérer : pas de commentaire
// orphelin possible. Le texte doit rester non vide une fois trimé.
func Add(postID, accountID uint, body string) (*Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}

	exists, err := post.Exists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	cmt := Comment{
		PostID:    postID,
		AccountID: accountID,
		Body:      body,
	}
	if err := database.DB.Create(&cmt).Error; err != nil {
		return nil, err
	}
	return &cmt, nil
}

// ForPost liste les commentaires du plus ancien au plus récent.
func ForPost(postID uint) ([]Comment, error) {
	var comments []Comment
	err := database.DB.Where("post_id = ?", postID).
		Order("created_at ASC").Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func CountForPost(postID uint) (int64, error) {
	var count int64
	err := database.DB.Model(&Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
