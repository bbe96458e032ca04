package post

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ClaraVasseur/InstaLite-Back/internal/database"
)

var (
	ErrNotFound  = errors.New("post non trouvé")
	ErrForbidden = errors.New("opération réservée au propriétaire du post")
)

func Create(accountID uint, mediaRef, caption string) (*Post, error) {
	p := Post{
		AccountID: accountID,
		MediaRef:  mediaRef,
		Caption:   caption,
	}
	if err := database.DB.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func Get(id uint) (*Post, error) {
	var p Post
	err := database.DB.First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdateCaption modifie la légende. L'existence est vérifiée avant la
// propriété : un non-propriétaire sur un post existant reçoit Forbidden,
// pas NotFound.
func UpdateCaption(id, requesterID uint, caption string) (*Post, error) {
	p, err := Get(id)
	if err != nil {
		return nil, err
	}
	if p.AccountID != requesterID {
		return nil, ErrForbidden
	}

	if err := database.DB.Model(p).Update("caption", caption).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Delete supprime le post et, dans la même transaction, ses likes et
// commentaires : aucune ligne orpheline ne doit pouvoir ressusciter
// sur un id réutilisé.
func Delete(id, requesterID uint) error {
	p, err := Get(id)
	if err != nil {
		return err
	}
	if p.AccountID != requesterID {
		return ErrForbidden
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM likes WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM comments WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(p).Error
	})
}

// ListAll renvoie tous les posts, du plus récent au plus ancien.
// Départage déterministe par id décroissant en cas d'égalité de date.
func ListAll() ([]Post, error) {
	var posts []Post
	err := database.DB.Order("created_at DESC").Order("id DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Exists permet aux packages like et comment de vérifier la présence
// d'un post sans dupliquer la requête.
func Exists(id uint) (bool, error) {
	var count int64
	if err := database.DB.Model(&Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
