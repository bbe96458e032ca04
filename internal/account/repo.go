package account

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ClaraVasseur/InstaLite-Back/internal/credentials"
	"github.com/ClaraVasseur/InstaLite-Back/internal/database"
)

var (
	ErrDuplicateEmail = errors.New("email déjà utilisé")
	ErrNotFound       = errors.New("compte non trouvé")
	// ErrInvalidCredentials couvre email inconnu ET mot de passe erroné :
	// les deux cas doivent être indistinguables pour l'appelant.
	ErrInvalidCredentials = errors.New("identifiants invalides")
)

// Register hashe le mot de passe puis insère le compte. L'unicité de l'email
// est garantie par la contrainte en base, pas par une pré-vérification :
// deux inscriptions concurrentes ne peuvent pas passer toutes les deux.
func Register(email, password string) (*Account, error) {
	hashed, err := credentials.Hash(password)
	if err != nil {
		return nil, err
	}

	acc := Account{
		Email:    email,
		Password: hashed,
	}
	if err := database.DB.Create(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &acc, nil
}

func FindByEmail(email string) (*Account, error) {
	var acc Account
	err := database.DB.Where("email = ?", email).First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func FindByID(id uint) (*Account, error) {
	var acc Account
	err := database.DB.First(&acc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}

// Authenticate vérifie le couple email / mot de passe.
func Authenticate(email, password string) (*Account, error) {
	acc, err := FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !credentials.Verify(password, acc.Password) {
		return nil, ErrInvalidCredentials
	}
	return acc, nil
}

func ExistsByEmail(email string) bool {
	var count int64
	database.DB.Model(&Account{}).Where("email = ?", email).Count(&count)
	return count > 0
}
