package credentials

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash génère un hash bcrypt salé du mot de passe.
// Deux appels avec le même mot de passe donnent deux hashs différents :
// la comparaison passe toujours par Verify, jamais par égalité de chaînes.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify compare un mot de passe en clair au hash stocké.
// Un hash malformé renvoie false, jamais d'erreur : on échoue fermé.
func Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
