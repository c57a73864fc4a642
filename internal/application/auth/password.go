package auth

import "golang.org/x/crypto/bcrypt"

// HashCost coste bcrypt usado al hashear. Los tests lo bajan a bcrypt.MinCost.
var HashCost = bcrypt.DefaultCost

// HashPassword devuelve el hash bcrypt de plain.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compara plain con el hash almacenado.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// DefaultAdminPassword contraseña inicial de los administradores creados al aprobar una solicitud.
func DefaultAdminPassword(firstName string) string {
	return firstName + "@1234"
}
