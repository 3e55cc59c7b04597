package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Verifier valida el par usuario/contraseña de la ruta mutadora. Se inyecta en
// el caso de uso para poder reemplazarlo por un proveedor real sin tocar el
// motor del catálogo.
type Verifier interface {
	Verificar(user, password string) bool
}

// Credenciales es el verificador de credencial única cargada desde
// configuración. Si Password viene con formato bcrypt ($2a$, $2b$, $2y$) se
// compara como hash; si no, comparación directa en tiempo constante.
type Credenciales struct {
	User     string
	Password string
}

var _ Verifier = Credenciales{}

// Verificar compara usuario y contraseña contra la credencial configurada.
func (c Credenciales) Verificar(user, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(c.User), []byte(user)) == 1

	var passOK bool
	if esHashBcrypt(c.Password) {
		passOK = bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) == 1
	}
	return userOK && passOK
}

func esHashBcrypt(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
