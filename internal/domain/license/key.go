// Package license genera y valida claves de licencia de negocio.
// Formato: 16 caracteres [A-Z0-9] en cuatro grupos de cuatro separados por
// guión (ej. AB3D-91FG-22KL-Z0Q1). La unicidad NO se verifica aquí: la
// garantiza el constraint UNIQUE de la tabla businesses y el reintento
// acotado del caso de uso de creación.
package license

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	groups    = 4
	groupSize = 4
)

var alphabetLen = big.NewInt(int64(len(alphabet)))

// NewKey genera una clave de licencia con fuente criptográfica (crypto/rand).
// Cada carácter se elige uniformemente sobre el alfabeto de 36 símbolos.
func NewKey() (string, error) {
	var b strings.Builder
	b.Grow(groups*groupSize + groups - 1)
	for i := 0; i < groups*groupSize; i++ {
		if i > 0 && i%groupSize == 0 {
			b.WriteByte('-')
		}
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("generar clave de licencia: %w", err)
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}

// Valid informa si key tiene el formato XXXX-XXXX-XXXX-XXXX con [A-Z0-9].
func Valid(key string) bool {
	if len(key) != groups*groupSize+groups-1 {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if (i+1)%(groupSize+1) == 0 {
			if c != '-' {
				return false
			}
			continue
		}
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
