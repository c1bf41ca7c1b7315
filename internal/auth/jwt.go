package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	jwtSecret []byte
	jwtTTL    = 24 * time.Hour
)

// Configurar define o segredo e o tempo de vida dos tokens.
// Deve ser chamado no bootstrap, antes de emitir ou validar qualquer token.
func Configurar(secret string, ttl time.Duration) error {
	if secret == "" {
		return errors.New("JWT_SECRET não definida")
	}
	jwtSecret = []byte(secret)
	if ttl > 0 {
		jwtTTL = ttl
	}
	return nil
}

// Claims do token de sessão. O setor entra nas claims porque a permissão
// por etapa é checada a cada transição, sem nova ida ao banco.
type Claims struct {
	UserID  uint         `json:"userId"`
	Nome    string       `json:"nome"`
	IsAdmin bool         `json:"isAdmin"`
	Setor   models.Etapa `json:"setor"`
	jwt.RegisteredClaims
}

// GerarToken emite um JWT HS256 para o usuário autenticado.
func GerarToken(userID uint, nome string, isAdmin bool, setor models.Etapa) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("auth não configurada")
	}
	now := time.Now()
	claims := &Claims{
		UserID:  userID,
		Nome:    nome,
		IsAdmin: isAdmin,
		Setor:   setor,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidarToken valida o token e devolve as claims.
func ValidarToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("não foi possível extrair claims")
	}
	return claims, nil
}
