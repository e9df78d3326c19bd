package auth

import (
	"errors"
	"time"

	"github.com/farmaciags/backend/internal/domain/user"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrInvalidClaims = errors.New("claims inválidas")
	ErrMissingJWTKey = errors.New("clave secreta JWT no configurada")
)

// JWTClaims son las claims personalizadas del token de acceso
type JWTClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService firma y valida tokens de acceso
type JWTService struct {
	secretKey  []byte
	expiration time.Duration
}

// NewJWTService crea el servicio con la clave y expiración de la configuración
func NewJWTService(secretKey string, expiration time.Duration) (*JWTService, error) {
	if secretKey == "" {
		return nil, ErrMissingJWTKey
	}
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}

	return &JWTService{
		secretKey:  []byte(secretKey),
		expiration: expiration,
	}, nil
}

// GenerateToken genera un token de acceso para el usuario
func (s *JWTService) GenerateToken(u *user.User) (string, error) {
	expirationTime := time.Now().Add(s.expiration)

	claims := JWTClaims{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "farmacia-gs-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken valida un token de acceso y retorna sus claims
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
