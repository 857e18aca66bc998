package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hugohenrick/wallet-agent-chat/pkg/session"
)

// Erros específicos
var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrInvalidClaims = errors.New("claims inválidas")
	ErrMissingJWTKey = errors.New("chave secreta JWT não configurada")
)

const issuer = "wallet-agent-chat-api"

// JWTClaims representa as claims do token de sessão
type JWTClaims struct {
	SessionID string `json:"session_id"`
	Address   string `json:"address"`
	jwt.RegisteredClaims
}

// Session retorna a sessão representada pelas claims
func (c *JWTClaims) Session() session.Session {
	return session.Session{ID: c.SessionID, Address: c.Address}
}

// JWTService emite e valida tokens de sessão
type JWTService struct {
	secretKey  []byte
	expiration time.Duration
	now        func() time.Time
}

// NewJWTService cria uma nova instância de JWTService
func NewJWTService(secretKey string, expiration time.Duration) (*JWTService, error) {
	if secretKey == "" {
		return nil, ErrMissingJWTKey
	}

	// Duração padrão de 24 horas
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}

	return &JWTService{
		secretKey:  []byte(secretKey),
		expiration: expiration,
		now:        time.Now,
	}, nil
}

// GenerateToken gera um token para a sessão e retorna também sua expiração
func (s *JWTService) GenerateToken(sess session.Session) (string, time.Time, error) {
	now := s.now()
	expirationTime := now.Add(s.expiration)

	claims := JWTClaims{
		SessionID: sess.ID,
		Address:   sess.Address,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   sess.Address,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expirationTime, nil
}

// ValidateToken valida um token e retorna as claims se for válido
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verificar o método de assinatura
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// RefreshToken renova um token mantendo a mesma sessão
func (s *JWTService) RefreshToken(tokenString string) (session.Session, string, time.Time, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return session.Session{}, "", time.Time{}, err
	}

	sess := claims.Session()
	token, expiresAt, err := s.GenerateToken(sess)
	if err != nil {
		return session.Session{}, "", time.Time{}, err
	}

	return sess, token, expiresAt, nil
}
