package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"accounts-service/internal/config"
	"accounts-service/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	service    *TokenService
	issuer     string
}

func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.service = NewTokenService(&config.AuthConfig{
		Enabled:       true,
		PrivateKey:    s.privateKey,
		PublicKey:     s.publicKey,
		Issuer:        s.issuer,
		TokenDuration: time.Hour,
	})
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestGenerateAndValidate() {
	token, expiresAt, err := s.service.GenerateAccessToken("ops-42", "")
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(61 * time.Minute)))

	claims, err := s.service.ValidateAccessToken(token)
	s.Require().NoError(err)
	s.Equal("ops-42", claims.OperatorID)
	s.Equal("ops-42", claims.Subject)
	s.Equal(models.RoleOperator, claims.Role)
	s.Equal(TokenTypeAccess, claims.TokenType)
	s.NotEmpty(claims.ID)
}

func (s *TokenServiceTestSuite) TestGenerate_CustomRole() {
	token, _, err := s.service.GenerateAccessToken("ops-1", models.RoleAdmin)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, claims.Role)
}

func (s *TokenServiceTestSuite) TestGenerate_EmptyOperator() {
	_, _, err := s.service.GenerateAccessToken("  ", "")
	s.Error(err)
}

func (s *TokenServiceTestSuite) TestGenerate_MissingKey() {
	service := NewTokenService(&config.AuthConfig{Issuer: s.issuer, TokenDuration: time.Hour})
	_, _, err := service.GenerateAccessToken("ops-1", "")
	s.ErrorIs(err, ErrMissingSigningKey)
}

func (s *TokenServiceTestSuite) TestValidate_Expired() {
	service := NewTokenService(&config.AuthConfig{
		PrivateKey:    s.privateKey,
		PublicKey:     s.publicKey,
		Issuer:        s.issuer,
		TokenDuration: -time.Minute,
	})
	token, _, err := service.GenerateAccessToken("ops-1", "")
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestValidate_WrongIssuer() {
	other := NewTokenService(&config.AuthConfig{
		PrivateKey:    s.privateKey,
		PublicKey:     s.publicKey,
		Issuer:        "someone-else",
		TokenDuration: time.Hour,
	})
	token, _, err := other.GenerateAccessToken("ops-1", "")
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidate_WrongKey() {
	otherKey, otherPublic, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	other := NewTokenService(&config.AuthConfig{
		PrivateKey:    otherKey,
		PublicKey:     otherPublic,
		Issuer:        s.issuer,
		TokenDuration: time.Hour,
	})
	token, _, err := other.GenerateAccessToken("ops-1", "")
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidate_RejectsHMACTokens() {
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		OperatorID: "ops-1",
		TokenType:  TokenTypeAccess,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidate_WrongTokenType() {
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		OperatorID: "ops-1",
		TokenType:  "refresh",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidTokenType)
}

func (s *TokenServiceTestSuite) TestValidate_Empty() {
	_, err := s.service.ValidateAccessToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer   token  ", want: "token"},
		{header: "", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		got, err := s.service.ExtractTokenFromHeader(tt.header)
		if tt.wantErr {
			s.ErrorIs(err, ErrInvalidAuthHeader, tt.header)
			continue
		}
		s.NoError(err)
		s.Equal(tt.want, got)
	}
}
