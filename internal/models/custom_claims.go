package models

import "github.com/golang-jwt/jwt/v5"

const (
	RoleOperator = "operator"
	RoleAdmin    = "admin"
)

// CustomClaims represents the custom claims in back-office operator tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	OperatorID string `json:"operator_id"`
	Role       string `json:"role,omitempty"`
	TokenType  string `json:"token_type"`
}
