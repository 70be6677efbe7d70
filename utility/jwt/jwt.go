package jwt

import (
	"errors"
	"fmt"
	Config "memoless-api/config"
	"memoless-api/utility/appError"
	"memoless-api/utility/errorcode"
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

var (
	X_AUTH_TOKEN = "x-auth-token"
	JWT_ISSUER   = "MEMOLESS/API"
	TokenTTL     = 2 * time.Minute
)

// TokenClaims ... claims carried by the service token sent to the signer
type TokenClaims struct {
	TokenType string `json:"tokenType,omitempty"`
	ServiceID string `json:"serviceId,omitempty"`
	jwt.StandardClaims
}

// ServiceToken ... signs a short lived HS256 token identifying this service
func ServiceToken(config Config.Data, now time.Time) (string, error) {
	if config.ServiceKey == "" {
		return "", appError.Err{ErrType: errorcode.SERVER_ERR_CODE, ErrCode: http.StatusInternalServerError, Err: errors.New("serviceKey is not configured")}
	}
	claims := TokenClaims{
		TokenType: "SERVICE",
		ServiceID: config.ServiceID,
		StandardClaims: jwt.StandardClaims{
			Issuer:    JWT_ISSUER,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TokenTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.ServiceKey))
	if err != nil {
		return "", appError.Err{ErrType: errorcode.SERVER_ERR_CODE, ErrCode: http.StatusInternalServerError, Err: err}
	}
	return signed, nil
}

// Verify ... This verifies a service token and decodes its claims
func Verify(authToken string, config Config.Data) (TokenClaims, error) {
	claims := TokenClaims{}
	token, err := jwt.ParseWithClaims(authToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.ServiceKey), nil
	})
	if err != nil {
		return claims, appError.Err{ErrType: errorcode.INPUT_ERR_CODE, ErrCode: http.StatusUnauthorized, Err: err}
	}
	if !token.Valid {
		return claims, appError.Err{ErrType: errorcode.INPUT_ERR_CODE, ErrCode: http.StatusUnauthorized, Err: errors.New("Failed to validate token")}
	}
	return claims, nil
}
