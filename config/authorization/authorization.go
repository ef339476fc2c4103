package authorization

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Code       string `json:"code"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	HospitalId string `json:"hospitalId"`
	jwt.RegisteredClaims
}

func secret() []byte {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		s = "medflow-dev-secret"
	}
	return []byte(s)
}

func expiry() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("TOKEN_EXPIRY_HOURS"))
	if err != nil || hours <= 0 {
		hours = 12
	}
	return time.Duration(hours) * time.Hour
}

/*
* Issue a signed bearer token carrying the user code, role and hospitalId
* Everything downstream reads tenant scope from these claims
 */
func GenerateToken(code, username, role, hospitalId string) (string, error) {
	claims := Claims{
		Code:       code,
		Username:   username,
		Role:       role,
		HospitalId: hospitalId,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   code,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New(util.UNAUTHORIZED)
	}
	return claims, nil
}

/*
* Pull the bearer token from the Authorization header
* Validate it and stash code, username, role and hospitalId on the context
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(errors.New(util.UNAUTHORIZED)))
			return
		}
		claims, err := ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Println("Error from parseToken:", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(errors.New(util.UNAUTHORIZED)))
			return
		}
		c.Set("code", claims.Code)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Set("hospitalId", claims.HospitalId)
		c.Next()
	}
}

// Authorize gates a route to the given roles. Admin passes everywhere.
func Authorize(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == util.RoleAdmin || role == util.RoleSuperAdmin {
			c.Next()
			return
		}
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(errors.New(util.ROLE_NOT_ALLOWED)))
	}
}
