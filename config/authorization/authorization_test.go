package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("USR00001", "frontdesk", util.RoleReception, "HOS00001")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "USR00001", claims.Code)
	assert.Equal(t, "frontdesk", claims.Username)
	assert.Equal(t, util.RoleReception, claims.Role)
	assert.Equal(t, "HOS00001", claims.HospitalId)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth())
	r.GET("/protected", Authorize(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"code":       c.GetString("code"),
			"hospitalId": c.GetString("hospitalId"),
		})
	})
	return r
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	r := protectedRouter(util.RoleLab)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidTokenAndRole(t *testing.T) {
	r := protectedRouter(util.RoleLab)

	token, err := GenerateToken("USR00002", "labtech", util.RoleLab, "HOS00001")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "USR00002")
	assert.Contains(t, w.Body.String(), "HOS00001")
}

func TestAuthorize_RoleRejected(t *testing.T) {
	r := protectedRouter(util.RoleLab)

	token, err := GenerateToken("USR00003", "frontdesk", util.RoleReception, "HOS00001")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthorize_AdminPassesEverywhere(t *testing.T) {
	r := protectedRouter(util.RoleLab)

	token, err := GenerateToken("USR00004", "boss", util.RoleAdmin, "HOS00001")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
