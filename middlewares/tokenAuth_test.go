package middlewares

import (
	"AgendaDental/models"
	"AgendaDental/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	authed := r.Group("/", TokenAuthMiddleware())
	authed.GET("/whoami", func(c *gin.Context) {
		claims, err := ExtractClaimsFromContext(c.Request.Context())
		require.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email, "role": claims.Role})
	})

	admin := r.Group("/admin", TokenAuthMiddleware(), RoleAuthMiddleware(models.RoleAdmin))
	admin.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenAuthMissingHeader(t *testing.T) {
	r := newAuthTestRouter(t)

	w := doRequest(r, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenAuthMalformedHeader(t *testing.T) {
	r := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenAuthInvalidToken(t *testing.T) {
	r := newAuthTestRouter(t)

	w := doRequest(r, "/whoami", "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenAuthValidTokenAddsClaims(t *testing.T) {
	r := newAuthTestRouter(t)

	patientID := "p-abc"
	token, err := utils.GenerateAccessToken(7, "ana@x.com", models.RolePatient, &patientID)
	require.NoError(t, err)

	w := doRequest(r, "/whoami", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana@x.com")
	assert.Contains(t, w.Body.String(), models.RolePatient)
}

func TestRoleAuthRejectsPatientOnAdminRoute(t *testing.T) {
	r := newAuthTestRouter(t)

	patientID := "p-abc"
	token, err := utils.GenerateAccessToken(7, "ana@x.com", models.RolePatient, &patientID)
	require.NoError(t, err)

	w := doRequest(r, "/admin/ping", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleAuthAllowsAdmin(t *testing.T) {
	r := newAuthTestRouter(t)

	token, err := utils.GenerateAccessToken(1, "admin@dental.clinic", models.RoleAdmin, nil)
	require.NoError(t, err)

	w := doRequest(r, "/admin/ping", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
