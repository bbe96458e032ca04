package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ClaraVasseur/InstaLite-Back/internal/account"
	"github.com/ClaraVasseur/InstaLite-Back/internal/database"
	"github.com/ClaraVasseur/InstaLite-Back/internal/token"
)

func setupTestDB(t *testing.T) *account.Account {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&account.Account{}))

	originalDB := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = originalDB })

	acc, err := account.Register("a@x.com", "pw1")
	assert.NoError(t, err)
	return acc
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint("user_id"),
			"email":   c.GetString("email"),
		})
	})
	r.GET("/open", OptionalAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id")})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	acc := setupTestDB(t)

	validTok, err := token.Issue(acc.Email, 0)
	assert.NoError(t, err)
	unknownTok, err := token.Issue("ghost@x.com", 0)
	assert.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "Valid token", header: "Bearer " + validTok, expectedStatus: http.StatusOK},
		{name: "Missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "Not a bearer scheme", header: "Basic abc", expectedStatus: http.StatusUnauthorized},
		{name: "Garbage token", header: "Bearer not.a.jwt", expectedStatus: http.StatusUnauthorized},
		{name: "Unknown subject", header: "Bearer " + unknownTok, expectedStatus: http.StatusUnauthorized},
	}

	r := testRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	acc := setupTestDB(t)

	// Token expiré forgé avec la même clé
	expired := issueExpired(t, acc.Email)

	r := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func issueExpired(t *testing.T, email string) string {
	t.Helper()
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-30 * time.Minute)),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return signed
}

func TestOptionalAuthMiddleware(t *testing.T) {
	acc := setupTestDB(t)

	validTok, err := token.Issue(acc.Email, 0)
	assert.NoError(t, err)

	r := testRouter()

	// Anonyme : la requête passe, user_id vaut 0
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":0`)

	// Token invalide : toujours anonyme, pas de 401
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":0`)

	// Token valide : identité résolue
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+validTok)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"user_id":0`)
}
