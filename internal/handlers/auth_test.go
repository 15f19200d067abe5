package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/graphico/brief-api/internal/constants"
	"github.com/graphico/brief-api/internal/dto"
	"github.com/graphico/brief-api/internal/services"
	"github.com/graphico/brief-api/internal/storage"
)

type authTestEnv struct {
	store       *storage.GormStore
	handler     *AuthHandler
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&storage.Entry{})
	require.NoError(t, err)

	store := storage.NewStore(db, nil)
	authService := services.NewAuthService(store, nil)
	handler := NewAuthHandler(authService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		store:       store,
		handler:     handler,
		authService: authService,
	}
}

func newAuthRouter(env authTestEnv) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/api/auth/login", env.handler.Login)
	r.POST("/api/auth/logout", env.handler.Logout)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login_RegistersWithDefaults(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthRouter(env)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"name":  "Sara",
		"email": "a@x.com",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Sara", response.Name)
	require.Equal(t, "a@x.com", response.Email)
	require.Equal(t, constants.DefaultUserLevel, response.Level)
	require.Zero(t, response.XP)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")

	// The gateway session slot mirrors the login.
	session, ok := env.store.GetSession()
	require.True(t, ok)
	require.Equal(t, "a@x.com", session.Email)
}

func TestAuthHandler_Login_DefaultDisplayName(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthRouter(env)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"email": "anon@x.com",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, constants.DefaultUserName, response.Name)
}

func TestAuthHandler_Login_ExistingRecordWins(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthRouter(env)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"name":  "Sara",
		"email": "a@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/api/auth/login", map[string]string{
		"name":  "Somebody Else",
		"email": "a@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Sara", response.Name, "a later login must not rename the stored user")

	users := env.store.ListRegisteredUsers()
	require.Len(t, users, 1)
}

func TestAuthHandler_Login_InvalidEmail(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthRouter(env)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"name":  "Sara",
		"email": "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Logout_ClearsSessionSlot(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthRouter(env)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"name":  "Sara",
		"email": "a@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, ok := env.store.GetSession()
	require.False(t, ok)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Login("Sara", "a@x.com")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(constants.ContextKeyUserEmail, "a@x.com")

	env.handler.GetCurrentUser(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Sara", response.Name)
}

func TestAuthHandler_GetCurrentUser_Unknown(t *testing.T) {
	env := setupAuthTestEnv(t)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(constants.ContextKeyUserEmail, "ghost@x.com")

	env.handler.GetCurrentUser(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}
