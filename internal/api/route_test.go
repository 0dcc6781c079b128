package api

import (
	"Campus/internal/admin"
	"Campus/internal/api/config"
	"Campus/internal/api/handler"
	"Campus/internal/pkg/security"
	"Campus/internal/pkg/testutils"
	"Campus/internal/repository"
	"Campus/internal/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSession = config.SessionConfig{CookieName: "session", Secret: "route-secret", VerifyURL: "http://127.0.0.1:1/api/auth/verify", LoginPath: "/admin/login"}

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db := testutils.NewTestDB(t)
	opts := service.LifecycleOptions{}

	blogs := service.NewBlogService(repository.NewBlogRepo(db), nil, opts)
	notices := service.NewNoticeService(repository.NewNoticeRepo(db), nil, opts)
	thanks := service.NewThanksService(repository.NewThanksRepo(db), nil, opts)
	folders := service.NewFolderService(repository.NewFolderRepo(db), nil, opts)

	return SetupRouter(&HandlersGroup{
		BlogHandler:   handler.NewResourceHandler(blogs),
		NoticeHandler: handler.NewResourceHandler(notices),
		ThanksHandler: handler.NewResourceHandler(thanks),
		FolderHandler: handler.NewFolderHandler(folders),
		MediaHandler:  handler.NewMediaHandler(service.NewMediaService(nil)),
		AuthHandler:   handler.NewAuthHandler(testSession),
		Console:       admin.NewConsole(blogs, notices, thanks, folders),
		Gate:          admin.NewGate(testSession),
	}, config.ServerConfig{AllowedOrigins: []string{"https://school.example"}}, testSession)
}

func TestRouter_SessionGuardsMutations(t *testing.T) {
	r := newTestRouter(t)
	body := `{"title":"Holiday","description":"School closed Monday"}`

	req := httptest.NewRequest(http.MethodPost, "/api/addNotice", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := security.GenerateToken(testSession.Secret, "admin", time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/api/addNotice", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notices", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Holiday")
}

func TestRouter_PublicReads(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/ping", "/api/blogs", "/api/notices", "/api/thanks", "/api/folders"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notice/9", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_AdminRedirectsWhenVerifyUnreachable(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/blogs", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "anything"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestRouter_CORSUsesConfiguredOrigins(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/blogs", nil)
	req.Header.Set("Origin", "https://school.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://school.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/addBlog", nil)
	req.Header.Set("Origin", "https://other.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
