package admin

import (
	"Campus/internal/api/config"
	"Campus/internal/api/dto"
	"Campus/internal/pkg/security"
	"Campus/internal/pkg/testutils"
	"Campus/internal/repository"
	"Campus/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "admin-secret"

func newVerifyServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if _, err = security.ValidateToken(testSecret, cookie.Value); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newConsoleRouter(t *testing.T) (*gin.Engine, service.BlogService) {
	gin.SetMode(gin.TestMode)
	db := testutils.NewTestDB(t)
	opts := service.LifecycleOptions{}
	blogs := service.NewBlogService(repository.NewBlogRepo(db), nil, opts)
	console := NewConsole(
		blogs,
		service.NewNoticeService(repository.NewNoticeRepo(db), nil, opts),
		service.NewThanksService(repository.NewThanksRepo(db), nil, opts),
		service.NewFolderService(repository.NewFolderRepo(db), nil, opts),
	)

	gate := NewGate(config.SessionConfig{
		CookieName: "session",
		VerifyURL:  newVerifyServer(t).URL,
		LoginPath:  "/admin/login",
	})

	r := gin.New()
	r.SetHTMLTemplate(Templates())
	console.Register(r, gate.Middleware())
	return r, blogs
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGate_RedirectsWithoutSession(t *testing.T) {
	r, _ := newConsoleRouter(t)

	w := get(r, "/admin/blogs", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	w = get(r, "/admin/blogs", "forged")
	assert.Equal(t, http.StatusFound, w.Code)

	w = get(r, "/admin/login", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestConsole_ListPages(t *testing.T) {
	r, blogs := newConsoleRouter(t)
	token, err := security.GenerateToken(testSecret, "admin", time.Hour)
	require.NoError(t, err)

	featured := true
	_, err = blogs.Create(context.Background(), dto.BlogCreateDTO{
		Title:       "Science fair",
		Description: "Annual science fair recap",
		Content:     "Students presented over forty projects across physics, biology and robotics.",
		Images:      []dto.AssetReferenceDTO{{FileID: "f1", URL: "https://cdn.example.com/f1.jpg"}},
		IsFeatured:  &featured,
	})
	require.NoError(t, err)

	w := get(r, "/admin/blogs", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Science fair")

	w = get(r, "/admin/", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/admin/notices")

	for _, path := range []string{"/admin/notices", "/admin/thanks", "/admin/folders"} {
		w = get(r, path, token)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "暂无内容", path)
	}
}
