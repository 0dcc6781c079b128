package wire

import (
	"Campus/internal/api/config"
	"Campus/internal/pkg/testutils"
	"Campus/internal/service/mocks"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: 8080},
		Asset:   config.AssetConfig{Provider: "imagekit", DeleteTimeout: time.Second, ReconcileCron: "@every 10m", ReconcileBatch: 10},
		Session: config.SessionConfig{CookieName: "session", Secret: "wire-secret", LoginPath: "/admin/login"},
		Lifecycle: config.LifecycleConfig{
			DefaultPolicy:    "skip",
			CorruptionPolicy: map[string]string{"blog": "abort"},
		},
		ImageKit: config.ImageKitConfig{APIEndpoint: "https://api.imagekit.io", UploadEndpoint: "https://upload.imagekit.io", PrivateKey: "private_x"},
	}
}

func TestBuildApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig()

	app, err := BuildApplication(testutils.NewTestDB(t), nil, mocks.NewMockAssetStore(ctrl), cfg)
	require.NoError(t, err)
	require.NoError(t, app.CronMgr.RegisterJobs())

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBuildApplication_RejectsUnknownPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig()
	cfg.Lifecycle.CorruptionPolicy["thanks"] = "explode"

	_, err := BuildApplication(testutils.NewTestDB(t), nil, mocks.NewMockAssetStore(ctrl), cfg)
	assert.Error(t, err)
}

func TestNewAssetStore(t *testing.T) {
	cfg := testConfig()
	store, err := NewAssetStore(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, store)

	cfg.Asset.Provider = "ftp"
	_, err = NewAssetStore(context.Background(), cfg)
	assert.Error(t, err)
}
