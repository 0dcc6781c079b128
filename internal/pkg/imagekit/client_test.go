package imagekit

import (
	"Campus/internal/api/config"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageKit struct {
	mu       sync.Mutex
	stored   map[string]bool
	requests [][]string
	fail     bool
}

func (f *fakeImageKit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	user, _, _ := r.BasicAuth()
	if user != "private_test" {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"unauthorized"}`))
		return
	}

	switch r.URL.Path {
	case batchDeletePath:
		f.batchDelete(w, r)
	case uploadPath:
		f.upload(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeImageKit) batchDelete(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var req batchDeleteRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	f.requests = append(f.requests, req.FileIDs)

	if f.fail {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"internal error"}`))
		return
	}

	var missing []string
	for _, id := range req.FileIDs {
		if !f.stored[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(apiError{Message: "files not found", MissingFileIDs: missing})
		return
	}
	for _, id := range req.FileIDs {
		delete(f.stored, id)
	}
	_ = json.NewEncoder(w).Encode(batchDeleteResponse{SuccessfullyDeletedFileIDs: req.FileIDs})
}

func (f *fakeImageKit) upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer file.Close()
	body, _ := io.ReadAll(file)

	width := len(body)
	folder := r.FormValue("folder")
	_ = json.NewEncoder(w).Encode(uploadResponse{
		FileID:   "fid_" + header.Filename,
		Name:     r.FormValue("fileName"),
		URL:      "https://ik.example.com" + folder + "/" + header.Filename,
		FilePath: folder + "/" + header.Filename,
		Width:    &width,
	})
}

func newTestClient(t *testing.T, fake *fakeImageKit) *Client {
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := NewClient(config.ImageKitConfig{
		APIEndpoint:    srv.URL,
		UploadEndpoint: srv.URL,
		PrivateKey:     "private_test",
		Folder:         "campus",
	})
	require.NoError(t, err)
	return client
}

func TestBulkDelete_Success(t *testing.T) {
	fake := &fakeImageKit{stored: map[string]bool{"a": true, "b": true}}
	client := newTestClient(t, fake)

	require.NoError(t, client.BulkDelete(context.Background(), []string{"a", "b"}))
	assert.Empty(t, fake.stored)
	assert.Equal(t, [][]string{{"a", "b"}}, fake.requests)
}

func TestBulkDelete_MissingTreatedAsDeleted(t *testing.T) {
	fake := &fakeImageKit{stored: map[string]bool{"a": true, "c": true}}
	client := newTestClient(t, fake)

	require.NoError(t, client.BulkDelete(context.Background(), []string{"a", "b", "c"}))
	assert.Empty(t, fake.stored)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"a", "c"}}, fake.requests)
}

func TestBulkDelete_AllMissing(t *testing.T) {
	fake := &fakeImageKit{stored: map[string]bool{}}
	client := newTestClient(t, fake)

	require.NoError(t, client.BulkDelete(context.Background(), []string{"x"}))
	assert.Len(t, fake.requests, 1)
}

func TestBulkDelete_ServerError(t *testing.T) {
	fake := &fakeImageKit{fail: true}
	client := newTestClient(t, fake)

	err := client.BulkDelete(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestUpload(t *testing.T) {
	client := newTestClient(t, &fakeImageKit{})

	ref, err := client.Upload(context.Background(), "2026/10/14/cover.png", strings.NewReader("12345"), 5, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "fid_cover.png", ref.FileID)
	assert.Equal(t, "https://ik.example.com/campus/2026/10/14/cover.png", ref.URL)
	require.NotNil(t, ref.Width)
	assert.Equal(t, 5, *ref.Width)
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(config.ImageKitConfig{APIEndpoint: "https://api.imagekit.io"})
	assert.Error(t, err)
}
