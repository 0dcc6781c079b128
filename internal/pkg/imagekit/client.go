package imagekit

import (
	"Campus/internal/api/config"
	"Campus/internal/model"
	"context"
	"errors"
	"fmt"
	"io"
	log "log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	batchDeletePath = "/v1/files/batch/deleteByFileIds"
	uploadPath      = "/api/v1/files/upload"
)

// Client ImageKit 风格的图床，fileId 由服务端分配
type Client struct {
	api       *resty.Client
	uploadURL string
	folder    string
}

type batchDeleteRequest struct {
	FileIDs []string `json:"fileIds"`
}

type batchDeleteResponse struct {
	SuccessfullyDeletedFileIDs []string `json:"successfullyDeletedFileIds"`
}

type apiError struct {
	Message        string   `json:"message"`
	Help           string   `json:"help"`
	MissingFileIDs []string `json:"missingFileIds"`
}

type uploadResponse struct {
	FileID   string `json:"fileId"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	FilePath string `json:"filePath"`
	Width    *int   `json:"width"`
	Height   *int   `json:"height"`
}

func NewClient(cfg config.ImageKitConfig) (*Client, error) {
	if cfg.PrivateKey == "" {
		return nil, errors.New("imagekit private key is not configured")
	}

	api := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.APIEndpoint, "/")).
		SetTimeout(30*time.Second).
		SetBasicAuth(cfg.PrivateKey, "").
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &Client{
		api:       api,
		uploadURL: strings.TrimSuffix(cfg.UploadEndpoint, "/") + uploadPath,
		folder:    cfg.Folder,
	}, nil
}

// BulkDelete 批量删除；服务端报告不存在的 fileId 视为已删除，剩余部分重试一次
func (s *Client) BulkDelete(ctx context.Context, fileIDs []string) error {
	missing, err := s.batchDelete(ctx, fileIDs)
	if err != nil || len(missing) == 0 {
		return err
	}

	log.WarnContext(ctx, "imagekit reported missing files, treating as deleted", "missing_file_ids", missing)
	remaining := without(fileIDs, missing)
	if len(remaining) == 0 {
		return nil
	}

	missing, err = s.batchDelete(ctx, remaining)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("imagekit still reports missing files %v", missing)
	}
	return nil
}

// batchDelete 返回服务端报告不存在的 fileId
func (s *Client) batchDelete(ctx context.Context, fileIDs []string) ([]string, error) {
	var result batchDeleteResponse
	var apiErr apiError
	resp, err := s.api.R().
		SetContext(ctx).
		SetBody(batchDeleteRequest{FileIDs: fileIDs}).
		SetResult(&result).
		SetError(&apiErr).
		Post(batchDeletePath)
	if err != nil {
		return nil, fmt.Errorf("imagekit batch delete: %w", err)
	}

	switch {
	case resp.IsSuccess():
		return nil, nil
	case resp.StatusCode() == http.StatusNotFound && len(apiErr.MissingFileIDs) > 0:
		return apiErr.MissingFileIDs, nil
	default:
		return nil, fmt.Errorf("imagekit batch delete: status %d: %s", resp.StatusCode(), apiErr.Message)
	}
}

// Upload 以 multipart 上传，objectName 的目录部分并入配置的 folder
func (s *Client) Upload(ctx context.Context, objectName string, reader io.Reader, _ int64, _ string) (*model.AssetReference, error) {
	dir, name := path.Split(objectName)

	var result uploadResponse
	var apiErr apiError
	resp, err := s.api.R().
		SetContext(ctx).
		SetFileReader("file", name, reader).
		SetMultipartFormData(map[string]string{
			"fileName":          name,
			"folder":            path.Join("/", s.folder, dir),
			"useUniqueFileName": "false",
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post(s.uploadURL)
	if err != nil {
		return nil, fmt.Errorf("imagekit upload: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("imagekit upload: status %d: %s", resp.StatusCode(), apiErr.Message)
	}
	if result.FileID == "" {
		return nil, errors.New("imagekit upload: response has no fileId")
	}

	return &model.AssetReference{
		FileID: result.FileID,
		URL:    result.URL,
		Width:  result.Width,
		Height: result.Height,
	}, nil
}

func without(ids, drop []string) []string {
	skip := make(map[string]struct{}, len(drop))
	for _, id := range drop {
		skip[id] = struct{}{}
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := skip[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
