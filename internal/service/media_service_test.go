package service

import (
	"Campus/internal/model"
	"Campus/internal/service/mocks"
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pngBytes(t *testing.T, w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestMediaService_UploadImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	assets := mocks.NewMockAssetStore(ctrl)
	svc := NewMediaService(assets)

	data := pngBytes(t, 64, 32)
	assets.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any(), int64(len(data)), "image/png").
		DoAndReturn(func(_ context.Context, name string, r io.Reader, _ int64, _ string) (*model.AssetReference, error) {
			assert.True(t, strings.HasSuffix(name, ".png"))
			body, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, data, body)
			return &model.AssetReference{FileID: name, URL: "https://cdn.example.com/" + name}, nil
		})

	ref, err := svc.Upload(context.Background(), "cover.png", int64(len(data)), bytes.NewReader(data))
	require.NoError(t, err)
	require.NotNil(t, ref.Width)
	require.NotNil(t, ref.Height)
	assert.Equal(t, 64, *ref.Width)
	assert.Equal(t, 32, *ref.Height)
}

func TestMediaService_RejectsNonImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMediaService(mocks.NewMockAssetStore(ctrl))

	_, err := svc.Upload(context.Background(), "notes.txt", 5, strings.NewReader("hello"))
	assert.ErrorIs(t, err, ErrFileNotSupport)
}

func TestMediaService_UploadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	assets := mocks.NewMockAssetStore(ctrl)
	svc := NewMediaService(assets)

	data := pngBytes(t, 4, 4)
	assets.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("bucket missing"))

	_, err := svc.Upload(context.Background(), "a.png", int64(len(data)), bytes.NewReader(data))
	assert.ErrorIs(t, err, UnExpectedError)
}
