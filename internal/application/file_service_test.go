package application

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/golang/mock/gomock"
	domainfile "github.com/linskybing/records-go/internal/domain/file"
	"github.com/linskybing/records-go/internal/repository"
	"github.com/linskybing/records-go/internal/repository/mock"
	storagemock "github.com/linskybing/records-go/internal/storage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupFileServiceMocks(t *testing.T) (*FileService, *mock.MockFileRepo, *storagemock.MockObjectStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockFile := mock.NewMockFileRepo(ctrl)
	mockStore := storagemock.NewMockObjectStore(ctrl)
	repos := &repository.Repos{
		File: mockFile,
	}
	return NewFileService(repos, mockStore), mockFile, mockStore
}

// pngPayload renders a w x h image and returns it base64-encoded the way
// clients send it.
func pngPayload(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 20), G: uint8(y * 20), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestUpload_StoresOriginalAndSquareThumbnail(t *testing.T) {
	svc, mockFile, mockStore := setupFileServiceMocks(t)

	type put struct {
		key  string
		data []byte
	}
	var puts []put
	mockStore.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, data []byte, _ string) error {
			puts = append(puts, put{key: key, data: data})
			return nil
		}).Times(2)

	var rows []domainfile.File
	mockFile.EXPECT().CreateFiles(gomock.Any()).DoAndReturn(func(files []domainfile.File) error {
		rows = files
		return nil
	})

	res, err := svc.Upload(context.Background(), domainfile.UploadInput{
		Name: "photo.png",
		Data: pngPayload(t, 6, 4),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.FileID)
	assert.NotEmpty(t, res.ThumbFileID)
	assert.NotEqual(t, res.FileID, res.ThumbFileID)

	require.Len(t, puts, 2)
	assert.Equal(t, res.FileID+"_photo.png", puts[0].key)
	assert.Equal(t, res.ThumbFileID+"_thumb_photo.png", puts[1].key)

	// The thumbnail is a centered square whose side is the shorter
	// dimension of the source.
	thumb, err := imaging.Decode(bytes.NewReader(puts[1].data))
	require.NoError(t, err)
	assert.Equal(t, 4, thumb.Bounds().Dx())
	assert.Equal(t, 4, thumb.Bounds().Dy())

	require.Len(t, rows, 2)
	assert.Equal(t, res.FileID, rows[0].FileID)
	assert.Equal(t, "photo.png", rows[0].Name)
	assert.Equal(t, res.ThumbFileID, rows[1].FileID)
	assert.Equal(t, "thumb_photo.png", rows[1].Name)
}

func TestUpload_RejectsInvalidBase64(t *testing.T) {
	svc, _, _ := setupFileServiceMocks(t)

	_, err := svc.Upload(context.Background(), domainfile.UploadInput{
		Name: "photo.png",
		Data: "not@@base64!!",
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "decode upload payload"))
}

func TestUpload_RejectsNonImagePayload(t *testing.T) {
	svc, _, _ := setupFileServiceMocks(t)

	_, err := svc.Upload(context.Background(), domainfile.UploadInput{
		Name: "notes.txt",
		Data: base64.StdEncoding.EncodeToString([]byte("plain text")),
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "decode image"))
}

func TestDownload_RoundTrip(t *testing.T) {
	svc, mockFile, mockStore := setupFileServiceMocks(t)

	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	mockFile.EXPECT().GetItemFile("rec-1", 2).Return(domainfile.File{
		FileID:    "f-1",
		ObjectKey: "f-1_photo.png",
		Name:      "photo.png",
	}, nil)
	mockStore.EXPECT().Get(gomock.Any(), "f-1_photo.png").Return(payload, nil)

	res, err := svc.Download(context.Background(), "rec-1", 2)
	require.NoError(t, err)
	assert.Equal(t, "photo.png", res.Name)
	assert.Equal(t, base64.StdEncoding.EncodeToString(payload), res.Data)
}

func TestDownloadThumbnail_NotFound(t *testing.T) {
	svc, mockFile, _ := setupFileServiceMocks(t)

	mockFile.EXPECT().GetItemThumbnail("rec-1", 99).Return(domainfile.File{}, gorm.ErrRecordNotFound)

	_, err := svc.DownloadThumbnail(context.Background(), "rec-1", 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
