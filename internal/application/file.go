package application

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	domainfile "github.com/linskybing/records-go/internal/domain/file"
	"github.com/linskybing/records-go/internal/repository"
	"github.com/linskybing/records-go/internal/storage"
	"gorm.io/gorm"
)

type FileService struct {
	Repos *repository.Repos
	Store storage.ObjectStore
}

func NewFileService(repos *repository.Repos, store storage.ObjectStore) *FileService {
	return &FileService{
		Repos: repos,
		Store: store,
	}
}

// Upload stores the decoded payload and a derived thumbnail, then records
// one file row per artifact. The thumbnail is a centered square crop whose
// side is the shorter image dimension. Non-image payloads fail the whole
// upload.
func (s *FileService) Upload(ctx context.Context, input domainfile.UploadInput) (domainfile.UploadResponse, error) {
	data, err := base64.StdEncoding.DecodeString(input.Data)
	if err != nil {
		return domainfile.UploadResponse{}, fmt.Errorf("decode upload payload: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return domainfile.UploadResponse{}, fmt.Errorf("decode image: %w", err)
	}

	newID := uuid.NewString()
	thumbID := uuid.NewString()
	objectKey := newID + "_" + input.Name
	thumbKey := thumbID + "_thumb_" + input.Name

	if err := s.Store.Put(ctx, objectKey, data, http.DetectContentType(data)); err != nil {
		return domainfile.UploadResponse{}, fmt.Errorf("store original: %w", err)
	}

	bounds := img.Bounds()
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	thumb := imaging.CropCenter(img, side, side)

	format, err := imaging.FormatFromFilename(input.Name)
	if err != nil {
		format = imaging.PNG
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, format); err != nil {
		return domainfile.UploadResponse{}, fmt.Errorf("encode thumbnail: %w", err)
	}

	thumbData := buf.Bytes()
	if err := s.Store.Put(ctx, thumbKey, thumbData, http.DetectContentType(thumbData)); err != nil {
		return domainfile.UploadResponse{}, fmt.Errorf("store thumbnail: %w", err)
	}

	rows := []domainfile.File{
		{FileID: newID, ObjectKey: objectKey, Name: input.Name},
		{FileID: thumbID, ObjectKey: thumbKey, Name: "thumb_" + input.Name},
	}
	if err := s.Repos.File.CreateFiles(rows); err != nil {
		return domainfile.UploadResponse{}, err
	}

	return domainfile.UploadResponse{FileID: newID, ThumbFileID: thumbID}, nil
}

// Download fetches the original attachment of a record item.
func (s *FileService) Download(ctx context.Context, recordID string, itemID int) (domainfile.DownloadResponse, error) {
	f, err := s.Repos.File.GetItemFile(recordID, itemID)
	return s.fetch(ctx, f, err)
}

// DownloadThumbnail fetches the thumbnail of a record item.
func (s *FileService) DownloadThumbnail(ctx context.Context, recordID string, itemID int) (domainfile.DownloadResponse, error) {
	f, err := s.Repos.File.GetItemThumbnail(recordID, itemID)
	return s.fetch(ctx, f, err)
}

func (s *FileService) fetch(ctx context.Context, f domainfile.File, err error) (domainfile.DownloadResponse, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainfile.DownloadResponse{}, ErrNotFound
		}
		return domainfile.DownloadResponse{}, err
	}

	data, err := s.Store.Get(ctx, f.ObjectKey)
	if err != nil {
		return domainfile.DownloadResponse{}, fmt.Errorf("fetch %s: %w", filepath.Base(f.ObjectKey), err)
	}

	return domainfile.DownloadResponse{
		Data: base64.StdEncoding.EncodeToString(data),
		Name: f.Name,
	}, nil
}
