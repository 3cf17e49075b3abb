package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"sideb/models"
	"sideb/pkg/log"
	"sideb/pkg/snowflake"
	"sideb/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrStorageInconsistency reports a ledger record attempt for an object that
// does not actually exist in the blob store. The upload is failed and the
// admin sees it; nothing is recorded.
var ErrStorageInconsistency = errors.New("image blob missing at storage path")

// ImageLedger is the persisted ledger of content images. Satisfied by
// *dao.Image; tests substitute an in-memory implementation.
type ImageLedger interface {
	CreateImage(ctx context.Context, image *models.Image) error
	FindByOwnerAndStatus(ctx context.Context, userID int64, statuses []string) ([]*models.Image, error)
	UpdateStatusByIDs(ctx context.Context, ids []int64, status string) error
	FindSweepCandidates(ctx context.Context, cutoff *time.Time) ([]*models.Image, error)
}

// BlobStore is the object-storage capability. Satisfied by *oss.Storage.
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
}

var _ IImageService = (*ImageService)(nil)

type IImageService interface {
	// UploadContentImage uploads an image destined for a post body and
	// records it in the ledger as provisional.
	UploadContentImage(ctx context.Context, userID int64, header *multipart.FileHeader) (*types.ContentImageResp, error)

	// UploadCoverImage is the one-shot path for a post's representative
	// image. No ledger involvement; the URL is stored on the post row.
	UploadCoverImage(ctx context.Context, header *multipart.FileHeader) (*types.CoverImageResp, error)

	// ListOwnerImages returns the caller's live (provisional or adopted)
	// ledger entries for the editor sidebar.
	ListOwnerImages(ctx context.Context, userID int64) (*types.ListImagesResp, error)

	// Reconcile re-derives adopted/provisional status from saved content.
	Reconcile(ctx context.Context, userID int64, content string) error

	// Sweep deletes aged-out provisional images. thresholdHours 0 sweeps
	// every provisional row regardless of age.
	Sweep(ctx context.Context, thresholdHours int) (*types.SweepReport, error)
}

type ImageService struct {
	Ledger ImageLedger
	Blobs  BlobStore
}

const maxImageSize int64 = 10 << 20 // 10MB

// openAndValidate checks size, sniffs the MIME type from the first 512 bytes
// and decodes the header to confirm it is a real image. Returns the open file
// rewound to the start and the canonical extension.
func openAndValidate(header *multipart.FileHeader) (multipart.File, string, error) {
	if header == nil {
		return nil, "", fmt.Errorf("missing image")
	}
	if header.Size <= 0 || header.Size > maxImageSize {
		return nil, "", fmt.Errorf("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return nil, "", err
	}

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		f.Close()
		return nil, "", fmt.Errorf("uploaded file is not seekable")
	}

	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		f.Close()
		return nil, "", fmt.Errorf("unsupported image type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	_, format, err := image.DecodeConfig(seeker)
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("invalid image: %w", err)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	ext := "." + strings.ToLower(format)
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	return f, ext, nil
}

func (s *ImageService) UploadContentImage(ctx context.Context, userID int64, header *multipart.FileHeader) (*types.ContentImageResp, error) {
	f, ext, err := openAndValidate(header)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	imageID := snowflake.GenID()
	objectKey := fmt.Sprintf("content/%s/%d%s",
		time.Now().Format("2006/01/02"),
		imageID,
		ext,
	)

	if err := s.Blobs.Put(ctx, objectKey, io.LimitReader(f, maxImageSize+1)); err != nil {
		return nil, err
	}

	// Record only what verifiably exists in storage.
	exists, err := s.Blobs.Exists(ctx, objectKey)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrStorageInconsistency, objectKey)
	}

	now := time.Now()
	entry := &models.Image{
		ID:          imageID,
		UserID:      userID,
		StoragePath: objectKey,
		PublicURL:   s.Blobs.PublicURL(objectKey),
		Status:      types.ImageStatusProvisional,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Ledger.CreateImage(ctx, entry); err != nil {
		// The blob without a ledger row would leak forever; best effort
		// to remove it before reporting the failure.
		if delErr := s.Blobs.Delete(ctx, objectKey); delErr != nil {
			log.L.Warn("cleanup after failed ledger insert",
				zap.String("storage_path", objectKey), zap.Error(delErr))
		}
		return nil, fmt.Errorf("record image: %w", err)
	}

	return &types.ContentImageResp{
		ImageID:     entry.ID,
		URL:         entry.PublicURL,
		Name:        header.Filename,
		StoragePath: entry.StoragePath,
	}, nil
}

func (s *ImageService) UploadCoverImage(ctx context.Context, header *multipart.FileHeader) (*types.CoverImageResp, error) {
	f, ext, err := openAndValidate(header)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	objectKey := fmt.Sprintf("public/%s/%s%s",
		time.Now().Format("2006/01/02"),
		uuid.NewString(),
		ext,
	)

	if err := s.Blobs.Put(ctx, objectKey, io.LimitReader(f, maxImageSize+1)); err != nil {
		return nil, err
	}

	return &types.CoverImageResp{URL: s.Blobs.PublicURL(objectKey)}, nil
}

func (s *ImageService) ListOwnerImages(ctx context.Context, userID int64) (*types.ListImagesResp, error) {
	entries, err := s.Ledger.FindByOwnerAndStatus(ctx, userID,
		[]string{types.ImageStatusProvisional, types.ImageStatusAdopted})
	if err != nil {
		return nil, err
	}

	resp := &types.ListImagesResp{Images: make([]*types.ContentImageItem, 0, len(entries))}
	for _, e := range entries {
		resp.Images = append(resp.Images, &types.ContentImageItem{
			ImageID:   e.ID,
			URL:       e.PublicURL,
			Status:    e.Status,
			CreatedAt: e.CreatedAt,
		})
	}
	return resp, nil
}
