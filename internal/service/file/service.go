package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// MaxProfilePictureSide is the longest edge kept for profile pictures.
const MaxProfilePictureSide = 512

// MaxSourcePixels bounds the decoded size of an uploaded profile picture.
const MaxSourcePixels = 6000 * 6000

var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrImageTooLarge   = fmt.Errorf("%w: image dimensions too large", ErrInvalidFileType)
)

var (
	imageExts    = []string{".jpg", ".jpeg", ".png"}
	resumeExts   = []string{".pdf", ".doc", ".docx"}
	documentExts = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".txt", ".csv", ".jpg", ".jpeg", ".png"}
)

type FileService interface {
	// UploadProfilePicture stores a downscaled JPEG copy of an image
	UploadProfilePicture(ctx context.Context, userID string, file io.Reader, filename string) (string, error)

	// UploadResume stores a candidate resume under resumes/
	UploadResume(ctx context.Context, jobID string, file io.Reader, filename string) (string, error)

	// UploadDocument stores a company document under company_docs/
	UploadDocument(ctx context.Context, file io.Reader, filename string) (string, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
	FileURL(path string) string
}

type fileServiceImpl struct {
	storage   storage.FileStorage
	maxPixels int
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage:   storage,
		maxPixels: MaxSourcePixels,
	}
}

func (s *fileServiceImpl) UploadProfilePicture(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	if _, err := checkExt(filename, imageExts); err != nil {
		return "", err
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	// Read the header first so a small file cannot claim a huge canvas.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(buffer))
	if err != nil {
		return "", fmt.Errorf("%w: not a decodable image", ErrInvalidFileType)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > s.maxPixels/cfg.Height {
		return "", fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return "", fmt.Errorf("%w: not a decodable image", ErrInvalidFileType)
	}
	img = fitImage(img, MaxProfilePictureSide)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode JPEG: %w", err)
	}

	p := path.Join("profile_pics", userID, uuid.New().String()+".jpg")
	uploadedPath, err := s.storage.Upload(ctx, buf, p, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload profile picture: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) UploadResume(ctx context.Context, jobID string, file io.Reader, filename string) (string, error) {
	ext, err := checkExt(filename, resumeExts)
	if err != nil {
		return "", err
	}

	p := path.Join("resumes", jobID, uuid.New().String()+ext)
	uploadedPath, err := s.storage.Upload(ctx, file, p, "application/octet-stream")
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) UploadDocument(ctx context.Context, file io.Reader, filename string) (string, error) {
	ext, err := checkExt(filename, documentExts)
	if err != nil {
		return "", err
	}

	p := path.Join("company_docs", uuid.New().String()+ext)
	uploadedPath, err := s.storage.Upload(ctx, file, p, "application/octet-stream")
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) FileURL(path string) string {
	return s.storage.URL(path)
}

// ==================== HELPER FUNCTIONS ====================

func checkExt(filename string, allowed []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == a {
			return ext, nil
		}
	}
	return "", fmt.Errorf("%w: %s allowed", ErrInvalidFileType, strings.Join(allowed, ", "))
}

// fitImage downscales img so neither side exceeds maxSide, keeping the
// aspect ratio. Smaller images are returned unchanged.
func fitImage(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}
	if w >= h {
		h = h * maxSide / w
		w = maxSide
	} else {
		w = w * maxSide / h
		h = maxSide
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return resizeImage(img, w, h)
}

// resizeImage resizes an image to the specified dimensions using high-quality interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	// Use CatmullRom for high-quality downscaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
