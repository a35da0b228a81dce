package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/anandamid/presensi-backend-go/internal/pkg/storage"
)

// PhotoKind selects the storage prefix for an uploaded photo.
type PhotoKind string

const (
	PhotoCheckIn    PhotoKind = "masuk"
	PhotoCheckOut   PhotoKind = "keluar"
	PhotoSick       PhotoKind = "sakit"
	PhotoLeaveProof PhotoKind = "bukti-izin"
)

type FileService interface {
	// UploadPhoto compresses and stores a check-in, check-out, or sick
	// photo under presensi/{tanggal}/.
	UploadPhoto(ctx context.Context, userID int64, tanggal string, kind PhotoKind, file io.Reader, filename string) (string, error)

	// UploadLeaveProof stores an izin attachment without recompression.
	UploadLeaveProof(ctx context.Context, userID int64, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	URLFor(path string) string
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

// UploadPhoto implements FileService.
// Photos are recompressed to 50KB - 150KB so a month of check-ins stays
// small on disk.
func (s *fileServiceImpl) UploadPhoto(ctx context.Context, userID int64, tanggal string, kind PhotoKind, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	compressed, err := compressImage(buffer, 150*1024, 50*1024)
	if err != nil {
		return "", fmt.Errorf("failed to compress image: %w", err)
	}

	// presensi/{tanggal}/{userID}-{kind}-{timestamp}.jpg, always JPEG after
	// compression.
	newFilename := fmt.Sprintf("%d-%s-%d.jpg", userID, kind, time.Now().Unix())
	path := filepath.Join("presensi", tanggal, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return uploadedPath, nil
}

// UploadLeaveProof implements FileService.
func (s *fileServiceImpl) UploadLeaveProof(ctx context.Context, userID int64, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	newFilename := fmt.Sprintf("%s-%d%s", uuid.New().String(), time.Now().Unix(), ext)
	path := filepath.Join("izin", fmt.Sprintf("%d", userID), newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, "application/octet-stream")
	if err != nil {
		return "", fmt.Errorf("failed to upload leave proof: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile implements FileService.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// URLFor implements FileService. Local storage URLs do not expire.
func (s *fileServiceImpl) URLFor(path string) string {
	url, err := s.storage.GetURL(context.Background(), path, 24*time.Hour)
	if err != nil {
		return ""
	}
	return url
}

// compressImage squeezes an image into the [minSize, maxSize] byte range,
// first by lowering JPEG quality and then by downscaling.
func compressImage(buffer []byte, maxSize int, minSize int) ([]byte, error) {
	if len(buffer) <= maxSize && len(buffer) >= minSize {
		return buffer, nil
	}

	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	originalWidth := bounds.Dx()
	originalHeight := bounds.Dy()

	quality := 85
	var compressed []byte

	for quality >= 50 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		compressed = buf.Bytes()

		if len(compressed) <= maxSize && len(compressed) >= minSize {
			return compressed, nil
		}
		if len(compressed) > maxSize {
			quality -= 5
			continue
		}
		if len(compressed) < minSize && quality <= 60 {
			return compressed, nil
		}
		break
	}

	if len(compressed) > maxSize {
		targetSize := 100 * 1024
		ratio := math.Sqrt(float64(targetSize) / float64(len(compressed)))
		newWidth := int(float64(originalWidth) * ratio)
		newHeight := int(float64(originalHeight) * ratio)

		if newWidth < 600 {
			newWidth = 600
		}
		if newHeight < 400 {
			newHeight = 400
		}

		resized := resizeImage(img, newWidth, newHeight)

		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 70}); err != nil {
			return nil, fmt.Errorf("failed to encode resized image: %w", err)
		}
		compressed = buf.Bytes()
	}

	return compressed, nil
}

func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	// CatmullRom for high-quality downscaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
