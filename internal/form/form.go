// Package form reads image uploads from multipart forms.
package form

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	magicNumberSeek = 512

	// ImageField is the form field images are uploaded under.
	ImageField = "image"
	// MaxImageBytes caps the size of a single upload.
	MaxImageBytes = 8 << 20
)

// allowedImageTypes lists the simple MIME types we accept.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var mimeTypeSuffix = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var (
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrNoImageUploaded     = errors.New("image not uploaded")
	ErrImageTooLarge       = errors.New("image too large")
)

type File struct {
	Size     int64
	Data     []byte
	Suffix   string
	MimeType string
}

// ReadFile reads an image and detects its type from its content.
func ReadFile(file io.ReadCloser) (*File, error) {
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return DetectImage(data)
}

// DetectImage checks that data is an allowed image no larger than
// MaxImageBytes.
func DetectImage(data []byte) (*File, error) {
	if len(data) > MaxImageBytes {
		return nil, ErrImageTooLarge
	}

	contentType := http.DetectContentType(data[:min(len(data), magicNumberSeek)])
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("mime type %q: %w", contentType, ErrUnsupportedMimeType)
	}

	return &File{
		Size:     int64(len(data)),
		MimeType: contentType,
		Suffix:   mimeTypeSuffix[contentType],
		Data:     data,
	}, nil
}

// ReadImage reads the image uploaded under ImageField.
func ReadImage(r *http.Request) (*File, error) {
	if err := r.ParseMultipartForm(MaxImageBytes); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, errors.Join(ErrNoImageUploaded, err)
		}
		return nil, fmt.Errorf("parsing form: %w", err)
	}

	f, _, err := r.FormFile(ImageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, errors.Join(ErrNoImageUploaded, err)
	} else if err != nil {
		return nil, fmt.Errorf("getting file from form: %w", err)
	}
	return ReadFile(f)
}
