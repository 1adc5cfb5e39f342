package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pdfBytes() []byte {
	return []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
}

func pngBytes() []byte {
	return append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
}

func jpegBytes() []byte {
	return append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 64)...)
}

func TestValidateFile(t *testing.T) {
	t.Run("accepts a PDF resume", func(t *testing.T) {
		ext, err := ValidateFile("cv.pdf", pdfBytes(), KindResume)
		assert.NoError(t, err)
		assert.Equal(t, ".pdf", ext)
	})

	t.Run("accepts JPEG and PNG images", func(t *testing.T) {
		ext, err := ValidateFile("me.jpg", jpegBytes(), KindImage)
		assert.NoError(t, err)
		assert.Equal(t, ".jpg", ext)

		ext, err = ValidateFile("logo.PNG", pngBytes(), KindImage)
		assert.NoError(t, err)
		assert.Equal(t, ".png", ext)
	})

	t.Run("rejects an image posing as a resume", func(t *testing.T) {
		_, err := ValidateFile("cv.png", pngBytes(), KindResume)
		assert.Error(t, err)
	})

	t.Run("rejects content that does not match the extension", func(t *testing.T) {
		_, err := ValidateFile("cv.pdf", pngBytes(), KindResume)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
	})

	t.Run("rejects empty and extensionless files", func(t *testing.T) {
		_, err := ValidateFile("cv.pdf", nil, KindResume)
		assert.Error(t, err)

		_, err = ValidateFile("resume", pdfBytes(), KindResume)
		assert.Error(t, err)
	})

	t.Run("rejects files over the size ceiling", func(t *testing.T) {
		big := append(pdfBytes(), make([]byte, MaxFileSize)...)
		_, err := ValidateFile("cv.pdf", big, KindResume)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "10MB")
	})
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentTypeFor(".jpeg"))
	assert.Equal(t, "application/pdf", ContentTypeFor(".pdf"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor(".bin"))
}
