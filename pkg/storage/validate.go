package storage

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxFileSize is the upload ceiling for resumes, avatars and logos.
const MaxFileSize = 10 << 20 // 10MB

// FileKind selects the whitelist a file is validated against.
type FileKind string

const (
	KindResume FileKind = "resume" // PDF, DOC, DOCX
	KindImage  FileKind = "image"  // JPEG, PNG (avatars, logos)
)

// Magic byte signatures per extension. Content must match the claimed
// extension so a renamed binary cannot slip through.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                 // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},         // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                 // ZIP (PK..)
}

var kindExtensions = map[FileKind]map[string]bool{
	KindResume: {".pdf": true, ".doc": true, ".docx": true},
	KindImage:  {".jpg": true, ".jpeg": true, ".png": true},
}

var kindMIMETypes = map[FileKind]map[string]bool{
	KindResume: {
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		// DOC/DOCX are often sniffed as these; magic bytes already verified
		"application/zip":          true,
		"application/octet-stream": true,
	},
	KindImage: {
		"image/jpeg": true,
		"image/png":  true,
	},
}

// ValidateFile checks size, extension whitelist, magic bytes and sniffed MIME
// type for an upload. Returns the extension on success.
func ValidateFile(filename string, data []byte, kind FileKind) (string, error) {
	if len(data) == 0 {
		return "", errors.New("file is empty")
	}
	if len(data) > MaxFileSize {
		return "", errors.New("file exceeds the 10MB limit")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("file has no extension")
	}
	if !kindExtensions[kind][ext] {
		return "", errors.New("file extension not allowed: " + ext)
	}

	if !matchesMagicBytes(ext, data) {
		return "", errors.New("file content does not match extension")
	}

	detected := http.DetectContentType(data)
	// DetectContentType appends parameters for some types ("text/plain; charset=utf-8")
	if i := strings.Index(detected, ";"); i >= 0 {
		detected = detected[:i]
	}
	if !kindMIMETypes[kind][detected] {
		return "", errors.New("MIME type not allowed: " + detected)
	}

	return ext, nil
}

func matchesMagicBytes(ext string, data []byte) bool {
	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}
	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// ContentTypeFor maps a validated extension to the Content-Type stored with
// the object.
func ContentTypeFor(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
