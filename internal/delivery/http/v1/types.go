package v1

import (
	"encoding/json"
	"io"
	"strings"

	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

// StringList accepts either a JSON array or a comma-separated string. Clients
// send skills both ways.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = trimEach(arr)
		return nil
	}

	var csv string
	if err := json.Unmarshal(data, &csv); err != nil {
		return err
	}
	*s = trimEach(strings.Split(csv, ","))
	return nil
}

func splitCSV(s string) []string {
	return strings.Split(s, ",")
}

func trimEach(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// readUpload pulls one multipart file field and enforces the size ceiling
// before the whole body is buffered.
func readUpload(c *gin.Context, field string) (string, []byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, apperror.BadRequest("No file uploaded")
	}
	if fileHeader.Size > storage.MaxFileSize {
		return "", nil, apperror.BadRequest("File exceeds the 10MB limit")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, apperror.BadRequest("Could not read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxFileSize+1))
	if err != nil {
		return "", nil, apperror.BadRequest("Could not read uploaded file")
	}
	if int64(len(data)) > storage.MaxFileSize {
		return "", nil, apperror.BadRequest("File exceeds the 10MB limit")
	}
	return fileHeader.Filename, data, nil
}
