package handlers

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveUpload stores one uploaded file under dir/subdir with a generated name
// and returns the public /uploads path for it.
func saveUpload(c *gin.Context, file *multipart.FileHeader, dir, subdir string) (string, error) {
	target := filepath.Join(dir, subdir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(target, name)); err != nil {
		return "", err
	}
	return "/uploads/" + subdir + "/" + name, nil
}
