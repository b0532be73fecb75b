package service

import (
	"fmt"
	"strings"
)

// allowedFileTypes is the allow-list of declared upload content types.
var allowedFileTypes = []string{
	"image/png",
	"image/jpg",
	"image/jpeg",
	"image/webp",
	"image/gif",
}

// ValidateFileType checks the declared content type of an uploaded part
// against the allow-list. The check runs before any decode attempt.
func ValidateFileType(fileType string) error {
	for _, allowed := range allowedFileTypes {
		if fileType == allowed {
			return nil
		}
	}
	return ErrInvalidRequest(fmt.Sprintf("Invalid file type '%s', allowed types are: %s",
		fileType, strings.Join(allowedFileTypes, ", ")))
}
