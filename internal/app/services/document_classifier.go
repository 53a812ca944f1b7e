package services

import (
	"path"
	"strings"

	"github.com/gosimple/slug"

	"github.com/selimk/coursehub/internal/app/models"
	"github.com/selimk/coursehub/internal/pkg/apperrors"
)

// allowedExtensions is the upload allow-list. Anything outside it is
// rejected before a single byte is written.
var allowedExtensions = map[string]struct{}{
	"pdf": {}, "doc": {}, "docx": {}, "xls": {}, "xlsx": {},
	"ppt": {}, "pptx": {}, "txt": {}, "csv": {}, "zip": {},
	"rar": {}, "jpg": {}, "jpeg": {}, "png": {}, "gif": {},
}

// extensionTypes maps allowed extensions to their document type. An allowed
// extension missing from this table falls back to DocumentTypeOther.
var extensionTypes = map[string]models.DocumentType{
	"pdf":  models.DocumentTypePDF,
	"doc":  models.DocumentTypeDoc,
	"docx": models.DocumentTypeDoc,
	"xls":  models.DocumentTypeExcel,
	"xlsx": models.DocumentTypeExcel,
	"csv":  models.DocumentTypeExcel,
	"ppt":  models.DocumentTypePPT,
	"pptx": models.DocumentTypePPT,
	"jpg":  models.DocumentTypeImage,
	"jpeg": models.DocumentTypeImage,
	"png":  models.DocumentTypeImage,
	"gif":  models.DocumentTypeImage,
	"txt":  models.DocumentTypeOther,
	"zip":  models.DocumentTypeOther,
	"rar":  models.DocumentTypeOther,
}

// NormalizeExtension extracts the lowercase extension of a filename without
// the leading dot. "Syllabus.PDF" yields "pdf"; a name with no dot yields "".
func NormalizeExtension(filename string) string {
	ext := path.Ext(filename)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ClassifyExtension validates an extension against the allow-list and
// returns its document type. Disallowed extensions produce
// ErrUnsupportedFileType.
func ClassifyExtension(ext string) (models.DocumentType, error) {
	ext = strings.ToLower(ext)
	if _, ok := allowedExtensions[ext]; !ok {
		return "", apperrors.ErrUnsupportedFileType
	}
	if docType, ok := extensionTypes[ext]; ok {
		return docType, nil
	}
	return models.DocumentTypeOther, nil
}

// BuildStoragePath derives the deterministic storage location of a course
// document. The same department, course, title and extension always map to
// the same path, so re-uploads collide instead of accumulating.
func BuildStoragePath(departmentCode, courseCode, title, ext string) string {
	return path.Join("course_documents", departmentCode, courseCode, slug.Make(title)+"."+strings.ToLower(ext))
}
