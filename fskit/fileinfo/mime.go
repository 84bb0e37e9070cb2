package fileinfo

import "strings"

// DefaultMIMEType is returned for extensions with no table entry.
const DefaultMIMEType = "application/octet-stream"

// mimeTypes maps lowercase file extensions to MIME types.
var mimeTypes = map[string]string{
	".txt":  "text/plain",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".pdf":  "application/pdf",
	".doc":  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".exe":  "application/vnd.microsoft.portable-executable",
	".zip":  "application/zip",
}

// MIMEByExtension returns the MIME type for a file extension (leading dot
// included). The lookup is case-insensitive; unknown extensions map to
// application/octet-stream.
func MIMEByExtension(ext string) string {
	if mimeType, ok := mimeTypes[strings.ToLower(ext)]; ok {
		return mimeType
	}
	return DefaultMIMEType
}
