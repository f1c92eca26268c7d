package domain

import (
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatText        Format = "text"
	FormatPDF         Format = "pdf"
	FormatWord        Format = "word"
	FormatSpreadsheet Format = "spreadsheet"
	FormatUnknown     Format = "unknown"
)

// UploadExtensions lists the file extensions accepted by the upload form.
var UploadExtensions = []string{"txt", "pdf", "docx", "doc", "csv", "xls", "xlsx"}

// FormatFromName returns the declared format for a file name, based on its extension.
func FormatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return FormatText
	case ".pdf":
		return FormatPDF
	case ".docx", ".doc":
		return FormatWord
	case ".csv", ".xls", ".xlsx":
		return FormatSpreadsheet
	default:
		return FormatUnknown
	}
}
