package domain

// ExportFormat is the wire format of an article export.
type ExportFormat string

const (
	ExportFormatNDJSON ExportFormat = "ndjson"
	ExportFormatCSV    ExportFormat = "csv"
)

// ValidFormats contains all valid export formats.
var ValidFormats = []ExportFormat{ExportFormatNDJSON, ExportFormatCSV}

// IsValidFormat checks if an export format is valid.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if string(f) == format {
			return true
		}
	}
	return false
}

// ContentType returns the HTTP content type for the format.
func (f ExportFormat) ContentType() string {
	if f == ExportFormatCSV {
		return "text/csv"
	}
	return "application/x-ndjson"
}
