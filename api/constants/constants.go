package constants

// Common error messages
const (
	ErrInvalidJSON      = "invalid json or missing fields"
	ErrMethodNotAllowed = "Method Not Allowed"
	ErrMissingFile      = "missing uploaded file"
	ErrMultipartParse   = "Failed to parse multipart form"
)

// Content Types
const (
	ContentTypeJSON   = "application/json"
	ContentTypeHeader = "Content-Type"
	ContentTypeXLSX   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Date formats
const (
	DateFormat   = "2006-01-02"
	DateFormatBR = "02/01/2006"
)

// Reserved report labels. These are part of the contract with downstream
// renderers and must stay verbatim.
const (
	CategoryFallback = "Outros"
	NoDateLabel      = "Sem data"
	UnitFallback     = "Não informado"
)

// Upload limits
const (
	MaxUploadBytes = 32 << 20
)
