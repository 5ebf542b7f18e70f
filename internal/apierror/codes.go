package apierror

// Error type URIs following the urn:sliptrack:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:sliptrack:error:validation"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:sliptrack:error:bad_request"

	// TypeInvalidBackup indicates an unparsable backup document (400)
	TypeInvalidBackup = "urn:sliptrack:error:invalid_backup"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:sliptrack:error:internal"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation    = "Validation Error"
	TitleBadRequest    = "Bad Request"
	TitleInvalidBackup = "Invalid Backup Document"
	TitleInternal      = "Internal Server Error"
)
