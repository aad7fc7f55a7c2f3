package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Supported console languages (uppercase two-letter tags)
	LanguageEnglish = "EN"
	LanguageArabic  = "AR"
	DefaultLanguage = LanguageEnglish

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderAcceptLanguage = "Accept-Language"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"
	ContextKeyLanguage  = "language"

	// Database table names
	TableTickets        = "support_tickets"
	TableTicketComments = "support_ticket_comments"
	TableReactions      = "support_ticket_comment_reactions"
	TableSupervisors    = "supervisors"
	TableLookupEntries  = "lookup_entries"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
