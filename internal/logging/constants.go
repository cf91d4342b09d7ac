package logging

// Standardized field names for structured logging.
const (
	FieldFile          = "file_path"
	FieldTransactionID = "transaction_id"
	FieldMerchant      = "merchant"
	FieldAccount       = "account"
	FieldCategory      = "category"
	FieldDate          = "date"
	FieldAmount        = "amount"
	FieldReason        = "reason"
	FieldOperation     = "operation"
	FieldBackend       = "backend"
	FieldVersion       = "version"
	FieldError         = "error"
	FieldDuration      = "duration_ms"
	FieldCount         = "count"
	FieldSkipped       = "skipped"
	FieldDelimiter     = "delimiter"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
