package logging

// Standardized field names for structured logging. Using these constants keeps
// log output consistent and easy to filter.
const (
	FieldFile     = "file_path"
	FieldBank     = "bank"
	FieldStrategy = "strategy"
	FieldRow      = "row"
	FieldCategory = "category"
	FieldCount    = "count"
	FieldSize     = "size_bytes"
	FieldDuration = "duration_ms"
	FieldReason   = "reason"
)
