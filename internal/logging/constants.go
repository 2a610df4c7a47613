package logging

// Standardized field names for structured logging.
const (
	FieldFile      = "file_path"
	FieldCategory  = "category"
	FieldMonth     = "month"
	FieldCount     = "count"
	FieldGroups    = "groups"
	FieldFlagged   = "over_budget"
	FieldDelimiter = "delimiter"
	FieldLine      = "line"
	FieldSeed      = "seed"
)
