package record

// Record is a single row of the records table.
// Created and Updated are Unix timestamps in seconds.
type Record struct {
	ID          int    `json:"id" example:"1" doc:"Record ID"`
	Name        string `json:"name" example:"Widget" doc:"Record name"`
	Description string `json:"description" example:"A small widget" doc:"Record description"`
	Created     int64  `json:"created" example:"1717171717" doc:"Creation time, unix seconds"`
	Updated     int64  `json:"updated" example:"1717171717" doc:"Last update time, unix seconds"`
}

// Fields is a partial update. Nil pointers leave the stored value untouched,
// Updated is always written.
type Fields struct {
	Name        *string
	Description *string
	Updated     int64
}

// Data is raw request input keyed by field name. A missing key means the
// field was not supplied at all.
type Data map[string]string

const (
	FieldName        = "name"
	FieldDescription = "description"
)

// Has reports whether field is present and non-empty.
func (d Data) Has(field string) bool {
	return d[field] != ""
}
