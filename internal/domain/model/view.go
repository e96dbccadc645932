package model

// ViewConfiguration is the fully derived list-view state handed to the
// table widget. It is recomputed on every render and never persisted.
type ViewConfiguration struct {
	PageSize       int            `json:"page_size"`
	ActivePage     int            `json:"active_page"`
	Columns        []ColumnHeader `json:"columns"`
	DefaultColumns []ColumnHeader `json:"default_columns"`
	Title          string         `json:"title"`
	Rows           []Record       `json:"rows"`
	TotalCount     int            `json:"total_count"`
}
