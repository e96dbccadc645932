package model

// Record is one row of a model list, field name -> value. Values keep
// whatever shape the data layer returned (strings, numbers, nested
// objects); cell rendering is the table widget's concern.
type Record = map[string]any

// Page is one bounded slice of a model's records plus the total row count
// across all pages.
type Page struct {
	Results []Record `json:"results"`
	Count   int      `json:"count"`
}
