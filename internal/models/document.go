package models

// DocumentInfo describes the uploaded résumé.
type DocumentInfo struct {
	Filename   string  `json:"filename"`
	SizeKB     float64 `json:"size_kb"`
	Pages      int     `json:"pages"`
	Characters int     `json:"characters"`
}
