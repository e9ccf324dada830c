package models

type AnalyzeResponse struct {
	Result   *AnalysisResult `json:"result"`
	Document *DocumentInfo   `json:"document,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type ModelsResponse struct {
	Models []string `json:"models"`
}

type AnalysisLogResponse struct {
	Analyses []AnalysisLog `json:"analyses"`
}
