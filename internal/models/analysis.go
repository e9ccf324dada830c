package models

import "encoding/json"

// ListSize is the number of strengths and weaknesses every analysis carries.
const ListSize = 3

// AnalysisRequest is one user submission. It is never persisted.
type AnalysisRequest struct {
	JobDescription string
	ResumeText     string
}

// AnalysisResult is the validated model output. Only the response parser builds it.
type AnalysisResult struct {
	MatchScore   int              `json:"match_score"`
	VibesSummary string           `json:"vibes_summary"`
	Strengths    [ListSize]string `json:"strengths"`
	Weaknesses   [ListSize]string `json:"weaknesses"`
}

// CanonicalJSON renders the result in the same shape the model is asked to return.
func (r AnalysisResult) CanonicalJSON() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
