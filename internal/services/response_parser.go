package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"alfredoptarigan/resume-vibes/internal/models"
)

// rawAnalysis uses pointers so missing fields can be told apart from zero values.
type rawAnalysis struct {
	MatchScore   *json.RawMessage `json:"match_score"`
	VibesSummary *string          `json:"vibes_summary"`
	Strengths    *[]string        `json:"strengths"`
	Weaknesses   *[]string        `json:"weaknesses"`
}

// ParseAnalysis turns a raw model reply into an AnalysisResult. Any deviation from
// the contract fails with ErrAnalysisFailed and no result.
func ParseAnalysis(response string) (*models.AnalysisResult, error) {
	jsonStr, ok := extractJSON(response)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object in model response", ErrAnalysisFailed)
	}

	dec := json.NewDecoder(strings.NewReader(jsonStr))
	dec.UseNumber()

	var raw rawAnalysis
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON in model response: %v", ErrAnalysisFailed, err)
	}

	switch {
	case raw.MatchScore == nil:
		return nil, fmt.Errorf("%w: match_score is missing", ErrAnalysisFailed)
	case raw.VibesSummary == nil:
		return nil, fmt.Errorf("%w: vibes_summary is missing", ErrAnalysisFailed)
	case raw.Strengths == nil:
		return nil, fmt.Errorf("%w: strengths is missing", ErrAnalysisFailed)
	case raw.Weaknesses == nil:
		return nil, fmt.Errorf("%w: weaknesses is missing", ErrAnalysisFailed)
	}

	score, err := parseScore(*raw.MatchScore)
	if err != nil {
		return nil, err
	}

	if n := len(*raw.Strengths); n != models.ListSize {
		return nil, fmt.Errorf("%w: expected %d strengths, got %d", ErrAnalysisFailed, models.ListSize, n)
	}
	if n := len(*raw.Weaknesses); n != models.ListSize {
		return nil, fmt.Errorf("%w: expected %d weaknesses, got %d", ErrAnalysisFailed, models.ListSize, n)
	}

	result := &models.AnalysisResult{
		MatchScore:   score,
		VibesSummary: *raw.VibesSummary,
	}
	copy(result.Strengths[:], *raw.Strengths)
	copy(result.Weaknesses[:], *raw.Weaknesses)

	return result, nil
}

// parseScore accepts only a JSON number literal. Quoted numbers are rejected.
func parseScore(raw json.RawMessage) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, fmt.Errorf("%w: match_score is not valid JSON: %v", ErrAnalysisFailed, err)
	}

	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: match_score %s is not a number", ErrAnalysisFailed, raw)
	}

	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: match_score %q is not a number", ErrAnalysisFailed, n)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: match_score %s is not an integer", ErrAnalysisFailed, n)
	}
	if f < 0 || f > 100 {
		return 0, fmt.Errorf("%w: match_score %s is outside 0-100", ErrAnalysisFailed, n)
	}
	return int(f), nil
}

// extractJSON strips markdown fences and returns the first complete JSON object in
// the text. Braces in surrounding prose are skipped.
func extractJSON(text string) (string, bool) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	for start := strings.Index(text, "{"); start != -1; {
		var obj json.RawMessage
		if err := json.NewDecoder(strings.NewReader(text[start:])).Decode(&obj); err == nil {
			return string(obj), true
		}

		next := strings.Index(text[start+1:], "{")
		if next == -1 {
			break
		}
		start += next + 1
	}
	return "", false
}
