package model

// CoverageResult holds the two counters of a coverage invocation.
type CoverageResult struct {
	CoveredCount   int `yaml:"coveredCount"`
	UncoveredCount int `yaml:"uncoveredCount"`
}

// CoverageEnvelope is the JSON result of a coverage invocation.
type CoverageEnvelope struct {
	Expressions *CoverageExpressions `json:"expressions"`
}

// CoverageExpressions carries the checker's expression counters.
type CoverageExpressions struct {
	CoveredCount   int `json:"covered_count"`
	UncoveredCount int `json:"uncovered_count"`
}
