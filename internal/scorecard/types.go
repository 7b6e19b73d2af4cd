// Package scorecard decodes the per-submission scorecards of an epoch snapshot.
package scorecard

import "fmt"

// ScoreCard is the recorded quality signal of one submission against one
// requirement. Counts are decoded as float64 so that producers writing 10.0
// instead of 10 are accepted; consumers truncate.
type ScoreCard struct {
	Requirement string     `json:"requirement"`
	MinerGithub string     `json:"miner_github"`
	Hotkey      string     `json:"hotkey,omitempty"`
	SpecChecks  SpecChecks `json:"spec_checks"`
	Coverage    Coverage   `json:"coverage"`
	Quality     Quality    `json:"quality"`
	Perf        Perf       `json:"perf"`
}

type SpecChecks struct {
	Total  float64 `json:"total"`
	Passed float64 `json:"passed"`
}

type Coverage struct {
	Delta float64 `json:"delta"`
}

type Quality struct {
	ComplexityDelta float64 `json:"complexity_delta"`
	DupDelta        float64 `json:"dup_delta"`
	Lints           float64 `json:"lints"`
}

// Perf deltas: negative latency and positive throughput are improvements.
type Perf struct {
	LatencyMsDelta  float64 `json:"latency_ms_delta"`
	ThroughputDelta float64 `json:"throughput_delta"`
}

// ParseError reports a scorecard file that could not be decoded.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse scorecard %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Result is one snapshot file: either a decoded Card or a parse error.
type Result struct {
	File string
	Card ScoreCard
	Err  *ParseError
}

// OK reports whether the file decoded.
func (r Result) OK() bool {
	return r.Err == nil
}
