// Package sla loads the per-epoch service level record of the designated
// service operator.
package sla

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
)

// Record is the service operator's SLA outcome for one epoch.
type Record struct {
	Hotkey       string  `json:"hotkey"`
	Budget       float64 `json:"budget"`
	ServiceScore float64 `json:"service_score"`
}

// ParseError reports an SLA file that exists but could not be decoded.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse sla %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Path returns the SLA file of epoch under dir.
func Path(dir, epoch string) string {
	return filepath.Join(dir, epoch+".json")
}

// Load reads the SLA record at path. A missing file returns (nil, nil).
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read sla %s: %w", path, err)
	}

	var rec Record
	if err := sonic.Unmarshal(data, &rec); err != nil {
		return nil, &ParseError{File: filepath.Base(path), Err: err}
	}
	return &rec, nil
}
