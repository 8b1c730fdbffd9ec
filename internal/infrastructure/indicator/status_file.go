// Package indicator publishes the activation state to status bars.
package indicator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/logging"
)

// Compile-time interface check.
var _ port.Indicator = (*StatusFile)(nil)

// Status is the document written to the status file. Field names follow the
// waybar custom module return-type=json format.
type Status struct {
	Text    string `json:"text"`
	Alt     string `json:"alt"`
	Tooltip string `json:"tooltip"`
	Class   string `json:"class"`
}

// StatusFor builds the status document for the activation flag.
func StatusFor(active bool) Status {
	if active {
		return Status{Text: "on", Alt: "on", Tooltip: "Keeping awake", Class: "active"}
	}
	return Status{Text: "off", Alt: "off", Tooltip: "Sleep allowed", Class: "inactive"}
}

// StatusFile writes the indicator state to a JSON file that status bars poll
// or watch.
type StatusFile struct {
	path string
}

// NewStatusFile creates an indicator writing to path.
func NewStatusFile(path string) *StatusFile {
	return &StatusFile{path: path}
}

// SetIndicator replaces the file atomically.
func (f *StatusFile) SetIndicator(ctx context.Context, active bool) error {
	content, err := sonic.Marshal(StatusFor(active))
	if err != nil {
		return fmt.Errorf("encode status: %w", err)
	}
	content = append(content, '\n')

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create status directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".status-*")
	if err != nil {
		return fmt.Errorf("create temp status: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write status: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close status: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace status: %w", err)
	}

	logging.FromContext(ctx).Debug().Bool("active", active).Str("path", f.path).Msg("indicator updated")
	return nil
}

// Read returns the status currently on disk.
func (f *StatusFile) Read() (Status, error) {
	var st Status
	content, err := os.ReadFile(f.path)
	if err != nil {
		return st, err
	}
	if err := sonic.Unmarshal(content, &st); err != nil {
		return st, fmt.Errorf("decode status: %w", err)
	}
	return st, nil
}

// Multi fans one indicator update out to several indicators. Every indicator
// is attempted; the first error is returned.
type Multi []port.Indicator

// SetIndicator implements port.Indicator.
func (m Multi) SetIndicator(ctx context.Context, active bool) error {
	var first error
	for _, ind := range m {
		if ind == nil {
			continue
		}
		if err := ind.SetIndicator(ctx, active); err != nil && first == nil {
			first = err
		}
	}
	return first
}
