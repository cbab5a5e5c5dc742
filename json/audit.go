// Package json persists the dispatch audit trail as JSON lines.
package json

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/herald"
)

var _ herald.Auditor = (*AuditLog)(nil)

// AuditLog appends one JSON record per dispatch to a writer. It is safe for
// concurrent use.
type AuditLog struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
}

// NewAuditLog writes records to w. Closing the log does not close w.
func NewAuditLog(w io.Writer) *AuditLog {
	return &AuditLog{w: w}
}

// OpenAuditLog opens path for appending, creating parent directories as
// needed.
func OpenAuditLog(path string) (*AuditLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	return &AuditLog{w: f, closer: f}, nil
}

// Record writes d as a single line.
func (a *AuditLog) Record(_ context.Context, d herald.Dispatch) error {
	data, err := MarshalDispatch(d)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	data = append(data, '\n')
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.w.Write(data); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// Close closes the underlying file when the log owns it.
func (a *AuditLog) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// ReadAuditLog decodes every record in r. Blank lines are skipped.
func ReadAuditLog(r io.Reader) ([]herald.Dispatch, error) {
	var out []herald.Dispatch
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		d, err := UnmarshalDispatch(sc.Bytes())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, d)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}
	return out, nil
}
