package store

import (
	"fmt"
	"os"
	"time"
)

// AuditLog appends one comma-separated line per capture:
// timestamp,essid,encryption,points. The file is append-only; nothing in
// the plugin reads it back.
type AuditLog struct {
	path string
}

// NewAuditLog builds an audit log writing to path.
func NewAuditLog(path string) *AuditLog {
	return &AuditLog{path: path}
}

// Append records one capture. The timestamp is Unix seconds.
func (a *AuditLog) Append(at time.Time, essid, encryption string, points int) error {
	f, err := os.OpenFile(a.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d,%s,%s,%d\n", at.Unix(), essid, encryption, points); err != nil {
		return fmt.Errorf("append audit record: %w", err)
	}
	return nil
}
