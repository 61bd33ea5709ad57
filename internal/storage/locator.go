package storage

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Target is the resolved storage location: either a file path whose parent
// directory is known to be writable, or the transient sentinel (empty path)
// meaning an in-memory, process-lifetime store.
type Target struct {
	Path string
}

func (t Target) Transient() bool {
	return t.Path == ""
}

const filePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

// DSN returns the read-write connection string for the target, carrying the
// connection-scoped pragmas so every pooled connection gets them.
func (t Target) DSN() string {
	if t.Transient() {
		return "file::memory:?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	}
	return "file:" + t.Path + "?" + filePragmas
}

// ReadOnlyDSN returns the connection string the gateway uses. Opening a
// missing file in ro mode fails, which the provider treats as a degradation
// signal rather than an error.
func (t Target) ReadOnlyDSN() string {
	if t.Transient() {
		return t.DSN()
	}
	return "file:" + t.Path + "?mode=ro&" + filePragmas
}

// DefaultCandidates is the preference-ordered list of storage locations
// probed when no override is set.
func DefaultCandidates() []string {
	candidates := []string{filepath.Join("data", "northstar.db")}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".northstar", "northstar.db"))
	}
	candidates = append(candidates, filepath.Join(os.TempDir(), "northstar.db"))
	return candidates
}

// Resolve picks the storage target. The override, when non-empty, is used
// unconditionally. Otherwise candidates are tried in order and the first
// whose parent directory exists (created if needed) and accepts writes
// wins. When every candidate fails the transient sentinel is returned and
// a durability warning is logged: data will not survive a restart.
//
// Resolve is called once at startup; the result is cached in the container
// and never re-probed per request.
func Resolve(override string, candidates []string) Target {
	if override != "" {
		logrus.WithField("path", override).Info("Using storage path override")
		return Target{Path: override}
	}

	for _, candidate := range candidates {
		if err := probeWritable(filepath.Dir(candidate)); err != nil {
			logrus.WithError(err).WithField("path", candidate).
				Debug("Storage candidate rejected")
			continue
		}
		logrus.WithField("path", candidate).Info("Storage target selected")
		return Target{Path: candidate}
	}

	logrus.Warn("No writable storage location found, falling back to in-memory store; data will not survive a restart")
	return Target{}
}

// probeWritable ensures dir exists and accepts writes. Failures only
// eliminate the candidate; they are never fatal.
func probeWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".write-probe-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}
