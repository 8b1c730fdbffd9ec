package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

const (
	lockFileName       = "daemon.lock"
	startupMarkerName  = "daemon.startup.marker"
	shutdownMarkerName = "daemon.shutdown.marker"

	lockDirPerm    = 0o755
	lockFilePerm   = 0o600
	markerFilePerm = 0o644
)

// ErrDaemonLocked is returned when another daemon holds the run lock.
var ErrDaemonLocked = errors.New("daemon lock already held")

// PreviousRun describes the daemon instance that ran before this one.
// Abrupt is set when it recorded a startup but never a clean shutdown.
type PreviousRun struct {
	Abrupt    bool
	StartedAt time.Time
	PID       int
}

// RunMarker holds the daemon lock and records startup and clean shutdown so
// the next start can tell whether the previous daemon died holding a grant.
type RunMarker struct {
	dir  string
	lock *os.File
}

// AcquireRunMarker takes the run lock in dir, inspects the previous run and
// records this one.
func AcquireRunMarker(dir string, now time.Time) (*RunMarker, PreviousRun, error) {
	if dir == "" {
		return nil, PreviousRun{}, errors.New("run marker dir is empty")
	}
	if err := os.MkdirAll(dir, lockDirPerm); err != nil {
		return nil, PreviousRun{}, err
	}

	f, err := os.OpenFile(filepath.Join(dir, lockFileName), os.O_CREATE|os.O_RDWR, lockFilePerm)
	if err != nil {
		return nil, PreviousRun{}, err
	}
	locked, err := tryLockExclusiveNonBlocking(f)
	if err != nil {
		_ = f.Close()
		return nil, PreviousRun{}, err
	}
	if !locked {
		_ = f.Close()
		return nil, PreviousRun{}, ErrDaemonLocked
	}

	prev, err := inspectPreviousRun(dir)
	if err != nil {
		_ = unlockAndClose(f)
		return nil, PreviousRun{}, err
	}
	if err := writeStartupMarker(dir, now); err != nil {
		_ = unlockAndClose(f)
		return nil, PreviousRun{}, fmt.Errorf("write startup marker: %w", err)
	}
	return &RunMarker{dir: dir, lock: f}, prev, nil
}

// Release records a clean shutdown and drops the lock.
func (m *RunMarker) Release(now time.Time) error {
	if m == nil {
		return nil
	}
	err := writeShutdownMarker(m.dir, now)
	if closeErr := unlockAndClose(m.lock); err == nil {
		err = closeErr
	}
	m.lock = nil
	return err
}

func inspectPreviousRun(dir string) (PreviousRun, error) {
	startupRaw, err := os.ReadFile(filepath.Join(dir, startupMarkerName))
	if errors.Is(err, os.ErrNotExist) {
		return PreviousRun{}, nil
	}
	if err != nil {
		return PreviousRun{}, err
	}

	prev := PreviousRun{Abrupt: true}
	if startedAt, parseErr := time.Parse(time.RFC3339Nano, firstNonEmptyLine(startupRaw)); parseErr == nil {
		prev.StartedAt = startedAt
	}
	if pid, convErr := strconv.Atoi(markerValue(startupRaw, "pid=")); convErr == nil {
		prev.PID = pid
	}
	return prev, nil
}

func writeStartupMarker(dir string, startedAt time.Time) error {
	content := fmt.Appendf(nil, "%s\npid=%d\nppid=%d\n",
		startedAt.Format(time.RFC3339Nano),
		os.Getpid(),
		os.Getppid(),
	)
	if err := os.WriteFile(filepath.Join(dir, startupMarkerName), content, markerFilePerm); err != nil {
		return err
	}
	_ = os.Remove(filepath.Join(dir, shutdownMarkerName))
	return nil
}

func writeShutdownMarker(dir string, endedAt time.Time) error {
	startupPath := filepath.Join(dir, startupMarkerName)

	// The startup time survives in the shutdown marker once the startup
	// marker is gone.
	var startupLine, pidLine string
	if raw, err := os.ReadFile(startupPath); err == nil {
		if t := firstNonEmptyLine(raw); t != "" {
			startupLine = "started_at=" + t + "\n"
		}
		if pid := markerValue(raw, "pid="); pid != "" {
			pidLine = "pid=" + pid + "\n"
		}
	}

	content := []byte(endedAt.Format(time.RFC3339Nano) + "\n" + startupLine + pidLine)
	if err := os.WriteFile(filepath.Join(dir, shutdownMarkerName), content, markerFilePerm); err != nil {
		return err
	}
	_ = os.Remove(startupPath)
	return nil
}

func tryLockExclusiveNonBlocking(f *os.File) (bool, error) {
	err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, unix.EWOULDBLOCK) {
		return false, nil
	}
	return false, err
}

func unlockAndClose(f *os.File) error {
	if f == nil {
		return nil
	}
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
	return f.Close()
}

func firstNonEmptyLine(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	first, _, _ := strings.Cut(trimmed, "\n")
	return strings.TrimSpace(first)
}

func markerValue(raw []byte, key string) string {
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, key) {
			return strings.TrimSpace(strings.TrimPrefix(line, key))
		}
	}
	return ""
}
