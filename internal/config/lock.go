package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bmdict/cli/internal/paths"
)

const lockFileName = ".bmdrc.lock"

var (
	lockWait     = 5 * time.Second
	lockStaleAge = 30 * time.Second
	lockPoll     = 50 * time.Millisecond
)

// ErrLockTimeout matches every *LockTimeoutError.
var ErrLockTimeout = errors.New("config: lock timeout")

// LockTimeoutError names the process that kept the config lock.
type LockTimeoutError struct {
	Path string
	PID  int // 0 when the lock file holds no readable pid
}

func (e *LockTimeoutError) Error() string {
	if e.PID > 0 {
		return fmt.Sprintf("config: %s is held by process %d", e.Path, e.PID)
	}
	return fmt.Sprintf("config: %s is held by another process", e.Path)
}

func (e *LockTimeoutError) Is(target error) bool { return target == ErrLockTimeout }

// WithLock runs fn while this process owns the config lock file. Set, Unset
// and the config actions wrap their read-modify-write in it.
func WithLock(fn func() error) error {
	lockPath, err := lockFilePath()
	if err != nil {
		return err
	}

	f, err := acquireLock(lockPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
		_ = os.Remove(lockPath)
	}()

	return fn()
}

func lockFilePath() (string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(configPath), lockFileName), nil
}

func acquireLock(lockPath string) (*os.File, error) {
	deadline := time.Now().Add(lockWait)
	for {
		removeStaleLock(lockPath)

		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("config: create lock: %w", err)
		}
		if time.Now().After(deadline) {
			return nil, &LockTimeoutError{Path: lockPath, PID: lockHolder(lockPath)}
		}
		time.Sleep(lockPoll)
	}
}

// removeStaleLock drops a lock left behind by a crashed process.
func removeStaleLock(lockPath string) {
	info, err := os.Stat(lockPath)
	if err == nil && time.Since(info.ModTime()) > lockStaleAge {
		_ = os.Remove(lockPath)
	}
}

func lockHolder(lockPath string) int {
	data, err := os.ReadFile(lockPath)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}
