package completions

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bmdict/cli/internal/dispatchers"
)

const defaultBinary = "bmd"

var (
	mu          sync.RWMutex
	commandTree *dispatchers.DispatchNode
	binaryPath  string
)

// RegisterCommandTree stores the tree for the completions command, which
// cannot import the cli package that builds it.
func RegisterCommandTree(root *dispatchers.DispatchNode) {
	path := ""
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			path = resolved
		} else {
			path = exe
		}
	}

	mu.Lock()
	defer mu.Unlock()
	commandTree = root
	binaryPath = path
}

func GetCommandTree() *dispatchers.DispatchNode {
	mu.RLock()
	defer mu.RUnlock()
	return commandTree
}

// GetBinaryName is the name completions are registered for. Scripts always
// complete "bmd" unless the tree was built under another root name.
func GetBinaryName() string {
	if root := GetCommandTree(); root != nil && root.Name != "" {
		return root.Name
	}
	return defaultBinary
}

// GetBinaryPath returns the resolved executable path, or the binary name
// when it is unknown.
func GetBinaryPath() string {
	mu.RLock()
	defer mu.RUnlock()
	if binaryPath == "" {
		return defaultBinary
	}
	return binaryPath
}
