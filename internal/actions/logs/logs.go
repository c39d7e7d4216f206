package logs

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/ui/style"
)

const defaultLogLimit = 50

// View shows the last N lines of the log file.
func View(args []string, flags *dispatchers.ParsedFlags) error {
	return view(args, flags, DefaultDeps())
}

func view(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	jsonOutput := flags.Has("--json")
	logPath := deps.LogFilePath()

	info, err := deps.Stat(logPath)
	if os.IsNotExist(err) {
		return printEmpty(jsonOutput, "No log file found at "+logPath, deps)
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() == 0 {
		return printEmpty(jsonOutput, "Log file is empty", deps)
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")

	limit := flags.Int("--limit", defaultLogLimit)
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	if jsonOutput {
		return viewJSON(lines, deps)
	}

	for _, line := range lines {
		_, _ = deps.Println(colorizeLogLine(line))
	}
	return nil
}

func printEmpty(jsonOutput bool, msg string, deps Deps) error {
	if jsonOutput {
		_, _ = deps.Println("[]")
	} else {
		_, _ = deps.Println(style.Muted(msg))
	}
	return nil
}

// logEntryRegex matches lines like: 2026-01-29 10:30:45 INFO store: imported 3 words
var logEntryRegex = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) (DEBU|INFO|WARN|ERRO|FATA)\s+(.*)$`)

var levelNames = map[string]string{
	"DEBU": "DEBUG",
	"INFO": "INFO",
	"WARN": "WARN",
	"ERRO": "ERROR",
	"FATA": "FATAL",
}

type logEntry struct {
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level,omitempty"`
	Message   string `json:"message"`
}

func parseLine(line string) (logEntry, bool) {
	m := logEntryRegex.FindStringSubmatch(line)
	if m == nil {
		return logEntry{Message: line}, false
	}
	return logEntry{Timestamp: m[1], Level: levelNames[m[2]], Message: m[3]}, true
}

func viewJSON(lines []string, deps Deps) error {
	entries := make([]logEntry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		e, _ := parseLine(line)
		entries = append(entries, e)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = deps.Println(string(data))
	return nil
}

// Tail follows the log file until interrupted.
func Tail(args []string, flags *dispatchers.ParsedFlags) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return tail(ctx, args, flags, DefaultDeps())
}

func tail(ctx context.Context, _ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	logPath := deps.LogFilePath()

	file, err := deps.OpenFile(logPath, os.O_RDONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	_, _ = deps.Println(style.Muted("Following logs at " + logPath + " (Ctrl+C to stop)"))
	_, _ = deps.Println("")

	reader := bufio.NewReader(file)
	ticker := time.NewTicker(deps.PollInterval)
	defer ticker.Stop()

	var partial string
	for {
		line, err := reader.ReadString('\n')
		partial += line
		if err == nil {
			_, _ = deps.Println(colorizeLogLine(strings.TrimSuffix(partial, "\n")))
			partial = ""
			continue
		}
		if err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Clear empties the log file.
func Clear(args []string, flags *dispatchers.ParsedFlags) error {
	return clearLog(args, flags, DefaultDeps())
}

func clearLog(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if err := deps.WriteFile(deps.LogFilePath(), []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}

	_, _ = deps.Println(style.Success("Log file cleared"))
	return nil
}

func colorizeLogLine(line string) string {
	e, ok := parseLine(line)
	if !ok {
		return line
	}
	switch e.Level {
	case "ERROR", "FATAL":
		return style.Error(line)
	case "WARN":
		return style.Warning(line)
	case "INFO":
		return style.Info(line)
	default:
		return style.Muted(line)
	}
}
