package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/log"
	"github.com/bmdict/cli/internal/paths"
)

// ReadLines returns the raw lines of ~/.bmdrc. A missing or empty file is
// seeded with the commented default template.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = DefaultLines()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// DefaultLines renders the template written to a fresh config file.
// Keys with an empty default, and override keys, are left commented out.
func DefaultLines() []string {
	lines := []string{
		"# bmd configuration",
		"# Edit values below or use: bmd config set <key> <value>",
	}

	section := ""
	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}
		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}

		value := key.Default
		if strings.Contains(value, " ") {
			value = "\"" + value + "\""
		}

		if key.HideIfEmpty || value == "" {
			lines = append(lines, "# "+key.Name+"=")
		} else {
			lines = append(lines, key.Name+"="+value)
		}
	}

	return lines
}
