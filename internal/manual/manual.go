// Package manual serves the embedded user-manual text for each command.
package manual

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed manual.json
var manualJSON []byte

// aliases all resolve to the top-level entry.
var aliases = map[string]string{
	"manual":  "cli",
	"weather": "cli",
	"man":     "cli",
	"help":    "cli",
	"h":       "cli",
}

// Lookup returns the manual text for a command. Unknown commands are an
// error directing the user back to the manual itself.
func Lookup(command string) (string, error) {
	entries, err := load()
	if err != nil {
		return "", err
	}

	name := strings.TrimSpace(command)
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}

	text, ok := entries[name]
	if !ok {
		return "", fmt.Errorf("command %q not found: try \"manual -c man\"", command)
	}
	return text, nil
}

// Commands lists every documented command, excluding the top-level entry.
func Commands() ([]string, error) {
	entries, err := load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		if name != "cli" {
			names = append(names, name)
		}
	}
	return names, nil
}

func load() (map[string]string, error) {
	var entries map[string]string
	if err := json.Unmarshal(manualJSON, &entries); err != nil {
		return nil, fmt.Errorf("decode embedded manual: %w", err)
	}
	return entries, nil
}
