package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var sectionHeaderRE = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// EncodeTOML renders cfg as TOML with tables sorted by name.
func EncodeTOML(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

// WriteConfigOrdered writes the configuration to path with deterministic ordering.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// sortTOMLSections reorders tables alphabetically. Keys before the first
// table stay at the top.
func sortTOMLSections(content string) string {
	type section struct {
		name  string
		lines []string
	}

	var preamble []string
	var sections []section
	for _, line := range strings.Split(content, "\n") {
		if match := sectionHeaderRE.FindStringSubmatch(line); match != nil {
			sections = append(sections, section{name: match[1], lines: []string{line}})
			continue
		}
		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &sections[len(sections)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(sections, func(i, j int) bool { return sections[i].name < sections[j].name })

	var out strings.Builder
	write := func(lines []string) {
		for _, line := range lines {
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	write(trimBlank(preamble))
	for _, sec := range sections {
		if out.Len() > 0 {
			out.WriteString("\n")
		}
		write(trimBlank(sec.lines))
	}

	output := strings.TrimRight(out.String(), "\n")
	if output != "" {
		output += "\n"
	}
	return output
}

func trimBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
