package config

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to schemasite! Let's configure your report.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Schema source.
	sourcePrompt := promptui.Select{
		Label: "Where does the schema come from",
		Items: []string{
			"sqlite: introspect a SQLite database file",
			"yaml:   read a YAML schema snapshot",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}

	sourceLabel := "Path to the SQLite database"
	if sourceIdx == 1 {
		sourceLabel = "Path to the YAML schema file"
	}
	sourcePathPrompt := promptui.Prompt{
		Label: sourceLabel,
		Validate: func(s string) error {
			if trimSpace(s) == "" {
				return fmt.Errorf("a path is required")
			}
			return nil
		},
	}
	sourcePath, err := sourcePathPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source path: %w", err)
	}
	if sourceIdx == 0 {
		cfg.SQLitePath = trimSpace(sourcePath)
	} else {
		cfg.SchemaFile = trimSpace(sourcePath)
	}

	// 2. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated report",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 3. Include patterns.
	includePrompt := promptui.Prompt{
		Label:   "Tables to include (comma-separated globs)",
		Default: "*",
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}
	cfg.Include = splitAndTrim(includeStr)

	// 4. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra tables to exclude (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Exclude = append(append([]string{}, DefaultExcludes...), splitAndTrim(excludeStr)...)
	}

	// 5. Comment encoding.
	encodePrompt := promptui.Prompt{
		Label:     "Escape HTML in table comments",
		IsConfirm: true,
	}
	if _, err := encodePrompt.Run(); err == nil {
		cfg.EncodeComments = true
	} else if err != promptui.ErrAbort {
		return nil, fmt.Errorf("comment encoding: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			token := trimSpace(s[start:i])
			if token != "" {
				result = append(result, token)
			}
			start = i + 1
		}
	}
	return result
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}
