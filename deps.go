package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DeclareDependencies returns the fixed dependency set for the pass.
// Resolution, fetching and building belong to the external package
// manager; this only declares. The testing library is declared for
// debug builds only, and the shared-linkage option of fmt and spdlog
// mirrors the project's own shared option.
func DeclareDependencies(settings Settings) []Dependency {
	shared := strconv.FormatBool(settings.Options.Shared)

	deps := []Dependency{
		{
			Name:    "fmt",
			Version: "10.2.1",
			Options: map[string]string{"shared": shared},
		},
		{
			Name:    "spdlog",
			Version: "1.12.0",
			Options: map[string]string{"shared": shared},
		},
	}

	if settings.IsDebug() {
		deps[1].Options["no_exceptions"] = "false"
		deps = append(deps, Dependency{
			Name:     "catch2",
			Version:  "3.4.0",
			TestOnly: true,
		})
	}

	return deps
}

func listDeps(deps []Dependency, format string) error {
	switch format {
	case "json":
		return listDepsJSON(deps)
	case "yaml":
		return listDepsYAML(deps)
	default: // table
		return listDepsTable(deps)
	}
}

func listDepsTable(deps []Dependency) error {
	fmt.Println("Declared dependencies:")
	fmt.Println("----------------------")

	if len(deps) == 0 {
		fmt.Println("No dependencies declared")
		return nil
	}

	// Find max name length for formatting
	maxNameLen := 0
	for _, dep := range deps {
		if len(dep.Name) > maxNameLen {
			maxNameLen = len(dep.Name)
		}
	}

	for _, dep := range deps {
		padding := strings.Repeat(" ", maxNameLen-len(dep.Name)+2)
		notes := ""
		if len(dep.Options) > 0 {
			notes = fmt.Sprintf(" (%s)", formatOptions(dep.Options))
		}
		if dep.TestOnly {
			notes += " [test only]"
		}
		fmt.Printf("  %s%s%s%s\n", dep.Name, padding, dep.Version, notes)
	}

	fmt.Printf("\nTotal: %d dependencies\n", len(deps))
	return nil
}

func formatOptions(opts map[string]string) string {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+opts[k])
	}
	return strings.Join(pairs, ", ")
}

func listDepsJSON(deps []Dependency) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]interface{}{
		"dependencies": deps,
		"total":        len(deps),
	})
}

func listDepsYAML(deps []Dependency) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(map[string]interface{}{
		"dependencies": deps,
		"total":        len(deps),
	})
}
