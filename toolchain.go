package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agilira/orpheus/pkg/orpheus"
)

// GenerateBuildConfiguration validates the compiler against the
// resolved standard and assembles the flat variable map handed to the
// external toolchain-file generator. The unsupported-compiler case is
// the single fatal condition of a configuration pass.
func GenerateBuildConfiguration(project map[string]string, std string, settings Settings) (map[string]string, error) {
	support := CheckCompilerSupport(settings.Compiler.Name, settings.Compiler.Version, std)
	if !support.Satisfied() {
		return nil, unsupportedError(settings, std)
	}

	out.Info().Str("standard", "C++"+std).Msg("target C++ standard")
	out.Info().
		Str("compiler", settings.CompilerLabel()).
		Str("support", support.String()).
		Msg("compiler check passed")

	vars := map[string]string{
		"CMAKE_CXX_STANDARD":            std,
		"CMAKE_CXX_STANDARD_REQUIRED":   "ON",
		"CMAKE_CXX_EXTENSIONS":          "OFF",
		"CMAKE_EXPORT_COMPILE_COMMANDS": "ON",

		"PROJECT_NAME_FROM_CFORGE":        project["PROJECT_NAME"],
		"PROJECT_VERSION_FROM_CFORGE":     project["PROJECT_VERSION"],
		"PROJECT_DESCRIPTION_FROM_CFORGE": project["PROJECT_DESCRIPTION"],
	}

	if settings.IsDebug() {
		vars["CMAKE_BUILD_TYPE"] = "Debug"
		vars["ENABLE_TESTING"] = "ON"
	} else {
		vars["CMAKE_BUILD_TYPE"] = "Release"
		vars["ENABLE_TESTING"] = "OFF"
	}

	return vars, nil
}

// unsupportedError builds the fatal configuration error raised when the
// compiler does not satisfy the minimum version for the standard.
func unsupportedError(settings Settings, std string) error {
	minVersion, ok := MinCompilerVersion(settings.Compiler.Name, std)
	if !ok {
		minVersion = "unknown"
	}

	return orpheus.ExecutionError("configure", fmt.Sprintf(
		"%s %s+ required for C++%s support. Current version: %s. "+
			"Consider using a lower C++ standard or updating your compiler.",
		settings.Compiler.Name, minVersion, std, settings.Compiler.Version))
}

// WriteToolchainFile renders the variable map as CMake set() lines,
// sorted by key so the output is deterministic.
func WriteToolchainFile(path string, vars map[string]string) error {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("# Generated by cforge. Do not edit.\n")
	for _, k := range keys {
		v := vars[k]
		if v == "ON" || v == "OFF" {
			fmt.Fprintf(&b, "set(%s %s)\n", k, v)
		} else {
			fmt.Fprintf(&b, "set(%s %q)\n", k, v)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write toolchain file: %w", err)
	}

	out.Info().Str("file", path).Int("variables", len(vars)).Msg("toolchain file written")
	return nil
}
