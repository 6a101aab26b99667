package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agilira/orpheus/pkg/orpheus"
	"gopkg.in/yaml.v3"
)

var WORKING_DIR, PROFILE_PATH, STD_OPTION, OUTPUT_PATH, LIST_FORMAT string
var VERBOSE bool

func main() {
	flag.StringVar(&WORKING_DIR, "D", ".", "Working Directory")
	flag.StringVar(&PROFILE_PATH, "p", "cforge.yaml", "Build profile")
	flag.StringVar(&STD_OPTION, "s", "", "Explicit C++ standard (17, 20, 23 or 26)")
	flag.StringVar(&OUTPUT_PATH, "o", "cforge_toolchain.cmake", "Toolchain output file")
	flag.StringVar(&LIST_FORMAT, "f", "table", "Dependency list format (table, json or yaml)")
	flag.BoolVar(&VERBOSE, "v", false, "Verbose diagnostics")

	flag.Parse()

	out = newOutput(os.Stderr, VERBOSE)

	command := flag.Arg(0)
	if command == "" {
		command = "configure"
	}

	if err := run(command, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	if STD_OPTION != "" && !IsValidStandard(STD_OPTION) {
		return orpheus.ExecutionError(command, fmt.Sprintf(
			"invalid standard option '%s' (valid: %s)", STD_OPTION, strings.Join(ValidStandards, ", ")))
	}

	switch command {
	case "configure":
		return runConfigure()
	case "resolve":
		return runResolve()
	case "deps":
		return runDeps()
	case "check":
		return runCheck()
	case "std":
		return runStd(args[1:])
	default:
		return orpheus.NotFoundError(command, fmt.Sprintf("command '%s' not found", command))
	}
}

// workPath resolves a name relative to the working directory.
func workPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(WORKING_DIR, name)
}

// loadProjectOrDefault is the permissive project load: a missing
// .project file degrades to the fixed defaults with a warning.
func loadProjectOrDefault() map[string]string {
	project, err := LoadProjectConfig(workPath(ProjectFile))
	if err != nil {
		out.Warn().Str("file", ProjectFile).Msg("project file not found, using defaults")
		return DefaultProjectConfig()
	}
	return project
}

// standardOption is the explicit build option for the resolution
// chain. The -s flag wins over the profile option.
func standardOption(settings Settings) string {
	if STD_OPTION != "" {
		return STD_OPTION
	}
	return settings.Options.CxxStandard
}

// runConfigure is the full configuration pass: resolve, gate, emit.
func runConfigure() error {
	settings, err := LoadProfile(workPath(PROFILE_PATH))
	if err != nil {
		return err
	}

	project := loadProjectOrDefault()
	std := ResolveStandard(workPath(CppStdFile), standardOption(settings), settings.Compiler)

	if settings.Compiler.Cppstd == "" {
		settings.Compiler.Cppstd = std
		out.Info().Str("cppstd", std).Msg("set compiler cppstd")
	}

	vars, err := GenerateBuildConfiguration(project, std, settings)
	if err != nil {
		return err
	}

	if err := WriteToolchainFile(workPath(OUTPUT_PATH), vars); err != nil {
		return err
	}

	deps := DeclareDependencies(settings)
	out.Info().Int("count", len(deps)).Msg("dependencies declared")
	return nil
}

// runResolve prints the resolved configuration without emitting.
func runResolve() error {
	settings, err := LoadProfile(workPath(PROFILE_PATH))
	if err != nil {
		return err
	}

	project := loadProjectOrDefault()
	std := ResolveStandard(workPath(CppStdFile), standardOption(settings), settings.Compiler)
	support := CheckCompilerSupport(settings.Compiler.Name, settings.Compiler.Version, std)

	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(map[string]interface{}{
		"project":    project,
		"standard":   std,
		"build_type": settings.BuildType,
		"compiler":   settings.CompilerLabel(),
		"support":    support.String(),
	})
}

// runDeps lists the declared dependencies.
func runDeps() error {
	settings, err := LoadProfile(workPath(PROFILE_PATH))
	if err != nil {
		return err
	}
	return listDeps(DeclareDependencies(settings), LIST_FORMAT)
}

// runCheck runs only the compiler gate, exiting non-zero when the
// compiler does not satisfy the resolved standard.
func runCheck() error {
	settings, err := LoadProfile(workPath(PROFILE_PATH))
	if err != nil {
		return err
	}

	std := ResolveStandard(workPath(CppStdFile), standardOption(settings), settings.Compiler)
	support := CheckCompilerSupport(settings.Compiler.Name, settings.Compiler.Version, std)
	if !support.Satisfied() {
		return unsupportedError(settings, std)
	}

	out.Info().
		Str("compiler", settings.CompilerLabel()).
		Str("standard", "C++"+std).
		Str("support", support.String()).
		Msg("compiler supports the requested standard")
	return nil
}

// runStd manages the .cppstd override file.
func runStd(args []string) error {
	if len(args) == 0 {
		return orpheus.ExecutionError("std", "missing argument (17, 20, 23, 26 or clear)")
	}

	path := workPath(CppStdFile)
	arg := args[0]

	if arg == "clear" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		out.Info().Msg("standard override cleared")
		return nil
	}

	if !IsValidStandard(arg) {
		return orpheus.ExecutionError("std", fmt.Sprintf(
			"invalid standard '%s' (valid: %s)", arg, strings.Join(ValidStandards, ", ")))
	}

	if err := os.WriteFile(path, []byte(arg+"\n"), 0o644); err != nil {
		return err
	}

	out.Info().Str("standard", "C++"+arg).Msg("standard override pinned")
	return nil
}
