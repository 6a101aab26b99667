package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadProfile reads build settings from a yaml profile. A missing
// profile is not an error: defaults keep every permissive path open.
func LoadProfile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			out.Warn().Str("file", path).Msg("profile not found, using default settings")
			return defaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("open profile: %w", err)
	}
	defer func() { _ = f.Close() }()

	var s Settings
	if err := yaml.NewDecoder(f).Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("parse profile %s: %w", path, err)
	}

	s.expand()
	s.normalize()
	return s, nil
}

func defaultSettings() Settings {
	s := Settings{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		BuildType: "Release",
	}
	s.normalize()
	return s
}

// expand resolves environment references in every string field.
func (s *Settings) expand() {
	s.OS = ExpandEnv(s.OS)
	s.Arch = ExpandEnv(s.Arch)
	s.BuildType = ExpandEnv(s.BuildType)
	s.Compiler.Name = ExpandEnv(s.Compiler.Name)
	s.Compiler.Version = ExpandEnv(s.Compiler.Version)
	s.Compiler.Cppstd = ExpandEnv(s.Compiler.Cppstd)
	s.Options.CxxStandard = ExpandEnv(s.Options.CxxStandard)
}

// normalize applies option defaults. fPIC defaults to true and does
// not exist at all on Windows.
func (s *Settings) normalize() {
	if s.BuildType == "" {
		s.BuildType = "Release"
	}

	if s.IsWindows() {
		s.Options.FPIC = nil
	} else if s.Options.FPIC == nil {
		fpic := true
		s.Options.FPIC = &fpic
	}
}

// IsDebug reports whether the pass configures a debug build.
func (s Settings) IsDebug() bool {
	return strings.EqualFold(s.BuildType, "debug")
}

func (s Settings) IsWindows() bool {
	return strings.EqualFold(s.OS, "windows")
}

// CompilerLabel is the human-readable compiler identity for messages.
func (s Settings) CompilerLabel() string {
	if s.Compiler.Name == "" {
		return "unknown compiler"
	}
	return s.Compiler.Name + " " + s.Compiler.Version
}
