package main

// Standard identifiers accepted by the resolver, oldest to newest.
var ValidStandards = []string{"17", "20", "23", "26"}

// DefaultStandard is used when no override file, build option or
// compiler setting selects a standard.
const DefaultStandard = "20"

// Compiler identifies the active toolchain as supplied by the profile.
type Compiler struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Cppstd  string `yaml:"cppstd"`
}

// Options are the project-level build options.
type Options struct {
	Shared      bool   `yaml:"shared"`
	FPIC        *bool  `yaml:"fpic"`
	CxxStandard string `yaml:"cxx_standard"`
}

// Settings describe the build environment for one configuration pass.
type Settings struct {
	OS        string   `yaml:"os"`
	Arch      string   `yaml:"arch"`
	BuildType string   `yaml:"build_type"`
	Compiler  Compiler `yaml:"compiler"`
	Options   Options  `yaml:"options"`
}

// Dependency is a fixed-version library requirement declared for the
// external package resolver.
type Dependency struct {
	Name     string            `yaml:"name" json:"name"`
	Version  string            `yaml:"version" json:"version"`
	TestOnly bool              `yaml:"test_only,omitempty" json:"test_only,omitempty"`
	Options  map[string]string `yaml:"options,omitempty" json:"options,omitempty"`
}
