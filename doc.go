/*
Package main implements cforge, a build-configuration resolver for modern
C++ projects.

cforge performs one configuration pass for a C++ project: it loads project
metadata, resolves the target C++ language standard, validates that the
active compiler supports it, declares the project's library dependencies,
and emits toolchain variables for a downstream build generator (CMake).
It never runs the build itself; the external build tool and package
manager own execution, fetching and artifacts.

# Input Files

Project metadata (.project):
Optional newline-delimited key=value pairs. Lines starting with # are
comments, surrounding quotes are stripped from values. When the file is
missing, a fixed five-key default mapping is used instead.

	PROJECT_NAME="demo"
	PROJECT_VERSION="0.3.0"
	PROJECT_DESCRIPTION="Demo application"
	PROJECT_URL="https://example.com/demo"
	PROJECT_LICENSE="MIT"

Standard override (.cppstd):
Optional single token, one of 17, 20, 23 or 26. Managed by the std
command. Invalid content is ignored and resolution falls through to the
next priority.

Build profile (cforge.yaml):
Describes the build environment. String values may reference environment
variables using $VAR or ${VAR} syntax.

	os: Linux
	arch: x86_64
	build_type: Debug
	compiler:
	  name: gcc
	  version: $GCC_VERSION
	options:
	  shared: false
	  fpic: true

# Standard Resolution

The target C++ standard is resolved by priority, first match wins:
the .cppstd override file, the explicit build option (-s flag or the
profile cxx_standard option), the compiler-declared cppstd setting,
and finally the default of C++20.

The resolved standard is checked against a static minimum-version table
per compiler family (gcc, clang, msvc, apple-clang). An unknown compiler
family or an unparsable version degrades to assumed support with a
warning; a known compiler below the minimum version is the single fatal
condition and aborts the pass.

# CLI Commands

	configure  Full pass: resolve, check, write the toolchain file (default)
	resolve    Print the resolved project config and standard
	deps       List declared dependencies in table, JSON, or YAML format
	check      Run only the compiler support check
	std        Pin or clear the .cppstd override file

# Usage Examples

Run the full configuration pass for a debug build profile:

	cforge -p debug.yaml configure

Pin the project to C++23 and verify the compiler supports it:

	cforge std 23
	cforge check

List declared dependencies:

	cforge -f json deps

# Dependencies

cforge leverages the Orpheus framework for error handling and a small
set of focused libraries:
- github.com/agilira/orpheus: error handling
- gopkg.in/yaml.v3: profile parsing and list output
- github.com/hashicorp/go-version: semantic version comparison
- github.com/rs/zerolog: console diagnostics

# Compatibility

Supports Windows, Linux, and macOS. On Windows the position-independent
code option is removed from the profile, matching platform semantics.
*/
package main
