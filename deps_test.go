package main

import "testing"

// ===== DEPS.GO UNIT TESTS =====

func depByName(deps []Dependency, name string) (Dependency, bool) {
	for _, d := range deps {
		if d.Name == name {
			return d, true
		}
	}
	return Dependency{}, false
}

func TestDeclareDependenciesRelease(t *testing.T) {
	deps := DeclareDependencies(testSettings("gcc", "12", "Release"))

	if len(deps) != 2 {
		t.Fatalf("DeclareDependencies() returned %d dependencies, want 2", len(deps))
	}

	fmtDep, ok := depByName(deps, "fmt")
	if !ok {
		t.Fatal("fmt dependency not declared")
	}
	if fmtDep.Version != "10.2.1" {
		t.Errorf("fmt version = %q, want %q", fmtDep.Version, "10.2.1")
	}

	spdlogDep, ok := depByName(deps, "spdlog")
	if !ok {
		t.Fatal("spdlog dependency not declared")
	}
	if spdlogDep.Version != "1.12.0" {
		t.Errorf("spdlog version = %q, want %q", spdlogDep.Version, "1.12.0")
	}

	if _, ok := depByName(deps, "catch2"); ok {
		t.Error("catch2 declared for a release build")
	}
	if _, ok := spdlogDep.Options["no_exceptions"]; ok {
		t.Error("spdlog no_exceptions set for a release build")
	}
}

func TestDeclareDependenciesDebug(t *testing.T) {
	deps := DeclareDependencies(testSettings("gcc", "12", "Debug"))

	if len(deps) != 3 {
		t.Fatalf("DeclareDependencies() returned %d dependencies, want 3", len(deps))
	}

	catch2, ok := depByName(deps, "catch2")
	if !ok {
		t.Fatal("catch2 not declared for a debug build")
	}
	if !catch2.TestOnly {
		t.Error("catch2 not marked test only")
	}
	if catch2.Version != "3.4.0" {
		t.Errorf("catch2 version = %q, want %q", catch2.Version, "3.4.0")
	}

	spdlogDep, _ := depByName(deps, "spdlog")
	if spdlogDep.Options["no_exceptions"] != "false" {
		t.Errorf("spdlog no_exceptions = %q, want %q", spdlogDep.Options["no_exceptions"], "false")
	}
}

func TestDeclareDependenciesSharedMirroring(t *testing.T) {
	tests := []struct {
		name     string
		shared   bool
		expected string
	}{
		{"Static build", false, "false"},
		{"Shared build", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings("gcc", "12", "Release")
			settings.Options.Shared = tt.shared

			deps := DeclareDependencies(settings)
			for _, name := range []string{"fmt", "spdlog"} {
				dep, ok := depByName(deps, name)
				if !ok {
					t.Fatalf("%s dependency not declared", name)
				}
				if dep.Options["shared"] != tt.expected {
					t.Errorf("%s shared option = %q, want %q", name, dep.Options["shared"], tt.expected)
				}
			}
		})
	}
}

func TestDeclareDependenciesBuildTypeCaseInsensitive(t *testing.T) {
	for _, buildType := range []string{"Debug", "debug", "DEBUG"} {
		deps := DeclareDependencies(testSettings("gcc", "12", buildType))
		if _, ok := depByName(deps, "catch2"); !ok {
			t.Errorf("catch2 not declared for build type %q", buildType)
		}
	}
}

func TestFormatOptions(t *testing.T) {
	got := formatOptions(map[string]string{
		"shared":        "true",
		"no_exceptions": "false",
	})
	want := "no_exceptions=false, shared=true"
	if got != want {
		t.Errorf("formatOptions() = %q, want %q", got, want)
	}
}
