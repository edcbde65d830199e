//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg" // mg contains helpful utility functions, like Deps
	"github.com/magefile/mage/sh"
)

var Default = Build

var (
	buildDir   = "bin"
	serverName = "hostexporter"
	lintName   = "gaugelint"
)

// Builds the exporter and the gaugelint vet tool into bin/.
func Build() error {
	fmt.Println("Building...")
	if err := sh.RunV("go", "build", "-o", filepath.Join(buildDir, serverName), "./cmd/server"); err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}
	if err := sh.RunV("go", "build", "-o", filepath.Join(buildDir, lintName), "./cmd/gaugelint"); err != nil {
		return fmt.Errorf("failed to build %s: %w", lintName, err)
	}
	return nil
}

// Builds the server for linux/arm64 hosts.
func BuildArm() error {
	env := map[string]string{
		"GOOS":   "linux",
		"GOARCH": "arm64",
	}
	return sh.RunWithV(env, "go", "build", "-o", filepath.Join(buildDir, "linux-arm64", serverName), "./cmd/server")
}

// Runs the test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Runs go vet with the gaugelint analyzer over the module.
func Lint() error {
	mg.Deps(Build)
	vettool, err := filepath.Abs(filepath.Join(buildDir, lintName))
	if err != nil {
		return err
	}
	return sh.RunV("go", "vet", "-vettool="+vettool, "./internal/...", "./cmd/server/...")
}

// Cleans up the build directory
func Clean() {
	fmt.Println("Cleaning...")
	os.RemoveAll(buildDir)
}
