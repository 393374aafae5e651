//go:build mage

// Package main contains Mage build targets for scholar-tools developer tooling.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "scholar-tools"
	cmdPkg  = "./cmd/scholar-tools"
)

// Build compiles the CLI binary into bin/, stamping the version from
// SCHOLAR_TOOLS_VERSION when set.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs vet and the unit tests.
func Test() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "test", "-count=1", "./...")
}

// Install builds and copies the binary into GOBIN.
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "-ldflags", ldflags(), cmdPkg)
}

func ldflags() string {
	version := os.Getenv("SCHOLAR_TOOLS_VERSION")
	if version == "" {
		version = "dev"
	}
	return "-X main.version=" + version
}

// Stats prints project metrics: Go production/test LOC and documentation word count.
func Stats() error {
	var prodLines, testLines, docWords int
	err := walkSources(".", func(path string, data []byte) {
		switch {
		case strings.HasSuffix(path, "_test.go"):
			testLines += countLines(data)
		case filepath.Ext(path) == ".go":
			prodLines += countLines(data)
		case filepath.Ext(path) == ".md", filepath.Ext(path) == ".yaml", filepath.Ext(path) == ".yml":
			docWords += len(strings.Fields(string(data)))
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):           %d\n", docWords)
	return nil
}

// walkSources calls visit for every regular file under root, skipping
// hidden directories, underscore-prefixed directories and bin/.
func walkSources(root string, visit func(path string, data []byte)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == binDir) {
				return filepath.SkipDir
			}
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		visit(path, data)
		return nil
	})
}

// countLines counts non-blank lines.
func countLines(data []byte) int {
	n := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
