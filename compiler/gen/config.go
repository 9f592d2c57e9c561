package gen

import (
	"path/filepath"
	"strings"
)

// Defaults used when a Config field is empty.
const (
	DefaultPackage = "model"
	DefaultTarget  = "."
	DefaultSchema  = "public"
)

// Config holds the global configuration of a generation run.
type Config struct {
	// Package is the output package path relative to Target. Both "/" and
	// "." separate segments, so "com.example.model" and "internal/model"
	// are accepted. The last segment is the Go package name.
	Package string
	// Target is the root directory of the generated package.
	Target string
	// Schemas lists the database schemas to read tables from.
	Schemas []string
	// Header is an optional extra comment line added to every file.
	Header string
}

// Dir returns the directory generated files are written to.
func (c *Config) Dir() string {
	return filepath.Join(append([]string{c.Target}, packageSegments(c.Package)...)...)
}

// PkgName returns the Go package name of generated files.
func (c *Config) PkgName() string {
	return PackageName(c.Package)
}

// Validate fills defaults and checks the configuration.
func (c *Config) Validate() error {
	if c.Package == "" {
		c.Package = DefaultPackage
	}
	if c.Target == "" {
		c.Target = DefaultTarget
	}
	if len(c.Schemas) == 0 {
		c.Schemas = []string{DefaultSchema}
	}
	if !validPackage(c.Package) {
		return NewConfigError("Package", c.Package, "package must be a path of identifiers")
	}
	for _, s := range c.Schemas {
		if strings.TrimSpace(s) == "" {
			return NewConfigError("Schemas", c.Schemas, "schema names cannot be empty")
		}
	}
	return nil
}

func packageSegments(pkg string) []string {
	return strings.FieldsFunc(pkg, func(r rune) bool {
		return r == '/' || r == '.'
	})
}

func validPackage(pkg string) bool {
	if strings.Contains(pkg, "..") || strings.HasPrefix(pkg, "/") {
		return false
	}
	segs := packageSegments(pkg)
	if len(segs) == 0 {
		return false
	}
	for _, s := range segs {
		if !isIdent(s) {
			return false
		}
	}
	return true
}
