// Package config loads the optional metaquot.toml manifest that maps the
// harness-side symbol names referenced by generated code. Without a manifest
// the defaults below apply, so the expander works out of the box against the
// standard harness runtime.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const ManifestName = "metaquot.toml"

// Names holds the harness symbol names the expander splices into generated
// code.
type Names struct {
	// AstModule qualifies reconstructed tree constructors, e.g. "Ast.Expr".
	AstModule string `toml:"ast_module"`
	// TyModule qualifies the descriptor combinators, e.g. "Ty.arg".
	TyModule string `toml:"ty_module"`
	// Append is the list-concatenation function used for sequence splices.
	Append string `toml:"append"`
	// DefaultLocation is the default-location holder read when no [@@loc]
	// attribute is in scope.
	DefaultLocation string `toml:"default_location"`
	// Reference and Submission are the namespaces opened by the code macro.
	Reference  string `toml:"reference"`
	Submission string `toml:"submission"`
	// Printable is the record type emitted by the printable macro.
	Printable string `toml:"printable"`
}

type manifest struct {
	Harness Names `toml:"harness"`
}

// Default returns the standard harness symbol names.
func Default() Names {
	return Names{
		AstModule:       "Ast",
		TyModule:        "Ty",
		Append:          "Stdlib.append",
		DefaultLocation: "Loc.current",
		Reference:       "Reference",
		Submission:      "Submission",
		Printable:       "Printable",
	}
}

// Load reads a manifest file and fills unset entries with defaults.
func Load(path string) (Names, error) {
	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Default(), fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return m.Harness.withDefaults(), nil
}

// Find searches startDir and its ancestors for a manifest, returning the
// defaults when none exists.
func Find(startDir string) (Names, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return Default(), fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		} else if !errors.Is(err, os.ErrNotExist) {
			return Default(), fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return Default(), nil
}

func (n Names) withDefaults() Names {
	def := Default()
	if n.AstModule == "" {
		n.AstModule = def.AstModule
	}
	if n.TyModule == "" {
		n.TyModule = def.TyModule
	}
	if n.Append == "" {
		n.Append = def.Append
	}
	if n.DefaultLocation == "" {
		n.DefaultLocation = def.DefaultLocation
	}
	if n.Reference == "" {
		n.Reference = def.Reference
	}
	if n.Submission == "" {
		n.Submission = def.Submission
	}
	if n.Printable == "" {
		n.Printable = def.Printable
	}
	return n
}
