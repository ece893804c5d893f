// Package structure provides the class structure catalog: the read-only
// lookup from a school-form code to the grade-level template group that
// applies to it.
package structure

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/conn-castle/mockfactory/internal/messages"
)

//go:embed klassenstruktur.json
var embeddedCatalog []byte

// ErrTemplateNotFound is a sentinel for school forms without a matching
// structure group. This is a configuration-level failure: class
// generation for that school cannot proceed.
var ErrTemplateNotFound = errors.New("no matching class structure group")

// Catalog is the class structure template document, loaded once per run
// and never mutated.
type Catalog struct {
	Groups []Group `json:"groups"`
}

// Group describes the grade levels for a family of school forms.
type Group struct {
	Name        string       `json:"name"`
	Schulformen []string     `json:"schulformen"`
	Jahrgaenge  []GradeLevel `json:"jahrgaenge"`
}

// GradeLevel is one grade-level entry of a structure group.
// Prefix, when set, is prepended to generated class names (vocational
// groups name classes by course, not bare grade number).
type GradeLevel struct {
	Kuerzel      string `json:"kuerzel"`
	Beschreibung string `json:"beschreibung"`
	Prefix       string `json:"prefix,omitempty"`
}

// Default returns the embedded catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse(embeddedCatalog, "embedded klassenstruktur.json")
}

// Load reads a catalog document from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.StructureMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes a catalog document. source is used in error messages.
func Parse(data []byte, source string) (*Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf(messages.StructureInvalidFileFmt, source, err)
	}
	if len(catalog.Groups) == 0 {
		return nil, fmt.Errorf(messages.StructureNoGroupsFmt, source)
	}
	return &catalog, nil
}

// Lookup returns the first group whose school-form list contains the code.
// The returned error wraps ErrTemplateNotFound when no group matches.
func (c *Catalog) Lookup(schulform string) (*Group, error) {
	for i := range c.Groups {
		group := &c.Groups[i]
		for _, form := range group.Schulformen {
			if form == schulform {
				return group, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: "+messages.StructureGroupNotFoundFmt, ErrTemplateNotFound, schulform)
}
