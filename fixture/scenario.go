// SPDX-License-Identifier: MIT
// Package: tapewalk/fixture

package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/tapewalk/walker"
)

// Scenario is the decoded form of one fixture file.
type Scenario struct {
	Name string `toml:"name" validate:"required"`
	Tape string `toml:"tape" validate:"required,tape"`

	Start       string `toml:"start,omitempty" validate:"required_without=StartSuffix,excluded_with=StartSuffix"`
	StartSuffix string `toml:"start_suffix,omitempty"`

	Target       string `toml:"target,omitempty" validate:"required_without=TargetSuffix,excluded_with=TargetSuffix"`
	TargetSuffix string `toml:"target_suffix,omitempty"`

	// Expect is the known answer, if any; 0 means unknown.
	Expect int `toml:"expect,omitempty" validate:"gte=0"`

	Nodes []NodeSpec `toml:"node" validate:"min=1"`
}

// NodeSpec is one `[[node]]` table.
type NodeSpec struct {
	ID    string `toml:"id" validate:"required"`
	Left  string `toml:"left" validate:"required"`
	Right string `toml:"right" validate:"required"`
}

// Decode parses a TOML document and validates it.
// Returns ErrDecode (with line/column when known) or ValidationErrors.
func Decode(data []byte) (*Scenario, error) {
	var s Scenario
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d, column %d: %s", ErrDecode, row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("%w: %s", ErrDecode, serr.String())
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and decodes the fixture at path.
func Load(path string) (*Scenario, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	s, err := Decode(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return s, nil
}

// Encode renders s back to TOML.
func (s *Scenario) Encode() ([]byte, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("fixture: encode %q: %w", s.Name, err)
	}

	return buf.Bytes(), nil
}

// FromNodes builds a Scenario around an existing node list, e.g. one emitted
// by the builder package.
func FromNodes(name, tape string, nodes []walker.Node) *Scenario {
	s := &Scenario{Name: name, Tape: tape, Nodes: make([]NodeSpec, len(nodes))}
	for i, n := range nodes {
		s.Nodes[i] = NodeSpec{ID: n.ID, Left: n.Left, Right: n.Right}
	}
	return s
}
