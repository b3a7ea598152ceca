// SPDX-License-Identifier: MIT
// Package: tapewalk/fixture

package fixture

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDecode indicates the TOML document could not be decoded into a Scenario.
	ErrDecode = errors.New("fixture: decode failed")

	// ErrUnknownNode indicates the scenario names a start or target absent from its nodes.
	ErrUnknownNode = errors.New("fixture: unknown node")
)

// ValidationError is one failed field rule.
type ValidationError struct {
	ItemName  string // node ID for node entries, empty for top-level fields
	FieldPath string // dot path using TOML names, e.g. "node.3.right"
	Message   string
}

// ValidationErrors collects every failed rule of a scenario.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "fixture: %d validation error(s):", len(ve))
	for i, e := range ve {
		if e.ItemName != "" {
			fmt.Fprintf(&sb, "\n  %d. [%s] %s: %s", i+1, e.ItemName, e.FieldPath, e.Message)
		} else {
			fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, e.FieldPath, e.Message)
		}
	}

	return sb.String()
}

// Fields returns the failing field paths in report order.
func (ve ValidationErrors) Fields() []string {
	out := make([]string, len(ve))
	for i, e := range ve {
		out[i] = e.FieldPath
	}
	return out
}
