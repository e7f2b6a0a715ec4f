// Package script loads YAML operation scripts and runs them against a
// dataobj.Host.
//
// A script looks like:
//
//	name: tags
//	initial:
//	  users:
//	    - {id: 1, name: ann}
//	steps:
//	  - {op: pushUnique, key: tags, value: x}
//	  - {op: insertUnique, key: tags, index: 0, value: y}
//	  - {op: remove, key: users, match: "id == 1"}
//	  - {op: pop, key: tags}
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/comalice/dataobj"
)

// Op names a script operation.
type Op string

const (
	OpPush         Op = "push"
	OpPushUnique   Op = "pushUnique"
	OpInsertUnique Op = "insertUnique"
	OpRemove       Op = "remove"
	OpPop          Op = "pop"
	OpSet          Op = "set"
	OpContains     Op = "contains"
)

// Step is one operation in a script.
type Step struct {
	Op    Op     `yaml:"op"`
	Key   string `yaml:"key"`
	Value any    `yaml:"value,omitempty"`
	Index *int   `yaml:"index,omitempty"`
	Match string `yaml:"match,omitempty"`

	match dataobj.Predicate
}

// Script is a named sequence of steps plus the values to seed before running.
type Script struct {
	Name            string         `yaml:"name"`
	Initial         map[string]any `yaml:"initial,omitempty"`
	ContinueOnError bool           `yaml:"continueOnError,omitempty"`
	Steps           []Step         `yaml:"steps"`
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML script and validates it.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every step and compiles its match expression.
// All problems are reported together.
func (s *Script) Validate() error {
	var errs []error
	for i := range s.Steps {
		if err := s.Steps[i].compile(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (st *Step) compile() error {
	if st.Key == "" {
		return fmt.Errorf("%s: key is required", st.Op)
	}

	switch st.Op {
	case OpPush, OpPop, OpSet:
		if st.Match != "" {
			return fmt.Errorf("%s: match is not supported", st.Op)
		}
	case OpInsertUnique:
		if st.Index == nil {
			return fmt.Errorf("%s: index is required", st.Op)
		}
	case OpPushUnique, OpRemove, OpContains:
	case "":
		return errors.New("op is required")
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}

	if st.Match == "" {
		st.match = nil
		return nil
	}
	pred, err := ParseMatch(st.Match)
	if err != nil {
		return fmt.Errorf("%s: %w", st.Op, err)
	}
	st.match = pred
	return nil
}
