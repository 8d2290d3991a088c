package main

import (
	"fmt"
	"io"
	"os"

	records "github.com/goliatone/go-records"
	"gopkg.in/yaml.v3"
)

// entry is one record in an input file. Exactly one of Value or Expr is used;
// Expr wins when both are set.
type entry struct {
	Name     string            `yaml:"name"`
	Level    records.Verbosity `yaml:"level"`
	Value    any               `yaml:"value"`
	Expr     string            `yaml:"expr"`
	Args     map[string]any    `yaml:"args"`
	Snapshot map[string]any    `yaml:"snapshot"`
}

type inputFile struct {
	Records []entry `yaml:"records"`
}

func readInput(path string, stdin io.Reader) (inputFile, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return inputFile{}, fmt.Errorf("read input: %w", err)
	}
	var in inputFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return inputFile{}, fmt.Errorf("unmarshal input yaml: %w", err)
	}
	return in, nil
}

// load writes every entry into k. Entries without a level use the keeper
// default.
func (in inputFile) load(k *records.NamedKeeper) error {
	for i, e := range in.Records {
		if e.Name == "" {
			return fmt.Errorf("record %d: name is required", i)
		}
		var err error
		if e.Expr != "" {
			err = k.RecordExpr(e.Name, e.Expr, records.RuleContext{
				Snapshot: e.Snapshot,
				Args:     e.Args,
			}, e.Level)
		} else {
			err = k.RecordValue(e.Name, e.Value, e.Level)
		}
		if err != nil {
			return fmt.Errorf("record %q: %w", e.Name, err)
		}
	}
	return nil
}
