package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/prestoql/internal/config"
	"github.com/roach88/prestoql/internal/session"
)

// ExprSpec describes one expression to rewrite, as loaded from an
// expression description file.
type ExprSpec struct {
	// Name labels the expression in output.
	Name string `yaml:"name"`

	// Kind is the rewrite kind, e.g. "trunc:week" or "extract:day-of-week".
	Kind string `yaml:"kind"`

	// Column is the operand column name.
	Column string `yaml:"column"`

	// Type is the column's declared Presto type name, e.g. "timestamp".
	Type string `yaml:"type"`
}

// ExprFile is an expression description document.
type ExprFile struct {
	Expressions []ExprSpec `yaml:"expressions"`
}

// LoadExprFile reads an expression description file.
func LoadExprFile(path string) (*ExprFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read expressions: %w", err)
	}
	var f ExprFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse expressions %s: %w", path, err)
	}
	if len(f.Expressions) == 0 {
		return nil, fmt.Errorf("no expressions in %s", path)
	}
	for i, e := range f.Expressions {
		if e.Kind == "" || e.Column == "" {
			return nil, fmt.Errorf("expression %d in %s: kind and column are required", i, path)
		}
	}
	return &f, nil
}

// loadInvocation resolves the configured session snapshot. With no config
// path it returns a default snapshot: no report zone, weeks start Sunday.
func loadInvocation(opts *RootOptions) (session.Invocation, *config.Config, error) {
	if opts.ConfigPath == "" {
		return session.NewInvocation(session.Zone{}, 0), nil, nil
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return session.Invocation{}, nil, err
	}
	zone, err := session.ResolveZone(cfg.ReportTimezone)
	if err != nil {
		return session.Invocation{}, nil, err
	}
	startOfWeek, err := cfg.StartOfWeekday()
	if err != nil {
		return session.Invocation{}, nil, err
	}
	return session.NewInvocation(zone, startOfWeek), cfg, nil
}
