package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/optipng/internal/config"
	"github.com/vk/optipng/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a new HCL preset loader that exposes the process
// environment to expressions as `env.NAME`.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// Load parses and decodes the preset file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Preset, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL preset loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL preset %s: %w", path, diags)
	}

	var preset config.Preset
	diags = gohcl.DecodeBody(file.Body, l.evalContext(), &preset)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL preset %s: %w", path, diags)
	}

	logger.Debug("HCL preset decoded.", "path", path)
	return &preset, nil
}

// evalContext builds the variables visible to preset expressions.
func (l *Loader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
