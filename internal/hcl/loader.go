package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/ctxlog"
	"github.com/vk/phisynth/internal/fsutil"
)

// Extension is the file extension of patch files.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	params config.Params
}

// NewLoader creates a loader whose expressions see the given audio params.
func NewLoader(p config.Params) *Loader {
	return &Loader{params: p}
}

// fileRoot decodes the top-level attributes; blocks are left in Remain so they
// can be read back in source order.
type fileRoot struct {
	Description *string  `hcl:"description,optional"`
	Remain      hcl.Body `hcl:",remain"`
}

// Load parses every patch file under paths and concatenates their elements.
// Directories are walked in sorted path order; paths that do not exist are
// skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Patch, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.params)
	patch := &config.Patch{}

	for _, file := range files {
		f, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(f.Body, evalCtx, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		if root.Description != nil {
			if patch.Description != "" {
				patch.Description += "\n"
			}
			patch.Description += *root.Description
		}

		elements, err := decodeElements(ctx, root.Remain, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
		patch.Elements = append(patch.Elements, elements...)
		logger.Debug("Loaded HCL file.", "file", file, "elements", len(elements))
	}

	logger.Debug("HCL loading complete.", "files", len(files), "nodes", patch.NodeCount())
	return patch, nil
}

// findAllHCLFiles expands directories and removes duplicates, keeping the
// order in which paths were given.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			all = append(all, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, Extension)
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
		} else if filepath.Ext(path) == Extension {
			add(path)
		}
	}
	return all, nil
}
