package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/ctxlog"
	"github.com/vk/phisynth/internal/paramid"
)

// Validate constructs a probe instance of every variant and checks that it
// reports its registered type name and has well-formed, unique local
// parameter names.
func (r *Registry) Validate(ctx context.Context, p config.Params) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, typeName := range r.Types() {
		v := r.variants[typeName]
		n := v.New("probe", p)
		if n == nil {
			errs = append(errs, fmt.Sprintf("type '%s': constructor returned nil", typeName))
			continue
		}
		if n.TypeName() != typeName {
			errs = append(errs, fmt.Sprintf("type '%s': constructed node reports type '%s'", typeName, n.TypeName()))
		}
		if n.ParameterCount() == 0 {
			logger.Warn("Node type declares no parameters.", "type", typeName)
		}

		seen := make(map[string]struct{}, n.ParameterCount())
		for i := 0; i < n.ParameterCount(); i++ {
			local := n.Par(i).Name()
			if err := paramid.ValidateLocal(local); err != nil {
				errs = append(errs, fmt.Sprintf("type '%s', parameter %d: %v", typeName, i, err))
			}
			if _, dup := seen[local]; dup {
				errs = append(errs, fmt.Sprintf("type '%s': duplicate parameter '%s'", typeName, local))
			}
			seen[local] = struct{}{}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validation passed.", "types", len(r.variants))
	return nil
}
