package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/kalakshetraodisha/website/internal/services/web/module"
)

// ComposeInput carries the modules mounted on the root mux.
type ComposeInput struct {
	Modules []module.Module
}

// Compose builds a root HTTP handler from modules. Every prefix and alias
// must be unique across modules.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if err := mountModule(root, feature, mount.Handler, prefix, seen); err != nil {
			return nil, err
		}
		for _, alias := range mount.Aliases {
			if err := validatePattern(alias); err != nil {
				return nil, fmt.Errorf("mount module %q has invalid alias %q: %w", feature.ID(), alias, err)
			}
			if err := mountModule(root, feature, mount.Handler, alias, seen); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

func mountModule(root *http.ServeMux, feature module.Module, handler http.Handler, pattern string, seen map[string]string) error {
	if root == nil || feature == nil {
		return nil
	}
	if previous, ok := seen[pattern]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), pattern, previous)
	}
	seen[pattern] = feature.ID()
	root.Handle(pattern, handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePattern(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

// validatePattern accepts a rooted path optionally preceded by an
// upper-case method, matching the ServeMux pattern grammar.
func validatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(pattern) != pattern {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	path := pattern
	if method, rest, ok := strings.Cut(pattern, " "); ok {
		if method == "" || strings.ToUpper(method) != method {
			return fmt.Errorf("method %q must be upper case", method)
		}
		path = rest
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	return nil
}
