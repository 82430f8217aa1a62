package fsworkspace

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/dayoff/internal/domain"
	"github.com/aalvaropc/dayoff/internal/infra/config"
	"github.com/aalvaropc/dayoff/internal/ports"
)

// Initializer scaffolds a directory for dayoff: a dayoff.yaml with the
// defaults and the res/ directory the default holiday path points into.
type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

// Init returns the config path and whether it was written. An existing
// dayoff.yaml is left alone unless force is set.
func (i *Initializer) Init(dir string, force bool) (string, bool, error) {
	root := filepath.Clean(dir)
	path := filepath.Join(root, config.DefaultFile)

	if err := os.MkdirAll(filepath.Join(root, "res"), 0o755); err != nil {
		return path, false, opErr(path, err)
	}

	if !force {
		if _, statErr := os.Stat(path); statErr == nil {
			return path, false, nil
		}
	}

	b, err := config.Render(domain.DefaultConfig())
	if err != nil {
		return path, false, opErr(path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return path, false, opErr(path, err)
	}
	return path, true, nil
}

func opErr(path string, err error) error {
	return &domain.OpError{
		Op:   "fsworkspace.init",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}
