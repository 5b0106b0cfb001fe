package cli

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fgs/search"
)

// loadConfigFile overlays the YAML settings in path onto cfg. Keys follow the
// search flags: penalty-discount, depth, faithful, thread,
// ignore-linear-dependence, verbose. Unknown keys are rejected.
func loadConfigFile(path string, cfg *search.Config) error {
	f, err := os.Open(path)
	if err != nil {
		return inputError(err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return inputErrorf("config %s: %v", path, err)
	}

	return nil
}
