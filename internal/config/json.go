package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fundraise/internal/flagx"
)

// parseJson overlays cfg with the JSON file named by -c or -config. Keys that
// are absent from the file leave cfg unchanged. It panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		panic(err)
	}
}
