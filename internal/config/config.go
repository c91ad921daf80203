package config

import (
	"strings"

	"github.com/abgdnv/shopmanager/pkg/config"
	"github.com/abgdnv/shopmanager/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Log     config.LogConfig     `koanf:"log"`
	Storage config.StorageConfig `koanf:"storage"`
}

// Defaults reproduce the documented on-disk layout: the three stores live in
// the working directory under their historical file names.
func Defaults() map[string]any {
	return map[string]any{
		"log.level":             "info",
		"storage.dir":           ".",
		"storage.users_file":    "users.txt",
		"storage.products_file": "products.txt",
		"storage.orders_file":   "orders.txt",
	}
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.Log.String())
	b.WriteString(c.Storage.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	return nil
}
