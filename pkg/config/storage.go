package config

import (
	"fmt"
	"strings"
)

// StorageConfig describes where the flat-file stores live. Paths are resolved
// relative to Dir, so the default configuration writes into the working directory.
type StorageConfig struct {
	Dir          string `koanf:"dir"`
	UsersFile    string `koanf:"users_file"`
	ProductsFile string `koanf:"products_file"`
	OrdersFile   string `koanf:"orders_file"`
}

// String returns a string representation of the storage configuration.
func (c *StorageConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Storage ---\n")
	b.WriteString(fmt.Sprintf("  dir: %s\n", c.Dir))
	b.WriteString(fmt.Sprintf("  users_file: %s\n", c.UsersFile))
	b.WriteString(fmt.Sprintf("  products_file: %s\n", c.ProductsFile))
	b.WriteString(fmt.Sprintf("  orders_file: %s\n", c.OrdersFile))
	return b.String()
}

func (c *StorageConfig) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("storage.dir must not be empty")
	}
	for name, value := range map[string]string{
		"storage.users_file":    c.UsersFile,
		"storage.products_file": c.ProductsFile,
		"storage.orders_file":   c.OrdersFile,
	} {
		if value == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
		if strings.ContainsRune(value, '/') {
			return fmt.Errorf("%s must be a bare file name, got %q", name, value)
		}
	}
	return nil
}
