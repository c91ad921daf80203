package textfile

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/abgdnv/shopmanager/internal/account"
	"github.com/abgdnv/shopmanager/internal/catalog"
	"github.com/abgdnv/shopmanager/internal/ledger"
	"github.com/abgdnv/shopmanager/pkg/config"
)

// Store reads and writes the three backing files. Each load or save opens the
// file, works on it and closes it again; nothing stays open between calls.
//
// A line that fails to decode is skipped with a warning instead of aborting
// the whole load. This is a deliberate hardening over the legacy
// all-or-nothing behavior.
type Store struct {
	usersPath    string
	productsPath string
	ordersPath   string
	logger       *slog.Logger
}

// NewStore resolves file paths from the storage configuration.
func NewStore(cfg config.StorageConfig, logger *slog.Logger) *Store {
	return &Store{
		usersPath:    filepath.Join(cfg.Dir, cfg.UsersFile),
		productsPath: filepath.Join(cfg.Dir, cfg.ProductsFile),
		ordersPath:   filepath.Join(cfg.Dir, cfg.OrdersFile),
		logger:       logger.With("component", "textfile"),
	}
}

// LoadAccounts reads all account records. A missing file means no data yet
// and yields an empty result with no error.
func (s *Store) LoadAccounts() ([]account.Account, error) {
	return loadRecords(s, s.usersPath, DecodeAccount)
}

// SaveAccounts overwrites the users file with the given records.
func (s *Store) SaveAccounts(accounts []account.Account) error {
	lines := make([]string, len(accounts))
	for i, a := range accounts {
		lines[i] = EncodeAccount(a)
	}
	return saveLines(s.usersPath, lines)
}

// LoadProducts reads all product records. A missing file means no data yet.
func (s *Store) LoadProducts() ([]catalog.Product, error) {
	return loadRecords(s, s.productsPath, DecodeProduct)
}

// SaveProducts overwrites the products file with the given records.
func (s *Store) SaveProducts(products []catalog.Product) error {
	lines := make([]string, len(products))
	for i, p := range products {
		lines[i] = EncodeProduct(p)
	}
	return saveLines(s.productsPath, lines)
}

// LoadLedger reads all ledger entries. A missing file means no data yet.
func (s *Store) LoadLedger() ([]ledger.Entry, error) {
	return loadRecords(s, s.ordersPath, DecodeLedgerEntry)
}

// SaveLedger overwrites the orders file with the given entries.
func (s *Store) SaveLedger(entries []ledger.Entry) error {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = EncodeLedgerEntry(e)
	}
	return saveLines(s.ordersPath, lines)
}

// loadRecords reads a file line by line through the given decoder. Malformed
// lines are logged and skipped; empty lines are ignored.
func loadRecords[T any](s *Store, path string, decode func(string) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var records []T
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if line == "" {
			continue
		}
		record, err := decode(line)
		if err != nil {
			s.logger.Warn("skipping malformed record",
				"file", path, "line", lineNo, "error", err)
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// saveLines overwrites the target file with the given lines. The write goes
// to a temporary file first and replaces the target with a rename, so an
// interrupted save never leaves a half-written file behind.
func saveLines(path string, lines []string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", tmp, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
