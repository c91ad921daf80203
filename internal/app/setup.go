// Package app contains the application setup for the shop manager.
package app

import (
	"errors"
	"log/slog"

	"github.com/abgdnv/shopmanager/internal/account"
	"github.com/abgdnv/shopmanager/internal/catalog"
	"github.com/abgdnv/shopmanager/internal/config"
	"github.com/abgdnv/shopmanager/internal/ledger"
	"github.com/abgdnv/shopmanager/internal/shop"
	"github.com/abgdnv/shopmanager/internal/storage/textfile"
)

// App holds the fully wired application state: the three stores, the services
// over them and the file store used to load and flush them.
type App struct {
	Accounts *account.Service
	Shop     *shop.Service
	Catalog  *catalog.Store
	Ledger   *ledger.Ledger

	files  *textfile.Store
	logger *slog.Logger
}

// Setup loads the three backing files and wires the services. A load failure
// is reported and the affected store starts empty; it never aborts startup.
func Setup(cfg *config.Config, logger *slog.Logger) *App {
	files := textfile.NewStore(cfg.Storage, logger)

	accounts, err := files.LoadAccounts()
	if err != nil {
		logger.Error("failed to load accounts, starting empty", "error", err)
	}
	products, err := files.LoadProducts()
	if err != nil {
		logger.Error("failed to load products, starting empty", "error", err)
	}
	entries, err := files.LoadLedger()
	if err != nil {
		logger.Error("failed to load order ledger, starting empty", "error", err)
	}

	accountStore := account.NewStoreWith(accounts)
	catalogStore := catalog.NewStoreWith(products)
	orderLedger := ledger.NewLedgerWith(entries)

	logger.Info("state loaded",
		"accounts", accountStore.Len(),
		"products", catalogStore.Len(),
		"ledger_entries", len(entries))

	return &App{
		Accounts: account.NewService(accountStore),
		Shop:     shop.NewService(catalogStore, orderLedger),
		Catalog:  catalogStore,
		Ledger:   orderLedger,
		files:    files,
		logger:   logger,
	}
}

// Flush overwrites the three backing files with the current in-memory state,
// in a fixed order: accounts, then products, then ledger. Each failure is
// reported; the remaining stores are still flushed.
func (a *App) Flush() error {
	var errs []error
	if err := a.files.SaveAccounts(a.Accounts.List()); err != nil {
		a.logger.Error("failed to save accounts", "error", err)
		errs = append(errs, err)
	}
	if err := a.files.SaveProducts(a.Catalog.List()); err != nil {
		a.logger.Error("failed to save products", "error", err)
		errs = append(errs, err)
	}
	if err := a.files.SaveLedger(a.Ledger.Snapshot()); err != nil {
		a.logger.Error("failed to save order ledger", "error", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
