package textfile

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/abgdnv/shopmanager/internal/account"
	"github.com/abgdnv/shopmanager/internal/catalog"
	"github.com/abgdnv/shopmanager/internal/ledger"
	"github.com/abgdnv/shopmanager/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.StorageConfig{
		Dir:          dir,
		UsersFile:    "users.txt",
		ProductsFile: "products.txt",
		OrdersFile:   "orders.txt",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStore(cfg, logger), dir
}

func TestStore_MissingFilesMeanNoDataYet(t *testing.T) {
	// given a directory with no backing files
	store, _ := newTestStore(t)

	// when / then
	accounts, err := store.LoadAccounts()
	require.NoError(t, err)
	assert.Empty(t, accounts)

	products, err := store.LoadProducts()
	require.NoError(t, err)
	assert.Empty(t, products)

	entries, err := store.LoadLedger()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	// given
	store, _ := newTestStore(t)
	accounts := []account.Account{
		{ID: "u1", Name: "Alice", Password: "pw1", Role: account.RoleCustomer},
		{ID: "a1", Name: "Root", Password: "secret", Role: account.RoleAdmin},
	}
	products := []catalog.Product{
		{ID: 1, Name: "Pen", Price: 1.5, Stock: 7},
		{ID: 2, Name: "Notebook", Price: 3, Stock: 0},
	}
	entries := []ledger.Entry{
		{AccountID: "u1", Items: []string{"Pen x 3", "Notebook x 1"}},
	}

	// when
	require.NoError(t, store.SaveAccounts(accounts))
	require.NoError(t, store.SaveProducts(products))
	require.NoError(t, store.SaveLedger(entries))

	// then everything comes back field for field, in order
	loadedAccounts, err := store.LoadAccounts()
	require.NoError(t, err)
	assert.Equal(t, accounts, loadedAccounts)

	loadedProducts, err := store.LoadProducts()
	require.NoError(t, err)
	assert.Equal(t, products, loadedProducts)

	loadedEntries, err := store.LoadLedger()
	require.NoError(t, err)
	assert.Equal(t, entries, loadedEntries)
}

func TestStore_SaveOverwritesPreviousContent(t *testing.T) {
	// given a file with two records
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveProducts([]catalog.Product{
		{ID: 1, Name: "Pen", Price: 1.5, Stock: 7},
		{ID: 2, Name: "Notebook", Price: 3, Stock: 4},
	}))

	// when flushing a single record
	require.NoError(t, store.SaveProducts([]catalog.Product{
		{ID: 1, Name: "Pen", Price: 1.5, Stock: 5},
	}))

	// then the file holds only the new content
	loaded, err := store.LoadProducts()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 5, loaded[0].Stock)
}

func TestStore_LoadSkipsMalformedLines(t *testing.T) {
	// given a users file with one broken record in the middle
	store, dir := newTestStore(t)
	content := "u1,Alice,pw1,Customer\n" +
		"this line is garbage\n" +
		"a1,Root,secret,Admin\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.txt"), []byte(content), 0o644))

	// when
	accounts, err := store.LoadAccounts()

	// then the valid records still load
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "u1", accounts[0].ID)
	assert.Equal(t, "a1", accounts[1].ID)
}

func TestStore_LoadIgnoresEmptyLines(t *testing.T) {
	// given
	store, dir := newTestStore(t)
	content := "1,Pen,1.5,7\n\n2,Notebook,3,4\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.txt"), []byte(content), 0o644))

	// when
	products, err := store.LoadProducts()

	// then
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
