// Package textfile persists the three stores as newline-delimited text files,
// one record per line, symmetric between encode and decode. The formats carry
// a known limitation: fields are comma-separated with no escaping, so a name
// containing a comma corrupts its record on reload.
package textfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abgdnv/shopmanager/internal/account"
	"github.com/abgdnv/shopmanager/internal/catalog"
	"github.com/abgdnv/shopmanager/internal/ledger"
)

// EncodeAccount renders an account as "id,name,password,role".
func EncodeAccount(a account.Account) string {
	return strings.Join([]string{a.ID, a.Name, a.Password, string(a.Role)}, ",")
}

// DecodeAccount parses one "id,name,password,role" line.
func DecodeAccount(line string) (account.Account, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return account.Account{}, fmt.Errorf("expected 4 fields, got %d", len(parts))
	}
	role, err := account.ParseRole(parts[3])
	if err != nil {
		return account.Account{}, err
	}
	return account.Account{
		ID:       parts[0],
		Name:     parts[1],
		Password: parts[2],
		Role:     role,
	}, nil
}

// EncodeProduct renders a product as "id,name,price,stock". The price keeps
// the minimal number of decimal digits so 1.5 round-trips as "1.5".
func EncodeProduct(p catalog.Product) string {
	return strings.Join([]string{
		strconv.Itoa(p.ID),
		p.Name,
		strconv.FormatFloat(p.Price, 'f', -1, 64),
		strconv.Itoa(p.Stock),
	}, ",")
}

// DecodeProduct parses one "id,name,price,stock" line.
func DecodeProduct(line string) (catalog.Product, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return catalog.Product{}, fmt.Errorf("expected 4 fields, got %d", len(parts))
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return catalog.Product{}, fmt.Errorf("invalid product ID %q: %w", parts[0], err)
	}
	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("invalid price %q: %w", parts[2], err)
	}
	stock, err := strconv.Atoi(parts[3])
	if err != nil {
		return catalog.Product{}, fmt.Errorf("invalid stock %q: %w", parts[3], err)
	}
	return catalog.Product{
		ID:    id,
		Name:  parts[1],
		Price: price,
		Stock: stock,
	}, nil
}

// EncodeLedgerEntry renders one history as "accountID:item1,item2,...".
// Line items must not contain commas or they split incorrectly on reload.
func EncodeLedgerEntry(e ledger.Entry) string {
	return e.AccountID + ":" + strings.Join(e.Items, ",")
}

// DecodeLedgerEntry parses one "accountID:item1,item2,..." line. Only the
// first colon separates the account ID from the item list.
func DecodeLedgerEntry(line string) (ledger.Entry, error) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return ledger.Entry{}, fmt.Errorf("missing ':' separator")
	}
	if parts[0] == "" {
		return ledger.Entry{}, fmt.Errorf("empty account ID")
	}
	return ledger.Entry{
		AccountID: parts[0],
		Items:     strings.Split(parts[1], ","),
	}, nil
}
