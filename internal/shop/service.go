// Package shop implements the purchase flow and the admin catalog operations
// on top of the catalog store and the order ledger.
package shop

import (
	"errors"
	"fmt"

	"github.com/abgdnv/shopmanager/internal/catalog"
	"github.com/abgdnv/shopmanager/internal/ledger"
	"github.com/go-playground/validator/v10"
)

// Service coordinates the catalog and the ledger. Stock reduction and ledger
// recording are two sequential in-memory steps with no rollback; the second
// step cannot fail once the first has succeeded.
type Service struct {
	catalog  *catalog.Store
	ledger   *ledger.Ledger
	validate *validator.Validate
}

// NewService creates a new shop service over the given catalog and ledger.
func NewService(cat *catalog.Store, led *ledger.Ledger) *Service {
	return &Service{
		catalog:  cat,
		ledger:   led,
		validate: validator.New(),
	}
}

// ProductCreateDto represents the data required to add a catalog product.
type ProductCreateDto struct {
	Name  string  `validate:"required,max=100"`
	Price float64 `validate:"min=0"`
	Stock int     `validate:"min=0"`
}

// PurchaseDto represents one purchase request.
type PurchaseDto struct {
	AccountID string `validate:"required"`
	ProductID int    `validate:"required,min=1"`
	Quantity  int    `validate:"required,min=1"`
}

// Receipt summarizes a completed purchase for display. Nothing of it is
// persisted beyond the ledger line item.
type Receipt struct {
	ProductID   int
	ProductName string
	Quantity    int
	UnitPrice   float64
	Total       float64
}

// AddProduct validates the request and appends a new product to the catalog.
func (s *Service) AddProduct(dto ProductCreateDto) (*catalog.Product, error) {
	if err := s.validate.Struct(dto); err != nil {
		return nil, fmt.Errorf("invalid product data: %w", err)
	}
	return s.catalog.Add(dto.Name, dto.Price, dto.Stock), nil
}

// Products returns the catalog contents in insertion order.
func (s *Service) Products() []catalog.Product {
	return s.catalog.List()
}

// Buy executes one purchase: look up the product, reduce its stock and record
// the line item in the buyer's history. An unknown product or a quantity
// exceeding the available stock yields ErrInvalidPurchase and no mutation.
func (s *Service) Buy(dto PurchaseDto) (*Receipt, error) {
	if err := s.validate.Struct(dto); err != nil {
		return nil, fmt.Errorf("invalid purchase request: %w", err)
	}
	p, err := s.catalog.FindByID(dto.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPurchase, err)
	}
	if err := s.catalog.ReduceStock(p.ID, dto.Quantity); err != nil {
		if errors.Is(err, catalog.ErrInsufficientStock) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPurchase, err)
		}
		return nil, fmt.Errorf("failed to reduce stock for product %d: %w", p.ID, err)
	}
	s.ledger.RecordPurchase(dto.AccountID, p.Name, dto.Quantity)

	return &Receipt{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    dto.Quantity,
		UnitPrice:   p.Price,
		Total:       p.Price * float64(dto.Quantity),
	}, nil
}

// History returns the buyer's recorded line items in append order.
func (s *Service) History(accountID string) []string {
	return s.ledger.HistoryFor(accountID)
}
