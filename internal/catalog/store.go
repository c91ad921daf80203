// Package catalog maintains the in-memory product catalog: an
// insertion-ordered collection with sequentially assigned IDs.
package catalog

// Product represents a purchasable item.
type Product struct {
	ID    int
	Name  string
	Price float64
	Stock int
}

// Store is the in-memory product catalog. IDs are assigned sequentially at
// creation time, which stays stable because products are never removed.
type Store struct {
	products []Product
	nextID   int
}

// NewStore creates an empty catalog.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// NewStoreWith creates a catalog seeded with previously persisted products,
// preserving their order and IDs. The ID counter continues from the highest
// loaded ID, so a record skipped during load can never cause its ID to be
// handed out again.
func NewStoreWith(products []Product) *Store {
	s := &Store{
		products: append([]Product(nil), products...),
		nextID:   1,
	}
	for _, p := range s.products {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

// Add appends a new product and assigns it the next sequential ID.
func (s *Store) Add(name string, price float64, stock int) *Product {
	p := Product{
		ID:    s.nextID,
		Name:  name,
		Price: price,
		Stock: stock,
	}
	s.nextID++
	s.products = append(s.products, p)
	return &p
}

// FindByID retrieves a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Store) FindByID(id int) (*Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// ReduceStock subtracts quantity from the product's stock. The invariant
// stock >= 0 is enforced here: ErrInsufficientStock is returned and nothing
// changes when quantity exceeds the available stock.
func (s *Store) ReduceStock(id, quantity int) error {
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if quantity > s.products[i].Stock {
			return ErrInsufficientStock
		}
		s.products[i].Stock -= quantity
		return nil
	}
	return ErrProductNotFound
}

// List returns all products in insertion order.
func (s *Store) List() []Product {
	return append([]Product(nil), s.products...)
}

// Len reports the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}
