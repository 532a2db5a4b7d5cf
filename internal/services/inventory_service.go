package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"stockpile/internal/domain"
	"stockpile/internal/repos"
)

// InventoryService sits between the handlers and the product store. It
// owns the not-found translation and wraps unexpected store failures so
// handlers can tell the three error kinds apart.
type InventoryService struct {
	Products *repos.ProductRepo
}

func NewInventoryService(products *repos.ProductRepo) *InventoryService {
	return &InventoryService{Products: products}
}

func (s *InventoryService) CreateProduct(name, category string, price decimal.Decimal, quantity int) (int64, error) {
	id, err := s.Products.Create(name, category, price, quantity)
	if err != nil {
		if domain.IsValidation(err) {
			return 0, err
		}
		return 0, fmt.Errorf("store: create product: %w", err)
	}
	return id, nil
}

func (s *InventoryService) ListProducts() ([]domain.Product, error) {
	out, err := s.Products.ListAll()
	if err != nil {
		return nil, fmt.Errorf("store: list products: %w", err)
	}
	return out, nil
}

// SearchProducts filters by a case-insensitive substring of name or
// category. An empty term returns the full list.
func (s *InventoryService) SearchProducts(term string) ([]domain.Product, error) {
	out, err := s.Products.Search(term)
	if err != nil {
		return nil, fmt.Errorf("store: search products: %w", err)
	}
	return out, nil
}

func (s *InventoryService) GetProduct(id int64) (domain.Product, error) {
	p, err := s.Products.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, fmt.Errorf("store: get product: %w", err)
	}
	return p, nil
}

func (s *InventoryService) UpdateProduct(id int64, name, category string, price decimal.Decimal, quantity int) error {
	n, err := s.Products.Update(id, name, category, price, quantity)
	if err != nil {
		if domain.IsValidation(err) {
			return err
		}
		return fmt.Errorf("store: update product: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *InventoryService) DeleteProduct(id int64) error {
	n, err := s.Products.Delete(id)
	if err != nil {
		return fmt.Errorf("store: delete product: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *InventoryService) CountProducts() (int, error) {
	return s.Products.Count()
}
