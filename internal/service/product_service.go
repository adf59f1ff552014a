package service

import (
	"context"
	"errors"
	"strings"

	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/repository"
	"gorm.io/gorm"
)

type ProductInput struct {
	Category       string
	Name           string
	Description    *string
	Price          float64
	Cost           float64
	TaxRate        float64
	StockQuantity  int
	TrackInventory bool
	IsActive       bool
}

type ProductService interface {
	Create(ctx context.Context, actor Actor, in ProductInput) (*models.Product, error)
	Get(ctx context.Context, actor Actor, id uint) (*models.Product, error)
	List(ctx context.Context, actor Actor, category string, activeOnly bool) ([]models.Product, error)
	Update(ctx context.Context, actor Actor, id uint, in ProductInput) (*models.Product, error)
	Restock(ctx context.Context, actor Actor, id uint, quantity int) (*models.Product, error)
	Delete(ctx context.Context, actor Actor, id uint) error
}

type productService struct {
	products repository.ProductRepository
	gate     *AuthorizationGate
}

func NewProductService(products repository.ProductRepository, gate *AuthorizationGate) ProductService {
	return &productService{products: products, gate: gate}
}

func (s *productService) Create(ctx context.Context, actor Actor, in ProductInput) (*models.Product, error) {
	if err := s.gate.CanManageInventory(actor); err != nil {
		return nil, err
	}
	if in.Price < 0 || in.TaxRate < 0 || in.StockQuantity < 0 {
		return nil, ErrInvalidAmount
	}
	product := &models.Product{OperatorID: actor.OperatorID}
	applyProductInput(product, in)
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Get(ctx context.Context, actor Actor, id uint) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, actor.OperatorID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) List(ctx context.Context, actor Actor, category string, activeOnly bool) ([]models.Product, error) {
	return s.products.List(ctx, actor.OperatorID, category, activeOnly)
}

func (s *productService) Update(ctx context.Context, actor Actor, id uint, in ProductInput) (*models.Product, error) {
	if err := s.gate.CanManageInventory(actor); err != nil {
		return nil, err
	}
	product, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	applyProductInput(product, in)
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Restock adds stock without touching the rest of the product.
func (s *productService) Restock(ctx context.Context, actor Actor, id uint, quantity int) (*models.Product, error) {
	if err := s.gate.CanManageInventory(actor); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, ErrInvalidAmount
	}
	product, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	product.StockQuantity += quantity
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, actor Actor, id uint) error {
	if err := s.gate.CanManageInventory(actor); err != nil {
		return err
	}
	affected, err := s.products.Delete(ctx, actor.OperatorID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func applyProductInput(p *models.Product, in ProductInput) {
	p.Category = in.Category
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Price = in.Price
	p.Cost = in.Cost
	p.TaxRate = in.TaxRate
	p.StockQuantity = in.StockQuantity
	p.TrackInventory = in.TrackInventory
	p.IsActive = in.IsActive
}
