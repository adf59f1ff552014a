package service

import (
	"context"
	"strings"

	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/repository"
)

type CustomerInput struct {
	FullName       string
	DocumentType   string
	DocumentNumber *string
	Phone          *string
	Whatsapp       *string
	Email          *string
	Address        *string
	City           *string
	Country        string
	Age            *int
	Nationality    *string
	Origin         *string
}

type CustomerService interface {
	Create(ctx context.Context, actor Actor, in CustomerInput) (*models.Customer, error)
	Get(ctx context.Context, actor Actor, id uint) (*models.Customer, error)
	Search(ctx context.Context, actor Actor, term string) ([]models.Customer, error)
	Update(ctx context.Context, actor Actor, id uint, in CustomerInput) (*models.Customer, error)
}

type customerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) Create(ctx context.Context, actor Actor, in CustomerInput) (*models.Customer, error) {
	customer := &models.Customer{OperatorID: actor.OperatorID}
	applyCustomerInput(customer, in)
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Get(ctx context.Context, actor Actor, id uint) (*models.Customer, error) {
	customer, err := s.customers.FindByID(ctx, actor.OperatorID, id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *customerService) Search(ctx context.Context, actor Actor, term string) ([]models.Customer, error) {
	return s.customers.Search(ctx, actor.OperatorID, strings.TrimSpace(term))
}

func (s *customerService) Update(ctx context.Context, actor Actor, id uint, in CustomerInput) (*models.Customer, error) {
	customer, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	applyCustomerInput(customer, in)
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func applyCustomerInput(c *models.Customer, in CustomerInput) {
	c.FullName = strings.TrimSpace(in.FullName)
	if in.DocumentType != "" {
		c.DocumentType = in.DocumentType
	}
	if in.DocumentNumber != nil {
		trimmed := strings.TrimSpace(*in.DocumentNumber)
		c.DocumentNumber = &trimmed
	}
	c.Phone = in.Phone
	c.Whatsapp = in.Whatsapp
	c.Email = in.Email
	c.Address = in.Address
	c.City = in.City
	if in.Country != "" {
		c.Country = in.Country
	}
	c.Age = in.Age
	c.Nationality = in.Nationality
	c.Origin = in.Origin
}
