package handler

import (
	"net/http"

	"github.com/hotelio/frontdesk/internal/dto"
	"github.com/hotelio/frontdesk/internal/middleware"
	"github.com/hotelio/frontdesk/internal/service"
	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the customer directory and the POS product
// catalog.
type CatalogHandler struct {
	customers service.CustomerService
	products  service.ProductService
}

func NewCatalogHandler(customers service.CustomerService, products service.ProductService) *CatalogHandler {
	return &CatalogHandler{customers: customers, products: products}
}

func (h *CatalogHandler) RegisterRoutes(api *echo.Group) {
	customers := api.Group("/customers")
	customers.POST("", h.CreateCustomer)
	customers.GET("", h.SearchCustomers)
	customers.GET("/:id", h.GetCustomer)
	customers.PUT("/:id", h.UpdateCustomer)

	products := api.Group("/products")
	products.POST("", h.CreateProduct)
	products.GET("", h.ListProducts)
	products.GET("/:id", h.GetProduct)
	products.PUT("/:id", h.UpdateProduct)
	products.POST("/:id/restock", h.Restock)
	products.DELETE("/:id", h.DeleteProduct)
}

func (h *CatalogHandler) CreateCustomer(c echo.Context) error {
	var req dto.CustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	customer, err := h.customers.Create(c.Request().Context(), middleware.ActorFrom(c), customerInput(req))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, customer)
}

func (h *CatalogHandler) GetCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.customers.Get(c.Request().Context(), middleware.ActorFrom(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CatalogHandler) SearchCustomers(c echo.Context) error {
	customers, err := h.customers.Search(c.Request().Context(), middleware.ActorFrom(c), c.QueryParam("q"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CatalogHandler) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	customer, err := h.customers.Update(c.Request().Context(), middleware.ActorFrom(c), id, customerInput(req))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req dto.ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	product, err := h.products.Create(c.Request().Context(), middleware.ActorFrom(c), productInput(req))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	product, err := h.products.Get(c.Request().Context(), middleware.ActorFrom(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	activeOnly := c.QueryParam("active") != "false"
	products, err := h.products.List(c.Request().Context(), middleware.ActorFrom(c), c.QueryParam("category"), activeOnly)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	product, err := h.products.Update(c.Request().Context(), middleware.ActorFrom(c), id, productInput(req))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) Restock(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.RestockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	product, err := h.products.Restock(c.Request().Context(), middleware.ActorFrom(c), id, req.Quantity)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.products.Delete(c.Request().Context(), middleware.ActorFrom(c), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func customerInput(req dto.CustomerRequest) service.CustomerInput {
	return service.CustomerInput{
		FullName:       req.FullName,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		Phone:          req.Phone,
		Whatsapp:       req.Whatsapp,
		Email:          req.Email,
		Address:        req.Address,
		City:           req.City,
		Country:        req.Country,
		Age:            req.Age,
		Nationality:    req.Nationality,
		Origin:         req.Origin,
	}
}

func productInput(req dto.ProductRequest) service.ProductInput {
	return service.ProductInput{
		Category:       req.Category,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Cost:           req.Cost,
		TaxRate:        req.TaxRate,
		StockQuantity:  req.StockQuantity,
		TrackInventory: req.TrackInventory,
		IsActive:       req.IsActive,
	}
}
