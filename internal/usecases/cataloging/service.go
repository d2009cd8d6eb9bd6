package cataloging

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/infrastructure/repository"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

// Service expõe o catálogo de produtos, as categorias e os vínculos
// entre clientes e produtos.
type Service interface {
	CreateCategory(category *domain.Category) (*domain.Category, error)
	UpdateCategory(category *domain.Category) error
	ListCategories() ([]*domain.Category, error)
	DeleteCategory(categoryID int) error

	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	GetProduct(productID int) (*domain.Product, error)
	ListProducts() ([]*domain.Product, error)
	ListCatalog() ([]domain.CategoryGroup, error)
	DeleteProduct(productID int) error

	LinkProduct(customerID, productID int, worked bool, currentPrice, offerPrice *decimal.Decimal) error
	UnlinkProduct(customerID, productID int) error
	ListCustomersByProduct(productID int) ([]domain.ProductCustomer, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	activityRepo repository.ActivityRepository
}

func NewService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	activityRepo repository.ActivityRepository,
) Service {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		activityRepo: activityRepo,
	}
}

func (s *catalogService) CreateCategory(category *domain.Category) (*domain.Category, error) {
	if category.Name == "" {
		return nil, fmt.Errorf("nome da categoria é obrigatório")
	}

	return s.categoryRepo.CreateCategory(category)
}

func (s *catalogService) UpdateCategory(category *domain.Category) error {
	existing, err := s.categoryRepo.GetCategoryByID(category.ID)
	if err != nil {
		return fmt.Errorf("erro ao consultar categoria: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("categoria não encontrada: %d", category.ID)
	}

	return s.categoryRepo.UpdateCategory(category)
}

func (s *catalogService) ListCategories() ([]*domain.Category, error) {
	return s.categoryRepo.ListCategories()
}

func (s *catalogService) DeleteCategory(categoryID int) error {
	return s.categoryRepo.DeleteCategory(categoryID)
}

func (s *catalogService) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if product.Code == "" || product.Name == "" {
		return nil, fmt.Errorf("código e nome do produto são obrigatórios")
	}

	category, err := s.categoryRepo.GetCategoryByID(product.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar categoria: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("categoria não encontrada: %d", product.CategoryID)
	}

	existing, err := s.productRepo.GetProductByCode(product.Code)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar produto: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("já existe um produto com o código %s", product.Code)
	}

	return s.productRepo.CreateProduct(product)
}

func (s *catalogService) UpdateProduct(product *domain.Product) error {
	existing, err := s.productRepo.GetProductByID(product.ID)
	if err != nil {
		return fmt.Errorf("erro ao consultar produto: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("produto não encontrado: %d", product.ID)
	}

	return s.productRepo.UpdateProduct(product)
}

func (s *catalogService) GetProduct(productID int) (*domain.Product, error) {
	return s.productRepo.GetProductByID(productID)
}

func (s *catalogService) ListProducts() ([]*domain.Product, error) {
	return s.productRepo.ListProducts()
}

// ListCatalog retorna os produtos agrupados por categoria, na ordem das
// categorias. Categorias sem produtos também aparecem na listagem.
func (s *catalogService) ListCatalog() ([]domain.CategoryGroup, error) {
	categories, err := s.categoryRepo.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar categorias: %w", err)
	}

	products, err := s.productRepo.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar produtos: %w", err)
	}

	byCategory := make(map[int][]domain.Product)
	for _, product := range products {
		byCategory[product.CategoryID] = append(byCategory[product.CategoryID], *product)
	}

	groups := make([]domain.CategoryGroup, 0, len(categories))
	for _, category := range categories {
		group := domain.CategoryGroup{
			Category: *category,
			Products: byCategory[category.ID],
		}
		if group.Products == nil {
			group.Products = []domain.Product{}
		}
		groups = append(groups, group)
	}

	return groups, nil
}

func (s *catalogService) DeleteProduct(productID int) error {
	return s.productRepo.DeleteProduct(productID)
}

// LinkProduct vincula um produto a um cliente. Um novo vínculo para o
// mesmo par substitui a marcação e os preços anteriores.
func (s *catalogService) LinkProduct(customerID, productID int, worked bool, currentPrice, offerPrice *decimal.Decimal) error {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		return fmt.Errorf("erro ao consultar cliente: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("cliente não encontrado: %d", customerID)
	}

	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return fmt.Errorf("erro ao consultar produto: %w", err)
	}
	if product == nil {
		return fmt.Errorf("produto não encontrado: %d", productID)
	}

	if err := s.productRepo.LinkCustomerProduct(customerID, productID, worked, currentPrice, offerPrice); err != nil {
		return fmt.Errorf("erro ao vincular produto: %w", err)
	}

	s.logActivity(customerID, domain.ActivityProductAdded, fmt.Sprintf("Produto %s (%s) vinculado", product.Name, product.Code))

	return nil
}

// UnlinkProduct desvincula um produto de um cliente e grava a linha de
// auditoria de remoção.
func (s *catalogService) UnlinkProduct(customerID, productID int) error {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return fmt.Errorf("erro ao consultar produto: %w", err)
	}
	if product == nil {
		return fmt.Errorf("produto não encontrado: %d", productID)
	}

	if err := s.productRepo.UnlinkCustomerProduct(customerID, productID); err != nil {
		return fmt.Errorf("erro ao desvincular produto: %w", err)
	}

	removed := &domain.RemovedProduct{
		CustomerID:  customerID,
		ProductID:   productID,
		ProductName: product.Name,
	}
	if err := s.productRepo.SaveRemovedProduct(removed); err != nil {
		logrus.WithError(err).Warnf("Erro ao gravar auditoria de remoção do produto %d", productID)
	}

	s.logActivity(customerID, domain.ActivityProductRemoved, fmt.Sprintf("Produto %s (%s) removido", product.Name, product.Code))

	return nil
}

func (s *catalogService) ListCustomersByProduct(productID int) ([]domain.ProductCustomer, error) {
	return s.productRepo.ListCustomersByProduct(productID)
}

func (s *catalogService) logActivity(customerID int, action, detail string) {
	err := s.activityRepo.Log(&domain.ActivityEntry{
		CustomerID: customerID,
		Action:     action,
		Detail:     detail,
	})
	if err != nil {
		logrus.WithError(err).Warnf("Erro ao registrar atividade do cliente %d", customerID)
	}
}
