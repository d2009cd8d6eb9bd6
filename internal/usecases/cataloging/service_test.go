package cataloging

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*catalogService, *mocks.MockCategoryRepository, *mocks.MockProductRepository, *mocks.MockCustomerRepository, *mocks.MockActivityRepository) {
	ctrl := gomock.NewController(t)

	categoryRepo := mocks.NewMockCategoryRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	activityRepo := mocks.NewMockActivityRepository(ctrl)

	service := &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		activityRepo: activityRepo,
	}

	return service, categoryRepo, productRepo, customerRepo, activityRepo
}

func TestCreateProduct(t *testing.T) {
	service, categoryRepo, productRepo, _, _ := newTestService(t)

	product := &domain.Product{Code: "LP-100", Name: "Lente progressiva", CategoryID: 2}

	categoryRepo.EXPECT().GetCategoryByID(2).Return(&domain.Category{ID: 2, Name: "Lenti"}, nil)
	productRepo.EXPECT().GetProductByCode("LP-100").Return(nil, nil)
	productRepo.EXPECT().CreateProduct(product).DoAndReturn(func(p *domain.Product) (*domain.Product, error) {
		p.ID = 10
		return p, nil
	})

	created, err := service.CreateProduct(product)
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)
}

func TestCreateProductDuplicateCode(t *testing.T) {
	service, categoryRepo, productRepo, _, _ := newTestService(t)

	categoryRepo.EXPECT().GetCategoryByID(2).Return(&domain.Category{ID: 2}, nil)
	productRepo.EXPECT().GetProductByCode("LP-100").Return(&domain.Product{ID: 5, Code: "LP-100"}, nil)

	_, err := service.CreateProduct(&domain.Product{Code: "LP-100", Name: "Lente progressiva", CategoryID: 2})
	assert.Error(t, err)
}

func TestCreateProductCategoryNotFound(t *testing.T) {
	service, categoryRepo, _, _, _ := newTestService(t)

	categoryRepo.EXPECT().GetCategoryByID(9).Return(nil, nil)

	_, err := service.CreateProduct(&domain.Product{Code: "LP-100", Name: "Lente progressiva", CategoryID: 9})
	assert.Error(t, err)
}

func TestListCatalogGroupsByCategory(t *testing.T) {
	service, categoryRepo, productRepo, _, _ := newTestService(t)

	categoryRepo.EXPECT().ListCategories().Return([]*domain.Category{
		{ID: 1, Name: "Montature"},
		{ID: 2, Name: "Lenti"},
	}, nil)

	productRepo.EXPECT().ListProducts().Return([]*domain.Product{
		{ID: 10, Code: "LP-100", Name: "Lente progressiva", CategoryID: 2},
		{ID: 11, Code: "LM-200", Name: "Lente monofocale", CategoryID: 2},
	}, nil)

	groups, err := service.ListCatalog()
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Categoria sem produtos aparece vazia, não é omitida.
	assert.Equal(t, "Montature", groups[0].Category.Name)
	assert.Empty(t, groups[0].Products)

	assert.Equal(t, "Lenti", groups[1].Category.Name)
	assert.Len(t, groups[1].Products, 2)
}

func TestLinkProduct(t *testing.T) {
	service, _, productRepo, customerRepo, activityRepo := newTestService(t)

	price := decimal.NewFromInt(120)

	customerRepo.EXPECT().GetCustomerByID(1).Return(&domain.Customer{ID: 1, Name: "Ottica Rossi"}, nil)
	productRepo.EXPECT().GetProductByID(10).Return(&domain.Product{ID: 10, Code: "LP-100", Name: "Lente progressiva"}, nil)
	productRepo.EXPECT().LinkCustomerProduct(1, 10, true, &price, nil).Return(nil)
	activityRepo.EXPECT().Log(gomock.Any()).DoAndReturn(func(entry *domain.ActivityEntry) error {
		assert.Equal(t, domain.ActivityProductAdded, entry.Action)
		assert.Equal(t, 1, entry.CustomerID)
		return nil
	})

	err := service.LinkProduct(1, 10, true, &price, nil)
	assert.NoError(t, err)
}

func TestLinkProductCustomerNotFound(t *testing.T) {
	service, _, _, customerRepo, _ := newTestService(t)

	customerRepo.EXPECT().GetCustomerByID(99).Return(nil, nil)

	err := service.LinkProduct(99, 10, false, nil, nil)
	assert.Error(t, err)
}

func TestUnlinkProductSavesAudit(t *testing.T) {
	service, _, productRepo, _, activityRepo := newTestService(t)

	productRepo.EXPECT().GetProductByID(10).Return(&domain.Product{ID: 10, Code: "LP-100", Name: "Lente progressiva"}, nil)
	productRepo.EXPECT().UnlinkCustomerProduct(1, 10).Return(nil)
	productRepo.EXPECT().SaveRemovedProduct(gomock.Any()).DoAndReturn(func(removed *domain.RemovedProduct) error {
		assert.Equal(t, 1, removed.CustomerID)
		assert.Equal(t, 10, removed.ProductID)
		assert.Equal(t, "Lente progressiva", removed.ProductName)
		return nil
	})
	activityRepo.EXPECT().Log(gomock.Any()).DoAndReturn(func(entry *domain.ActivityEntry) error {
		assert.Equal(t, domain.ActivityProductRemoved, entry.Action)
		return nil
	})

	err := service.UnlinkProduct(1, 10)
	assert.NoError(t, err)
}

func TestUnlinkProductAuditFailureIsNotFatal(t *testing.T) {
	service, _, productRepo, _, activityRepo := newTestService(t)

	productRepo.EXPECT().GetProductByID(10).Return(&domain.Product{ID: 10, Name: "Lente progressiva"}, nil)
	productRepo.EXPECT().UnlinkCustomerProduct(1, 10).Return(nil)
	productRepo.EXPECT().SaveRemovedProduct(gomock.Any()).Return(errors.New("tabela indisponível"))
	activityRepo.EXPECT().Log(gomock.Any()).Return(nil)

	err := service.UnlinkProduct(1, 10)
	assert.NoError(t, err)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	service, categoryRepo, _, _, _ := newTestService(t)

	categoryRepo.EXPECT().GetCategoryByID(9).Return(nil, nil)

	err := service.UpdateCategory(&domain.Category{ID: 9, Name: "Lenti"})
	assert.Error(t, err)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	_, err := service.CreateCategory(&domain.Category{})
	assert.Error(t, err)
}
