package flyering

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*flyerService, *mocks.MockFlyerRepository, *mocks.MockFlashPromoRepository) {
	ctrl := gomock.NewController(t)

	flyerRepo := mocks.NewMockFlyerRepository(ctrl)
	promoRepo := mocks.NewMockFlashPromoRepository(ctrl)

	service := &flyerService{
		flyerRepo: flyerRepo,
		promoRepo: promoRepo,
	}

	return service, flyerRepo, promoRepo
}

func TestComposeFlyer(t *testing.T) {
	service, flyerRepo, _ := newTestService(t)

	flyerRepo.EXPECT().GetFlyerProductByID(1).Return(&domain.FlyerProduct{
		ID: 1, Name: "Occhiale sole", Price: decimal.NewFromInt(49), Image: "sole.png",
	}, nil)
	flyerRepo.EXPECT().GetFlyerProductByID(2).Return(&domain.FlyerProduct{
		ID: 2, Name: "Lente blu", Price: decimal.NewFromInt(19), Image: "blu.png",
	}, nil)

	flyerRepo.EXPECT().CreateFlyer(gomock.Any()).DoAndReturn(func(flyer *domain.Flyer) (*domain.Flyer, error) {
		assert.Equal(t, "Offerte giugno", flyer.Title)
		assert.Len(t, flyer.ID, 6)

		ids := ReferencedProductIDs(flyer.Layout)
		assert.Equal(t, []int{1, 2}, ids)

		return flyer, nil
	})

	flyer, err := service.ComposeFlyer("Offerte giugno", "bg.png", []int{1, 2})
	require.NoError(t, err)
	require.NotNil(t, flyer)
}

func TestComposeFlyerReactivatesDeletedProduct(t *testing.T) {
	service, flyerRepo, _ := newTestService(t)

	flyerRepo.EXPECT().GetFlyerProductByID(5).Return(&domain.FlyerProduct{
		ID: 5, Name: "Montatura", Price: decimal.NewFromInt(89), Deleted: true,
	}, nil)
	flyerRepo.EXPECT().ReactivateFlyerProduct(5).Return(nil)
	flyerRepo.EXPECT().CreateFlyer(gomock.Any()).DoAndReturn(func(flyer *domain.Flyer) (*domain.Flyer, error) {
		return flyer, nil
	})

	_, err := service.ComposeFlyer("Offerte", "", []int{5})
	assert.NoError(t, err)
}

func TestComposeFlyerProductNotFound(t *testing.T) {
	service, flyerRepo, _ := newTestService(t)

	flyerRepo.EXPECT().GetFlyerProductByID(99).Return(nil, nil)

	_, err := service.ComposeFlyer("Offerte", "", []int{99})
	assert.Error(t, err)
}

func TestComposeFlyerRequiresTitle(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.ComposeFlyer("", "", []int{1})
	assert.Error(t, err)
}

func TestCreateFlyerNormalizesLayout(t *testing.T) {
	service, flyerRepo, _ := newTestService(t)

	flyerRepo.EXPECT().CreateFlyer(gomock.Any()).DoAndReturn(func(flyer *domain.Flyer) (*domain.Flyer, error) {
		var envelope struct {
			Objects []map[string]any `json:"objects"`
		}
		require.NoError(t, json.Unmarshal(flyer.Layout, &envelope))
		assert.Len(t, envelope.Objects, 1)
		return flyer, nil
	})

	_, err := service.CreateFlyer(&domain.Flyer{
		Title:  "Offerte",
		Layout: json.RawMessage(`[{"type":"text","left":10,"top":10}]`),
	})
	assert.NoError(t, err)
}

func TestUpdateFlyerReactivatesReferencedProducts(t *testing.T) {
	service, flyerRepo, _ := newTestService(t)

	flyerRepo.EXPECT().GetFlyerByID("abc123").Return(&domain.Flyer{ID: "abc123", Title: "Offerte"}, nil)
	flyerRepo.EXPECT().UpdateFlyer(gomock.Any()).Return(nil)
	flyerRepo.EXPECT().GetFlyerProductByID(7).Return(&domain.FlyerProduct{ID: 7, Deleted: true}, nil)
	flyerRepo.EXPECT().ReactivateFlyerProduct(7).Return(nil)

	err := service.UpdateFlyer(&domain.Flyer{
		ID:     "abc123",
		Title:  "Offerte aggiornate",
		Layout: json.RawMessage(`{"objects":[{"type":"image","product_id":7}]}`),
	})
	assert.NoError(t, err)
}

func TestUpdateFlyerNotFound(t *testing.T) {
	service, flyerRepo, _ := newTestService(t)

	flyerRepo.EXPECT().GetFlyerByID("zzz999").Return(nil, nil)

	err := service.UpdateFlyer(&domain.Flyer{ID: "zzz999"})
	assert.Error(t, err)
}

func TestDeleteFlyerProduct(t *testing.T) {
	service, flyerRepo, _ := newTestService(t)

	flyerRepo.EXPECT().GetFlyerProductByID(3).Return(&domain.FlyerProduct{ID: 3}, nil)
	flyerRepo.EXPECT().SoftDeleteFlyerProduct(3).Return(nil)

	err := service.DeleteFlyerProduct(3)
	assert.NoError(t, err)
}

func TestDeleteFlyerProductNotFound(t *testing.T) {
	service, flyerRepo, _ := newTestService(t)

	flyerRepo.EXPECT().GetFlyerProductByID(99).Return(nil, nil)

	err := service.DeleteFlyerProduct(99)
	assert.Error(t, err)
}

func TestCreateFlyerProductValidatesPrice(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.CreateFlyerProduct(&domain.FlyerProduct{
		Name:  "Occhiale",
		Price: decimal.NewFromInt(-5),
	})
	assert.Error(t, err)
}

func TestCreateFlashPromo(t *testing.T) {
	service, _, promoRepo := newTestService(t)

	promoRepo.EXPECT().CreateFlashPromo(gomock.Any()).DoAndReturn(func(promo *domain.FlashPromo) (*domain.FlashPromo, error) {
		assert.Len(t, promo.ID, 6)
		assert.JSONEq(t, `{"objects":[]}`, string(promo.Layout))
		return promo, nil
	})

	promo, err := service.CreateFlashPromo(&domain.FlashPromo{
		Name:  "Promo lampo",
		Price: decimal.NewFromInt(29),
	})
	require.NoError(t, err)
	require.NotNil(t, promo)
}

func TestUpdateFlashPromoNotFound(t *testing.T) {
	service, _, promoRepo := newTestService(t)

	promoRepo.EXPECT().GetFlashPromoByID("zzz999").Return(nil, nil)

	err := service.UpdateFlashPromo(&domain.FlashPromo{ID: "zzz999"})
	assert.Error(t, err)
}
