package flyering

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/infrastructure/repository"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/pkg/utils"
)

// Service expõe a composição de volantini, o acervo de produtos de
// volantino e as promo lampo.
type Service interface {
	CreateFlyer(flyer *domain.Flyer) (*domain.Flyer, error)
	ComposeFlyer(title, background string, productIDs []int) (*domain.Flyer, error)
	UpdateFlyer(flyer *domain.Flyer) error
	GetFlyer(flyerID string) (*domain.Flyer, error)
	ListFlyers() ([]*domain.Flyer, error)
	DeleteFlyer(flyerID string) error

	CreateFlyerProduct(product *domain.FlyerProduct) (*domain.FlyerProduct, error)
	ListFlyerProducts(includeDeleted bool) ([]*domain.FlyerProduct, error)
	DeleteFlyerProduct(productID int) error

	CreateFlashPromo(promo *domain.FlashPromo) (*domain.FlashPromo, error)
	UpdateFlashPromo(promo *domain.FlashPromo) error
	GetFlashPromo(promoID string) (*domain.FlashPromo, error)
	ListFlashPromos() ([]*domain.FlashPromo, error)
	DeleteFlashPromo(promoID string) error
}

type flyerService struct {
	flyerRepo repository.FlyerRepository
	promoRepo repository.FlashPromoRepository
}

func NewService(flyerRepo repository.FlyerRepository, promoRepo repository.FlashPromoRepository) Service {
	return &flyerService{
		flyerRepo: flyerRepo,
		promoRepo: promoRepo,
	}
}

func (s *flyerService) CreateFlyer(flyer *domain.Flyer) (*domain.Flyer, error) {
	if flyer.Title == "" {
		return nil, fmt.Errorf("título do volantino é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador: %w", err)
	}
	flyer.ID = id
	flyer.Layout = NormalizeLayout(flyer.Layout)

	created, err := s.flyerRepo.CreateFlyer(flyer)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar volantino: %w", err)
	}

	s.reactivateReferenced(created.Layout)

	return created, nil
}

// ComposeFlyer monta um volantino a partir de uma seleção de produtos,
// usando o layout padrão em grade. Produtos deletados logicamente são
// reativados ao entrarem na composição.
func (s *flyerService) ComposeFlyer(title, background string, productIDs []int) (*domain.Flyer, error) {
	if title == "" {
		return nil, fmt.Errorf("título do volantino é obrigatório")
	}

	products := make([]domain.FlyerProduct, 0, len(productIDs))
	for _, productID := range productIDs {
		product, err := s.flyerRepo.GetFlyerProductByID(productID)
		if err != nil {
			return nil, fmt.Errorf("erro ao consultar produto de volantino: %w", err)
		}
		if product == nil {
			return nil, fmt.Errorf("produto de volantino não encontrado: %d", productID)
		}

		if product.Deleted {
			if err := s.flyerRepo.ReactivateFlyerProduct(productID); err != nil {
				return nil, fmt.Errorf("erro ao reativar produto de volantino: %w", err)
			}
		}

		products = append(products, *product)
	}

	flyer := &domain.Flyer{
		Title:      title,
		Background: background,
		Layout:     BuildGridLayout(products),
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador: %w", err)
	}
	flyer.ID = id

	created, err := s.flyerRepo.CreateFlyer(flyer)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar volantino: %w", err)
	}

	return created, nil
}

func (s *flyerService) UpdateFlyer(flyer *domain.Flyer) error {
	existing, err := s.flyerRepo.GetFlyerByID(flyer.ID)
	if err != nil {
		return fmt.Errorf("erro ao consultar volantino: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("volantino não encontrado: %s", flyer.ID)
	}

	if flyer.Layout != nil {
		flyer.Layout = NormalizeLayout(flyer.Layout)
	}

	if err := s.flyerRepo.UpdateFlyer(flyer); err != nil {
		return fmt.Errorf("erro ao atualizar volantino: %w", err)
	}

	s.reactivateReferenced(flyer.Layout)

	return nil
}

func (s *flyerService) GetFlyer(flyerID string) (*domain.Flyer, error) {
	return s.flyerRepo.GetFlyerByID(flyerID)
}

func (s *flyerService) ListFlyers() ([]*domain.Flyer, error) {
	return s.flyerRepo.ListFlyers()
}

func (s *flyerService) DeleteFlyer(flyerID string) error {
	return s.flyerRepo.DeleteFlyer(flyerID)
}

func (s *flyerService) CreateFlyerProduct(product *domain.FlyerProduct) (*domain.FlyerProduct, error) {
	if product.Name == "" {
		return nil, fmt.Errorf("nome do produto é obrigatório")
	}
	if product.Price.IsNegative() {
		return nil, fmt.Errorf("preço não pode ser negativo")
	}

	return s.flyerRepo.CreateFlyerProduct(product)
}

func (s *flyerService) ListFlyerProducts(includeDeleted bool) ([]*domain.FlyerProduct, error) {
	return s.flyerRepo.ListFlyerProducts(includeDeleted)
}

// DeleteFlyerProduct faz a exclusão lógica: o produto some das
// listagens, mas volta se um layout o referenciar de novo.
func (s *flyerService) DeleteFlyerProduct(productID int) error {
	product, err := s.flyerRepo.GetFlyerProductByID(productID)
	if err != nil {
		return fmt.Errorf("erro ao consultar produto de volantino: %w", err)
	}
	if product == nil {
		return fmt.Errorf("produto de volantino não encontrado: %d", productID)
	}

	return s.flyerRepo.SoftDeleteFlyerProduct(productID)
}

func (s *flyerService) CreateFlashPromo(promo *domain.FlashPromo) (*domain.FlashPromo, error) {
	if promo.Name == "" {
		return nil, fmt.Errorf("nome da promo é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador: %w", err)
	}
	promo.ID = id
	promo.Layout = NormalizeLayout(promo.Layout)

	return s.promoRepo.CreateFlashPromo(promo)
}

func (s *flyerService) UpdateFlashPromo(promo *domain.FlashPromo) error {
	existing, err := s.promoRepo.GetFlashPromoByID(promo.ID)
	if err != nil {
		return fmt.Errorf("erro ao consultar promo: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("promo não encontrada: %s", promo.ID)
	}

	if promo.Layout != nil {
		promo.Layout = NormalizeLayout(promo.Layout)
	}

	return s.promoRepo.UpdateFlashPromo(promo)
}

func (s *flyerService) GetFlashPromo(promoID string) (*domain.FlashPromo, error) {
	return s.promoRepo.GetFlashPromoByID(promoID)
}

func (s *flyerService) ListFlashPromos() ([]*domain.FlashPromo, error) {
	return s.promoRepo.ListFlashPromos()
}

func (s *flyerService) DeleteFlashPromo(promoID string) error {
	return s.promoRepo.DeleteFlashPromo(promoID)
}

// reactivateReferenced reativa produtos deletados logicamente que um
// layout salvo voltou a referenciar.
func (s *flyerService) reactivateReferenced(layout []byte) {
	for _, productID := range ReferencedProductIDs(layout) {
		product, err := s.flyerRepo.GetFlyerProductByID(productID)
		if err != nil || product == nil {
			continue
		}

		if product.Deleted {
			if err := s.flyerRepo.ReactivateFlyerProduct(productID); err != nil {
				logrus.WithError(err).Warnf("Erro ao reativar produto de volantino %d", productID)
			}
		}
	}
}
