package offering

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	whatsappmocks "github.com/vfg2006/backoffice-api/infrastructure/integrator/whatsapp/mocks"
	"github.com/vfg2006/backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*offerService, *mocks.MockProductRepository, *mocks.MockCustomerRepository, *whatsappmocks.MockNotifier) {
	ctrl := gomock.NewController(t)

	productRepo := mocks.NewMockProductRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	notifier := whatsappmocks.NewMockNotifier(ctrl)

	cfg := &config.Config{}
	cfg.OfferImport.MaxCodeDistance = 1
	cfg.OfferImport.MaxConcurrentJobs = 3

	service := &offerService{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		cfg:          cfg,
	}

	return service, productRepo, customerRepo, notifier
}

func phonePtr(phone string) *string {
	return &phone
}

func TestImportOffers(t *testing.T) {
	service, productRepo, _, _ := newTestService(t)

	productRepo.EXPECT().ListProducts().Return([]*domain.Product{
		{ID: 1, Code: "LP-100", Name: "Lente progressiva"},
		{ID: 2, Code: "MT-300", Name: "Montatura acciaio"},
	}, nil)

	text := `LP-100 Lente progressiva 19,90
LP-109 Lente con refuso 15,00
ZZ-999 Codice sconosciuto 5,00`

	result, err := service.ImportOffers(text)
	require.NoError(t, err)

	// Casamento exato e casamento com um erro de digitação.
	require.Len(t, result.Matched, 2)
	assert.Equal(t, 1, result.Matched[0].Product.ID)
	assert.Equal(t, 0, result.Matched[0].Distance)
	assert.Equal(t, 1, result.Matched[1].Product.ID)
	assert.Equal(t, 1, result.Matched[1].Distance)

	require.Len(t, result.Unmatched, 1)
	assert.Equal(t, "ZZ-999", result.Unmatched[0].Code)
}

func TestImportOffersNoLines(t *testing.T) {
	service, _, _, _ := newTestService(t)

	_, err := service.ImportOffers("testo senza offerte")
	assert.Error(t, err)
}

func TestBroadcastOffer(t *testing.T) {
	service, _, customerRepo, notifier := newTestService(t)

	customerRepo.EXPECT().ListCustomers("Nord").Return([]*domain.Customer{
		{ID: 1, Name: "Ottica Rossi", Phone: phonePtr("390000000001")},
		{ID: 2, Name: "Ottica Bianchi", Phone: phonePtr("390000000002")},
		{ID: 3, Name: "Ottica Verdi"},
	}, nil)

	notifier.EXPECT().SendOffer("390000000001", "Offerte!").Return(nil)
	notifier.EXPECT().SendOffer("390000000002", "Offerte!").Return(nil)

	result, err := service.BroadcastOffer(context.Background(), "Nord", "Offerte!")
	require.NoError(t, err)

	// Clientes sem telefone ficam fora da lista de destinatários.
	assert.Equal(t, 2, result.Recipients)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)
}

func TestBroadcastOfferCountsFailures(t *testing.T) {
	service, _, customerRepo, notifier := newTestService(t)

	customerRepo.EXPECT().ListCustomers("").Return([]*domain.Customer{
		{ID: 1, Phone: phonePtr("390000000001")},
		{ID: 2, Phone: phonePtr("390000000002")},
		{ID: 3, Phone: phonePtr("390000000003")},
	}, nil)

	notifier.EXPECT().SendOffer("390000000001", "Offerte!").Return(nil)
	notifier.EXPECT().SendOffer("390000000002", "Offerte!").Return(errors.New("numero non valido"))
	notifier.EXPECT().SendOffer("390000000003", "Offerte!").Return(nil)

	result, err := service.BroadcastOffer(context.Background(), "", "Offerte!")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Recipients)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestBroadcastOfferEmptyMessage(t *testing.T) {
	service, _, _, _ := newTestService(t)

	_, err := service.BroadcastOffer(context.Background(), "", "   ")
	assert.Error(t, err)
}

func TestBroadcastOfferNoRecipients(t *testing.T) {
	service, _, customerRepo, _ := newTestService(t)

	customerRepo.EXPECT().ListCustomers("").Return([]*domain.Customer{
		{ID: 1, Name: "Ottica senza telefono"},
	}, nil)

	result, err := service.BroadcastOffer(context.Background(), "", "Offerte!")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Recipients)
}

func TestFormatOfferMessage(t *testing.T) {
	service, _, _, _ := newTestService(t)

	lines := ParseOfferText("LP-100 Lente progressiva 19,90")
	require.Len(t, lines, 1)

	message := service.FormatOfferMessage([]domain.OfferMatch{
		{Line: lines[0], Product: domain.Product{Name: "Lente progressiva"}},
	})

	assert.Contains(t, message, "Lente progressiva")
	assert.Contains(t, message, "€ 19.90")
}
