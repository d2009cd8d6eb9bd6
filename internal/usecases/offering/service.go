package offering

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/backoffice-api/infrastructure/repository"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

// Service processa textos de oferta e dispara o envio para os clientes
// por WhatsApp.
type Service interface {
	ImportOffers(text string) (*domain.OfferImportResult, error)
	BroadcastOffer(ctx context.Context, zone, message string) (*domain.OfferBroadcastResult, error)
	FormatOfferMessage(matches []domain.OfferMatch) string
}

type offerService struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	notifier     whatsapp.Notifier
	cfg          *config.Config
}

func NewService(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	notifier whatsapp.Notifier,
	cfg *config.Config,
) Service {
	return &offerService{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		cfg:          cfg,
	}
}

// ImportOffers extrai as linhas de um texto de oferta e casa cada linha
// com um produto do catálogo pelo código, tolerando pequenos erros de
// digitação até a distância máxima configurada.
func (s *offerService) ImportOffers(text string) (*domain.OfferImportResult, error) {
	lines := ParseOfferText(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("nenhuma linha de oferta reconhecida no texto")
	}

	products, err := s.productRepo.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar catálogo: %w", err)
	}

	maxDistance := s.cfg.OfferImport.MaxCodeDistance

	result := &domain.OfferImportResult{
		Matched:   make([]domain.OfferMatch, 0, len(lines)),
		Unmatched: make([]domain.OfferLine, 0),
	}

	for _, line := range lines {
		normalized := normalizeCode(line.Code)

		var best *domain.Product
		bestDistance := maxDistance + 1

		for _, product := range products {
			distance := codeDistance(normalized, normalizeCode(product.Code))
			if distance < bestDistance {
				bestDistance = distance
				best = product
			}
			if bestDistance == 0 {
				break
			}
		}

		if best == nil {
			result.Unmatched = append(result.Unmatched, line)
			continue
		}

		result.Matched = append(result.Matched, domain.OfferMatch{
			Line:     line,
			Product:  *best,
			Distance: bestDistance,
		})
	}

	logrus.Infof("Importação de ofertas: %d linhas casadas, %d sem correspondência",
		len(result.Matched), len(result.Unmatched))

	return result, nil
}

// FormatOfferMessage monta o texto da mensagem de oferta enviada aos
// clientes.
func (s *offerService) FormatOfferMessage(matches []domain.OfferMatch) string {
	var b strings.Builder
	b.WriteString("Offerte della settimana:\n")

	for _, match := range matches {
		b.WriteString(fmt.Sprintf("- %s: € %s\n", match.Product.Name, match.Line.Price.StringFixed(2)))
	}

	return b.String()
}

// BroadcastOffer envia a mensagem para todos os clientes com telefone
// cadastrado, opcionalmente filtrados por zona. Os envios correm em
// paralelo com limite de concorrência e falhas individuais não
// interrompem o restante.
func (s *offerService) BroadcastOffer(ctx context.Context, zone, message string) (*domain.OfferBroadcastResult, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("mensagem de oferta não pode ser vazia")
	}

	customers, err := s.customerRepo.ListCustomers(zone)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar clientes: %w", err)
	}

	recipients := make([]*domain.Customer, 0, len(customers))
	for _, customer := range customers {
		if customer.Phone != nil && *customer.Phone != "" {
			recipients = append(recipients, customer)
		}
	}

	result := &domain.OfferBroadcastResult{Recipients: len(recipients)}
	if len(recipients) == 0 {
		return result, nil
	}

	maxConcurrent := s.cfg.OfferImport.MaxConcurrentJobs
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, customer := range recipients {
		select {
		case <-ctx.Done():
			logrus.Warn("Envio de ofertas interrompido pelo contexto")
			wg.Wait()
			return result, ctx.Err()
		default:
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(customer *domain.Customer) {
			defer wg.Done()
			defer func() { <-semaphore }()

			err := s.notifier.SendOffer(*customer.Phone, message)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				result.Failed++
				logrus.WithFields(logrus.Fields{
					"customer_id": customer.ID,
					"error":       err.Error(),
				}).Error("offers: failed to send offer to customer")
				return
			}

			result.Sent++
		}(customer)
	}

	wg.Wait()

	logrus.Infof("Envio de ofertas concluído: %d enviados, %d falhas de %d destinatários",
		result.Sent, result.Failed, result.Recipients)

	return result, nil
}
