package whatsapp

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/whatsapp/whatsappclient"
	"github.com/vfg2006/backoffice-api/internal/config"
)

// Notifier envia mensagens de oferta para os clientes via WhatsApp.
type Notifier interface {
	SendOffer(phone, message string) error
	Enabled() bool
}

type WhatsAppIntegrator struct {
	cfg    *config.Config
	Client whatsappclient.Client
}

func New(cfg *config.Config, client whatsappclient.Client) *WhatsAppIntegrator {
	return &WhatsAppIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// Enabled indica se o envio está habilitado na configuração. Com o
// envio desabilitado as ofertas são apenas logadas.
func (s *WhatsAppIntegrator) Enabled() bool {
	return s.cfg.WhatsApp.Enabled
}

func (s *WhatsAppIntegrator) SendOffer(phone, message string) error {
	if phone == "" {
		return fmt.Errorf("telefone do destinatário não informado")
	}

	if !s.Enabled() {
		logrus.WithField("phone", phone).Info("Envio de WhatsApp desabilitado, mensagem descartada")
		return nil
	}

	resp, err := s.Client.SendTextMessage(phone, message)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"phone": phone,
			"error": err.Error(),
		}).Error("offers: failed to send whatsapp message")
		return err
	}

	if len(resp.Messages) > 0 {
		logrus.WithFields(logrus.Fields{
			"phone":      phone,
			"message_id": resp.Messages[0].ID,
		}).Debug("offers: whatsapp message accepted")
	}

	return nil
}
