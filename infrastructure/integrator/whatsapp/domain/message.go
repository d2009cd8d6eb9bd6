package whatsappdomain

// SendMessageRequest é o corpo de envio de mensagem da Cloud API do
// WhatsApp.
type SendMessageRequest struct {
	MessagingProduct string       `json:"messaging_product"`
	RecipientType    string       `json:"recipient_type"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             *TextContent `json:"text,omitempty"`
}

type TextContent struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

// SendMessageResponse é a resposta da Cloud API ao envio de mensagem.
type SendMessageResponse struct {
	MessagingProduct string `json:"messaging_product"`
	Contacts         []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// NewTextMessage monta a requisição de mensagem de texto simples.
func NewTextMessage(to, body string) *SendMessageRequest {
	return &SendMessageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text: &TextContent{
			PreviewURL: false,
			Body:       body,
		},
	}
}
