// Package mailer mengirim email pemberitahuan melalui API Resend.
package mailer

import (
	"fmt"

	"github.com/resend/resend-go/v2"

	"polygen-backend/models"
)

// Mailer membungkus klien Resend untuk pengiriman email formulir kontak.
type Mailer struct {
	client    *resend.Client
	from      string
	recipient string
}

// New membuat Mailer baru. apiKey kosong menghasilkan Mailer nil,
// sehingga pengiriman email dapat dimatikan di lingkungan development.
func New(apiKey, from, recipient string) *Mailer {
	if apiKey == "" {
		return nil
	}
	return &Mailer{
		client:    resend.NewClient(apiKey),
		from:      from,
		recipient: recipient,
	}
}

// SendContactInquiry meneruskan isi formulir kontak ke alamat tujuan.
func (m *Mailer) SendContactInquiry(req models.ContactRequest) error {
	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nCompany: %s\n\n%s\n",
		req.Name, req.Email, req.Phone, req.Company, req.Message,
	)

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.recipient},
		ReplyTo: req.Email,
		Subject: "New inquiry from " + req.Name,
		Text:    body,
	}

	if _, err := m.client.Emails.Send(params); err != nil {
		return fmt.Errorf("error sending contact email: %w", err)
	}
	return nil
}
