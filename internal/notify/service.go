package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gabrielbarbershop/booking-api/internal/models"
)

// Service dispara os e-mails transacionais da barbearia. Todo envio é
// fire-and-forget: falha de notificação nunca falha a operação que a gerou.
type Service struct {
	mailer    Mailer
	shopName  string
	shopEmail string
}

func NewService(mailer Mailer, shopName, shopEmail string) *Service {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &Service{
		mailer:    mailer,
		shopName:  shopName,
		shopEmail: shopEmail,
	}
}

// BookingConfirmed avisa o cliente e a caixa de entrada da barbearia.
// Service nulo significa notificações desligadas.
func (s *Service) BookingConfirmed(
	user *models.User,
	service *models.Service,
	slotTime time.Time,
) {
	if s == nil {
		return
	}
	when := slotTime.Format("02/01/2006 15:04")

	go s.send(Email{
		To:      user.Email,
		ToName:  user.Name,
		Subject: fmt.Sprintf("%s — agendamento confirmado", s.shopName),
		Body: fmt.Sprintf(
			"Olá %s,\n\nSeu horário de %s foi confirmado para %s.\n\nAté lá!",
			user.Name, service.Name, when,
		),
	})

	go s.send(Email{
		To:      s.shopEmail,
		ToName:  s.shopName,
		Subject: "Novo agendamento",
		Body: fmt.Sprintf(
			"%s agendou %s para %s.",
			user.Name, service.Name, when,
		),
	})
}

// Reminder é usado pelo job diário de lembretes.
func (s *Service) Reminder(
	user *models.User,
	serviceName string,
	slotTime time.Time,
) {
	if s == nil {
		return
	}
	go s.send(Email{
		To:      user.Email,
		ToName:  user.Name,
		Subject: fmt.Sprintf("%s — lembrete de agendamento", s.shopName),
		Body: fmt.Sprintf(
			"Olá %s,\n\nLembrete: você tem %s marcado para amanhã às %s.",
			user.Name, serviceName, slotTime.Format("15:04"),
		),
	})
}

func (s *Service) send(msg Email) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Printf("notify: failed to send to %s: %v", msg.To, err)
	}
}
