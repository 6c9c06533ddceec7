package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gabrielbarbershop/booking-api/internal/httperr"
)

// mapBusinessError traduz BusinessError em resposta HTTP. Erros que não são
// de negócio viram 500 genérico — nunca mascarados como estado vazio.
func mapBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	switch be.Code {
	case "slot_conflict":
		httperr.Conflict(c, be.Code, "Esse horário acabou de ser reservado. Escolha outro.")
	case "slot_in_the_past":
		httperr.BadRequest(c, be.Code, "Não é possível agendar em horário passado.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, be.Code, "Data ou horário inválido.")
	case "service_not_found":
		httperr.BadRequest(c, be.Code, "Serviço inválido.")
	case "user_not_found":
		httperr.BadRequest(c, be.Code, "Usuário não encontrado.")
	case "appointment_not_found":
		httperr.NotFound(c, be.Code, "Agendamento não encontrado.")
	case "invalid_state":
		httperr.BadRequest(c, be.Code, "Esse agendamento não pode mais ser alterado.")
	case "slot_not_found":
		httperr.NotFound(c, be.Code, "Horário não encontrado.")
	case "slot_unavailable":
		httperr.BadRequest(c, be.Code, "Esse horário não está disponível para agendamento.")
	case "day_already_saved":
		httperr.BadRequest(c, be.Code, "Os horários desse dia já foram salvos.")
	case "closed_day":
		httperr.BadRequest(c, be.Code, "A barbearia não abre nesse dia.")
	case "empty_cart":
		httperr.BadRequest(c, be.Code, "Carrinho vazio.")
	case "insufficient_stock":
		httperr.Conflict(c, be.Code, "Estoque insuficiente para um dos itens.")
	case "product_not_found":
		httperr.BadRequest(c, be.Code, "Produto inválido.")
	case "invalid_quantity":
		httperr.BadRequest(c, be.Code, "Quantidade inválida.")
	case "user_has_references":
		httperr.Conflict(c, be.Code, "Usuário possui agendamentos ou pedidos.")
	case "service_in_use":
		httperr.Conflict(c, be.Code, "Serviço possui agendamentos.")
	case "product_in_use":
		httperr.Conflict(c, be.Code, "Produto já aparece em pedidos.")
	default:
		httperr.BadRequest(c, be.Code, "Operação inválida.")
	}
}
