package order

import (
	"strings"

	"gasline/internal/entities"
)

func isValidCoordinates(lat, long float64) bool {
	return lat >= -90 && lat <= 90 && long >= -180 && long <= 180
}

func isValidTankSize(tankSize string) bool {
	return strings.TrimSpace(tankSize) != ""
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidPaymentMethod(method entities.PaymentMethodType) bool {
	switch method {
	case entities.PaymentCash, entities.PaymentCard, entities.PaymentPOS,
		entities.PaymentBankTransfer, entities.PaymentOnline:
		return true
	default:
		return false
	}
}

func isValidCancelActor(actor entities.CancelActor) bool {
	switch actor.Role {
	case entities.ActorCustomer, entities.ActorDriver:
		return actor.ID > 0
	case entities.ActorAdmin:
		return true
	default:
		return false
	}
}
