package payment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"gasline/internal/dto"
	"gasline/internal/entities"
	"gasline/internal/service/payment"
	"gasline/pkg/logger"
)

// Handler consumes payment gateway callbacks and applies them to orders.
// Implements sarama.ConsumerGroupHandler.
type Handler struct {
	paymentService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, paymentService Service, timeout time.Duration) *Handler {
	return &Handler{
		paymentService:           paymentService,
		log:                      log,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("payment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Rebalance or consumer group shutdown.
			h.log.Info("payment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single message. Returns true when ConsumeClaim
// should stop so an interrupted message gets redelivered after the restart.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event dto.PaymentStatusChanged
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order_ref", event.OrderID),
		logger.NewField("payment_status", event.PaymentStatus),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.status.changed processing")

	status := entities.PaymentStatusType(event.PaymentStatus)
	order, err := h.paymentService.ProcessPaymentStatus(ctx, event.OrderID, status)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, payment.ErrInvalidPaymentStatus),
			errors.Is(err, payment.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler received malformed event")

		case errors.Is(err, payment.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler order not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("order_ref", order.OrderID),
		logger.NewField("payment_status", order.PaymentStatus.String()),
		logger.NewField("offset", message.Offset),
	).Info("payment.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
