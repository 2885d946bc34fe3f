package order_lifecycle_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"ordertracker/internal/gateway/kafka/lifecycle"
	"ordertracker/internal/service/history"
	"ordertracker/pkg/logger"
)

type Handler struct {
	historyService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, historyService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		historyService:           historyService,
		log:                      handlerLog,
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
				h.log.Info("order.lifecycle.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.lifecycle.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, когда ConsumeClaim нужно прервать
// без коммита: сообщение будет перечитано.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var msg lifecycle.Message
	if err := json.Unmarshal(message.Value, &msg); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.lifecycle.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event", msg.EventID),
		logger.NewField("order", msg.OrderID),
		logger.NewField("action", msg.Action),
		logger.NewField("offset", message.Offset),
	)

	err := h.historyService.Record(ctx, lifecycle.ToDomain(msg))
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.lifecycle.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, history.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.lifecycle.changed handler skipped invalid event")

		default:
			// журнал недоступен: не коммитим, чтобы не потерять событие
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.lifecycle.changed handler failed to record event")
			return true
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.lifecycle.changed: recorded")
	sess.MarkMessage(message, "")
	return false
}
