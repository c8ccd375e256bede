package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/ports/out"
)

// CacheFacilityMessage - сообщение об изменении самого помещения
// (создание, удаление, смена атрибутов)
type CacheFacilityMessage struct {
	ID           string `json:"id"`
	ResourceType string `json:"resourceType"`
	FacilityType string `json:"facilityType"`
}

func (l *FacilityCacheListener) startFacilityQueue(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	exchangeName := l.cfg.RabbitMq.QueueConfig.FacilityQueueExchange
	err := l.channel.ExchangeDeclare(
		exchangeName, // имя обменника
		"topic",      // тип обменника
		true,         // durable
		false,        // auto-delete
		false,        // internal
		false,        // no-wait
		nil,          // аргументы
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", exchangeName, err)
	}

	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.QueueConfig.FacilityQueueName,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", l.cfg.RabbitMq.QueueConfig.FacilityQueueName, err)
	}

	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMq.QueueConfig.FacilityQueueBind,
		exchangeName,
		false, // no-wait
		nil,   // аргументы
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", queue.Name, err)
	}

	consumerID := fmt.Sprintf("consumer-%s-%s", queue.Name, uuid.NewString())
	msgs, err := l.channel.Consume(
		queue.Name,
		consumerID,
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to consume from queue %s: %w", queue.Name, err)
	}

	l.runConsumer(ctx, queue.Name, consumerID, msgs, l.processFacilityMessage)

	return nil
}

func (l *FacilityCacheListener) processFacilityMessage(ctx context.Context, msg amqp.Delivery) error {
	cacheMessageRoutingKey, err := l.parseCacheMessageRoutingKey(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to parse routing key: %w", err)
	}

	if cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeFacility {
		l.logger.Debug("rabbitmq.message.skipped", out.LogFields{
			"expected": string(CacheHitResourceTypeFacility),
			"actual":   string(cacheMessageRoutingKey.ResourceType),
		})
		return nil
	}

	var msgJson CacheFacilityMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	l.logger.Info("facility.message.received", out.LogFields{
		"id":           msgJson.ID,
		"facilityType": msgJson.FacilityType,
		"cacheHitType": string(cacheMessageRoutingKey.CacheHitType),
	})

	if cacheMessageRoutingKey.CacheHitType == CacheHitTypeInvalidate {
		invalidateCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		facilityType, err := domain.ParseFacilityType(msgJson.FacilityType)
		if err != nil {
			if err := l.useCase.InvalidateAllFacilitiesCache(invalidateCtx); err != nil {
				l.logger.Error("facility.invalidate_all_cache.failed", out.LogFields{
					"facility_id": msgJson.ID,
					"error":       err.Error(),
				})
			}
			return nil
		}

		if err := l.useCase.InvalidateFacilitiesCache(invalidateCtx, facilityType); err != nil {
			l.logger.Error("facility.invalidate_cache.failed", out.LogFields{
				"facility_id":  msgJson.ID,
				"facilityType": facilityType,
				"error":        err.Error(),
			})
		}

		l.logger.Info("facility.message.invalidated", out.LogFields{
			"facility_id":  msgJson.ID,
			"facilityType": facilityType,
		})
	}

	return nil
}
