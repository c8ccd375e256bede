package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/ports/out"
)

func (l *FacilityCacheListener) startAllQueue(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	exchangeName := l.cfg.RabbitMq.QueueConfig.AllQueueExchange
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
		l.cfg.RabbitMq.QueueConfig.AllQueueName,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", l.cfg.RabbitMq.QueueConfig.AllQueueName, err)
	}

	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMq.QueueConfig.AllQueueBind,
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

	l.runConsumer(ctx, queue.Name, consumerID, msgs, l.processAllMessage)

	return nil
}

// processAllMessage - служебный канал полного сброса кэша,
// тело сообщения не интерпретируется
func (l *FacilityCacheListener) processAllMessage(ctx context.Context, msg amqp.Delivery) error {
	cacheMessageRoutingKey, err := l.parseCacheMessageRoutingKey(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to parse routing key: %w", err)
	}

	if cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeAll {
		l.logger.Debug("rabbitmq.message.skipped", out.LogFields{
			"expected": string(CacheHitResourceTypeAll),
			"actual":   string(cacheMessageRoutingKey.ResourceType),
		})
		return nil
	}

	if cacheMessageRoutingKey.CacheHitType == CacheHitTypeInvalidate {
		invalidateCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if err := l.useCase.InvalidateAllFacilitiesCache(invalidateCtx); err != nil {
			l.logger.Error("_all_.invalidate_cache.failed", out.LogFields{
				"error": err.Error(),
			})
			return err
		}

		l.logger.Info("_all_.message.invalidated", nil)
	}

	return nil
}
