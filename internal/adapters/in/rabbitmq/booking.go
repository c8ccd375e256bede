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

// CacheBookingMessage - сообщение PSC API об изменении брони или резерва
type CacheBookingMessage struct {
	ID           string `json:"id"`
	ResourceType string `json:"resourceType"`
	FacilityType string `json:"facilityType"`
}

func (l *FacilityCacheListener) startBookingQueue(ctx context.Context) error {
	// Проверяем контекст
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	l.logger.Info("rabbitmq.booking.setup_starting", nil)

	// Объявляем обменник, если его нет
	exchangeName := l.cfg.RabbitMq.QueueConfig.BookingQueueExchange
	for attempts := 0; attempts < 3; attempts++ {
		err := l.channel.ExchangeDeclare(
			exchangeName, // имя обменника
			"topic",      // тип обменника
			true,         // durable
			false,        // auto-delete
			false,        // internal
			false,        // no-wait
			nil,          // аргументы
		)

		if err == nil {
			l.logger.Info("rabbitmq.exchange_declare.success", out.LogFields{
				"exchange": exchangeName,
			})
			break
		}

		l.logger.Warn("rabbitmq.exchange_declare.retry", out.LogFields{
			"exchange": exchangeName,
			"attempt":  attempts + 1,
			"error":    err.Error(),
		})

		if attempts == 2 {
			l.closeConnection(fmt.Sprintf("failed to declare exchange %s: %s", exchangeName, err.Error()))
			return fmt.Errorf("failed to declare exchange %s: %w", exchangeName, err)
		}

		time.Sleep(500 * time.Millisecond)
	}

	// Объявляем очередь
	queueName := l.cfg.RabbitMq.QueueConfig.BookingQueueName
	var queue amqp.Queue
	var err error

	for attempts := 0; attempts < 3; attempts++ {
		queue, err = l.channel.QueueDeclare(
			queueName,
			true,  // durable
			true,  // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)

		if err == nil {
			l.logger.Info("rabbitmq.queue_declare.success", out.LogFields{
				"queue": queueName,
			})
			break
		}

		l.logger.Warn("rabbitmq.queue_declare.retry", out.LogFields{
			"queue":   queueName,
			"attempt": attempts + 1,
			"error":   err.Error(),
		})

		if attempts == 2 {
			l.closeConnection(fmt.Sprintf("failed to declare queue %s: %s", queueName, err.Error()))
			return fmt.Errorf("failed to declare queue %s: %w", queueName, err)
		}

		time.Sleep(500 * time.Millisecond)
	}

	// Привязываем очередь к обменнику
	bindingKey := l.cfg.RabbitMq.QueueConfig.BookingQueueBind
	for attempts := 0; attempts < 3; attempts++ {
		err = l.channel.QueueBind(
			queue.Name,   // имя очереди
			bindingKey,   // ключ привязки
			exchangeName, // имя обменника
			false,        // no-wait
			nil,          // аргументы
		)

		if err == nil {
			l.logger.Info("rabbitmq.queue_bind.success", out.LogFields{
				"queue":    queue.Name,
				"binding":  bindingKey,
				"exchange": exchangeName,
			})
			break
		}

		l.logger.Warn("rabbitmq.queue_bind.retry", out.LogFields{
			"queue":    queue.Name,
			"binding":  bindingKey,
			"exchange": exchangeName,
			"attempt":  attempts + 1,
			"error":    err.Error(),
		})

		if attempts == 2 {
			l.closeConnection(fmt.Sprintf("failed to bind queue %s: %s", queue.Name, err.Error()))
			return fmt.Errorf("failed to bind queue %s: %w", queue.Name, err)
		}

		time.Sleep(500 * time.Millisecond)
	}

	// Настраиваем потребителя
	var msgs <-chan amqp.Delivery
	consumerID := fmt.Sprintf("consumer-%s-%s", queue.Name, uuid.NewString())

	for attempts := 0; attempts < 3; attempts++ {
		msgs, err = l.channel.Consume(
			queue.Name,
			consumerID, // уникальный ID
			false,      // auto-ack, подтверждаем вручную
			false,      // exclusive
			false,      // no-local
			false,      // no-wait
			nil,        // args
		)

		if err == nil {
			l.logger.Info("rabbitmq.consume.success", out.LogFields{
				"queue":      queue.Name,
				"consumerID": consumerID,
			})
			break
		}

		l.logger.Warn("rabbitmq.consume.retry", out.LogFields{
			"queue":      queue.Name,
			"consumerID": consumerID,
			"attempt":    attempts + 1,
			"error":      err.Error(),
		})

		if attempts == 2 {
			l.closeConnection(fmt.Sprintf("failed to consume from queue %s: %s", queue.Name, err.Error()))
			return fmt.Errorf("failed to consume from queue %s: %w", queue.Name, err)
		}

		time.Sleep(500 * time.Millisecond)
	}

	l.runConsumer(ctx, queue.Name, consumerID, msgs, l.processBookingMessage)

	return nil
}

func (l *FacilityCacheListener) processBookingMessage(ctx context.Context, msg amqp.Delivery) error {
	l.logger.Debug("rabbitmq.processing_message", out.LogFields{
		"routingKey": msg.RoutingKey,
		"body":       string(msg.Body),
	})

	cacheMessageRoutingKey, err := l.parseCacheMessageRoutingKey(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to parse routing key: %w", err)
	}

	if cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeBooking &&
		cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeReservation &&
		cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeOutOfOrder {
		l.logger.Debug("rabbitmq.message.skipped", out.LogFields{
			"actual": string(cacheMessageRoutingKey.ResourceType),
		})
		return nil
	}

	var msgJson CacheBookingMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	l.logger.Info("booking.message.received", out.LogFields{
		"id":           msgJson.ID,
		"resourceType": msgJson.ResourceType,
		"facilityType": msgJson.FacilityType,
		"cacheHitType": string(cacheMessageRoutingKey.CacheHitType),
	})

	// Изменилась бронь/резерв/ремонт - коллекция этого типа помещений устарела
	if cacheMessageRoutingKey.CacheHitType == CacheHitTypeInvalidate {
		invalidateCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		facilityType, err := domain.ParseFacilityType(msgJson.FacilityType)
		if err != nil {
			// Тип не указан или неизвестен - чистим все
			if err := l.useCase.InvalidateAllFacilitiesCache(invalidateCtx); err != nil {
				l.logger.Error("booking.invalidate_all_cache.failed", out.LogFields{
					"booking_id": msgJson.ID,
					"error":      err.Error(),
				})
			}
			return nil
		}

		if err := l.useCase.InvalidateFacilitiesCache(invalidateCtx, facilityType); err != nil {
			l.logger.Error("booking.invalidate_cache.failed", out.LogFields{
				"booking_id":   msgJson.ID,
				"facilityType": facilityType,
				"error":        err.Error(),
			})
		}

		l.logger.Info("booking.message.invalidated", out.LogFields{
			"booking_id":   msgJson.ID,
			"facilityType": facilityType,
		})
	}

	return nil
}
