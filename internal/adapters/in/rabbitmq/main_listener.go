package rabbitmq

import (
	"context"
	"fmt"
	"strings"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/config"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/ports/in"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/ports/out"
)

// FacilityCacheListener слушает сообщения PSC API об изменениях броней,
// резервов и помещений и инвалидирует кэш коллекций
type FacilityCacheListener struct {
	conn            *amqp.Connection
	channel         *amqp.Channel
	useCase         in.CalendarUseCase
	cfg             *config.Config
	logger          out.LoggerPort
	consumerWg      sync.WaitGroup
	consumerCancels []chan struct{}
	mu              sync.Mutex
}

type (
	CacheHitType         string
	CacheHitResourceType string
)

type CacheMessageRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType CacheHitResourceType
	CacheHitType CacheHitType
}

const (
	CacheHitResourceTypeAll         CacheHitResourceType = "_all_"
	CacheHitResourceTypeBooking     CacheHitResourceType = "booking"
	CacheHitResourceTypeReservation CacheHitResourceType = "reservation"
	CacheHitResourceTypeOutOfOrder  CacheHitResourceType = "outoforder"
	CacheHitResourceTypeFacility    CacheHitResourceType = "facility"
)

const (
	CacheHitTypeStore      CacheHitType = "store"
	CacheHitTypeInvalidate CacheHitType = "invalidate"
)

func NewFacilityCacheListener(useCase in.CalendarUseCase, cfg *config.Config, logger out.LoggerPort) (*FacilityCacheListener, error) {
	if !cfg.RabbitMq.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMq.AmqpUri)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMq.AmqpUri,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &FacilityCacheListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *FacilityCacheListener) Start(ctx context.Context) error {
	var err error
	err = l.startBookingQueue(ctx)
	if err != nil {
		return err
	}
	l.logger.Info("booking.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMq.QueueConfig.BookingQueueName,
	})
	err = l.startFacilityQueue(ctx)
	if err != nil {
		return err
	}
	l.logger.Info("facility.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMq.QueueConfig.FacilityQueueName,
	})
	err = l.startAllQueue(ctx)
	if err != nil {
		return err
	}
	l.logger.Info("_all_.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMq.QueueConfig.AllQueueName,
	})

	return nil
}

func (l *FacilityCacheListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	// Останавливаем консьюмеров и ждем завершения горутин
	l.mu.Lock()
	for _, cancel := range l.consumerCancels {
		close(cancel)
	}
	l.consumerCancels = nil
	l.mu.Unlock()

	l.consumerWg.Wait()

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

func (l *FacilityCacheListener) addConsumerCancel(cancel chan struct{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.consumerCancels = append(l.consumerCancels, cancel)
}

func (l *FacilityCacheListener) closeConnection(reason string) {
	l.logger.Error("rabbitmq.connection.closing", out.LogFields{
		"reason": reason,
	})

	if l.channel != nil {
		_ = l.channel.Close()
	}
	if l.conn != nil {
		_ = l.conn.Close()
	}
}

// runConsumer запускает обработку сообщений очереди в отдельной горутине
// с ручным подтверждением: Ack после успешной обработки, Nack без requeue при ошибке
func (l *FacilityCacheListener) runConsumer(
	ctx context.Context,
	queueName string,
	consumerID string,
	msgs <-chan amqp.Delivery,
	process func(ctx context.Context, msg amqp.Delivery) error,
) {
	// Создаем канал отмены для консьюмера
	consumerCancel := make(chan struct{})
	l.addConsumerCancel(consumerCancel)

	l.consumerWg.Add(1)

	go func() {
		defer l.consumerWg.Done()
		l.logger.Info("rabbitmq.consumer.started", out.LogFields{
			"queue":      queueName,
			"consumerID": consumerID,
		})

		for {
			select {
			case <-ctx.Done():
				l.logger.Info("rabbitmq.consumer.stopping_by_context", out.LogFields{
					"queue":      queueName,
					"consumerID": consumerID,
				})
				return
			case <-consumerCancel:
				l.logger.Info("rabbitmq.consumer.stopping_by_cancel", out.LogFields{
					"queue":      queueName,
					"consumerID": consumerID,
				})
				return
			case msg, ok := <-msgs:
				if !ok {
					l.logger.Warn("rabbitmq.consumer.channel_closed", out.LogFields{
						"queue":      queueName,
						"consumerID": consumerID,
					})
					// Канал закрыт, закрываем соединение для переподключения
					l.closeConnection(fmt.Sprintf("consumer channel closed for queue %s", queueName))
					return
				}

				l.logger.Debug("rabbitmq.message.received", out.LogFields{
					"queue":      queueName,
					"routingKey": msg.RoutingKey,
					"messageId":  msg.MessageId,
				})

				// Обрабатываем сообщение
				err := process(ctx, msg)

				// Подтверждаем получение сообщения только после успешной обработки
				if err != nil {
					l.logger.Error("rabbitmq.process_message.failed", out.LogFields{
						"queue":      queueName,
						"routingKey": msg.RoutingKey,
						"messageId":  msg.MessageId,
						"error":      err.Error(),
					})

					// Отклоняем сообщение при ошибке, но не возвращаем в очередь
					if err := msg.Nack(false, false); err != nil {
						l.logger.Error("rabbitmq.message.nack_failed", out.LogFields{
							"error": err.Error(),
						})
					}
				} else {
					// Подтверждаем успешную обработку
					if err := msg.Ack(false); err != nil {
						l.logger.Error("rabbitmq.message.ack_failed", out.LogFields{
							"error": err.Error(),
						})
					}
				}
			}
		}
	}()
}

// Пример routingKey:
// psc-api.calendar-svc.booking.cache.invalidate
// psc-api.calendar-svc.facility.cache.store
// psc-api.calendar-svc._all_.cache.invalidate
func (l *FacilityCacheListener) parseCacheMessageRoutingKey(ctx context.Context, msg amqp.Delivery) (CacheMessageRoutingKey, error) {
	routingKey := msg.RoutingKey
	parts := strings.Split(routingKey, ".")

	if len(parts) < 5 {
		return CacheMessageRoutingKey{}, fmt.Errorf("invalid routing key: %s", routingKey)
	}

	return CacheMessageRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: CacheHitResourceType(parts[2]),
		CacheHitType: CacheHitType(parts[4]),
	}, nil
}
