package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"kosovai-backend/internal/model"
	"kosovai-backend/internal/repository"
)

// LoginEventWorker drains the login audit queue into MySQL.
type LoginEventWorker struct {
	conn      *amqp.Connection
	repo      *repository.LoginEventRepository
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewLoginEventWorker(conn *amqp.Connection, repo *repository.LoginEventRepository, queueName string) *LoginEventWorker {
	return &LoginEventWorker{
		conn:      conn,
		repo:      repo,
		queueName: queueName,
	}
}

func (w *LoginEventWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var event model.LoginEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					log.Printf("worker decode login event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				if err := w.repo.Create(&event); err != nil {
					log.Printf("worker persist login event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *LoginEventWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
