package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/platform/config"
)

// Client owns the AMQP topology for report jobs. Every published job first
// sits in a TTL delay queue with no consumer; when the TTL expires the broker
// dead-letters it into the work queue where the worker picks it up. The same
// mechanism provides the backoff between retry attempts.
type Client struct {
	conn          *amqp091.Connection
	channel       *amqp091.Channel
	exchangeName  string
	workQueue     string
	delayQueue    string
	dispatchDelay time.Duration
	retryBackoff  time.Duration
	maxAttempts   int
}

var _ portssvc.ReportJobPublisher = (*Client)(nil)

func NewClient(cfg *config.Config) (*Client, error) {
	conn, err := amqp091.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:          conn,
		channel:       channel,
		exchangeName:  cfg.AMQPExchange,
		workQueue:     cfg.ReportQueue,
		delayQueue:    cfg.ReportQueue + "_delay",
		dispatchDelay: cfg.ReportDispatchDelay,
		retryBackoff:  cfg.ReportRetryBackoff,
		maxAttempts:   cfg.ReportMaxAttempts,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queues: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.workQueue, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare work queue: %w", err)
	}

	if err := c.channel.QueueBind(c.workQueue, c.workQueue, c.exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind work queue: %w", err)
	}

	// Delay queue: messages expire after the per-message TTL and are
	// dead-lettered to the work queue routing key. No consumer ever reads
	// this queue directly.
	_, err = c.channel.QueueDeclare(
		c.delayQueue,
		true,
		false,
		false,
		false,
		amqp091.Table{
			"x-dead-letter-exchange":    c.exchangeName,
			"x-dead-letter-routing-key": c.workQueue,
		},
	)
	if err != nil {
		return fmt.Errorf("declare delay queue: %w", err)
	}

	if err := c.channel.QueueBind(c.delayQueue, c.delayQueue, c.exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind delay queue: %w", err)
	}

	return nil
}

func (c *Client) publish(ctx context.Context, job domain.ReportJob, delay time.Duration) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal report job: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	publishing := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	}

	routingKey := c.workQueue
	if delay > 0 {
		routingKey = c.delayQueue
		publishing.Expiration = fmt.Sprintf("%d", delay.Milliseconds())
	}

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		publishing,
	)
	if err != nil {
		return fmt.Errorf("publish report job: %w", err)
	}

	slog.InfoContext(ctx, "Published report job",
		"job_id", job.JobID,
		"user_id", job.UserID,
		"attempt", job.Attempt,
		"delay", delay.String())
	return nil
}

// PublishReportJob enqueues a freshly requested job behind the configured
// dispatch delay.
func (c *Client) PublishReportJob(ctx context.Context, job domain.ReportJob) error {
	return c.publish(ctx, job, c.dispatchDelay)
}

// ConsumeReportJobs delivers jobs to the handler with manual acknowledgment.
// A handler error schedules a retry through the delay queue until the job
// runs out of attempts; the failed delivery itself is always acked so the
// broker never redelivers it verbatim.
func (c *Client) ConsumeReportJobs(ctx context.Context, handler func(context.Context, domain.ReportJob) error) error {
	msgs, err := c.channel.Consume(
		c.workQueue, // queue
		"",          // consumer
		false,       // auto-ack (we want manual ack)
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	slog.InfoContext(ctx, "Started consuming report jobs", "queue", c.workQueue)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping job consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			var job domain.ReportJob
			if err := json.Unmarshal(delivery.Body, &job); err != nil {
				slog.ErrorContext(ctx, "Failed to unmarshal report job", "error", err)
				delivery.Nack(false, false) // reject and don't requeue
				continue
			}

			if err := handler(ctx, job); err != nil {
				slog.ErrorContext(ctx, "Report job failed",
					"error", err,
					"job_id", job.JobID,
					"attempt", job.Attempt)
				c.retry(ctx, job)
				delivery.Ack(false)
				continue
			}

			delivery.Ack(false)
			slog.InfoContext(ctx, "Report job completed",
				"job_id", job.JobID,
				"attempt", job.Attempt)
		}
	}
}

func (c *Client) retry(ctx context.Context, job domain.ReportJob) {
	if job.Attempt >= c.maxAttempts {
		slog.ErrorContext(ctx, "Report job permanently failed",
			"job_id", job.JobID,
			"user_id", job.UserID,
			"attempts", job.Attempt)
		return
	}

	job.Attempt++
	if err := c.publish(ctx, job, c.retryBackoff); err != nil {
		slog.ErrorContext(ctx, "Failed to schedule report job retry",
			"error", err,
			"job_id", job.JobID)
	}
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
