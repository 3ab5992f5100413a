package messaging

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/stan.go"
)

type NATSClient struct {
	conn stan.Conn
}

type Config struct {
	URL       string
	ClusterID string
	ClientID  string
}

func NewNATSClient(cfg Config) (*NATSClient, error) {
	conn, err := stan.Connect(cfg.ClusterID, cfg.ClientID, stan.NatsURL(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS Streaming: %w", err)
	}

	slog.Info("Connected to NATS Streaming",
		"url", cfg.URL, "cluster", cfg.ClusterID, "client", cfg.ClientID)

	return &NATSClient{conn: conn}, nil
}

func (nc *NATSClient) Publish(subject string, data interface{}) error {
	// Без подключения публикация становится no-op: события вторичны
	// по отношению к записи в базе
	if nc == nil || nc.conn == nil {
		slog.Debug("NATS connection is not configured, skipping publish", "subject", subject)
		return nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := nc.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish to subject %s: %w", subject, err)
	}

	return nil
}

func (nc *NATSClient) Subscribe(subject string, handler stan.MsgHandler) (stan.Subscription, error) {
	sub, err := nc.conn.Subscribe(subject, handler, stan.DurableName(subject+"-durable"))
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}

	slog.Info("Subscribed to subject", "subject", subject)
	return sub, nil
}

func (nc *NATSClient) SubscribeQueue(subject, queue string, handler stan.MsgHandler) (stan.Subscription, error) {
	sub, err := nc.conn.QueueSubscribe(subject, queue, handler,
		stan.DurableName(subject+"-"+queue+"-durable"),
		stan.AckWait(30*time.Second),
		stan.MaxInflight(1))
	if err != nil {
		return nil, fmt.Errorf("failed to queue subscribe to subject %s: %w", subject, err)
	}

	slog.Info("Subscribed to subject", "subject", subject, "queue", queue)
	return sub, nil
}

func (nc *NATSClient) Close() error {
	if nc.conn != nil {
		return nc.conn.Close()
	}
	return nil
}
