// Package mqtt publishes production readings to an MQTT broker so external
// consumers can follow a simulation run live.
package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	corelogger "github.com/enerva/fuelcore/core/logger"
	"github.com/enerva/fuelcore/core/metrics"
	"github.com/enerva/fuelcore/infra/logger"
)

// Config defines the connection parameters for the telemetry publisher.
type Config struct {
	Enabled    bool   `json:"enabled"`
	Broker     string `json:"broker"`
	ClientID   string `json:"client_id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Topic      string `json:"topic"`
	QoS        byte   `json:"qos"`
	MaxRetries int    `json:"max_retries"`
	BackoffMS  int    `json:"backoff_ms"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "fuelcore"
	}
	if c.Topic == "" {
		c.Topic = "fuelcore/production"
	}
	if c.BackoffMS == 0 {
		c.BackoffMS = 100
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("broker is required")
	}
	return nil
}

// Publisher sends production readings to an external consumer.
type Publisher interface {
	PublishReading(rec metrics.ProductionRecord) error
	Close()
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// PahoPublisher implements Publisher using Eclipse Paho.
type PahoPublisher struct {
	cli        pahoClient
	topic      string
	qos        byte
	maxRetries int
	backoff    time.Duration
	log        corelogger.Logger
}

// NewPahoPublisher connects to the MQTT broker described by cfg.
func NewPahoPublisher(cfg Config) (*PahoPublisher, error) {
	log := logger.New("mqtt-publisher")
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}

	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &PahoPublisher{
		cli:        c,
		topic:      cfg.Topic,
		qos:        cfg.QoS,
		maxRetries: cfg.MaxRetries,
		backoff:    time.Duration(cfg.BackoffMS) * time.Millisecond,
		log:        log,
	}, nil
}

// PublishReading publishes the reading as JSON, retrying with a fixed
// backoff up to the configured number of attempts.
func (p *PahoPublisher) PublishReading(rec metrics.ProductionRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(p.backoff)
		}
		token := p.cli.Publish(p.topic, p.qos, false, payload)
		token.Wait()
		if lastErr = token.Error(); lastErr == nil {
			return nil
		}
		p.log.Warnf("publish attempt %d failed: %v", attempt+1, lastErr)
	}
	return fmt.Errorf("publish reading: %w", lastErr)
}

// Close disconnects from the broker.
func (p *PahoPublisher) Close() {
	p.cli.Disconnect(250)
}

// SinkAdapter exposes a Publisher as a metrics sink so the simulation engine
// can stream readings over MQTT like any other sink.
type SinkAdapter struct {
	Pub Publisher
}

func (a SinkAdapter) RecordProduction(records []metrics.ProductionRecord) error {
	for _, r := range records {
		if err := a.Pub.PublishReading(r); err != nil {
			return err
		}
	}
	return nil
}
