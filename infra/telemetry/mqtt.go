package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	coretelemetry "github.com/zachAtSiftStack/tlmSim/core/telemetry"
	"github.com/zachAtSiftStack/tlmSim/infra/logger"
)

// MQTTConfig holds the connection parameters for the Paho MQTT sink.
type MQTTConfig struct {
	Enabled     bool   `json:"enabled"`
	Broker      string `json:"broker"`
	ClientID    string `json:"client_id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	TopicPrefix string `json:"topic_prefix"`
	QoS         byte   `json:"qos"`
}

// MQTTSink publishes frames as JSON to <prefix>/<flow>.
type MQTTSink struct {
	cli    paho.Client
	prefix string
	qos    byte
	log    logger.Logger
}

// NewMQTTSink connects to the broker. A missing client ID gets a generated
// suffix so concurrent simulators never collide.
func NewMQTTSink(cfg MQTTConfig) (*MQTTSink, error) {
	id := cfg.ClientID
	if id == "" {
		id = "tlmsim-" + uuid.NewString()
	}
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(id).
		SetAutoReconnect(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	cli := paho.NewClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	prefix := strings.TrimSuffix(cfg.TopicPrefix, "/")
	if prefix == "" {
		prefix = "tlmsim"
	}
	return &MQTTSink{cli: cli, prefix: prefix, qos: cfg.QoS, log: logger.New("mqtt-sink")}, nil
}

// Publish marshals the frame and publishes it on the flow topic.
func (s *MQTTSink) Publish(_ context.Context, frame coretelemetry.Frame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", frame.Flow, err)
	}
	token := s.cli.Publish(s.prefix+"/"+frame.Flow, s.qos, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", frame.Flow, err)
	}
	return nil
}

// Close disconnects from the broker.
func (s *MQTTSink) Close() error {
	if s.cli.IsConnected() {
		s.cli.Disconnect(250)
	}
	return nil
}
