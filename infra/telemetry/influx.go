// Package telemetry provides the sink implementations frames are published
// through: InfluxDB, MQTT, a zerolog sink for development and a fan-out
// combinator.
package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coretelemetry "github.com/zachAtSiftStack/tlmSim/core/telemetry"
	"github.com/zachAtSiftStack/tlmSim/infra/logger"
)

// InfluxConfig holds InfluxDB sink settings.
type InfluxConfig struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url"`
	Token   string `json:"token"`
	Org     string `json:"org"`
	Bucket  string `json:"bucket"`
}

// InfluxSink writes frames to InfluxDB using the official client. Each
// channel value becomes one point: measurement = flow, tags = channel,
// component and run, field "value".
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink for the given InfluxDB endpoint.
func NewInfluxSink(cfg InfluxConfig) *InfluxSink {
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink if the health check fails, so a missing backend never takes the
// simulation down.
func NewInfluxSinkWithFallback(cfg InfluxConfig) coretelemetry.Sink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coretelemetry.NopSink{}
	}
	return sink
}

// Publish writes one point per channel value.
func (s *InfluxSink) Publish(ctx context.Context, frame coretelemetry.Frame) error {
	for _, p := range framePoints(frame) {
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return fmt.Errorf("write %s: %w", frame.Flow, err)
		}
	}
	return nil
}

// Close shuts the underlying client down.
func (s *InfluxSink) Close() error {
	s.client.Close()
	return nil
}

func framePoints(frame coretelemetry.Frame) []*write.Point {
	points := make([]*write.Point, 0, len(frame.Values))
	for _, v := range frame.Values {
		p := write.NewPointWithMeasurement(frame.Flow).
			AddTag("channel", v.Channel)
		if v.Component != "" {
			p = p.AddTag("component", v.Component)
		}
		if frame.Run != "" {
			p = p.AddTag("run", frame.Run)
		}
		p = p.AddField("value", fieldValue(v.Value)).SetTime(frame.Timestamp)
		points = append(points, p)
	}
	return points
}

// fieldValue narrows values to the types the line protocol handles natively.
func fieldValue(v any) any {
	switch x := v.(type) {
	case byte:
		return int64(x)
	case int:
		return int64(x)
	case int32:
		return int64(x)
	default:
		return v
	}
}
