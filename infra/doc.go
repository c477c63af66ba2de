// Package infra contains technical adapters: the telemetry sinks
// (InfluxDB, MQTT, fan-out, log), the zerolog logger and the Prometheus
// exporter. These packages should depend only on the interfaces defined
// in the core packages.
package infra
