package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coretelemetry "github.com/zachAtSiftStack/tlmSim/core/telemetry"
)

func testFrame() coretelemetry.Frame {
	return coretelemetry.Frame{
		Flow:      coretelemetry.FlowVehicle10Hz,
		Run:       "run-1",
		Timestamp: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Values: []coretelemetry.ChannelValue{
			{Channel: coretelemetry.ChannelCurrent, Component: "motor_a", Value: 812.5},
			{Channel: coretelemetry.ChannelEncoder, Component: "motor_a", Value: int64(42)},
			{Channel: coretelemetry.ChannelGPIO, Value: byte(0b00101001)},
			{Channel: coretelemetry.ChannelStateLog, Value: "Vehicle transitioned to Idle"},
		},
	}
}

func TestInfluxSinkWritesLineProtocol(t *testing.T) {
	// One write request is issued per point; collect them all.
	var mu sync.Mutex
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		mu.Lock()
		body += string(data) + "\n"
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(InfluxConfig{URL: srv.URL, Token: "token", Org: "org", Bucket: "bucket"})
	defer func() { assert.NoError(t, sink.Close()) }()

	require.NoError(t, sink.Publish(context.Background(), testFrame()))
	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, body, "vehicle_10_hz")
	assert.Contains(t, body, "channel=current")
	assert.Contains(t, body, "component=motor_a")
	assert.Contains(t, body, "run=run-1")
	assert.Contains(t, body, "value=812.5")
	assert.Contains(t, body, "channel=encoder")
	assert.Contains(t, body, "channel=state_log")
}

func TestInfluxSinkFallbackOnBadHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(InfluxConfig{URL: srv.URL, Token: "t", Org: "o", Bucket: "b"})
	_, isNop := sink.(coretelemetry.NopSink)
	assert.True(t, isNop)
}

func TestFramePointsFieldTypes(t *testing.T) {
	points := framePoints(testFrame())
	require.Len(t, points, 4)
	for _, p := range points {
		require.Len(t, p.FieldList(), 1)
	}
	// GPIO byte and encoder int64 both narrow to int64 fields
	assert.Equal(t, int64(42), points[1].FieldList()[0].Value)
	assert.Equal(t, int64(0b00101001), points[2].FieldList()[0].Value)
	assert.Equal(t, "Vehicle transitioned to Idle", points[3].FieldList()[0].Value)
}

func TestFramePointsOmitEmptyTags(t *testing.T) {
	frame := testFrame()
	frame.Run = ""
	points := framePoints(frame)
	for _, p := range points {
		for _, tag := range p.TagList() {
			assert.NotEqual(t, "run", tag.Key)
		}
	}
	// vehicle-level channels carry no component tag
	var gpioTags []string
	for _, tag := range points[2].TagList() {
		gpioTags = append(gpioTags, tag.Key)
	}
	assert.NotContains(t, gpioTags, "component")
	assert.Contains(t, strings.Join(gpioTags, ","), "channel")
}
