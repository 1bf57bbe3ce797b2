package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	p, err := Setup(context.Background(), Options{})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	require.NotNil(t, p.Tracer())

	_, span := p.Tracer().Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_EnabledWithEndpoint(t *testing.T) {
	// The exporter connects lazily, so no collector is needed here.
	p, err := Setup(context.Background(), Options{
		Endpoint:    "localhost:4318",
		ServiceName: "userdir-test",
		SessionID:   "abc",
	})
	require.NoError(t, err)
	assert.True(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "fetch")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Shutdown(ctx)
}

func TestNilProvider(t *testing.T) {
	var p *Provider
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestEndpointOptions(t *testing.T) {
	assert.Len(t, endpointOptions("localhost:4318"), 2)
	assert.Len(t, endpointOptions("http://collector:4318"), 2)
	assert.Len(t, endpointOptions("https://collector.example.test"), 1)
}
