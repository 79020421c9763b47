package metrics_test

import (
	"context"
	"strings"
	"testing"

	"smartdomain/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestNew(t *testing.T) {
	mp := sdkmetric.NewMeterProvider()
	defer func() { _ = mp.Shutdown(context.Background()) }()

	i, err := metrics.New(mp)
	require.NoError(t, err)
	require.NotNil(t, i.RegistrarChecks)
	require.NotNil(t, i.RegistrarLatency)
	require.NotNil(t, i.LLMLatency)
	require.NotNil(t, i.GenerateDuration)
}

func TestNoop(t *testing.T) {
	i := metrics.Noop()
	require.NotPanics(t, func() {
		i.RegistrarChecks.Add(context.Background(), 1)
		i.LLMLatency.Record(context.Background(), 0.5)
	})
}

func TestNewHTTPDuration_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	h, err := metrics.NewHTTPDuration(reg)
	require.NoError(t, err)
	require.NotNil(t, h)

	_, err = metrics.NewHTTPDuration(reg)
	require.Error(t, err)
}

func TestNewMeterProvider_ExportsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	defer func() { _ = mp.Shutdown(context.Background()) }()

	i, err := metrics.New(mp)
	require.NoError(t, err)
	i.GenerateDuration.Record(context.Background(), 1.5)

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, f := range families {
		found = found || strings.HasPrefix(f.GetName(), "generate_duration")
	}
	require.True(t, found, "generate duration histogram not exported")
}
