package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithRegistry(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	require.NotNil(t, m.HTTPRequestsTotal)
	require.NotNil(t, m.HTTPRequestDuration)
	require.NotNil(t, m.HTTPRequestsInFlight)
	require.NotNil(t, m.StoreOperationsTotal)
	require.NotNil(t, m.StoreOperationDuration)
	require.NotNil(t, m.ItemsInCollection)
	require.NotNil(t, m.DocumentIOTotal)
	require.NotNil(t, m.DocumentIODuration)
	require.NotNil(t, m.DocumentSizeBytes)
	require.NotNil(t, m.DataFileHealthy)
}

func TestStoreOperationCounters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.StoreOperationsTotal.WithLabelValues("create", "success").Inc()
	m.StoreOperationsTotal.WithLabelValues("create", "success").Inc()
	m.StoreOperationsTotal.WithLabelValues("create", "error").Inc()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.StoreOperationsTotal.WithLabelValues("create", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StoreOperationsTotal.WithLabelValues("create", "error")))
}

func TestUpdateDataFileHealth(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.UpdateDataFileHealth(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DataFileHealthy))

	m.UpdateDataFileHealth(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.DataFileHealthy))
}

func TestItemsInCollectionGauge(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.ItemsInCollection.Set(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(m.ItemsInCollection))
}
