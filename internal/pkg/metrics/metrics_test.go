package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveWrite(t *testing.T) {
	r := New()
	r.ObserveWrite("create", ResultOK)
	r.ObserveWrite("create", ResultOK)
	r.ObserveWrite("create", ResultConflict)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.MemberWrites.WithLabelValues("create", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.MemberWrites.WithLabelValues("create", ResultConflict)))
}

func TestObserveReport(t *testing.T) {
	r := New()
	r.ObserveReport("deceased", 3)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ReportsGenerated.WithLabelValues("deceased")))
}

func TestNilRegistryIsNoop(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.ObserveWrite("delete", ResultOK)
		r.ObserveReport("retirees", 1)
	})
}
