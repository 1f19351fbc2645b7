package stockcount

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stocktake-pro/pkg/logger"
)

type sinkRecorder struct {
	mu     sync.Mutex
	writes []CountWrite
}

func (r *sinkRecorder) record(w CountWrite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, w)
	return nil
}

func (r *sinkRecorder) all() []CountWrite {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CountWrite, len(r.writes))
	copy(out, r.writes)
	return out
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func write(assignment, product string, qty int64) CountWrite {
	return CountWrite{
		AssignmentID: assignment,
		ProductID:    product,
		Quantity:     decimal.NewFromInt(qty),
	}
}

func TestCoalescer_SoloPersisteLaUltimaEscritura(t *testing.T) {
	rec := &sinkRecorder{}
	c := NewCoalescer(20*time.Millisecond, rec.record, testLogger())

	// Ráfaga sobre la misma llave: 1, 2, 3 dentro de la ventana.
	c.Queue(write("a1", "p1", 1))
	c.Queue(write("a1", "p1", 2))
	c.Queue(write("a1", "p1", 3))

	time.Sleep(100 * time.Millisecond)

	writes := rec.all()
	require.Len(t, writes, 1, "una ráfaga debe producir una sola escritura")
	assert.True(t, writes[0].Quantity.Equal(decimal.NewFromInt(3)),
		"debe persistir la última cantidad de la ráfaga")
	assert.Equal(t, 0, c.Pending())
}

func TestCoalescer_LlavesDistintasNoSePisan(t *testing.T) {
	rec := &sinkRecorder{}
	c := NewCoalescer(20*time.Millisecond, rec.record, testLogger())

	c.Queue(write("a1", "p1", 5))
	c.Queue(write("a1", "p2", 7))
	c.Queue(write("a2", "p1", 9))

	time.Sleep(100 * time.Millisecond)

	assert.Len(t, rec.all(), 3, "cada (ejercicio, producto) persiste por separado")
}

func TestCoalescer_FlushAssignmentEsInmediatoYSelectivo(t *testing.T) {
	rec := &sinkRecorder{}
	c := NewCoalescer(10*time.Second, rec.record, testLogger())

	c.Queue(write("a1", "p1", 4))
	c.Queue(write("a2", "p1", 8))

	require.NoError(t, c.FlushAssignment("a1"))

	writes := rec.all()
	require.Len(t, writes, 1)
	assert.Equal(t, "a1", writes[0].AssignmentID)
	assert.Equal(t, 1, c.Pending(), "lo del otro ejercicio sigue pendiente")
}

func TestCoalescer_FlushAllDrenaTodo(t *testing.T) {
	rec := &sinkRecorder{}
	c := NewCoalescer(10*time.Second, rec.record, testLogger())

	c.Queue(write("a1", "p1", 1))
	c.Queue(write("a1", "p2", 2))
	c.Queue(write("a2", "p3", 3))

	require.NoError(t, c.FlushAll())
	assert.Len(t, rec.all(), 3)
	assert.Equal(t, 0, c.Pending())
}

func TestCoalescer_FlushDespuesDelVencimientoNoDuplica(t *testing.T) {
	rec := &sinkRecorder{}
	c := NewCoalescer(10*time.Millisecond, rec.record, testLogger())

	c.Queue(write("a1", "p1", 6))
	time.Sleep(80 * time.Millisecond)

	require.NoError(t, c.FlushAssignment("a1"))
	assert.Len(t, rec.all(), 1, "el flush tardío no debe repetir la escritura")
}
