package stockcount

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktake-pro/pkg/logger"
)

// CountWrite es una escritura de conteo pendiente de persistir.
type CountWrite struct {
	AssignmentID string
	ProductID    string
	Quantity     decimal.Decimal
}

func (w CountWrite) key() string {
	return w.AssignmentID + "/" + w.ProductID
}

// Coalescer consolida escrituras rápidas sobre el mismo (producto, ejercicio):
// cada escritura reinicia una ventana de silencio y solo la última cantidad se
// persiste cuando la ventana vence. Flush fuerza la persistencia inmediata,
// necesaria antes de valorizar un ejercicio.
type Coalescer struct {
	quiet time.Duration
	sink  func(CountWrite) error
	log   *logger.Logger

	mu      sync.Mutex
	pending map[string]CountWrite
	timers  map[string]*time.Timer
}

// NewCoalescer construye el planificador. sink persiste una escritura; los
// errores del camino asíncrono se registran, no hay a quién devolvérselos.
func NewCoalescer(quiet time.Duration, sink func(CountWrite) error, log *logger.Logger) *Coalescer {
	return &Coalescer{
		quiet:   quiet,
		sink:    sink,
		log:     log,
		pending: make(map[string]CountWrite),
		timers:  make(map[string]*time.Timer),
	}
}

// Queue encola una escritura. Si ya hay una pendiente para la misma llave, la
// reemplaza y reinicia la ventana de silencio.
func (c *Coalescer) Queue(w CountWrite) {
	key := w.key()
	c.mu.Lock()
	c.pending[key] = w
	if t, ok := c.timers[key]; ok {
		t.Reset(c.quiet)
	} else {
		c.timers[key] = time.AfterFunc(c.quiet, func() { c.expire(key) })
	}
	c.mu.Unlock()
}

// expire persiste la escritura cuya ventana venció.
func (c *Coalescer) expire(key string) {
	c.mu.Lock()
	w, ok := c.pending[key]
	delete(c.pending, key)
	delete(c.timers, key)
	c.mu.Unlock()
	if !ok {
		return
	}
	if err := c.sink(w); err != nil {
		c.log.Error().Err(err).
			Str("assignment_id", w.AssignmentID).
			Str("product_id", w.ProductID).
			Msg("no se pudo persistir el conteo diferido")
	}
}

// FlushAssignment persiste de inmediato todo lo pendiente de un ejercicio.
// Devuelve el primer error; las demás escrituras se intentan igual.
func (c *Coalescer) FlushAssignment(assignmentID string) error {
	return c.flush(func(w CountWrite) bool { return w.AssignmentID == assignmentID })
}

// FlushAll persiste todo lo pendiente (apagado ordenado del servidor).
func (c *Coalescer) FlushAll() error {
	return c.flush(func(CountWrite) bool { return true })
}

func (c *Coalescer) flush(match func(CountWrite) bool) error {
	c.mu.Lock()
	batch := make([]CountWrite, 0, len(c.pending))
	for key, w := range c.pending {
		if !match(w) {
			continue
		}
		if t, ok := c.timers[key]; ok {
			t.Stop()
		}
		delete(c.pending, key)
		delete(c.timers, key)
		batch = append(batch, w)
	}
	c.mu.Unlock()

	var firstErr error
	for _, w := range batch {
		if err := c.sink(w); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Pending devuelve cuántas escrituras esperan su ventana (para métricas y tests).
func (c *Coalescer) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
