package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ErrNoFetcher se devuelve al refrescar una clave que nunca se leyó.
var ErrNoFetcher = errors.New("cache: key has no fetcher")

// Fetcher trae el valor de una clave desde la red.
type Fetcher func(ctx context.Context) (any, error)

type Config struct {
	StaleTime  time.Duration // ventana en que una lectura se considera fresca
	GCTime     time.Duration // tiempo sin uso antes de poder desalojar la entrada
	GCInterval time.Duration // cada cuánto corre el recolector; 0 lo desactiva
	Retry      int           // intentos adicionales tras una falla
	BaseDelay  time.Duration
	MaxDelay   time.Duration

	Now         func() time.Time
	Sleep       func(ctx context.Context, d time.Duration) error
	ShouldRetry func(error) bool
}

func DefaultConfig() Config {
	return Config{
		StaleTime:  5 * time.Minute,
		GCTime:     10 * time.Minute,
		GCInterval: time.Minute,
		Retry:      2,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// Snapshot es la vista de una entrada en un instante.
type Snapshot struct {
	Key       string
	Status    Status
	Value     any
	HasData   bool
	Err       error
	UpdatedAt time.Time
}

type entry struct {
	key       Key
	status    Status
	value     any
	hasData   bool
	err       error
	updatedAt time.Time
	lastUsed  time.Time
	invalid   bool
	gen       uint64
	fetch     Fetcher
	observers map[int]chan Snapshot
}

type outcome struct {
	value any
	at    time.Time
}

// Cache guarda lecturas por clave con stale-while-revalidate, reintentos con
// backoff, deduplicación por clave e invalidación por recurso.
type Cache struct {
	cfg Config
	log *logrus.Entry

	mu      sync.Mutex
	entries map[string]*entry
	seq     uint64
	nextObs int

	group singleflight.Group

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func New(cfg Config, log *logrus.Entry) *Cache {
	def := DefaultConfig()
	if cfg.StaleTime <= 0 {
		cfg.StaleTime = def.StaleTime
	}
	if cfg.GCTime <= 0 {
		cfg.GCTime = def.GCTime
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = def.BaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = def.MaxDelay
	}
	if cfg.Retry < 0 {
		cfg.Retry = 0
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Sleep == nil {
		cfg.Sleep = Sleep
	}
	if cfg.ShouldRetry == nil {
		cfg.ShouldRetry = func(error) bool { return true }
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = logrus.NewEntry(l)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Cache{
		cfg:     cfg,
		log:     log,
		entries: make(map[string]*entry),
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	if cfg.GCInterval > 0 {
		go c.janitor()
	} else {
		close(c.done)
	}
	return c
}

// Close detiene el recolector y cancela las peticiones en curso.
func (c *Cache) Close() {
	c.cancel()
	<-c.done
}

// Query devuelve el valor de key. Si está fresco no toca la red; si venció
// por tiempo devuelve el valor viejo y refresca en segundo plano; si no hay
// valor o fue invalidado espera la petición (compartida con otros lectores
// de la misma clave).
func (c *Cache) Query(ctx context.Context, key Key, fetch Fetcher) (Snapshot, error) {
	c.mu.Lock()
	e := c.entryLocked(key)
	e.fetch = fetch
	now := c.cfg.Now()
	e.lastUsed = now

	if e.hasData && !(e.invalid && e.status != StatusError) {
		snap := c.snapshotLocked(e, now)
		if snap.Status == StatusStale || snap.Status == StatusError {
			c.startLocked(ctx, e)
		}
		c.mu.Unlock()
		return snap, nil
	}

	ch := c.startLocked(ctx, e)
	c.mu.Unlock()
	return c.wait(ctx, key, ch)
}

// Refetch fuerza una petición para key aunque el valor esté fresco (reintento manual).
func (c *Cache) Refetch(ctx context.Context, key Key) (Snapshot, error) {
	c.mu.Lock()
	e, ok := c.entries[key.String()]
	if !ok || e.fetch == nil {
		c.mu.Unlock()
		return Snapshot{Key: key.String()}, ErrNoFetcher
	}
	e.lastUsed = c.cfg.Now()
	ch := c.startLocked(ctx, e)
	c.mu.Unlock()
	return c.wait(ctx, key, ch)
}

func (c *Cache) wait(ctx context.Context, key Key, ch <-chan singleflight.Result) (Snapshot, error) {
	select {
	case <-ctx.Done():
		// el resultado se descarta para este llamador, la petición sigue
		return Snapshot{Key: key.String(), Status: StatusFetching}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			// se devuelve lo que haya quedado en caché junto con el error
			snap, _ := c.Peek(key)
			snap.Status = StatusError
			snap.Err = res.Err
			return snap, res.Err
		}
		out := res.Val.(outcome)
		return Snapshot{
			Key:       key.String(),
			Status:    StatusFresh,
			Value:     out.value,
			HasData:   true,
			UpdatedAt: out.at,
		}, nil
	}
}

// Invalidate marca como vencidas todas las entradas del recurso. Las que
// tienen observadores se refrescan de inmediato.
func (c *Cache) Invalidate(resource string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if e.key.Resource == resource {
			c.invalidateLocked(e)
			n++
		}
	}
	c.log.WithFields(logrus.Fields{"resource": resource, "entries": n}).Info("cache invalidated")
	return n
}

// Focus refresca las entradas observadas cuando la app vuelve a primer plano.
func (c *Cache) Focus() int { return c.trigger("focus") }

// Reconnect refresca las entradas observadas al recuperar la red.
func (c *Cache) Reconnect() int { return c.trigger("reconnect") }

func (c *Cache) trigger(reason string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if len(e.observers) > 0 && e.fetch != nil {
			c.startLocked(context.Background(), e)
			n++
		}
	}
	c.log.WithFields(logrus.Fields{"trigger": reason, "entries": n}).Info("refetch triggered")
	return n
}

// Subscribe registra un observador de key. El canal recibe el último
// snapshot (los intermedios se descartan) y se cierra al cancelar.
func (c *Cache) Subscribe(key Key, fetch Fetcher) (<-chan Snapshot, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entryLocked(key)
	e.fetch = fetch
	now := c.cfg.Now()
	e.lastUsed = now

	id := c.nextObs
	c.nextObs++
	ch := make(chan Snapshot, 1)
	e.observers[id] = ch

	snap := c.snapshotLocked(e, now)
	if e.hasData {
		ch <- snap
	}
	if !e.hasData || snap.Status == StatusStale || snap.Status == StatusError {
		c.startLocked(context.Background(), e)
	}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(e.observers, id)
			e.lastUsed = c.cfg.Now()
			close(ch)
		})
	}
}

// Peek devuelve el estado de key sin disparar peticiones.
func (c *Cache) Peek(key Key) (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok {
		return Snapshot{Key: key.String()}, false
	}
	return c.snapshotLocked(e, c.cfg.Now()), true
}

// Collect desaloja las entradas sin uso por más de GCTime.
func (c *Cache) Collect() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.cfg.Now()
	n := 0
	for id, e := range c.entries {
		if len(e.observers) > 0 || e.status == StatusFetching {
			continue
		}
		if now.Sub(e.lastUsed) >= c.cfg.GCTime {
			delete(c.entries, id)
			n++
		}
	}
	if n > 0 {
		c.log.WithField("evicted", n).Debug("cache entries evicted")
	}
	return n
}

// Len retorna el número de entradas en caché
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// janitor limpia entradas sin uso periódicamente
func (c *Cache) janitor() {
	defer close(c.done)
	ticker := time.NewTicker(c.cfg.GCInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Collect()
		case <-c.ctx.Done():
			return
		}
	}
}

func (c *Cache) entryLocked(key Key) *entry {
	id := key.String()
	e, ok := c.entries[id]
	if !ok {
		c.seq++
		e = &entry{key: key, gen: c.seq, observers: map[int]chan Snapshot{}}
		c.entries[id] = e
	}
	return e
}

func (c *Cache) snapshotLocked(e *entry, now time.Time) Snapshot {
	st := e.status
	if st == StatusFresh && (e.invalid || now.Sub(e.updatedAt) >= c.cfg.StaleTime) {
		st = StatusStale
	}
	return Snapshot{
		Key:       e.key.String(),
		Status:    st,
		Value:     e.value,
		HasData:   e.hasData,
		Err:       e.err,
		UpdatedAt: e.updatedAt,
	}
}

func (c *Cache) invalidateLocked(e *entry) {
	e.invalid = true
	// una petición en curso pasa a ser vieja: su resultado se descarta
	c.seq++
	e.gen = c.seq
	c.group.Forget(e.key.String())

	switch {
	case e.hasData && e.status != StatusError:
		e.status = StatusStale
	case !e.hasData && e.status == StatusFetching:
		e.status = StatusIdle
	}
	if len(e.observers) > 0 && e.fetch != nil {
		c.startLocked(context.Background(), e)
	}
}

// startLocked inicia (o se une a) la petición de e.
func (c *Cache) startLocked(origin context.Context, e *entry) <-chan singleflight.Result {
	id := e.key.String()
	gen := e.gen
	fetch := e.fetch
	e.status = StatusFetching
	c.notifyLocked(e)

	return c.group.DoChan(id, func() (any, error) {
		v, err := c.fetchWithRetry(origin, id, fetch)
		at := c.cfg.Now()
		c.settle(id, gen, v, err, at)
		if err != nil {
			return nil, err
		}
		return outcome{value: v, at: at}, nil
	})
}

func (c *Cache) fetchWithRetry(origin context.Context, id string, fetch Fetcher) (any, error) {
	// conserva los valores del llamador (request id) pero no su cancelación
	ctx, cancel := context.WithCancel(context.WithoutCancel(origin))
	stop := context.AfterFunc(c.ctx, cancel)
	defer stop()
	defer cancel()

	for attempt := 0; ; attempt++ {
		v, err := fetch(ctx)
		if err == nil {
			return v, nil
		}
		if attempt >= c.cfg.Retry || !c.cfg.ShouldRetry(err) || ctx.Err() != nil {
			return nil, err
		}

		delay := Backoff(attempt, c.cfg.BaseDelay, c.cfg.MaxDelay)
		c.log.WithFields(logrus.Fields{
			"key":     id,
			"attempt": attempt + 1,
			"delay":   delay.String(),
			"error":   err.Error(),
		}).Warn("query failed, retrying")

		if serr := c.cfg.Sleep(ctx, delay); serr != nil {
			return nil, err
		}
	}
}

func (c *Cache) settle(id string, gen uint64, v any, err error, at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok || e.gen != gen {
		c.log.WithField("key", id).Debug("discarding superseded result")
		return
	}
	// lo que se dispare desde aquí debe iniciar otra petición
	c.group.Forget(id)

	if err != nil {
		e.status = StatusError
		e.err = err
		c.log.WithFields(logrus.Fields{"key": id, "error": err.Error()}).Error("query failed")
	} else {
		e.status = StatusFresh
		e.value = v
		e.hasData = true
		e.err = nil
		e.updatedAt = at
		e.invalid = false
	}
	c.notifyLocked(e)
}

func (c *Cache) notifyLocked(e *entry) {
	if len(e.observers) == 0 {
		return
	}
	snap := c.snapshotLocked(e, c.cfg.Now())
	for _, ch := range e.observers {
		select {
		case ch <- snap:
		default:
			// reemplaza el snapshot pendiente por el más reciente
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
