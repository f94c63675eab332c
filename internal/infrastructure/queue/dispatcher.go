package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/animalia/listing-system/internal/api/metrics"
	"github.com/animalia/listing-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes newly registered animals to a fixed set of index
// workers using consistent hashing on the animal id, so repeated index
// requests for the same animal are processed in order.
type Dispatcher struct {
	workers []chan ports.IndexInput
	service ports.IndexService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.IndexService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.IndexInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.IndexInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an animal to the worker responsible for its id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(input ports.IndexInput) {
	i := d.shardIndex(input.AnimalID)
	d.workers[i] <- input
	metrics.IndexQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps an animal id deterministically to a worker index.
func (d *Dispatcher) shardIndex(animalID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(animalID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.IndexInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			metrics.IndexQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Process(ctx, input); err != nil {
				metrics.IndexErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("animal_id", input.AnimalID).
					Int("worker_id", id).
					Msg("index processing failed")
			}
		}
	}
}
