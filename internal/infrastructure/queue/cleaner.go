package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/longrunpc/calmato-be/internal/api/metrics"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// CleanupDispatcher deletes orphaned objects from the blob store in the
// background. Keys are sharded across a fixed set of workers by fnv hash so a
// key replaced twice in quick succession is deleted by the same worker, in
// order.
type CleanupDispatcher struct {
	workers []chan string
	store   ports.BlobStore
	log     zerolog.Logger
}

// NewCleanupDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewCleanupDispatcher(numWorkers int, store ports.BlobStore, log zerolog.Logger) *CleanupDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &CleanupDispatcher{
		workers: make([]chan string, numWorkers),
		store:   store,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *CleanupDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// EnqueueURLs schedules deletion of the objects behind the given public URLs.
// URLs that do not point into the store's bucket are skipped. Non-blocking up
// to channelBuffer capacity per worker.
func (d *CleanupDispatcher) EnqueueURLs(urls ...string) {
	for _, u := range urls {
		key, ok := d.store.KeyFromURL(u)
		if !ok {
			continue
		}
		i := d.shardIndex(key)
		d.workers[i] <- key
		metrics.CleanupQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	}
}

// shardIndex maps an object key deterministically to a worker index.
func (d *CleanupDispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *CleanupDispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case key, ok := <-ch:
			if !ok {
				return
			}
			if err := d.store.Delete(ctx, key); err != nil {
				metrics.CleanupTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("key", key).
					Int("worker_id", id).
					Msg("blob cleanup failed")
			} else {
				metrics.CleanupTotal.WithLabelValues("deleted").Inc()
			}
			metrics.CleanupQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
