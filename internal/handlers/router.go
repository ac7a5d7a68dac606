package handlers

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const userQueueSize = 16

// HandleFunc processes a single update.
type HandleFunc func(ctx context.Context, upd tgbotapi.Update)

// Router runs updates of one user strictly in arrival order while different
// users proceed concurrently. A user's worker exits once its queue drains.
type Router struct {
	handle HandleFunc

	mu     sync.Mutex
	queues map[int64]chan tgbotapi.Update
	wg     sync.WaitGroup
}

func NewRouter(handle HandleFunc) *Router {
	return &Router{
		handle: handle,
		queues: make(map[int64]chan tgbotapi.Update),
	}
}

// Dispatch enqueues upd for its user. It blocks while that user's queue is full.
func (r *Router) Dispatch(ctx context.Context, upd tgbotapi.Update) {
	userID := UserID(upd)

	// held across the send so a draining worker cannot retire the queue in between
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.queues[userID]
	if !ok {
		q = make(chan tgbotapi.Update, userQueueSize)
		r.queues[userID] = q
		r.wg.Add(1)
		go r.drain(ctx, userID, q)
	}
	q <- upd
}

func (r *Router) drain(ctx context.Context, userID int64, q chan tgbotapi.Update) {
	defer r.wg.Done()
	for {
		select {
		case upd := <-q:
			r.handle(ctx, upd)
		default:
			r.mu.Lock()
			if len(q) == 0 {
				delete(r.queues, userID)
				r.mu.Unlock()
				return
			}
			r.mu.Unlock()
		}
	}
}

// Wait blocks until every dispatched update has been handled.
func (r *Router) Wait() {
	r.wg.Wait()
}
