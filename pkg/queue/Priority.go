package queue

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"k8s.io/utils/clock"
)

type WorkType int

const (
	WorkTypePush WorkType = iota
	WorkTypeRetry
)

const (
	PriorityPush  = 25 // Medium - first attempt of a trigger
	PriorityRetry = 10 // Low - delayed retries
)

type WorkItem struct {
	Type      WorkType
	Priority  int
	Action    func(ctx context.Context)
	Timestamp time.Time
	sequence  uint64
	index     int // Index in heap
}

type PriorityQueue []*WorkItem

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	// Higher priority first
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority > pq[j].Priority
	}
	// Same priority: FIFO (submission order)
	return pq[i].sequence < pq[j].sequence
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*WorkItem)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

type delayed struct {
	timer clock.Timer
}

type PriorityWorkerQueue struct {
	pq         *PriorityQueue
	mu         sync.Mutex
	notEmpty   chan struct{}
	workerPool int
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	clock      clock.WithDelayedExecution
	limiter    *rate.Limiter
	delayed    map[*delayed]struct{}
	sequence   uint64
}

type Option func(*PriorityWorkerQueue)

// WithClock replaces the clock used for delayed submissions.
func WithClock(c clock.WithDelayedExecution) Option {
	return func(pwq *PriorityWorkerQueue) {
		pwq.clock = c
	}
}

// WithRateLimit caps how many actions per second the whole pool starts. Zero or less disables it.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(pwq *PriorityWorkerQueue) {
		if perSecond <= 0 {
			pwq.limiter = nil
			return
		}

		if burst < 1 {
			burst = 1
		}

		pwq.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func NewPriorityWorkerQueue(poolSize int, opts ...Option) *PriorityWorkerQueue {
	if poolSize < 1 {
		poolSize = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	pq := &PriorityQueue{}
	heap.Init(pq)

	pwq := &PriorityWorkerQueue{
		pq:         pq,
		notEmpty:   make(chan struct{}, 1),
		workerPool: poolSize,
		ctx:        ctx,
		cancel:     cancel,
		clock:      clock.RealClock{},
		delayed:    make(map[*delayed]struct{}),
	}

	for _, opt := range opts {
		opt(pwq)
	}

	return pwq
}

func (pwq *PriorityWorkerQueue) Start() {
	for i := 0; i < pwq.workerPool; i++ {
		pwq.wg.Add(1)
		go pwq.worker()
	}
}

func (pwq *PriorityWorkerQueue) worker() {
	defer pwq.wg.Done()

	for {
		select {
		case <-pwq.ctx.Done():
			return
		case <-pwq.notEmpty:
			for {
				item := pwq.next()
				if item == nil {
					break
				}

				if pwq.limiter != nil {
					if err := pwq.limiter.Wait(pwq.ctx); err != nil {
						return
					}
				}

				if item.Action != nil {
					item.Action(pwq.ctx)
				}

				if pwq.ctx.Err() != nil {
					return
				}
			}
		}
	}
}

// next pops the highest priority item and wakes another worker when more work is left.
func (pwq *PriorityWorkerQueue) next() *WorkItem {
	pwq.mu.Lock()
	defer pwq.mu.Unlock()

	if pwq.pq.Len() == 0 {
		return nil
	}

	item := heap.Pop(pwq.pq).(*WorkItem)

	if pwq.pq.Len() > 0 {
		pwq.signal()
	}

	return item
}

func (pwq *PriorityWorkerQueue) signal() {
	select {
	case pwq.notEmpty <- struct{}{}:
	default:
	}
}

func (pwq *PriorityWorkerQueue) Submit(workType WorkType, priority int, action func(ctx context.Context)) {
	if pwq.ctx.Err() != nil {
		return
	}

	workItem := &WorkItem{
		Type:      workType,
		Priority:  priority,
		Action:    action,
		Timestamp: time.Now(),
	}

	pwq.mu.Lock()
	pwq.sequence++
	workItem.sequence = pwq.sequence
	heap.Push(pwq.pq, workItem)
	pwq.mu.Unlock()

	pwq.signal()
}

// SubmitAfter submits action once delay has elapsed on the queue clock. Delayed work that has not
// fired when the queue stops is dropped. The callback must not call back into the clock: fake clocks
// run it while holding their own lock.
func (pwq *PriorityWorkerQueue) SubmitAfter(delay time.Duration, workType WorkType, priority int, action func(ctx context.Context)) {
	if pwq.ctx.Err() != nil {
		return
	}

	entry := &delayed{}

	pwq.mu.Lock()
	pwq.delayed[entry] = struct{}{}
	pwq.mu.Unlock()

	timer := pwq.clock.AfterFunc(delay, func() {
		pwq.mu.Lock()
		delete(pwq.delayed, entry)
		pwq.mu.Unlock()

		pwq.Submit(workType, priority, action)
	})

	pwq.mu.Lock()
	entry.timer = timer
	pwq.mu.Unlock()
}

// Len is the number of items waiting for a worker.
func (pwq *PriorityWorkerQueue) Len() int {
	pwq.mu.Lock()
	defer pwq.mu.Unlock()

	return pwq.pq.Len()
}

// Delayed is the number of submissions waiting for their delay to elapse.
func (pwq *PriorityWorkerQueue) Delayed() int {
	pwq.mu.Lock()
	defer pwq.mu.Unlock()

	return len(pwq.delayed)
}

func (pwq *PriorityWorkerQueue) Stop() {
	pwq.cancel()

	pwq.mu.Lock()
	timers := make([]clock.Timer, 0, len(pwq.delayed))
	for entry := range pwq.delayed {
		if entry.timer != nil {
			timers = append(timers, entry.timer)
		}
	}
	pwq.delayed = make(map[*delayed]struct{})
	pwq.mu.Unlock()

	for _, timer := range timers {
		timer.Stop()
	}

	pwq.wg.Wait()
}
