package anywork

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

type Work func() error

// Group is a bounded worker pool with failure collection. Lifecycle is
// owned by the caller: Backlog work, Sync for the verdict, Close when
// the group is no longer needed.
type Group struct {
	pipeline chan Work
	barrier  sync.WaitGroup
	guard    sync.Mutex
	failures []error
}

func NewGroup(workers int) *Group {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	group := &Group{
		pipeline: make(chan Work, 256),
	}
	for identity := 0; identity < workers; identity++ {
		go group.member(identity)
	}
	return group
}

func (it *Group) member(identity int) {
	for work := range it.pipeline {
		it.process(work, identity)
		it.barrier.Done()
	}
}

func (it *Group) process(work Work, identity int) {
	defer func() {
		if catch := recover(); catch != nil {
			it.fail(fmt.Errorf("recovered worker #%d: %v", identity, catch))
		}
	}()
	if err := work(); err != nil {
		it.fail(err)
	}
}

func (it *Group) fail(err error) {
	it.guard.Lock()
	defer it.guard.Unlock()
	it.failures = append(it.failures, err)
}

func (it *Group) Backlog(todo Work) {
	if todo != nil {
		it.barrier.Add(1)
		it.pipeline <- todo
	}
}

// Sync waits for all backlogged work and returns the collected
// failures, clearing them for the next round.
func (it *Group) Sync() error {
	it.barrier.Wait()
	it.guard.Lock()
	defer it.guard.Unlock()
	verdict := errors.Join(it.failures...)
	it.failures = nil
	return verdict
}

func (it *Group) Close() {
	close(it.pipeline)
}
