package dashboarding

import (
	"context"
	"sync"
)

// Fence garante que só o carregamento mais recente de cada sessão é entregue.
// Adquirir um novo ticket cancela o anterior da mesma chave.
type Fence struct {
	mu     sync.Mutex
	seq    uint64
	active map[string]*Ticket
}

type Ticket struct {
	Seq    uint64
	key    string
	cancel context.CancelFunc
	fence  *Fence
}

func NewFence() *Fence {
	return &Fence{active: make(map[string]*Ticket)}
}

func (f *Fence) Acquire(ctx context.Context, key string) (context.Context, *Ticket) {
	ctx, cancel := context.WithCancel(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if previous, ok := f.active[key]; ok {
		previous.cancel()
	}

	f.seq++
	ticket := &Ticket{Seq: f.seq, key: key, cancel: cancel, fence: f}
	f.active[key] = ticket

	return ctx, ticket
}

// Current indica se nenhum carregamento mais novo começou para a mesma chave
func (t *Ticket) Current() bool {
	t.fence.mu.Lock()
	defer t.fence.mu.Unlock()

	return t.fence.active[t.key] == t
}

func (t *Ticket) Release() {
	t.cancel()

	t.fence.mu.Lock()
	defer t.fence.mu.Unlock()

	if t.fence.active[t.key] == t {
		delete(t.fence.active, t.key)
	}
}
