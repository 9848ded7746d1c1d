package tx

import (
	"context"
	"sync"
)

type afterCommitCtxKey struct{}

// afterCommitHooks накапливает колбэки до коммита самой внешней транзакции.
// Контейнер кладётся в контекст самым внешним Do; вложенный Do присоединяется
// к внешней транзакции и переиспользует её контейнер.
type afterCommitHooks struct {
	mu  sync.Mutex
	fns []func()
}

func (h *afterCommitHooks) add(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fns = append(h.fns, fn)
}

func (h *afterCommitHooks) run() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// AfterCommit откладывает fn до коммита самой внешней транзакции текущего
// контекста. Вне транзакции fn выполняется немедленно. Откат или повтор
// транзакции отбрасывает накопленные колбэки вместе с её контейнером, поэтому
// внешние события не публикуются для несостоявшихся изменений.
func AfterCommit(ctx context.Context, fn func()) {
	if hooks := hooksFromContext(ctx); hooks != nil {
		hooks.add(fn)
		return
	}
	fn()
}

func hooksFromContext(ctx context.Context) *afterCommitHooks {
	hooks, _ := ctx.Value(afterCommitCtxKey{}).(*afterCommitHooks)
	return hooks
}

// scopeHooks возвращает контекст с контейнером отложенных колбэков и признак
// того, что контейнер создан этим вызовом (то есть вызов — самый внешний).
func scopeHooks(ctx context.Context) (context.Context, *afterCommitHooks, bool) {
	if hooks := hooksFromContext(ctx); hooks != nil {
		return ctx, hooks, false
	}
	hooks := &afterCommitHooks{}
	return context.WithValue(ctx, afterCommitCtxKey{}, hooks), hooks, true
}
