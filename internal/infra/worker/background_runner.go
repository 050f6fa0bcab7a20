package worker

import (
	"context"
	"log"
	"runtime/debug"
	"sync"
	"time"
)

type Task func(ctx context.Context) error

// BackgroundRunner roda tarefas fire-and-forget fora do ciclo da requisição.
// O contexto das tarefas não herda cancelamento da requisição HTTP.
type BackgroundRunner struct {
	baseCtx context.Context
	wg      sync.WaitGroup
}

func NewBackgroundRunner(ctx context.Context) *BackgroundRunner {
	if ctx == nil {
		ctx = context.Background()
	}
	return &BackgroundRunner{baseCtx: context.WithoutCancel(ctx)}
}

// Go agenda a tarefa e retorna imediatamente. Erros e panics são só logados.
func (r *BackgroundRunner) Go(name string, task Task) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("❌ [WORKER] Panic em %s: %v\n%s", name, rec, debug.Stack())
			}
		}()

		start := time.Now()
		if err := task(r.baseCtx); err != nil {
			log.Printf("⚠️ [WORKER] %s terminou com erro em %s: %v", name, time.Since(start).Round(time.Millisecond), err)
			return
		}
		log.Printf("✅ [WORKER] %s concluído em %s", name, time.Since(start).Round(time.Millisecond))
	}()
}

// Wait espera as tarefas em andamento ou o ctx expirar (desligamento).
func (r *BackgroundRunner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
