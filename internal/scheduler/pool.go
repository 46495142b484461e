package scheduler

import (
	"sync"
)

// Pool executa tarefas em um número fixo de workers com fila limitada.
// Quando a fila está cheia, Submit executa a tarefa na goroutine de quem submeteu:
// nenhuma tarefa é descartada e o despacho fica mais lento sob saturação.
type Pool struct {
	tasks   chan func()
	workers sync.WaitGroup
	once    sync.Once
}

func NewPool(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	p := &Pool{tasks: make(chan func(), queueSize)}

	p.workers.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.workers.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}

	return p
}

// Submit enfileira a tarefa; retorna true quando ela foi executada na própria goroutine do chamador
func (p *Pool) Submit(task func()) (ranInline bool) {
	select {
	case p.tasks <- task:
		return false
	default:
		task()
		return true
	}
}

// Wait fecha a fila e bloqueia até todos os workers terminarem. Submit não pode ser chamado depois.
func (p *Pool) Wait() {
	p.once.Do(func() {
		close(p.tasks)
	})
	p.workers.Wait()
}
