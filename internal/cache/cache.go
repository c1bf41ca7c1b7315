// Package cache fornece um cache em memória simples com TTL.
package cache

import (
	"sync"
	"time"
)

type entrada[T any] struct {
	valor    T
	expiraEm time.Time
}

// EmMemoria é um cache thread-safe com TTL por entrada.
type EmMemoria[T any] struct {
	mu    sync.RWMutex
	itens map[string]entrada[T]
	ttl   time.Duration
}

// New cria o cache com o TTL dado e dispara a limpeza periódica.
func New[T any](ttl time.Duration) *EmMemoria[T] {
	c := &EmMemoria[T]{
		itens: make(map[string]entrada[T]),
		ttl:   ttl,
	}
	go c.limpar()
	return c
}

// Get devolve o valor, ou false se ausente ou expirado.
func (c *EmMemoria[T]) Get(chave string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.itens[chave]
	if !ok || time.Now().After(e.expiraEm) {
		var zero T
		return zero, false
	}
	return e.valor, true
}

// Set grava o valor com o TTL configurado.
func (c *EmMemoria[T]) Set(chave string, valor T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.itens[chave] = entrada[T]{
		valor:    valor,
		expiraEm: time.Now().Add(c.ttl),
	}
}

// Delete remove a entrada.
func (c *EmMemoria[T]) Delete(chave string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.itens, chave)
}

func (c *EmMemoria[T]) limpar() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		agora := time.Now()
		for k, v := range c.itens {
			if agora.After(v.expiraEm) {
				delete(c.itens, k)
			}
		}
		c.mu.Unlock()
	}
}
