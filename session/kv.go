package session

import "sync"

// KV is the keyed string storage the persisted credential record lives in.
// Storage failures are best-effort and never surface to callers.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// InMemoryKV is an in-memory KV implementation, used in tests and whenever
// credentials should not outlive the process.
type InMemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewInMemoryKV() *InMemoryKV {
	return &InMemoryKV{values: make(map[string]string)}
}

func (kv *InMemoryKV) Get(key string) (string, bool) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	v, ok := kv.values[key]
	return v, ok
}

func (kv *InMemoryKV) Set(key, value string) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.values[key] = value
}

func (kv *InMemoryKV) Delete(key string) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.values, key)
}
