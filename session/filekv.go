package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// FileKV is a KV backed by a single JSON file, so a login survives console
// restarts. Write failures are logged and otherwise swallowed; the in-memory
// view stays authoritative for the life of the process.
type FileKV struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

// NewFileKV opens (or creates) the credential file at path. A missing or
// unreadable file starts empty.
func NewFileKV(path string) *FileKV {
	kv := &FileKV{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if err != nil {
		return kv
	}
	if err := json.Unmarshal(data, &kv.values); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("credential file unreadable, starting empty")
		kv.values = make(map[string]string)
	}
	return kv
}

func (kv *FileKV) Get(key string) (string, bool) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	v, ok := kv.values[key]
	return v, ok
}

func (kv *FileKV) Set(key, value string) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.values[key] = value
	kv.flushLocked()
}

func (kv *FileKV) Delete(key string) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.values, key)
	kv.flushLocked()
}

func (kv *FileKV) flushLocked() {
	data, err := json.MarshalIndent(kv.values, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode credential file")
		return
	}
	if err := os.MkdirAll(filepath.Dir(kv.path), 0o700); err != nil {
		log.Warn().Str("path", kv.path).Err(err).Msg("failed to create credential folder")
		return
	}
	if err := os.WriteFile(kv.path, data, 0o600); err != nil {
		log.Warn().Str("path", kv.path).Err(err).Msg("failed to write credential file")
	}
}
