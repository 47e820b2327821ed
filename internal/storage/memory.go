package storage

// MemoryBackend implements Backend with an in-memory map. Used in tests
// so nothing touches the filesystem.
type MemoryBackend struct {
	blobs map[string][]byte
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

// Read returns the stored blob, or (nil, nil) if the key was never written.
func (b *MemoryBackend) Read(key string) ([]byte, error) {
	data, ok := b.blobs[key]
	if !ok {
		return nil, nil
	}
	return data, nil
}

// Write overwrites the blob for the key.
func (b *MemoryBackend) Write(key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	b.blobs[key] = cp
	return nil
}
