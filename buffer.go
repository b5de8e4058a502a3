package globwalk

import "sync"

// pathBufPool holds scratch buffers for assembling virtual paths while
// walking through symlinked roots. Buffers go back to the pool on every
// exit path, so a steady-state walk costs one string allocation per entry
// reported.
var pathBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

// joinPath joins a virtual prefix and a walked path with a single
// separator, via a pooled scratch buffer.
func joinPath(prefix, p string) string {
	if prefix == "" {
		return p
	}
	if p == "" {
		return prefix
	}
	bp := pathBufPool.Get().(*[]byte)
	b := append((*bp)[:0], prefix...)
	b = append(b, '/')
	b = append(b, p...)
	s := string(b)
	*bp = b
	pathBufPool.Put(bp)
	return s
}
