package manifest

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
)

// Accumulator is fed content as it arrives and produces a tagged digest
// once the stream is complete.
type Accumulator interface {
	io.Writer
	Finish() string
}

type md5Accumulator struct {
	h hash.Hash
}

func newMD5Accumulator() Accumulator {
	return &md5Accumulator{h: md5.New()}
}

func (a *md5Accumulator) Write(p []byte) (int, error) {
	return a.h.Write(p)
}

// Finish returns "md5:" followed by the lowercase hex digest.
func (a *md5Accumulator) Finish() string {
	return md5Prefix + hex.EncodeToString(a.h.Sum(nil))
}
