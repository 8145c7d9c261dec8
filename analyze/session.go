package analyze

import (
	"sync"
	"sync/atomic"
)

// Token identifies one pipeline invocation issued by a [Session].
//
// Tokens increase monotonically; a larger token always denotes a more recent
// invocation.
type Token uint64

// Session serializes pipeline results for an interactive caller.
//
// A frontend that recomputes on every input or resolution change acquires a
// token via [Session.Next] before starting a run and offers the finished
// result through [Session.Commit]. Only the result carrying the latest issued
// token is applied; anything older is discarded. The zero value is ready to
// use and safe for concurrent use.
type Session struct {
	issued atomic.Uint64

	mu        sync.Mutex
	latest    Result
	latestTok Token
	applied   bool
}

// Next issues the token for a new pipeline invocation.
func (s *Session) Next() Token {
	return Token(s.issued.Add(1))
}

// Commit offers a finished result for the given token.
//
// It reports whether the result was applied. A result is rejected when a
// newer token has been issued since tok, or when tok's result has already
// been superseded by an applied one.
func (s *Session) Commit(tok Token, res Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if uint64(tok) != s.issued.Load() {
		return false
	}
	if s.applied && tok <= s.latestTok {
		return false
	}

	s.latest = res
	s.latestTok = tok
	s.applied = true

	return true
}

// Latest returns the most recently applied result and its token.
//
// ok is false until a first result has been committed.
func (s *Session) Latest() (res Result, tok Token, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest, s.latestTok, s.applied
}
