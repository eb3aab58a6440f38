package engine

// Session owns score accumulation and the game-over transition for exactly
// one running mode controller. Once terminal it ignores all further
// mutation: multiple entities may trigger game over within the same tick,
// and scheduled events are not instantaneously cancellable, so late calls
// are ordinary and must be silent no-ops rather than failures.
type Session struct {
	score    int
	terminal bool

	onScore    func(score int)
	onGameOver func(finalScore int)
}

// NewSession creates a session reporting to the given UI callbacks.
// Either callback may be nil.
func NewSession(onScore func(int), onGameOver func(int)) *Session {
	return &Session{
		onScore:    onScore,
		onGameOver: onGameOver,
	}
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Terminal reports whether the session has ended.
func (s *Session) Terminal() bool {
	return s.terminal
}

// AddScore adds delta to the score and notifies the score callback.
// No-op once terminal.
func (s *Session) AddScore(delta int) {
	if s.terminal {
		return
	}
	s.score += delta
	if s.onScore != nil {
		s.onScore(s.score)
	}
}

// EndGame marks the session terminal and fires the game-over callback
// exactly once. Subsequent calls are no-ops.
func (s *Session) EndGame() {
	if s.terminal {
		return
	}
	s.terminal = true
	if s.onGameOver != nil {
		s.onGameOver(s.score)
	}
}
