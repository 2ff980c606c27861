// internal/component/game_state.go
package component

// GameStatus is the phase of a session.
type GameStatus int

const (
	StartScreen GameStatus = iota
	Playing
	WaveInProgress
	GameOver
	Victory
)

func (s GameStatus) String() string {
	switch s {
	case StartScreen:
		return "START_SCREEN"
	case Playing:
		return "PLAYING"
	case WaveInProgress:
		return "WAVE_IN_PROGRESS"
	case GameOver:
		return "GAME_OVER"
	case Victory:
		return "VICTORY"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether only a reset can leave this status.
func (s GameStatus) Terminal() bool {
	return s == GameOver || s == Victory
}

// GameState holds the player-facing counters.
type GameState struct {
	Status GameStatus
	Wave   int // 1-based once the first wave started
	Lives  int
	Money  int
}
