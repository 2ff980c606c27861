// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — стек состояний. Only the top state is updated; every
// state is drawn from the bottom up, so overlays show the board beneath.
type StateMachine struct {
	stack []State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState replaces the whole stack with newState.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.Pop()
	}
	if newState != nil {
		sm.Push(newState)
	}
}

// Push puts an overlay on top of the current state.
func (sm *StateMachine) Push(s State) {
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop removes the top state.
func (sm *StateMachine) Pop() {
	n := len(sm.stack)
	if n == 0 {
		return
	}
	top := sm.stack[n-1]
	sm.stack[n-1] = nil
	sm.stack = sm.stack[:n-1]
	top.Exit()
}

// Current returns the top state, or nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if cur := sm.Current(); cur != nil {
		cur.Update(deltaTime)
	}
}

// Draw отрисовывает все состояния стека
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	for _, s := range sm.stack {
		s.Draw(screen)
	}
}
