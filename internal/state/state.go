// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран приложения: меню или арена
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны приложения
type StateMachine struct {
	current State
}

// NewStateMachine создаёт машину состояний; стартовый экран задаётся через SetState
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState переключает текущее состояние на новое
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Покидаем текущий экран, если он есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Входим в новый экран, только если он не nil
	}
}

// Update обновляет активный экран
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает активный экран
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
