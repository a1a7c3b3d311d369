// internal/entity/input.go
package entity

// Input содержит снятое состояние клавиш движения за один тик. Слой ввода
// собирает его из нажатых клавиш, симуляция сама клавиатуру не опрашивает.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}
