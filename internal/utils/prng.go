// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService оборачивает стандартный генератор случайных чисел Go и даёт
// всей игре единый предсказуемый (seeded) источник случайности: позиции
// спавна, типы врагов и усилений, дрейф босса, выбор улучшений и дроп лута.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// FloatRange возвращает случайное число в диапазоне [lo, hi).
func (s *PRNGService) FloatRange(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// Perm возвращает случайную перестановку чисел [0, n).
func (s *PRNGService) Perm(n int) []int {
	return s.rng.Perm(n)
}
