package scheduling

import (
	"fmt"
	"slices"
	"sync"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

// SlotGrid неизменяемая сетка начала слотов, одинаковая для всех дней
type SlotGrid struct {
	slots []types.TimeString
	index map[int]int // минуты -> позиция в сетке
	step  int
}

// NewSlotGrid строит сетку [start, end) с шагом step минут
func NewSlotGrid(start, end types.TimeString, step int) (SlotGrid, error) {
	if step <= 0 {
		return SlotGrid{}, fmt.Errorf("slot grid: step must be positive, got %d", step)
	}

	from, err := TimeToMinutes(start.String())
	if err != nil {
		return SlotGrid{}, fmt.Errorf("slot grid: start: %w", err)
	}
	to, err := TimeToMinutes(end.String())
	if err != nil {
		return SlotGrid{}, fmt.Errorf("slot grid: end: %w", err)
	}

	grid := SlotGrid{
		slots: make([]types.TimeString, 0, (to-from)/step+1),
		index: make(map[int]int),
		step:  step,
	}
	for m := from; m < to; m += step {
		ts, err := types.TimeFromMinutes(m)
		if err != nil {
			return SlotGrid{}, fmt.Errorf("slot grid: %w", err)
		}
		grid.index[m] = len(grid.slots)
		grid.slots = append(grid.slots, ts)
	}
	return grid, nil
}

var defaultGrid = sync.OnceValue(func() SlotGrid {
	grid, err := NewSlotGrid(domain.GridStartTime, domain.GridEndTime, domain.GridStepMinutes)
	if err != nil {
		panic(err)
	}
	return grid
})

// DefaultGrid сетка 10:30-19:30 с шагом 20 минут, вычисляется один раз на процесс
func DefaultGrid() SlotGrid {
	return defaultGrid()
}

// GenerateTimeSlots слоты сетки по умолчанию: 10:30, 10:50, ..., 19:10
func GenerateTimeSlots() []types.TimeString {
	return DefaultGrid().Slots()
}

// Slots копия слотов сетки
func (g SlotGrid) Slots() []types.TimeString {
	return slices.Clone(g.slots)
}

func (g SlotGrid) Len() int {
	return len(g.slots)
}

func (g SlotGrid) Step() int {
	return g.step
}

// Contains проверяет, что время совпадает с одной из точек сетки
func (g SlotGrid) Contains(t types.TimeString) bool {
	m, err := t.Minutes()
	if err != nil {
		return false
	}
	_, ok := g.index[m]
	return ok
}
