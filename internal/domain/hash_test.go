package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testSignal(t *testing.T) SignalContext {
	t.Helper()

	now := time.Date(2026, 8, 30, 18, 5, 0, 0, time.UTC)
	return NewSignalContext(now, EnergyOK, false)
}

func TestComputeContextHashOrderIndependentOverInventoryNames(t *testing.T) {
	signal := testSignal(t)
	nowISO := signal.Now.Format(time.RFC3339)

	first := ComputeContextHash(nowISO, signal, []string{"a", "b"}, "toast")
	second := ComputeContextHash(nowISO, signal, []string{"b", "a"}, "toast")

	assert.Equal(t, first, second)
}

func TestComputeContextHashDeterministic(t *testing.T) {
	signal := testSignal(t)
	nowISO := signal.Now.Format(time.RFC3339)
	names := []string{"milk", "eggs", "bread"}

	assert.Equal(t,
		ComputeContextHash(nowISO, signal, names, "omelette"),
		ComputeContextHash(nowISO, signal, names, "omelette"),
	)
}

func TestComputeContextHashDoesNotMutateInput(t *testing.T) {
	signal := testSignal(t)
	names := []string{"zucchini", "apple"}

	ComputeContextHash(signal.Now.Format(time.RFC3339), signal, names, "toast")

	assert.Equal(t, []string{"zucchini", "apple"}, names)
}

func TestComputeContextHashSensitiveToEveryField(t *testing.T) {
	signal := testSignal(t)
	nowISO := signal.Now.Format(time.RFC3339)
	names := []string{"milk"}
	base := ComputeContextHash(nowISO, signal, names, "toast")

	conflicted := signal
	conflicted.CalendarConflict = true

	tired := signal
	tired.Energy = EnergyLow

	tests := []struct {
		name  string
		other string
	}{
		{name: "timestamp", other: ComputeContextHash("2026-08-31T18:05:00Z", signal, names, "toast")},
		{name: "calendar conflict", other: ComputeContextHash(nowISO, conflicted, names, "toast")},
		{name: "energy", other: ComputeContextHash(nowISO, tired, names, "toast")},
		{name: "inventory names", other: ComputeContextHash(nowISO, signal, []string{"milk", "eggs"}, "toast")},
		{name: "selected meal", other: ComputeContextHash(nowISO, signal, names, "omelette")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, tt.other)
		})
	}
}

func TestComputeContextHashNamesWithDelimitersDoNotCollide(t *testing.T) {
	signal := testSignal(t)
	nowISO := signal.Now.Format(time.RFC3339)

	tests := []struct {
		name   string
		first  []string
		second []string
	}{
		{name: "comma inside a name", first: []string{"a,b"}, second: []string{"a", "b"}},
		{name: "pipe inside a name", first: []string{"a|b"}, second: []string{"a", "b"}},
		{name: "name absorbing a neighbor", first: []string{"milk,eggs", "bread"}, second: []string{"milk", "eggs,bread"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t,
				ComputeContextHash(nowISO, signal, tt.first, "toast"),
				ComputeContextHash(nowISO, signal, tt.second, "toast"),
			)
		})
	}
}

func TestComputeContextHashNameListIsNotConfusedWithSelectedMeal(t *testing.T) {
	signal := testSignal(t)
	nowISO := signal.Now.Format(time.RFC3339)

	assert.NotEqual(t,
		ComputeContextHash(nowISO, signal, []string{"milk", "toast"}, ""),
		ComputeContextHash(nowISO, signal, []string{"milk"}, "toast"),
	)
}
