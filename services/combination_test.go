package services

import (
	"testing"

	"github.com/clduval/resto-resa/models"
	"github.com/stretchr/testify/assert"
)

func tablesWithSeats(seats ...int) []models.Table {
	tables := make([]models.Table, 0, len(seats))
	for i, s := range seats {
		tables = append(tables, models.Table{ID: uint(i + 1), Seats: s})
	}
	return tables
}

func TestAssignPrefersFirstEnumeratedCombination(t *testing.T) {
	strategy := ExhaustiveCombination{}

	// Rombongan 5 dengan meja 2, 4 dan 6: {2,4} (total 6) muncul lebih dulu
	// dalam enumerasi power-set daripada {6}.
	combo := strategy.Assign(tablesWithSeats(2, 4, 6), 5)
	assert.Equal(t, []int{2, 4}, seatsOf(combo))

	// Hanya meja 6: tetap valid (6 <= 5+2).
	combo = strategy.Assign(tablesWithSeats(6), 5)
	assert.Equal(t, []int{6}, seatsOf(combo))
}

func TestAssignRespectsOverageTolerance(t *testing.T) {
	strategy := ExhaustiveCombination{}

	cases := [][]int{
		{2, 4, 6},
		{6, 4, 2},
		{2, 2, 4, 6},
		{4, 4, 4},
		{6, 6},
	}
	for party := 1; party <= 12; party++ {
		for _, seats := range cases {
			combo := strategy.Assign(tablesWithSeats(seats...), party)
			if combo == nil {
				continue
			}
			total := totalSeats(combo)
			assert.GreaterOrEqual(t, total, party)
			assert.LessOrEqual(t, total, party+OverageTolerance)
		}
	}
}

func TestAssignReturnsNilWhenNoCombinationFits(t *testing.T) {
	strategy := ExhaustiveCombination{}

	// Kapasitas maksimum yang bisa dirakit adalah 8 (2+6), tidak cukup
	// untuk 10 orang.
	assert.Nil(t, strategy.Assign(tablesWithSeats(2, 6), 10))

	// Satu meja 6 untuk 3 orang: 6 > 3+2 -> tidak ada kandidat.
	assert.Nil(t, strategy.Assign(tablesWithSeats(6), 3))

	assert.Nil(t, strategy.Assign(nil, 2))
}

func TestAssignDeterministicForInputOrder(t *testing.T) {
	strategy := ExhaustiveCombination{}

	first := strategy.Assign(tablesWithSeats(2, 4), 2)
	second := strategy.Assign(tablesWithSeats(2, 4), 2)
	assert.Equal(t, seatsOf(first), seatsOf(second))
	assert.Equal(t, []int{2}, seatsOf(first))

	// Urutan input menentukan hasil: dengan meja 4 di depan, meja 4 yang
	// ditemukan lebih dulu.
	reversed := strategy.Assign(tablesWithSeats(4, 2), 2)
	assert.Equal(t, []int{4}, seatsOf(reversed))
}
