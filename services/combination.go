package services

import "github.com/clduval/resto-resa/models"

// OverageTolerance: kombinasi meja hanya dianggap kandidat kalau total
// kursinya tidak melebihi jumlah tamu + 2.
const OverageTolerance = 2

// CombinationStrategy memilih subset meja untuk satu rombongan. Strategi
// harus deterministik untuk urutan input yang sama; nil berarti tidak ada
// kombinasi yang memenuhi.
type CombinationStrategy interface {
	Assign(tables []models.Table, partySize int) []models.Table
}

// ExhaustiveCombination membangkitkan power-set meja dalam urutan input dan
// mengembalikan subset pertama yang total kursinya >= partySize. Subset yang
// melebihi partySize+2 dibuang sejak awal sehingga tidak pernah terpilih.
//
// Eksponensial terhadap jumlah meja; dapat diterima karena jumlah meja
// restoran kecil (puluhan). Untuk armada besar, ganti strategi ini dengan
// pencarian terbatas tanpa mengubah pemanggil.
type ExhaustiveCombination struct{}

func (ExhaustiveCombination) Assign(tables []models.Table, partySize int) []models.Table {
	combos := [][]models.Table{{}}
	for _, table := range tables {
		grown := make([][]models.Table, 0, len(combos))
		for _, c := range combos {
			candidate := make([]models.Table, len(c), len(c)+1)
			copy(candidate, c)
			candidate = append(candidate, table)
			if totalSeats(candidate) <= partySize+OverageTolerance {
				grown = append(grown, candidate)
			}
		}
		combos = append(combos, grown...)
	}

	for _, c := range combos {
		if totalSeats(c) >= partySize {
			return c
		}
	}
	return nil
}

func totalSeats(tables []models.Table) int {
	sum := 0
	for _, t := range tables {
		sum += t.Seats
	}
	return sum
}
