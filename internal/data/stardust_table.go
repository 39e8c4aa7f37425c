package data

import "slices"

// stardustRow is one power-up cost and the levels that charge it.
type stardustRow struct {
	cost   uint32
	levels []float32
}

// MaxLevel is the highest level present in the stardust table.
const MaxLevel float32 = 40.0

// stardustLevelTable maps power-up stardust cost to candidate levels.
// Ascending by cost. Rows are kept as recorded, including the irregular
// 1000 (ends at 11.5), 1600 (14.5) and 4000 (26.5) rows.
var stardustLevelTable = [...]stardustRow{
	{200, []float32{1.0, 1.5, 2.0, 2.5}},
	{400, []float32{3.0, 3.5, 4.0, 4.5}},
	{600, []float32{5.0, 5.5, 6.0, 6.5}},
	{800, []float32{7.0, 7.5, 8.0, 8.5}},
	{1000, []float32{9.0, 9.5, 10.0, 11.5}},
	{1300, []float32{11.0, 11.5, 12.0, 12.5}},
	{1600, []float32{13.0, 13.5, 14.5, 15.0}},
	{1900, []float32{15.0, 15.5, 16.0, 16.5}},
	{2200, []float32{17.0, 17.5, 18.0, 18.5}},
	{2500, []float32{19.0, 19.5, 20.0, 20.5}},
	{3000, []float32{21.0, 21.5, 22.0, 22.5}},
	{3500, []float32{23.0, 23.5, 24.0, 24.5}},
	{4000, []float32{25.0, 25.5, 26.5, 27.0}},
	{4500, []float32{27.0, 27.5, 28.0, 28.5}},
	{5000, []float32{29.0, 29.5, 30.0, 30.5}},
	{6000, []float32{31.0, 31.5, 32.0, 32.5}},
	{7000, []float32{33.0, 33.5, 34.0, 34.5}},
	{8000, []float32{35.0, 35.5, 36.0, 36.5}},
	{9000, []float32{37.0, 37.5, 38.0, 38.5}},
	{10000, []float32{39.0, 39.5, 40.0}},
}

// PossibleLevels returns the levels whose power-up costs exactly cost stardust.
// Unknown costs return false. The returned slice is a copy.
func PossibleLevels(cost uint32) ([]float32, bool) {
	i, found := slices.BinarySearchFunc(stardustLevelTable[:], cost, func(r stardustRow, c uint32) int {
		switch {
		case r.cost < c:
			return -1
		case r.cost > c:
			return 1
		default:
			return 0
		}
	})
	if !found {
		return nil, false
	}
	return slices.Clone(stardustLevelTable[i].levels), true
}

// StardustCosts возвращает все известные стоимости power-up по возрастанию.
func StardustCosts() []uint32 {
	costs := make([]uint32, len(stardustLevelTable))
	for i, r := range stardustLevelTable {
		costs[i] = r.cost
	}
	return costs
}
