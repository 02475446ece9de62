package const_data

import "go-splendor/entities"

// Levels 卡牌等级数
const Levels = 3

// CardsByLevel 返回指定等级卡牌的副本，调用方可以随意打乱
func CardsByLevel(level int) []entities.NormalCard {
	var src []entities.NormalCard
	switch level {
	case 1:
		src = Level1Cards
	case 2:
		src = Level2Cards
	case 3:
		src = Level3Cards
	default:
		return nil
	}
	cards := make([]entities.NormalCard, len(src))
	copy(cards, src)
	return cards
}

// Nobles 返回所有贵族的副本
func Nobles() []entities.NobleCard {
	nobles := make([]entities.NobleCard, len(NobleTiles))
	copy(nobles, NobleTiles)
	return nobles
}

var cardIndex = buildCardIndex()

func buildCardIndex() map[int]entities.NormalCard {
	idx := make(map[int]entities.NormalCard, len(Level1Cards)+len(Level2Cards)+len(Level3Cards))
	for level := 1; level <= Levels; level++ {
		for _, c := range CardsByLevel(level) {
			idx[c.ID] = c
		}
	}
	return idx
}

// CardByID 根据 ID 查找卡牌
func CardByID(id int) (entities.NormalCard, bool) {
	c, ok := cardIndex[id]
	return c, ok
}

// NobleByID 根据 ID 查找贵族
func NobleByID(id int) (entities.NobleCard, bool) {
	for _, n := range NobleTiles {
		if n.ID == id {
			return n, true
		}
	}
	return entities.NobleCard{}, false
}
