package const_data

import "go-splendor/entities"

// Level1Cards 一级卡牌
var Level1Cards = []entities.NormalCard{
	// 黑色
	{ID: 101, Level: 1, Points: 0, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Diamond: 1, entities.Sapphire: 1, entities.Emerald: 1, entities.Ruby: 1}},
	{ID: 102, Level: 1, Points: 0, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Diamond: 1, entities.Sapphire: 2, entities.Emerald: 1, entities.Ruby: 1}},
	{ID: 103, Level: 1, Points: 0, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Diamond: 2, entities.Sapphire: 2, entities.Ruby: 1}},
	{ID: 104, Level: 1, Points: 0, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Emerald: 1, entities.Ruby: 3, entities.Onyx: 1}},
	{ID: 105, Level: 1, Points: 0, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Emerald: 2, entities.Ruby: 1}},
	{ID: 106, Level: 1, Points: 0, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Diamond: 2, entities.Emerald: 2}},
	{ID: 107, Level: 1, Points: 0, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Emerald: 3}},
	{ID: 108, Level: 1, Points: 1, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Sapphire: 4}},
	// 蓝宝石
	{ID: 109, Level: 1, Points: 0, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Diamond: 1, entities.Emerald: 1, entities.Ruby: 1, entities.Onyx: 1}},
	{ID: 110, Level: 1, Points: 0, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Diamond: 1, entities.Emerald: 1, entities.Ruby: 2, entities.Onyx: 1}},
	{ID: 111, Level: 1, Points: 0, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Diamond: 1, entities.Emerald: 2, entities.Ruby: 2}},
	{ID: 112, Level: 1, Points: 0, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Sapphire: 1, entities.Emerald: 3, entities.Ruby: 1}},
	{ID: 113, Level: 1, Points: 0, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Diamond: 1, entities.Onyx: 2}},
	{ID: 114, Level: 1, Points: 0, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Emerald: 2, entities.Onyx: 2}},
	{ID: 115, Level: 1, Points: 1, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Ruby: 4}},
	{ID: 116, Level: 1, Points: 0, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Sapphire: 3}},
	// 白宝石
	{ID: 117, Level: 1, Points: 0, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Sapphire: 1, entities.Emerald: 1, entities.Ruby: 1, entities.Onyx: 1}},
	{ID: 118, Level: 1, Points: 0, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Sapphire: 1, entities.Emerald: 2, entities.Ruby: 1, entities.Onyx: 1}},
	{ID: 119, Level: 1, Points: 0, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Sapphire: 2, entities.Emerald: 2, entities.Onyx: 1}},
	{ID: 120, Level: 1, Points: 0, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Diamond: 3, entities.Sapphire: 1, entities.Onyx: 1}},
	{ID: 121, Level: 1, Points: 0, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Ruby: 2, entities.Onyx: 1}},
	{ID: 122, Level: 1, Points: 0, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Sapphire: 2, entities.Onyx: 2}},
	{ID: 123, Level: 1, Points: 1, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Emerald: 4}},
	{ID: 124, Level: 1, Points: 0, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Diamond: 3}},
	// 绿宝石
	{ID: 125, Level: 1, Points: 0, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Diamond: 1, entities.Sapphire: 1, entities.Ruby: 1, entities.Onyx: 1}},
	{ID: 126, Level: 1, Points: 0, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Diamond: 1, entities.Sapphire: 1, entities.Ruby: 1, entities.Onyx: 2}},
	{ID: 127, Level: 1, Points: 0, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Sapphire: 1, entities.Ruby: 2, entities.Onyx: 2}},
	{ID: 128, Level: 1, Points: 0, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Diamond: 1, entities.Sapphire: 3, entities.Emerald: 1}},
	{ID: 129, Level: 1, Points: 0, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Diamond: 2, entities.Sapphire: 1}},
	{ID: 130, Level: 1, Points: 0, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Sapphire: 2, entities.Ruby: 2}},
	{ID: 131, Level: 1, Points: 1, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Onyx: 4}},
	{ID: 132, Level: 1, Points: 0, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Ruby: 3}},
	// 红宝石
	{ID: 133, Level: 1, Points: 0, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Diamond: 1, entities.Sapphire: 1, entities.Emerald: 1, entities.Onyx: 1}},
	{ID: 134, Level: 1, Points: 0, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Diamond: 2, entities.Sapphire: 1, entities.Emerald: 1, entities.Onyx: 1}},
	{ID: 135, Level: 1, Points: 0, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Diamond: 2, entities.Emerald: 1, entities.Onyx: 2}},
	{ID: 136, Level: 1, Points: 0, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Diamond: 1, entities.Ruby: 1, entities.Onyx: 3}},
	{ID: 137, Level: 1, Points: 0, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Sapphire: 2, entities.Emerald: 1}},
	{ID: 138, Level: 1, Points: 0, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Diamond: 2, entities.Ruby: 2}},
	{ID: 139, Level: 1, Points: 0, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Diamond: 3}},
	{ID: 140, Level: 1, Points: 1, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Diamond: 4}},
}

// Level2Cards 二级卡牌
var Level2Cards = []entities.NormalCard{
	// 黑色
	{ID: 201, Level: 2, Points: 1, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Diamond: 3, entities.Sapphire: 2, entities.Emerald: 2}},
	{ID: 202, Level: 2, Points: 1, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Diamond: 3, entities.Emerald: 3, entities.Onyx: 2}},
	{ID: 203, Level: 2, Points: 2, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Sapphire: 1, entities.Emerald: 4, entities.Ruby: 2}},
	{ID: 204, Level: 2, Points: 2, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Emerald: 5, entities.Ruby: 3}},
	{ID: 205, Level: 2, Points: 2, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Diamond: 5}},
	{ID: 206, Level: 2, Points: 3, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Onyx: 6}},
	// 蓝宝石
	{ID: 207, Level: 2, Points: 1, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Sapphire: 2, entities.Emerald: 2, entities.Ruby: 3}},
	{ID: 208, Level: 2, Points: 1, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Sapphire: 2, entities.Emerald: 3, entities.Onyx: 3}},
	{ID: 209, Level: 2, Points: 2, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Diamond: 5, entities.Sapphire: 3}},
	{ID: 210, Level: 2, Points: 2, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Diamond: 2, entities.Ruby: 1, entities.Onyx: 4}},
	{ID: 211, Level: 2, Points: 2, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Sapphire: 5}},
	{ID: 212, Level: 2, Points: 3, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Sapphire: 6}},
	// 白宝石
	{ID: 213, Level: 2, Points: 1, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Emerald: 3, entities.Ruby: 2, entities.Onyx: 2}},
	{ID: 214, Level: 2, Points: 1, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Diamond: 2, entities.Sapphire: 3, entities.Ruby: 3}},
	{ID: 215, Level: 2, Points: 2, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Emerald: 1, entities.Ruby: 4, entities.Onyx: 2}},
	{ID: 216, Level: 2, Points: 2, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Ruby: 5, entities.Onyx: 3}},
	{ID: 217, Level: 2, Points: 2, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Ruby: 5}},
	{ID: 218, Level: 2, Points: 3, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Diamond: 6}},
	// 绿宝石
	{ID: 219, Level: 2, Points: 1, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Diamond: 3, entities.Emerald: 2, entities.Ruby: 3}},
	{ID: 220, Level: 2, Points: 1, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Diamond: 2, entities.Sapphire: 3, entities.Onyx: 2}},
	{ID: 221, Level: 2, Points: 2, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Diamond: 4, entities.Sapphire: 2, entities.Onyx: 1}},
	{ID: 222, Level: 2, Points: 2, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Sapphire: 5, entities.Emerald: 3}},
	{ID: 223, Level: 2, Points: 2, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Emerald: 5}},
	{ID: 224, Level: 2, Points: 3, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Emerald: 6}},
	// 红宝石
	{ID: 225, Level: 2, Points: 1, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Diamond: 2, entities.Ruby: 2, entities.Onyx: 3}},
	{ID: 226, Level: 2, Points: 1, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Sapphire: 3, entities.Ruby: 2, entities.Onyx: 3}},
	{ID: 227, Level: 2, Points: 2, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Diamond: 1, entities.Sapphire: 4, entities.Emerald: 2}},
	{ID: 228, Level: 2, Points: 2, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Diamond: 3, entities.Onyx: 5}},
	{ID: 229, Level: 2, Points: 2, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Onyx: 5}},
	{ID: 230, Level: 2, Points: 3, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Ruby: 6}},
}

// Level3Cards 三级卡牌
var Level3Cards = []entities.NormalCard{
	// 黑色
	{ID: 301, Level: 3, Points: 3, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Diamond: 3, entities.Sapphire: 3, entities.Emerald: 5, entities.Ruby: 3}},
	{ID: 302, Level: 3, Points: 4, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Ruby: 7}},
	{ID: 303, Level: 3, Points: 4, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Emerald: 3, entities.Ruby: 6, entities.Onyx: 3}},
	{ID: 304, Level: 3, Points: 5, Bonus: entities.Onyx, Cost: entities.GemPool{entities.Ruby: 7, entities.Onyx: 3}},
	// 蓝宝石
	{ID: 305, Level: 3, Points: 3, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Diamond: 3, entities.Emerald: 3, entities.Ruby: 3, entities.Onyx: 5}},
	{ID: 306, Level: 3, Points: 4, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Diamond: 7}},
	{ID: 307, Level: 3, Points: 4, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Diamond: 6, entities.Sapphire: 3, entities.Onyx: 3}},
	{ID: 308, Level: 3, Points: 5, Bonus: entities.Sapphire, Cost: entities.GemPool{entities.Diamond: 7, entities.Sapphire: 3}},
	// 白宝石
	{ID: 309, Level: 3, Points: 3, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Sapphire: 3, entities.Emerald: 3, entities.Ruby: 5, entities.Onyx: 3}},
	{ID: 310, Level: 3, Points: 4, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Onyx: 7}},
	{ID: 311, Level: 3, Points: 4, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Diamond: 3, entities.Ruby: 3, entities.Onyx: 6}},
	{ID: 312, Level: 3, Points: 5, Bonus: entities.Diamond, Cost: entities.GemPool{entities.Diamond: 3, entities.Onyx: 7}},
	// 绿宝石
	{ID: 313, Level: 3, Points: 3, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Diamond: 5, entities.Sapphire: 3, entities.Ruby: 3, entities.Onyx: 3}},
	{ID: 314, Level: 3, Points: 4, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Sapphire: 7}},
	{ID: 315, Level: 3, Points: 4, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Diamond: 3, entities.Sapphire: 6, entities.Emerald: 3}},
	{ID: 316, Level: 3, Points: 5, Bonus: entities.Emerald, Cost: entities.GemPool{entities.Sapphire: 7, entities.Emerald: 3}},
	// 红宝石
	{ID: 317, Level: 3, Points: 3, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Diamond: 3, entities.Sapphire: 5, entities.Emerald: 3, entities.Onyx: 3}},
	{ID: 318, Level: 3, Points: 4, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Emerald: 7}},
	{ID: 319, Level: 3, Points: 4, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Sapphire: 3, entities.Emerald: 6, entities.Ruby: 3}},
	{ID: 320, Level: 3, Points: 5, Bonus: entities.Ruby, Cost: entities.GemPool{entities.Emerald: 7, entities.Ruby: 3}},
}

// NobleTiles 贵族瓷砖
var NobleTiles = []entities.NobleCard{
	{ID: 1, Name: "Mary Stuart", Points: 3, Cost: entities.GemPool{entities.Ruby: 4, entities.Emerald: 4}},
	{ID: 2, Name: "Charles Quint", Points: 3, Cost: entities.GemPool{entities.Onyx: 3, entities.Ruby: 3, entities.Diamond: 3}},
	{ID: 3, Name: "Macchiavelli", Points: 3, Cost: entities.GemPool{entities.Sapphire: 4, entities.Diamond: 4}},
	{ID: 4, Name: "Isabel of Castille", Points: 3, Cost: entities.GemPool{entities.Onyx: 4, entities.Diamond: 4}},
	{ID: 5, Name: "Soliman the Magnificent", Points: 3, Cost: entities.GemPool{entities.Sapphire: 4, entities.Emerald: 4}},
	{ID: 6, Name: "Catherine of Medicis", Points: 3, Cost: entities.GemPool{entities.Emerald: 3, entities.Sapphire: 3, entities.Ruby: 3}},
	{ID: 7, Name: "Anne of Brittany", Points: 3, Cost: entities.GemPool{entities.Emerald: 3, entities.Sapphire: 3, entities.Diamond: 3}},
	{ID: 8, Name: "Henri VIII", Points: 3, Cost: entities.GemPool{entities.Onyx: 4, entities.Ruby: 4}},
	{ID: 9, Name: "Elisabeth of Austria", Points: 3, Cost: entities.GemPool{entities.Onyx: 3, entities.Sapphire: 3, entities.Diamond: 3}},
	{ID: 10, Name: "Francis I of France", Points: 3, Cost: entities.GemPool{entities.Onyx: 3, entities.Ruby: 3, entities.Emerald: 3}},
}
