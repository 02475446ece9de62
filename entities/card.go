package entities

// NormalCard 发展卡
type NormalCard struct {
	ID     int      `json:"id"`     // 卡牌ID
	Level  int      `json:"level"`  // 1/2/3
	Bonus  GemColor `json:"bonus"`  // 折扣颜色
	Points int      `json:"points"` // 荣誉分
	Cost   GemPool  `json:"cost"`   // 五色费用，不含黄金
}

// NobleCard 贵族瓷砖，满足折扣卡数量后自动拜访
type NobleCard struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Cost   GemPool `json:"cost"`   // 奖励条件，如 {"emerald":4,"ruby":4}
	Points int     `json:"points"` // 固定 3 分
}

// TotalCost 卡牌费用总数
func (c NormalCard) TotalCost() int {
	return c.Cost.Total()
}
