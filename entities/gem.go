package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownGemColor = errors.New("未知的宝石颜色")

// GemColor 宝石种类，5 种彩色 + 1 种黄金（万能）
type GemColor int

const (
	Diamond GemColor = iota
	Sapphire
	Emerald
	Ruby
	Onyx
	Gold
)

// GemKinds 宝石种类总数
const GemKinds = 6

// ColoredGems 五种彩色宝石，固定顺序（也是 AI 平分时的次序）
var ColoredGems = [...]GemColor{Diamond, Sapphire, Emerald, Ruby, Onyx}

// AllGems 所有宝石，黄金在最后
var AllGems = [...]GemColor{Diamond, Sapphire, Emerald, Ruby, Onyx, Gold}

func (c GemColor) String() string {
	switch c {
	case Diamond:
		return "diamond"
	case Sapphire:
		return "sapphire"
	case Emerald:
		return "emerald"
	case Ruby:
		return "ruby"
	case Onyx:
		return "onyx"
	case Gold:
		return "gold"
	default:
		return fmt.Sprintf("GemColor(%d)", int(c))
	}
}

// Valid 是否为已知颜色
func (c GemColor) Valid() bool {
	return c >= Diamond && c <= Gold
}

// IsColored 是否为彩色宝石（非黄金）
func (c GemColor) IsColored() bool {
	return c >= Diamond && c <= Onyx
}

// ParseGemColor 解析颜色名，兼容旧前端使用的 White/Blue/Green/Red/Black
func ParseGemColor(s string) (GemColor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "diamond", "white":
		return Diamond, nil
	case "sapphire", "blue":
		return Sapphire, nil
	case "emerald", "green":
		return Emerald, nil
	case "ruby", "red":
		return Ruby, nil
	case "onyx", "black":
		return Onyx, nil
	case "gold", "joker":
		return Gold, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGemColor, s)
}

func (c GemColor) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGemColor, int(c))
	}
	return []byte(c.String()), nil
}

func (c *GemColor) UnmarshalText(text []byte) error {
	parsed, err := ParseGemColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// GemPool 宝石数量表，按 GemColor 下标存储。银行、玩家持有、卡牌费用都用它表示
type GemPool [GemKinds]int

// NewGemPool 五种彩色宝石数量相同，外加黄金
func NewGemPool(colored, gold int) GemPool {
	var p GemPool
	for _, c := range ColoredGems {
		p[c] = colored
	}
	p[Gold] = gold
	return p
}

// ParseGemPool 将 {"ruby":1} 形式的 map 转为 GemPool，未知颜色直接报错
func ParseGemPool(m map[string]int) (GemPool, error) {
	var p GemPool
	for name, n := range m {
		c, err := ParseGemColor(name)
		if err != nil {
			return GemPool{}, err
		}
		p[c] += n
	}
	return p, nil
}

func (p GemPool) Get(c GemColor) int {
	return p[c]
}

// Total 所有宝石（含黄金）总数
func (p GemPool) Total() int {
	sum := 0
	for _, n := range p {
		sum += n
	}
	return sum
}

// ColoredTotal 彩色宝石总数
func (p GemPool) ColoredTotal() int {
	return p.Total() - p[Gold]
}

func (p GemPool) Add(o GemPool) GemPool {
	for i := range p {
		p[i] += o[i]
	}
	return p
}

func (p GemPool) Sub(o GemPool) GemPool {
	for i := range p {
		p[i] -= o[i]
	}
	return p
}

func (p GemPool) IsZero() bool {
	return p == GemPool{}
}

func (p GemPool) HasNegative() bool {
	for _, n := range p {
		if n < 0 {
			return true
		}
	}
	return false
}

// Covers 每种颜色都 >= o
func (p GemPool) Covers(o GemPool) bool {
	for i := range p {
		if p[i] < o[i] {
			return false
		}
	}
	return true
}

// NonZero 数量大于 0 的颜色，按固定顺序返回
func (p GemPool) NonZero() []GemColor {
	var colors []GemColor
	for _, c := range AllGems {
		if p[c] != 0 {
			colors = append(colors, c)
		}
	}
	return colors
}

// Map 转为以颜色名为 key 的 map，只保留非零项
func (p GemPool) Map() map[string]int {
	m := make(map[string]int)
	for _, c := range AllGems {
		if p[c] != 0 {
			m[c.String()] = p[c]
		}
	}
	return m
}

func (p GemPool) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, GemKinds)
	for _, c := range AllGems {
		m[c.String()] = p[c]
	}
	return json.Marshal(m)
}

func (p *GemPool) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	parsed, err := ParseGemPool(m)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p GemPool) String() string {
	parts := make([]string, 0, GemKinds)
	for _, c := range AllGems {
		if p[c] != 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", c, p[c]))
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}
