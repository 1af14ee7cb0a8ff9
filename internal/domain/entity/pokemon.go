// Package entity 提供领域实体定义
package entity

// NamedRef 目录服务中的命名资源引用
type NamedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TypeSlot 属性槽位，Slot 决定展示顺序
type TypeSlot struct {
	Slot int      `json:"slot"`
	Type NamedRef `json:"type"`
}

// AbilitySlot 特性槽位
type AbilitySlot struct {
	Slot     int      `json:"slot"`
	IsHidden bool     `json:"is_hidden"`
	Ability  NamedRef `json:"ability"`
}

// StatValue 单项种族值
type StatValue struct {
	BaseStat int      `json:"base_stat"`
	Stat     NamedRef `json:"stat"`
}

// PokemonRecord 目录服务返回的原始宝可梦记录
// 获取后不再修改，仅在缓存条目生命周期内持有
type PokemonRecord struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	BaseExperience int           `json:"base_experience"`
	Types          []TypeSlot    `json:"types"`
	Abilities      []AbilitySlot `json:"abilities"`
	Stats          []StatValue   `json:"stats"`
}

// FlavorText 按语言区分的描述文本
type FlavorText struct {
	FlavorText string   `json:"flavor_text"`
	Language   NamedRef `json:"language"`
}

// SpeciesRecord 目录服务返回的原始物种记录
type SpeciesRecord struct {
	Name              string       `json:"name"`
	IsLegendary       bool         `json:"is_legendary"`
	IsMythical        bool         `json:"is_mythical"`
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
}

// BaseStats 六项种族值的扁平投影
type BaseStats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// Sum 返回六项种族值之和
func (s BaseStats) Sum() int {
	return s.HP + s.Attack + s.Defense + s.SpecialAttack + s.SpecialDefense + s.Speed
}

// SimplifiedPokemon 宝可梦与物种记录合并后的扁平投影
// Total 在每次派生时重新计算，不单独存储
type SimplifiedPokemon struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Height         int       `json:"height"`
	Weight         int       `json:"weight"`
	BaseExperience int       `json:"base_experience"`
	Stats          BaseStats `json:"stats"`
	Total          int       `json:"total"`
	Types          []string  `json:"types"`
	Abilities      []string  `json:"abilities"`
	IsLegendary    bool      `json:"is_legendary"`
	IsMythical     bool      `json:"is_mythical"`
	Description    string    `json:"description"`
}

// PagedNames 目录服务分页名称列表
type PagedNames struct {
	Count    int        `json:"count"`
	Next     string     `json:"next"`
	Previous string     `json:"previous"`
	Results  []NamedRef `json:"results"`
}
