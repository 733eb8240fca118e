package models

import "fmt"

// ConditionKind enumerates the closed set of option conditions.
type ConditionKind int

const (
	CondAlways ConditionKind = iota
	CondIfStatHigher
	CondIfStatLower
	CondIfStatExact
)

func (k ConditionKind) String() string {
	switch k {
	case CondAlways:
		return "always"
	case CondIfStatHigher:
		return "if_stat_higher"
	case CondIfStatLower:
		return "if_stat_lower"
	case CondIfStatExact:
		return "if_stat_exact"
	}
	return fmt.Sprintf("ConditionKind(%d)", int(k))
}

// Condition gates an option's visibility on a stat value. The zero value
// is Always. Value holds higher_than, lower_than or value depending on Kind.
type Condition struct {
	Kind   ConditionKind
	StatID int
	Value  int
}

func Always() Condition { return Condition{Kind: CondAlways} }

func IfStatHigher(statID, higherThan int) Condition {
	return Condition{Kind: CondIfStatHigher, StatID: statID, Value: higherThan}
}

func IfStatLower(statID, lowerThan int) Condition {
	return Condition{Kind: CondIfStatLower, StatID: statID, Value: lowerThan}
}

func IfStatExact(statID, value int) Condition {
	return Condition{Kind: CondIfStatExact, StatID: statID, Value: value}
}

// RefersToStat reports whether StatID is meaningful for this condition.
func (c Condition) RefersToStat() bool {
	switch c.Kind {
	case CondIfStatHigher, CondIfStatLower, CondIfStatExact:
		return true
	case CondAlways:
		return false
	}
	return false
}

// EffectKind enumerates the closed set of option and item effects.
type EffectKind int

const (
	EffNoEffect EffectKind = iota
	EffSetStatHigher
	EffSetStatLower
	EffSetStatExact
	EffUseItem
)

func (k EffectKind) String() string {
	switch k {
	case EffNoEffect:
		return "no_effect"
	case EffSetStatHigher:
		return "set_stat_higher"
	case EffSetStatLower:
		return "set_stat_lower"
	case EffSetStatExact:
		return "set_stat_exact"
	case EffUseItem:
		return "use_item"
	}
	return fmt.Sprintf("EffectKind(%d)", int(k))
}

// Effect is applied when its option is chosen. The zero value is NoEffect.
// Amount holds to_add, to_subtract or new_value depending on Kind.
type Effect struct {
	Kind   EffectKind
	StatID int
	Amount int
	ItemID int
}

func NoEffect() Effect { return Effect{Kind: EffNoEffect} }

func SetStatHigher(statID, toAdd int) Effect {
	return Effect{Kind: EffSetStatHigher, StatID: statID, Amount: toAdd}
}

func SetStatLower(statID, toSubtract int) Effect {
	return Effect{Kind: EffSetStatLower, StatID: statID, Amount: toSubtract}
}

func SetStatExact(statID, newValue int) Effect {
	return Effect{Kind: EffSetStatExact, StatID: statID, Amount: newValue}
}

func UseItem(itemID int) Effect { return Effect{Kind: EffUseItem, ItemID: itemID} }

// RefersToStat reports whether StatID is meaningful for this effect.
func (e Effect) RefersToStat() bool {
	switch e.Kind {
	case EffSetStatHigher, EffSetStatLower, EffSetStatExact:
		return true
	case EffNoEffect, EffUseItem:
		return false
	}
	return false
}

// ItemEffectKind enumerates what an item does.
type ItemEffectKind int

const (
	ItemNoEffect ItemEffectKind = iota
	ItemConsumable
	ItemEquippable
)

func (k ItemEffectKind) String() string {
	switch k {
	case ItemNoEffect:
		return "no_effect"
	case ItemConsumable:
		return "consumable"
	case ItemEquippable:
		return "equippable"
	}
	return fmt.Sprintf("ItemEffectKind(%d)", int(k))
}

// ItemEffect describes an item. Effect is on_consume for consumables and
// when_equipped for equippables.
type ItemEffect struct {
	Kind   ItemEffectKind
	Slot   string
	Effect Effect
}

func Consumable(onConsume Effect) ItemEffect {
	return ItemEffect{Kind: ItemConsumable, Effect: onConsume}
}

func Equippable(slot string, whenEquipped Effect) ItemEffect {
	return ItemEffect{Kind: ItemEquippable, Slot: slot, Effect: whenEquipped}
}
