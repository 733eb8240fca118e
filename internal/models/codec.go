package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tagged values are stored the way the story format expects them: a bare
// tag string for variants without fields, or a mapping with exactly one
// key (the tag) whose value holds the fields.

type variant struct {
	tag  string
	body func(v any) error
}

func (v variant) decode(dst any) error {
	if v.body == nil {
		return fmt.Errorf("%q requires fields", v.tag)
	}
	return v.body(dst)
}

func jsonVariant(data []byte) (variant, error) {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		return variant{tag: tag}, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return variant{}, fmt.Errorf("expected a tag or a single-key object: %w", err)
	}
	if len(m) != 1 {
		return variant{}, fmt.Errorf("expected exactly one tag, got %d", len(m))
	}
	var v variant
	for tag, raw := range m {
		v.tag = tag
		if string(raw) != "null" {
			v.body = func(dst any) error { return json.Unmarshal(raw, dst) }
		}
	}
	return v, nil
}

func yamlVariant(node *yaml.Node) (variant, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return variant{tag: node.Value}, nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return variant{}, fmt.Errorf("line %d: expected exactly one tag, got %d", node.Line, len(node.Content)/2)
		}
		key, val := node.Content[0], node.Content[1]
		v := variant{tag: key.Value}
		if val.Tag != "!!null" {
			v.body = val.Decode
		}
		return v, nil
	}
	return variant{}, fmt.Errorf("line %d: expected a tag or a single-key mapping", node.Line)
}

func marshalJSONVariant(tag string, body any) ([]byte, error) {
	if body == nil {
		return json.Marshal(tag)
	}
	return json.Marshal(map[string]any{tag: body})
}

func marshalYAMLVariant(tag string, body any) (any, error) {
	if body == nil {
		return tag, nil
	}
	return map[string]any{tag: body}, nil
}

type statHigherBody struct {
	StatID     int `json:"stat_id" yaml:"stat_id"`
	HigherThan int `json:"higher_than" yaml:"higher_than"`
}

type statLowerBody struct {
	StatID    int `json:"stat_id" yaml:"stat_id"`
	LowerThan int `json:"lower_than" yaml:"lower_than"`
}

type statExactBody struct {
	StatID int `json:"stat_id" yaml:"stat_id"`
	Value  int `json:"value" yaml:"value"`
}

func conditionFromVariant(v variant) (Condition, error) {
	switch v.tag {
	case "always":
		return Always(), nil
	case "if_stat_higher":
		var b statHigherBody
		if err := v.decode(&b); err != nil {
			return Condition{}, err
		}
		return IfStatHigher(b.StatID, b.HigherThan), nil
	case "if_stat_lower":
		var b statLowerBody
		if err := v.decode(&b); err != nil {
			return Condition{}, err
		}
		return IfStatLower(b.StatID, b.LowerThan), nil
	case "if_stat_exact":
		var b statExactBody
		if err := v.decode(&b); err != nil {
			return Condition{}, err
		}
		return IfStatExact(b.StatID, b.Value), nil
	}
	return Condition{}, fmt.Errorf("unknown condition %q", v.tag)
}

func (c Condition) body() any {
	switch c.Kind {
	case CondAlways:
		return nil
	case CondIfStatHigher:
		return statHigherBody{StatID: c.StatID, HigherThan: c.Value}
	case CondIfStatLower:
		return statLowerBody{StatID: c.StatID, LowerThan: c.Value}
	case CondIfStatExact:
		return statExactBody{StatID: c.StatID, Value: c.Value}
	}
	return nil
}

func (c Condition) MarshalJSON() ([]byte, error) {
	return marshalJSONVariant(c.Kind.String(), c.body())
}

func (c *Condition) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := jsonVariant(data)
	if err != nil {
		return fmt.Errorf("condition: %w", err)
	}
	*c, err = conditionFromVariant(v)
	return err
}

func (c Condition) MarshalYAML() (any, error) {
	return marshalYAMLVariant(c.Kind.String(), c.body())
}

func (c *Condition) UnmarshalYAML(node *yaml.Node) error {
	v, err := yamlVariant(node)
	if err != nil {
		return fmt.Errorf("condition: %w", err)
	}
	*c, err = conditionFromVariant(v)
	return err
}

type setHigherBody struct {
	StatID int `json:"stat_id" yaml:"stat_id"`
	ToAdd  int `json:"to_add" yaml:"to_add"`
}

type setLowerBody struct {
	StatID     int `json:"stat_id" yaml:"stat_id"`
	ToSubtract int `json:"to_subtract" yaml:"to_subtract"`
}

type setExactBody struct {
	StatID   int `json:"stat_id" yaml:"stat_id"`
	NewValue int `json:"new_value" yaml:"new_value"`
}

type useItemBody struct {
	ItemID int `json:"item_id" yaml:"item_id"`
}

func effectFromVariant(v variant) (Effect, error) {
	switch v.tag {
	case "no_effect":
		return NoEffect(), nil
	case "set_stat_higher":
		var b setHigherBody
		if err := v.decode(&b); err != nil {
			return Effect{}, err
		}
		return SetStatHigher(b.StatID, b.ToAdd), nil
	case "set_stat_lower":
		var b setLowerBody
		if err := v.decode(&b); err != nil {
			return Effect{}, err
		}
		return SetStatLower(b.StatID, b.ToSubtract), nil
	case "set_stat_exact":
		var b setExactBody
		if err := v.decode(&b); err != nil {
			return Effect{}, err
		}
		return SetStatExact(b.StatID, b.NewValue), nil
	case "use_item":
		var b useItemBody
		if err := v.decode(&b); err != nil {
			return Effect{}, err
		}
		return UseItem(b.ItemID), nil
	}
	return Effect{}, fmt.Errorf("unknown effect %q", v.tag)
}

func (e Effect) body() any {
	switch e.Kind {
	case EffNoEffect:
		return nil
	case EffSetStatHigher:
		return setHigherBody{StatID: e.StatID, ToAdd: e.Amount}
	case EffSetStatLower:
		return setLowerBody{StatID: e.StatID, ToSubtract: e.Amount}
	case EffSetStatExact:
		return setExactBody{StatID: e.StatID, NewValue: e.Amount}
	case EffUseItem:
		return useItemBody{ItemID: e.ItemID}
	}
	return nil
}

func (e Effect) MarshalJSON() ([]byte, error) {
	return marshalJSONVariant(e.Kind.String(), e.body())
}

func (e *Effect) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := jsonVariant(data)
	if err != nil {
		return fmt.Errorf("effect: %w", err)
	}
	*e, err = effectFromVariant(v)
	return err
}

func (e Effect) MarshalYAML() (any, error) {
	return marshalYAMLVariant(e.Kind.String(), e.body())
}

func (e *Effect) UnmarshalYAML(node *yaml.Node) error {
	v, err := yamlVariant(node)
	if err != nil {
		return fmt.Errorf("effect: %w", err)
	}
	*e, err = effectFromVariant(v)
	return err
}

type consumableBody struct {
	OnConsume Effect `json:"on_consume" yaml:"on_consume"`
}

type equippableBody struct {
	Slot         string `json:"slot" yaml:"slot"`
	WhenEquipped Effect `json:"when_equipped" yaml:"when_equipped"`
}

func itemEffectFromVariant(v variant) (ItemEffect, error) {
	switch v.tag {
	case "no_effect":
		return ItemEffect{Kind: ItemNoEffect}, nil
	case "consumable":
		var b consumableBody
		if err := v.decode(&b); err != nil {
			return ItemEffect{}, err
		}
		return Consumable(b.OnConsume), nil
	case "equippable":
		var b equippableBody
		if err := v.decode(&b); err != nil {
			return ItemEffect{}, err
		}
		return Equippable(b.Slot, b.WhenEquipped), nil
	}
	return ItemEffect{}, fmt.Errorf("unknown item effect %q", v.tag)
}

func (ie ItemEffect) body() any {
	switch ie.Kind {
	case ItemNoEffect:
		return nil
	case ItemConsumable:
		return consumableBody{OnConsume: ie.Effect}
	case ItemEquippable:
		return equippableBody{Slot: ie.Slot, WhenEquipped: ie.Effect}
	}
	return nil
}

func (ie ItemEffect) MarshalJSON() ([]byte, error) {
	return marshalJSONVariant(ie.Kind.String(), ie.body())
}

func (ie *ItemEffect) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := jsonVariant(data)
	if err != nil {
		return fmt.Errorf("item effect: %w", err)
	}
	*ie, err = itemEffectFromVariant(v)
	return err
}

func (ie ItemEffect) MarshalYAML() (any, error) {
	return marshalYAMLVariant(ie.Kind.String(), ie.body())
}

func (ie *ItemEffect) UnmarshalYAML(node *yaml.Node) error {
	v, err := yamlVariant(node)
	if err != nil {
		return fmt.Errorf("item effect: %w", err)
	}
	*ie, err = itemEffectFromVariant(v)
	return err
}
