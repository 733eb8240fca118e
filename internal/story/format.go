package story

// Format describes the story file layout. It is printed by `game --format`.
const Format = `A story file is a JSON (.json) or YAML (.yaml, .yml) document.

- Every field of a record must be present unless marked optional.
- Tagged values are written in lower_snake_case, either as a bare tag
  ("always", "no_effect") or as a one-key record holding the fields
  ({"if_stat_higher": {"stat_id": 0, "higher_than": 10}}).
- Ids are any unique numbers you like; they only have to match up.

record Story {
    name: text
    stats: [Stat]
    items: [Item]
    item_slots: [text]
    stages: [Stage]
    entry_stage: stage id
    exit_stage: stage id
}

record Stat {
    id: number
    name: text
    default_value: number
}

record Stage {
    index: number (the stage id)
    name: text
    text: [text]
    options: [Option] (empty only for the exit stage)
}

record Option {
    target_stage: stage id
    text: [text] (at least one line)
    condition: Condition (optional, default always)
    effect: Effect (optional, default no_effect)
}

tagged Condition {
    always
    if_stat_higher { stat_id, higher_than }
    if_stat_lower { stat_id, lower_than }
    if_stat_exact { stat_id, value }
}

tagged Effect {
    no_effect
    set_stat_higher { stat_id, to_add }
    set_stat_lower { stat_id, to_subtract }
    set_stat_exact { stat_id, new_value }
    use_item { item_id }
}

record Item {
    id: number
    name: text
    effect: ItemEffect
}

tagged ItemEffect {
    no_effect
    consumable { on_consume: Effect }
    equippable { slot: text, when_equipped: Effect }
}
`
