package models

// Stat is a named numeric value that conditions read and effects change.
type Stat struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"default_value" yaml:"default_value"`
}

// Item is an inventory entry. Items are validated on load but the runtime
// does not simulate an inventory yet.
type Item struct {
	ID     int        `json:"id" yaml:"id"`
	Name   string     `json:"name" yaml:"name"`
	Effect ItemEffect `json:"effect" yaml:"effect"`
}

// Option is an edge from a stage to TargetStage, shown only while its
// Condition holds.
type Option struct {
	TargetStage int       `json:"target_stage" yaml:"target_stage"`
	Text        []string  `json:"text" yaml:"text"`
	Condition   Condition `json:"condition" yaml:"condition"`
	Effect      Effect    `json:"effect" yaml:"effect"`
}

// Stage is a node of the narrative graph.
type Stage struct {
	Index   int      `json:"index" yaml:"index"`
	Name    string   `json:"name" yaml:"name"`
	Text    []string `json:"text" yaml:"text"`
	Options []Option `json:"options" yaml:"options"`

	// CurrentOption is the 1-based cursor into Options, 0 when nothing is
	// selectable. It is runtime state and never persisted.
	CurrentOption int `json:"-" yaml:"-"`
}

// HasOption reports whether n is a valid 1-based position in Options.
func (s *Stage) HasOption(n int) bool {
	return len(s.Options) > 0 && 0 < n && n <= len(s.Options)
}

// Option returns the option at 1-based position n.
func (s *Stage) Option(n int) (Option, bool) {
	if !s.HasOption(n) {
		return Option{}, false
	}
	return s.Options[n-1], true
}

// SelectedOption returns the option under the cursor.
func (s *Stage) SelectedOption() (Option, bool) {
	return s.Option(s.CurrentOption)
}

// IsTerminal reports whether the stage has no options at all.
func (s *Stage) IsTerminal() bool {
	return len(s.Options) == 0
}

// GameState is a whole story plus the player's position in it.
//
// As decoded from disk, every id is the author's own number. After
// loader.PostProcess every id is a position in the matching slice.
type GameState struct {
	Name       string   `json:"name" yaml:"name"`
	Stats      []Stat   `json:"stats" yaml:"stats"`
	Stages     []Stage  `json:"stages" yaml:"stages"`
	Items      []Item   `json:"items" yaml:"items"`
	ItemSlots  []string `json:"item_slots" yaml:"item_slots"`
	EntryStage int      `json:"entry_stage" yaml:"entry_stage"`
	ExitStage  int      `json:"exit_stage" yaml:"exit_stage"`

	CurrentStage int  `json:"-" yaml:"-"`
	Finished     bool `json:"-" yaml:"-"`
}

// Stage returns a pointer to the stage at position i, or nil.
func (g *GameState) Stage(i int) *Stage {
	if i < 0 || i >= len(g.Stages) {
		return nil
	}
	return &g.Stages[i]
}
