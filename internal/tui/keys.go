package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	NextDay    key.Binding
	PrevDay    key.Binding
	Edit       key.Binding
	Role       key.Binding
	AddSet     key.Binding
	RemoveSet  key.Binding
	Notes      key.Binding
	AddEx      key.Binding
	Save       key.Binding
	Unit       key.Binding
	Workout    key.Binding
	WorkoutRst key.Binding
	Rest       key.Binding
	RestReset  key.Binding
	RestExtend key.Binding
	RestPreset key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev field")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next field")),
		NextDay:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next day")),
		PrevDay:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev day")),
		Edit:       key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Role:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "set type")),
		AddSet:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add set")),
		RemoveSet:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete set")),
		Notes:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notes")),
		AddEx:      key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add exercise")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s", "S"), key.WithHelp("S", "save")),
		Unit:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "kg/lb")),
		Workout:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "workout timer")),
		WorkoutRst: key.NewBinding(key.WithKeys("W"), key.WithHelp("W", "reset workout")),
		Rest:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "rest timer")),
		RestReset:  key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "reset rest")),
		RestExtend: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "extend rest")),
		RestPreset: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "rest preset")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextDay, k.Edit, k.Role, k.AddSet, k.RemoveSet, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.NextDay, k.PrevDay},
		{k.Edit, k.Role, k.AddSet, k.RemoveSet, k.Notes, k.AddEx, k.Save, k.Unit},
		{k.Workout, k.WorkoutRst, k.Rest, k.RestReset, k.RestExtend, k.RestPreset},
		{k.Help, k.Quit},
	}
}
