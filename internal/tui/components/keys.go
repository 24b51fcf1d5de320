package components

import "github.com/charmbracelet/bubbles/key"

// ProductModalKeyMap defines key bindings for the product modal
type ProductModalKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Switch key.Binding
	Add    key.Binding
	Escape key.Binding
}

// DefaultProductModalKeyMap returns the default product modal key bindings
func DefaultProductModalKeyMap() ProductModalKeyMap {
	return ProductModalKeyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next option"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "j", "k", "up", "down"),
			key.WithHelp("tab", "size/color"),
		),
		Add: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter", "adicionar à sacola"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// CartDrawerKeyMap defines key bindings for the cart drawer
type CartDrawerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Plus   key.Binding
	Minus  key.Binding
	Remove key.Binding
	Clear  key.Binding
	Close  key.Binding
}

// DefaultCartDrawerKeyMap returns the default cart drawer key bindings
func DefaultCartDrawerKeyMap() CartDrawerKeyMap {
	return CartDrawerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Plus: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more"),
		),
		Minus: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "less"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		Clear: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "limpar sacola"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "c"),
			key.WithHelp("esc", "close"),
		),
	}
}

// FilterKeyMap defines key bindings for the search bar
type FilterKeyMap struct {
	Escape key.Binding
	Enter  key.Binding
}

// DefaultFilterKeyMap returns the default search bar key bindings
func DefaultFilterKeyMap() FilterKeyMap {
	return FilterKeyMap{
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept search"),
		),
	}
}

// Package-level key map instances
var (
	ProductModalKeys = DefaultProductModalKeyMap()
	CartDrawerKeys   = DefaultCartDrawerKeyMap()
	FilterKeys       = DefaultFilterKeyMap()
)
