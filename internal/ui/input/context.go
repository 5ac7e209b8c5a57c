package input

// ModelContext is a snapshot of model state implementing types.Context
type ModelContext struct {
	Searchable bool
	Search     string
	MenuItems  int
	Home       bool
}

func (c *ModelContext) CanSearch() bool {
	return c.Searchable
}

func (c *ModelContext) SearchText() string {
	return c.Search
}

func (c *ModelContext) MenuSize() int {
	return c.MenuItems
}

func (c *ModelContext) OnHome() bool {
	return c.Home
}
