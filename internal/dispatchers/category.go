package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryGetStarted                    // help, usage, version
	CategoryScripting                     // echo, calc, var
	CategoryUsers                         // user, execute
	CategoryInspect                       // history, complete, ambiguities
	CategoryConfig                        // config
	CategoryTheme                         // theme
	CategorySession                       // quit
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryGetStarted:
		return "get started"
	case CategoryScripting:
		return "variables and arithmetic"
	case CategoryUsers:
		return "users and execution"
	case CategoryInspect:
		return "inspect history and grammar"
	case CategoryConfig:
		return "configure brig"
	case CategoryTheme:
		return "customize appearance"
	case CategorySession:
		return "session"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryGetStarted,
	CategoryScripting,
	CategoryUsers,
	CategoryInspect,
	CategoryConfig,
	CategoryTheme,
	CategorySession,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
