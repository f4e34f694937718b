package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	IconCheck  = "\uf00c" // check
	IconX      = "\uf00d" // x
	IconInfo   = "\uf05a" // info
	IconConfig = "\ue615" // config
	IconFile   = "\uf15b" // file
)
