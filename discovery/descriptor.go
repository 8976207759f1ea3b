package discovery

// Category is the coarse classification of one runnable unit.
type Category string

const (
	CategoryWeb    Category = "web"
	CategoryCli    Category = "cli"
	CategoryTui    Category = "tui"
	CategoryGui    Category = "gui"
	CategoryScript Category = "script"
)

func (it Category) Label() string {
	switch it {
	case CategoryWeb:
		return "web"
	case CategoryCli:
		return "command-line"
	case CategoryTui:
		return "terminal-ui"
	case CategoryGui:
		return "graphical"
	default:
		return "script"
	}
}

func ValidCategory(candidate string) bool {
	switch Category(candidate) {
	case CategoryWeb, CategoryCli, CategoryTui, CategoryGui, CategoryScript:
		return true
	}
	return false
}

// Descriptor describes one discoverable runnable unit. Descriptors are
// built fresh on every scan and never mutated afterwards.
type Descriptor struct {
	Name        string   `json:"name"`
	Path        string   `json:"path"`
	Category    Category `json:"category"`
	Entry       string   `json:"entry"`
	Description string   `json:"description"`
	Command     string   `json:"command"`
	Port        int      `json:"port,omitempty"`
	Fingerprint string   `json:"fingerprint,omitempty"`
}

func (it Descriptor) HasPort() bool {
	return it.Port > 0
}
