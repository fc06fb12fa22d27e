package report

// Emphasis is a presentation hint attached to a cell or line. It is resolved
// to terminal styling only by a Theme.
type Emphasis int

const (
	Plain Emphasis = iota
	Warn
	Error
	// Up marks a newer published version than the installed one.
	Up
	// Down marks a registry "latest" older than what is installed.
	Down
)

func (e Emphasis) String() string {
	switch e {
	case Warn:
		return "warn"
	case Error:
		return "error"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "plain"
	}
}
