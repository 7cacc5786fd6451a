package combat

import "fmt"

// Category tags a log entry for presentation. It never drives control flow.
type Category string

const (
	CategoryPlayer  Category = "player"
	CategoryEnemy   Category = "enemy"
	CategoryNeutral Category = "neutral"
)

// Entry is one line of the combat log.
type Entry struct {
	Message  string
	Category Category
}

// Log is an ordered, append-only sequence of entries.
type Log []Entry

func (l *Log) add(cat Category, format string, args ...any) {
	*l = append(*l, Entry{Message: fmt.Sprintf(format, args...), Category: cat})
}

func (l *Log) player(format string, args ...any)  { l.add(CategoryPlayer, format, args...) }
func (l *Log) enemy(format string, args ...any)   { l.add(CategoryEnemy, format, args...) }
func (l *Log) neutral(format string, args ...any) { l.add(CategoryNeutral, format, args...) }

// Messages returns the message text of every entry, in order.
func (l Log) Messages() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.Message
	}
	return out
}
