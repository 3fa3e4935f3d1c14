package matcher

import "fmt"

// Schedule is a named cron expression.
type Schedule struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
}

// String returns the string representation of the Schedule.
func (s Schedule) String() string {
	return fmt.Sprintf("%s [%s]", s.Name, s.Expression)
}
