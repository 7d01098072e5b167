package bayerr

import (
	"fmt"
	"strings"
)

// List is a list of errors.
type List struct {
	// What describes what kind of errors is this.
	What error

	// Children is the detail errors in this error list.
	Children []error
}

// Error implements error interface.
func (l List) Error() string {
	ss := make([]string, 0, len(l.Children)+1)
	ss = append(ss, l.What.Error()+":")

	for _, e := range l.Children {
		for _, s := range strings.Split(e.Error(), "\n") {
			ss = append(ss, "  "+s)
		}
	}

	return strings.Join(ss, "\n")
}

// Unwrap returns What.
func (l List) Unwrap() error {
	return l.What
}

// ListBuilder collects errors and builds a List.
type ListBuilder struct {
	What     error
	Children []error
}

// Pushf formats an error and appends it as a child.
func (lb *ListBuilder) Pushf(format string, args ...interface{}) {
	lb.Children = append(lb.Children, fmt.Errorf(format, args...))
}

// Build returns the List, or nil if no child was pushed.
func (lb *ListBuilder) Build() error {
	if len(lb.Children) == 0 {
		return nil
	}
	return List{
		What:     lb.What,
		Children: lb.Children,
	}
}
