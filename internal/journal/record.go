package journal

import (
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Record is a line in the journal.
type Record struct {
	Time    time.Time
	Status  Status
	Latency time.Duration
	Target  string
	Message string
	Extra   map[string]interface{}
}

func latencyMillis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

// MarshalJSON encodes the record as a flat object.
// Extra values are placed next to the fixed keys, and never overwrite them.
func (r Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(r.Extra)+5)
	for k, v := range r.Extra {
		m[k] = v
	}

	m["time"] = r.Time.Format(time.RFC3339)
	m["status"] = r.Status
	m["latency"] = latencyMillis(r.Latency)
	m["target"] = r.Target
	m["message"] = r.Message

	return json.Marshal(m)
}

func escapeMessage(s string) string {
	for _, x := range []struct {
		From string
		To   string
	}{
		{`\`, `\\`},
		{"\t", `\t`},
		{"\n", `\n`},
	} {
		s = strings.ReplaceAll(s, x.From, x.To)
	}
	return s
}

// String formats the record as a tab separated line for humans.
func (r Record) String() string {
	cols := []string{
		r.Time.Format(time.RFC3339),
		r.Status.String(),
		strconv.FormatFloat(latencyMillis(r.Latency), 'f', 3, 64),
		r.Target,
		escapeMessage(r.Message),
	}

	if len(r.Extra) > 0 {
		if b, err := json.Marshal(r.Extra); err == nil {
			cols = append(cols, string(b))
		}
	}

	return strings.Join(cols, "\t")
}
