package export

import (
	"fmt"
	"io"
	"strings"
	"time"
)

var ltsvEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

// ToLTSV writes a line per row in the Labeled Tab-separated Values format.
func ToLTSV(w io.Writer, rows []Row) error {
	for _, r := range rows {
		_, err := fmt.Fprintf(
			w,
			"bay_id:%s\tstatus:%d\tstatus_name:%s\tupdated_at:%s",
			ltsvEscaper.Replace(r.BayID),
			r.Status,
			r.Name,
			r.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return err
		}

		if r.Label != "" {
			if _, err := fmt.Fprintf(w, "\tlabel:%s", ltsvEscaper.Replace(r.Label)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}
