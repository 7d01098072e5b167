package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

func ToCSV(w io.Writer, rows []Row) error {
	c := csv.NewWriter(w)

	err := c.Write([]string{"bay_id", "status", "status_name", "label", "updated_at"})
	if err != nil {
		return err
	}

	for _, r := range rows {
		err := c.Write([]string{
			r.BayID,
			strconv.Itoa(int(r.Status)),
			r.Name,
			r.Label,
			r.UpdatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return err
		}
	}

	c.Flush()

	return c.Error()
}
