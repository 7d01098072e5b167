package export

import (
	"fmt"
	"io"
	"time"

	"github.com/micahco/dduwash/internal/meta"
	"github.com/micahco/dduwash/lib-bay"
	"github.com/xuri/excelize/v2"
)

const sheetName = "bays"

// maxXlsxRows is the limit of rows in a sheet.
const maxXlsxRows = 100000

func excelPos(x, y int) string {
	pos, err := excelize.CoordinatesToCellName(x+1, y+1)
	if err != nil {
		panic(err)
	}
	return pos
}

var statusColors = map[bay.Status]string{
	bay.StatusEmpty:       "89C923",
	bay.StatusOccupied:    "FF2D00",
	bay.StatusMaintenance: "DDA100",
}

// ToXlsx writes rows as an Excel workbook.
// The times are shown in the location of createdAt.
func ToXlsx(w io.Writer, rows []Row, createdAt time.Time) error {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	if err := xlsx.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	xlsx.SetAppProps(&excelize.AppProperties{
		Application: meta.Name,
	})
	xlsx.SetDocProps(&excelize.DocProperties{
		Created:        createdAt.Format(time.RFC3339),
		Modified:       createdAt.Format(time.RFC3339),
		Creator:        meta.Name,
		LastModifiedBy: meta.Name,
	})

	zone, _ := createdAt.Zone()
	for col, title := range []string{"bay", "status", "status name", "label", fmt.Sprintf("updated at (%s)", zone)} {
		xlsx.SetCellStr(sheetName, excelPos(col, 0), title)
	}

	datefmt := "yyyy-mm-dd hh:mm:ss"

	setValue := func(x, y int, value any, color string, format *string) {
		pos := excelPos(x, y)
		xlsx.SetCellValue(sheetName, pos, value)
		sid, err := xlsx.NewStyle(&excelize.Style{
			CustomNumFmt: format,
			Border:       []excelize.Border{{Type: "bottom", Style: 1, Color: color}},
		})
		if err == nil {
			xlsx.SetCellStyle(sheetName, pos, pos, sid)
		}
	}

	for i, r := range rows {
		if i >= maxXlsxRows {
			break
		}
		y := i + 1

		color, ok := statusColors[r.Status]
		if !ok {
			color = "000000"
		}

		setValue(0, y, r.BayID, color, nil)
		setValue(1, y, int(r.Status), color, nil)
		setValue(2, y, r.Name, color, nil)
		setValue(3, y, r.Label, color, nil)
		setValue(4, y, r.UpdatedAt.In(createdAt.Location()), color, &datefmt)
	}

	if err := xlsx.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	xlsx.SetColWidth(sheetName, "A", "A", 20)
	xlsx.SetColWidth(sheetName, "C", "D", 15)
	xlsx.SetColWidth(sheetName, "E", "E", 20)

	if err := xlsx.AutoFilter(sheetName, "A1:"+excelPos(4, 0), nil); err != nil {
		return err
	}

	return xlsx.Write(w)
}
