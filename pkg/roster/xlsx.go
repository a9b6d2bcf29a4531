package roster

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// readXLSX returns the rows of sheet, or of the active sheet when sheet is
// empty.
func readXLSX(data []byte, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, rosterErrors.NewWithCause(ErrMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
		if sheet == "" && len(sheets) > 0 {
			sheet = sheets[0]
		}
	}

	found := false
	for _, s := range sheets {
		if s == sheet {
			found = true
			break
		}
	}
	if !found {
		return nil, rosterErrors.New(ErrSheetNotFound).
			WithDetail("sheet", sheet).
			WithDetail("available", sheets)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, rosterErrors.NewWithCause(ErrMalformed, err).WithDetail("sheet", sheet)
	}
	return rows, nil
}
