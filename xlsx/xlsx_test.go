package xlsx_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bjaus/sheeter"
	"github.com/bjaus/sheeter/xlsx"
)

type person struct {
	Name string `sheet:"0,Name"`
	Age  int64  `sheet:"1,Age"`
}

type tier int

func (t tier) EnumName() string {
	if t == 1 {
		return "GOLD"
	}
	return "BASIC"
}

type customer struct {
	Name    string       `sheet:"0,Customer"`
	Spent   float64      `sheet:"1,Spent"`
	Joined  sheeter.Date `sheet:"2,Joined"`
	Tier    tier         `sheet:"3,Tier"`
	Contact *string      `sheet:"4,Contact"`
}

type sensor struct {
	ID    string `sheet:"0,ID"`
	Level int16  `sheet:"1,Level"`
}

func reopen(t *testing.T, wb *xlsx.Workbook) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestConvertPeople(t *testing.T) {
	t.Parallel()
	wb, err := xlsx.Convert([]person{{Name: "Ana", Age: 30}, {Name: "Ben", Age: 41}}, "People")
	require.NoError(t, err)
	defer wb.Close()

	f := reopen(t, wb)
	assert.Equal(t, []string{"People"}, f.GetSheetList())

	rows, err := f.GetRows("People")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Name", "Age"}, {"Ana", "30"}, {"Ben", "41"}}, rows)

	width, err := f.GetColWidth("People", "A")
	require.NoError(t, err)
	assert.InDelta(t, 6, width, 0.001)
	width, err = f.GetColWidth("People", "B")
	require.NoError(t, err)
	assert.InDelta(t, 5, width, 0.001)

	found := false
	for _, dn := range f.GetDefinedName() {
		if dn.Name == "_xlnm._FilterDatabase" {
			found = true
			assert.Contains(t, dn.RefersTo, "$A$1:$B$3")
		}
	}
	assert.True(t, found, "auto filter defined")
}

func TestConvertKinds(t *testing.T) {
	t.Parallel()
	records := []customer{
		{Name: "Ana", Spent: 12.75, Joined: sheeter.Date{Year: 2023, Month: time.May, Day: 4}, Tier: 1},
	}
	wb, err := xlsx.Convert(records, "Customers")
	require.NoError(t, err)
	defer wb.Close()

	f := reopen(t, wb)
	tests := map[string]struct {
		cell string
		want string
	}{
		"text":         {cell: "A2", want: "Ana"},
		"float":        {cell: "B2", want: "12.75"},
		"date as text": {cell: "C2", want: "2023-05-04"},
		"enum name":    {cell: "D2", want: "GOLD"},
		"nil pointer":  {cell: "E2", want: ""},
		"header":       {cell: "E1", want: "Contact"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := f.GetCellValue("Customers", tt.cell)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertRejectsIneligibleType(t *testing.T) {
	t.Parallel()
	wb, err := xlsx.Convert([]sensor{{ID: "s1", Level: 2}}, "Sensors")
	require.ErrorIs(t, err, sheeter.ErrIneligibleType)
	assert.Nil(t, wb)
}

func TestWorkbookMultipleSheets(t *testing.T) {
	t.Parallel()
	wb := xlsx.New(xlsx.WithPadding(0), xlsx.WithMaxColumnWidth(3))
	defer wb.Close()

	_, err := sheeter.Convert(wb, "First", []person{{Name: "Ana", Age: 30}})
	require.NoError(t, err)
	_, err = sheeter.Convert(wb, "Second", []person{{Name: "Benedict", Age: 41}})
	require.NoError(t, err)
	_, err = sheeter.Convert(wb, "Second", []person{{Name: "Cy"}})
	require.ErrorIs(t, err, sheeter.ErrSink)

	f := reopen(t, wb)
	assert.Equal(t, []string{"First", "Second"}, f.GetSheetList())
	name, err := f.GetCellValue("Second", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Benedict", name)

	width, err := f.GetColWidth("Second", "A")
	require.NoError(t, err)
	assert.InDelta(t, 3, width, 0.001)
}

func TestSheetFilterRange(t *testing.T) {
	t.Parallel()
	wb := xlsx.New()
	defer wb.Close()
	sheet, err := wb.CreateSheet("Data")
	require.NoError(t, err)
	s := sheet.(*xlsx.Sheet)

	tests := map[string]struct {
		firstRow, lastRow, firstCol, lastCol int
		want                                 string
		wantErr                              require.ErrorAssertionFunc
	}{
		"header only": {lastRow: 1, lastCol: 3, want: "A1:C1", wantErr: require.NoError},
		"block":       {firstRow: 1, lastRow: 10, firstCol: 1, lastCol: 28, want: "B2:AB10", wantErr: require.NoError},
		"empty rows":  {lastRow: 0, lastCol: 2, wantErr: require.Error},
		"empty cols":  {lastRow: 2, lastCol: 0, wantErr: require.Error},
		"negative":    {firstRow: -1, lastRow: 2, lastCol: 2, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := s.SetFilterRange(tt.firstRow, tt.lastRow, tt.firstCol, tt.lastCol)
			tt.wantErr(t, err)
			if err == nil {
				assert.Equal(t, tt.want, s.Filter())
			}
		})
	}
}

func TestSaveAs(t *testing.T) {
	t.Parallel()
	wb, err := xlsx.Convert([]person{{Name: "Ana", Age: 30}}, "People")
	require.NoError(t, err)
	defer wb.Close()

	path := filepath.Join(t.TempDir(), "people.xlsx")
	require.NoError(t, wb.SaveAs(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	age, err := f.GetCellValue("People", "B2")
	require.NoError(t, err)
	assert.Equal(t, "30", age)
}

func TestCreateSheetInvalidName(t *testing.T) {
	t.Parallel()
	wb := xlsx.New()
	defer wb.Close()
	_, err := sheeter.Convert(wb, "bad/name", []person{{Name: "Ana"}})
	require.ErrorIs(t, err, sheeter.ErrSink)
}

func TestConvertWithOptions(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	wb, err := xlsx.Convert([]person{{Name: "Benedict", Age: 41}}, "People",
		xlsx.WithPadding(0), xlsx.WithMaxColumnWidth(4), xlsx.WithLogger(logger))
	require.NoError(t, err)
	defer wb.Close()

	f := reopen(t, wb)
	width, err := f.GetColWidth("People", "A")
	require.NoError(t, err)
	assert.InDelta(t, 4, width, 0.001)

	_, err = xlsx.Convert([]sensor{{ID: "s1"}}, "Sensors", xlsx.WithLogger(logger))
	require.ErrorIs(t, err, sheeter.ErrIneligibleType)
	assert.Contains(t, logs.String(), "record type not eligible for export")
}
