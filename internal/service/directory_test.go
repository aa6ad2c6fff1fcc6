package service_test

import (
	"bytes"
	"context"
	"testing"

	"alumni_portal/internal/domain"
	"alumni_portal/internal/service"
	"alumni_portal/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func seedAlumni(t *testing.T, db *gorm.DB, rows ...domain.Alumni) {
	t.Helper()
	for i := range rows {
		if rows[i].PasswordHash == "" {
			rows[i].PasswordHash = "x"
		}
		require.NoError(t, db.Create(&rows[i]).Error)
	}
}

func names(alumni []domain.Alumni) []string {
	out := make([]string, len(alumni))
	for i, a := range alumni {
		out[i] = a.Name
	}
	return out
}

func TestParseFilters(t *testing.T) {
	f, err := service.ParseFilters("as", " 2021 ", "CS", "")
	require.NoError(t, err)
	assert.Equal(t, service.Filters{Text: "as", Year: 2021, Department: "CS"}, f)

	for _, year := range []string{"twenty", "0", "-2021"} {
		_, err = service.ParseFilters("", year, "", "")
		assert.ErrorIs(t, err, service.ErrInvalidYear, year)
	}
}

func TestDirectorySearch(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	seedAlumni(t, db,
		domain.Alumni{Name: "Asha", GraduationYear: 2020, Department: "CS", Company: "Infosys", CurrentRole: "Engineer", Industry: "IT"},
		domain.Alumni{Name: "Ravi", GraduationYear: 2021, Department: "EE", Company: "Tata Power", CurrentRole: "Analyst", Industry: "Energy"},
	)
	svc := service.NewDirectoryService(db)

	tests := []struct {
		name    string
		filters service.Filters
		want    []string
	}{
		{"no filters", service.Filters{}, []string{"Asha", "Ravi"}},
		{"text", service.Filters{Text: "as"}, []string{"Asha"}},
		{"text is case-insensitive", service.Filters{Text: "ASH"}, []string{"Asha"}},
		{"text matches company", service.Filters{Text: "tata"}, []string{"Ravi"}},
		{"text matches role", service.Filters{Text: "engin"}, []string{"Asha"}},
		{"year", service.Filters{Year: 2021}, []string{"Ravi"}},
		{"department", service.Filters{Department: "CS"}, []string{"Asha"}},
		{"department is exact", service.Filters{Department: "cs"}, []string{}},
		{"industry", service.Filters{Industry: "Energy"}, []string{"Ravi"}},
		{"impossible conjunction", service.Filters{Text: "as", Year: 2021}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(ctx, tt.filters)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}

	total, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestDirectorySearchTextIsLiteral(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	seedAlumni(t, db,
		domain.Alumni{Name: "Asha", Company: "Infosys", CurrentRole: "Engineer"},
		domain.Alumni{Name: "Ravi", Company: "100% Solar", CurrentRole: "Field_Lead!"},
	)
	svc := service.NewDirectoryService(db)

	for text, want := range map[string][]string{
		"%":    {"Ravi"},
		"_":    {"Ravi"},
		"!":    {"Ravi"},
		"0% s": {"Ravi"},
		"d_l":  {"Ravi"},
		"a_h":  {},
		"i%s":  {},
		"info": {"Asha"},
	} {
		got, err := svc.Search(ctx, service.Filters{Text: text})
		require.NoError(t, err)
		assert.Equal(t, want, names(got), text)
	}
}

func TestDirectoryExport(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	seedAlumni(t, db,
		domain.Alumni{Name: "Asha", GraduationYear: 2020, Department: "CS", CurrentRole: "Engineer", Company: "Infosys",
			Location: "Pune", Industry: "IT", Email: "asha@example.com", LinkedInURL: "https://linkedin.com/in/asha"},
		domain.Alumni{Name: "Ravi", GraduationYear: 2021, Department: "EE", CurrentRole: "Analyst", Company: "Tata Power",
			Location: "Mumbai", Industry: "Energy", Email: "ravi@example.com"},
		domain.Alumni{Name: "Sasha", GraduationYear: 2020, Department: "CS", CurrentRole: "Designer", Company: "Zoho",
			Location: "Chennai", Industry: "IT"},
	)
	svc := service.NewDirectoryService(db)

	data, err := svc.Export(ctx, service.Filters{Text: "AS", Year: 2020})
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{service.ExportSheet}, book.GetSheetList())
	rows, err := book.GetRows(service.ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, service.ExportHeaders, rows[0])
	assert.Equal(t, []string{"1", "Asha", "CS", "2020", "Engineer", "Infosys", "Pune", "IT", "asha@example.com", "https://linkedin.com/in/asha"}, rows[1])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "Sasha", rows[2][1])

	// Same filters, same dataset: same rows in the same order
	again, err := svc.Export(ctx, service.Filters{Text: "AS", Year: 2020})
	require.NoError(t, err)
	book2, err := excelize.OpenReader(bytes.NewReader(again))
	require.NoError(t, err)
	defer book2.Close()
	rows2, err := book2.GetRows(service.ExportSheet)
	require.NoError(t, err)
	assert.Equal(t, rows, rows2)
}

func TestDirectoryExportEmpty(t *testing.T) {
	db := testutil.NewDB(t)
	data, err := service.NewDirectoryService(db).Export(context.Background(), service.Filters{Text: "nobody"})
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows(service.ExportSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{service.ExportHeaders}, rows)
}
