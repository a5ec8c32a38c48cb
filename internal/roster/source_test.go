package roster

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/eventreg/internal/models"
)

func TestCSVSource_ReadsHeaderAndRows(t *testing.T) {
	csvContent := `student_id,first_name,last_name,department,year_level,email
2021-001,Ada,Lovelace,CS,3,ada@example.edu
2021-002,Alan,Turing,Math,2,`

	src, err := NewCSVSource(strings.NewReader(csvContent))
	require.NoError(t, err)

	assert.Equal(t, []string{"student_id", "first_name", "last_name", "department", "year_level", "email"}, src.Columns())

	records, err := src.Records()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2021-001", records[0]["student_id"])
	assert.Equal(t, "ada@example.edu", records[0]["email"])
	assert.Equal(t, "", records[1]["email"])
}

func TestCSVSource_NormalizesHeader(t *testing.T) {
	csvContent := "\ufeff Student_ID ,First_Name,LAST_NAME,Department,Year_Level\nS1,A,B,CS,1"

	src, err := NewCSVSource(strings.NewReader(csvContent))
	require.NoError(t, err)

	assert.NoError(t, CheckColumns(src))
	records, _ := src.Records()
	assert.Equal(t, "S1", records[0]["student_id"])
}

func TestCSVSource_Empty(t *testing.T) {
	src, err := NewCSVSource(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, src.Columns())

	err = CheckColumns(src)
	assert.ErrorIs(t, err, models.ErrSchemaMismatch)
}

func TestCSVSource_HeaderOnly(t *testing.T) {
	src, err := NewCSVSource(strings.NewReader("Student_ID,First_Name,Last_Name,Department,Year_Level\n"))
	require.NoError(t, err)

	assert.NoError(t, CheckColumns(src))
	records, err := src.Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCSVSource_RaggedRows(t *testing.T) {
	csvContent := `student_id,first_name,last_name,department,year_level
S1,A,B,CS`

	_, err := NewCSVSource(strings.NewReader(csvContent))
	assert.Error(t, err)
}

func TestCheckColumns_ListsMissing(t *testing.T) {
	src := NewRecordSource([]string{"student_id", "first_name", "email"}, nil)

	err := CheckColumns(src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrSchemaMismatch))
	assert.Contains(t, err.Error(), "last_name, department, year_level")
}

func TestCheckColumns_EmailOptional(t *testing.T) {
	src := NewRecordSource(RequiredColumns, nil)
	assert.NoError(t, CheckColumns(src))
}

func TestParseStudent(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		s, err := ParseStudent(map[string]string{
			"student_id": " S1 ", "first_name": "Ada", "last_name": "Lovelace",
			"department": "CS", "year_level": "3", "email": "ada@example.edu",
		}, 2)
		require.NoError(t, err)
		assert.Equal(t, "S1", s.ID)
		assert.Equal(t, 3, s.YearLevel)
		assert.Equal(t, "ada@example.edu", s.Email)
	})

	t.Run("spreadsheet float year", func(t *testing.T) {
		s, err := ParseStudent(map[string]string{
			"student_id": "S2", "first_name": "A", "last_name": "B", "department": "CS", "year_level": "4.0",
		}, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, s.YearLevel)
	})

	t.Run("fractional year rejected", func(t *testing.T) {
		_, err := ParseStudent(map[string]string{
			"student_id": "S3", "first_name": "A", "last_name": "B", "department": "CS", "year_level": "2.5",
		}, 4)
		assert.ErrorIs(t, err, ErrInvalidYearLevel)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := ParseStudent(map[string]string{"first_name": "A", "last_name": "B", "year_level": "1"}, 5)
		assert.ErrorIs(t, err, ErrEmptyStudentID)
		assert.Contains(t, err.Error(), "row 5")
	})

	t.Run("missing names", func(t *testing.T) {
		_, err := ParseStudent(map[string]string{"student_id": "S4", "year_level": "1"}, 6)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("missing department", func(t *testing.T) {
		_, err := ParseStudent(map[string]string{
			"student_id": "S5", "first_name": "A", "last_name": "B", "department": "  ", "year_level": "1",
		}, 7)
		assert.ErrorIs(t, err, ErrEmptyDepartment)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
		assert.Contains(t, err.Error(), "row 7")
	})
}

func TestParseStudent_YearLevelBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{raw: "1", want: 1, ok: true},
		{raw: " 5 ", want: 5, ok: true},
		{raw: "2.0", want: 2, ok: true},
		{raw: "2147483647", want: 2147483647, ok: true},
		{raw: "0"},
		{raw: "-3"},
		{raw: "0.0"},
		{raw: "2147483648"},
		{raw: "1e30"},
		{raw: "-1e30"},
		{raw: "Inf"},
		{raw: "NaN"},
		{raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			s, err := ParseStudent(map[string]string{
				"student_id": "S1", "first_name": "A", "last_name": "B", "department": "CS", "year_level": tt.raw,
			}, 2)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidYearLevel)
				assert.ErrorIs(t, err, models.ErrInvalidInput)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.YearLevel)
		})
	}
}

func TestNewRecordSource_NormalizesKeys(t *testing.T) {
	src := NewRecordSource(
		[]string{"Student_ID"},
		[]map[string]string{{"Student_ID": "S1"}},
	)
	records, err := src.Records()
	require.NoError(t, err)
	assert.Equal(t, []string{"student_id"}, src.Columns())
	assert.Equal(t, "S1", records[0]["student_id"])
}
