package report

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/eventreg/internal/models"
	"github.com/thenoetrevino/eventreg/internal/testutil/cli"
)

func TestDashboard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	id := cli.CreateTestEvent(t, db, "Fair", "2026-04-01")
	cli.CreateTestStudent(t, db, "S1", "Lee", "CS")
	cli.RegisterTestStudent(t, db, id, "S1", false)

	output, err := cli.ExecuteCLICommand(t, app, DashboardCmd(), []string{"--json"})
	require.NoError(t, err)

	data := cli.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total_events"])
	assert.Equal(t, float64(1), data["total_students"])
	assert.Equal(t, float64(1), data["total_registrations"])

	output, err = cli.ExecuteCLICommand(t, app, DashboardCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Registrations")
}

func TestUpcoming(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	cli.CreateTestEvent(t, db, "Past", "2026-01-01")
	cli.CreateTestEvent(t, db, "Later", "2026-04-01")
	cli.CreateTestEvent(t, db, "Today", "2026-03-15")

	output, err := cli.ExecuteCLICommand(t, app, UpcomingCmd(), []string{"--json"})
	require.NoError(t, err)

	data := cli.ParseJSON(t, output)["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "Today", data[0].(map[string]interface{})["name"])
	assert.Equal(t, "Later", data[1].(map[string]interface{})["name"])

	output, err = cli.ExecuteCLICommand(t, app, UpcomingCmd(), []string{"--limit", "1", "--json"})
	require.NoError(t, err)
	assert.Len(t, cli.ParseJSON(t, output)["data"].([]interface{}), 1)

	output, err = cli.ExecuteCLICommand(t, app, UpcomingCmd(), nil)
	require.NoError(t, err)
	assert.NotContains(t, output, "Past")
}

func TestAttendance_CSV(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	id := cli.CreateTestEvent(t, db, "Workshop", "2026-04-01")
	for i := 1; i <= 5; i++ {
		sid := "S" + strconv.Itoa(i)
		cli.CreateTestStudent(t, db, sid, "L", "CS")
		cli.RegisterTestStudent(t, db, id, sid, i <= 3)
	}

	path := filepath.Join(t.TempDir(), "attendance.csv")
	output, err := cli.ExecuteCLICommand(t, app, AttendanceCmd(), []string{"--csv", path})
	require.NoError(t, err)
	assert.Contains(t, output, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"event_name,total_registered,total_attended,attendance_rate\nWorkshop,5,3,60.0%\n",
		string(data))

	output, err = cli.ExecuteCLICommand(t, app, AttendanceCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "60.0%")
}

func TestDepartments(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	id := cli.CreateTestEvent(t, db, "Fair", "2026-04-01")
	for i, dept := range []string{"CS", "CS", "CS", "CS", "Math", "Math", "Math", "Bio", "Bio", "Bio"} {
		sid := "S" + strconv.Itoa(i)
		cli.CreateTestStudent(t, db, sid, "L", dept)
		cli.RegisterTestStudent(t, db, id, sid, false)
	}

	output, err := cli.ExecuteCLICommand(t, app, DepartmentsCmd(), []string{"--json"})
	require.NoError(t, err)

	data := cli.ParseJSON(t, output)["data"].([]interface{})
	require.Len(t, data, 3)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "CS", first["department"])
	assert.InDelta(t, 40.0, first["percentage"], 0.001)
}

func TestEventReport(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	id := cli.CreateTestEvent(t, db, "Hackathon", "2026-05-10")
	for i, dept := range []string{"CS", "CS", "Math"} {
		sid := "S" + strconv.Itoa(i+1)
		cli.CreateTestStudent(t, db, sid, "Last"+sid, dept)
		cli.RegisterTestStudent(t, db, id, sid, i != 1)
	}

	t.Run("human", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, EventCmd(), []string{strconv.Itoa(id)})
		require.NoError(t, err)
		assert.Contains(t, output, "Hackathon")
		assert.Contains(t, output, "66.7%")
		assert.Contains(t, output, "LastS2")
	})

	t.Run("json", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, EventCmd(), []string{strconv.Itoa(id), "--json"})
		require.NoError(t, err)

		data := cli.ParseJSON(t, output)["data"].(map[string]interface{})
		assert.Equal(t, float64(3), data["total_registered"])
		assert.Equal(t, float64(2), data["present"])
		assert.Equal(t, float64(1), data["absent"])
		assert.Len(t, data["participants"], 3)
	})

	t.Run("csv participants", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "participants.csv")
		_, err := cli.ExecuteCLICommand(t, app, EventCmd(), []string{strconv.Itoa(id), "--csv", path})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "S2,FirstS2 LastS2,CS,1,absent", lines[2])
	})

	t.Run("missing event", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, EventCmd(), []string{"404"})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
