package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/burnerlist/internal/store"
	"github.com/roach88/burnerlist/internal/task"
	"github.com/roach88/burnerlist/internal/taskdb"
	"github.com/roach88/burnerlist/internal/testutil"
)

// cliHarness runs commands against one on-disk store, sharing a
// deterministic id generator across invocations.
type cliHarness struct {
	t       *testing.T
	db      string
	backend store.Backend
	ids     *testutil.SequentialIDs
}

func newHarness(t *testing.T) *cliHarness {
	t.Helper()
	return &cliHarness{
		t:       t,
		db:      filepath.Join(t.TempDir(), "tasks.db"),
		backend: store.BackendSQLite,
		ids:     testutil.NewSequentialIDs(),
	}
}

// run executes the root command with args and returns stdout.
func (h *cliHarness) run(args ...string) (string, error) {
	h.t.Helper()
	buf := &bytes.Buffer{}
	cmd := newRootCommand(&RootOptions{IDs: h.ids})
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--db", h.db, "--backend", string(h.backend)}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func (h *cliHarness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, "burner %v: %s", args, out)
	return out
}

// listJSON returns the tasks of every rank, in order.
func (h *cliHarness) listJSON() []rankView {
	h.t.Helper()
	out := h.mustRun("--format", "json", "list")
	var resp struct {
		Status string     `json:"status"`
		Data   []rankView `json:"data"`
	}
	require.NoError(h.t, json.Unmarshal([]byte(out), &resp))
	require.Equal(h.t, "ok", resp.Status)
	return resp.Data
}

func rankValues(views []rankView, r task.Rank) []string {
	for _, v := range views {
		if v.Rank == r {
			out := make([]string, len(v.Tasks))
			for i, t := range v.Tasks {
				out[i] = t.Value
			}
			return out
		}
	}
	return nil
}

// populate adds three tasks on top of the seed:
// Primary [seed(1), Ship it(4)], Secondary [Call the plumber(2)], Other [Read a book(3)].
func (h *cliHarness) populate() {
	h.t.Helper()
	h.mustRun("add", "secondary", "Call", "the", "plumber")
	h.mustRun("add", "other", "Read a book")
	h.mustRun("add", "primary", "Ship it")
}

func TestList_FreshStoreShowsSeed(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("list")

	assert.Contains(t, out, taskdb.SeedValue)
	assert.Contains(t, out, "Secondary\n  (empty)")
}

func TestList_Golden(t *testing.T) {
	h := newHarness(t)
	h.populate()

	out := h.mustRun("list")

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "list", []byte(out))
}

func TestList_SingleRank(t *testing.T) {
	h := newHarness(t)
	h.populate()

	out := h.mustRun("list", "other")

	assert.Equal(t, "Other\n  0  00000000-0000-0000-0000-000000000003  Read a book\n", out)
}

func TestAdd_JSON(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("--format", "json", "add", "2", "Call the plumber")

	var resp struct {
		Data taskView `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, testutil.ID(2).String(), resp.Data.ID)
	assert.Equal(t, task.Secondary, resp.Data.Rank)
	assert.Equal(t, 0, resp.Data.Index)
}

func TestAdd_EmptyValue(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("add", "primary", "  ")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "E004")
}

func TestAdd_InvalidRank(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("add", "urgent", "x")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "E003")
}

func TestEdit_KeepsPosition(t *testing.T) {
	h := newHarness(t)
	h.populate()

	h.mustRun("edit", testutil.ID(1).String(), "Welcome")

	assert.Equal(t, []string{"Welcome", "Ship it"}, rankValues(h.listJSON(), task.Primary))
}

func TestEdit_EmptyDeletes(t *testing.T) {
	h := newHarness(t)
	h.populate()

	out := h.mustRun("edit", testutil.ID(4).String())

	assert.Contains(t, out, "Deleted")
	assert.Equal(t, []string{taskdb.SeedValue}, rankValues(h.listJSON(), task.Primary))
}

func TestMove(t *testing.T) {
	h := newHarness(t)
	h.populate()

	out := h.mustRun("move", testutil.ID(2).String(), "primary", "--at", "0")
	assert.Contains(t, out, "Moved 00000000-0000-0000-0000-000000000002 to Primary at 0")

	views := h.listJSON()
	assert.Equal(t, []string{"Call the plumber", taskdb.SeedValue, "Ship it"}, rankValues(views, task.Primary))
	assert.Empty(t, rankValues(views, task.Secondary))
}

func TestMove_Appends(t *testing.T) {
	h := newHarness(t)
	h.populate()

	h.mustRun("move", testutil.ID(1).String(), "primary")

	assert.Equal(t, []string{"Ship it", taskdb.SeedValue}, rankValues(h.listJSON(), task.Primary))
}

func TestDelete(t *testing.T) {
	h := newHarness(t)
	h.populate()

	h.mustRun("delete", testutil.ID(3).String())

	assert.Empty(t, rankValues(h.listJSON(), task.Other))
}

func TestDelete_UnknownID(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("delete", testutil.ID(99).String())

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "E005")
}

func TestDelete_AmbiguousPrefix(t *testing.T) {
	h := newHarness(t)
	h.populate()

	out, err := h.run("delete", "00000000")

	require.Error(t, err)
	assert.Contains(t, out, "E002")
}

func TestBurn_DefaultsToPrimary(t *testing.T) {
	h := newHarness(t)
	h.populate()

	out := h.mustRun("burn")
	assert.Equal(t, "Burned 2 task(s) from Primary\n", out)

	views := h.listJSON()
	assert.Empty(t, rankValues(views, task.Primary))
	assert.Equal(t, []string{"Call the plumber"}, rankValues(views, task.Secondary))
	assert.Equal(t, []string{"Read a book"}, rankValues(views, task.Other))
}

func TestBurn_EmptyStoreStaysEmpty(t *testing.T) {
	h := newHarness(t)
	h.mustRun("burn")

	// An empty saved list is not replaced by the seed.
	views := h.listJSON()
	for _, r := range task.Ranks {
		assert.Empty(t, rankValues(views, r))
	}
}

func TestSwap(t *testing.T) {
	h := newHarness(t)
	h.populate()

	h.mustRun("swap")
	views := h.listJSON()
	assert.Equal(t, []string{"Call the plumber"}, rankValues(views, task.Primary))
	assert.Equal(t, []string{taskdb.SeedValue, "Ship it"}, rankValues(views, task.Secondary))

	h.mustRun("swap", "secondary", "other")
	views = h.listJSON()
	assert.Equal(t, []string{"Read a book"}, rankValues(views, task.Secondary))
	assert.Equal(t, []string{taskdb.SeedValue, "Ship it"}, rankValues(views, task.Other))
}

func TestSwap_OneArgRejected(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("swap", "primary")

	require.Error(t, err)
}

func TestExportImport(t *testing.T) {
	tests := []struct {
		name string
		as   string
		file string
	}{
		{"json", "json", "tasks.json"},
		{"yaml", "yaml", "tasks.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newHarness(t)
			src.populate()
			path := filepath.Join(t.TempDir(), tt.file)

			src.mustRun("export", "--as", tt.as, "-o", path)

			dst := newHarness(t)
			out := dst.mustRun("import", path)
			assert.Contains(t, out, "Imported 4 task(s)")
			assert.Equal(t, src.listJSON(), dst.listJSON())
		})
	}
}

func TestExport_Stdout(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("export")

	assert.JSONEq(t,
		`{"tasks":[{"id":"00000000-0000-0000-0000-000000000001","rank":"Primary","value":"`+taskdb.SeedValue+`"}]}`,
		out)
}

func TestImport_InvalidLeavesListUntouched(t *testing.T) {
	h := newHarness(t)
	h.populate()
	before := h.listJSON()
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tasks":[{"id":"x","rank":"Urgent","value":"y"}]}`), 0o644))

	out, err := h.run("import", path)

	require.Error(t, err)
	assert.Contains(t, out, "E008")
	assert.Equal(t, before, h.listJSON())
}

func TestImport_MissingFile(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("import", filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Contains(t, out, "E005")
}

func TestInspect(t *testing.T) {
	h := newHarness(t)
	h.populate()

	out := h.mustRun("inspect")

	assert.Contains(t, out, "4 task(s)")
	assert.Contains(t, out, "Read a book")
	assert.Contains(t, out, "digest ")
	assert.Contains(t, out, "indices consistent")
}

func TestStats(t *testing.T) {
	h := newHarness(t)
	h.populate()

	out := h.mustRun("stats")

	assert.Contains(t, out, `burner_tasks{rank="Primary"} 2`)
	assert.Contains(t, out, `burner_tasks{rank="Secondary"} 1`)
	assert.Contains(t, out, `burner_tasks{rank="Other"} 1`)
}

func TestBackends(t *testing.T) {
	for _, backend := range store.ValidBackends {
		t.Run(string(backend), func(t *testing.T) {
			h := newHarness(t)
			h.backend = backend
			h.db = filepath.Join(t.TempDir(), "data")

			h.populate()
			h.mustRun("swap")

			views := h.listJSON()
			assert.Equal(t, []string{"Call the plumber"}, rankValues(views, task.Primary))
			assert.Equal(t, []string{taskdb.SeedValue, "Ship it"}, rankValues(views, task.Secondary))
		})
	}
}

func TestKeysAreIndependentLists(t *testing.T) {
	h := newHarness(t)
	h.mustRun("--key", "work", "add", "primary", "Work item")

	out := h.mustRun("list", "primary")

	assert.NotContains(t, out, "Work item")
}
