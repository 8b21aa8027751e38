package system

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/config"
	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/models"
	"github.com/julianstephens/imaan/internal/storage"
)

var fixedNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

// newContext builds a context for dataPath without touching storage
func newContext(t *testing.T, dataPath string) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.New(dataPath)
	t.Cleanup(func() { store.Close() })

	cfg := config.DefaultConfig()
	cfg.General.Timezone = "UTC"

	var out bytes.Buffer
	return &cli.Context{
		Store:      store,
		Config:     cfg,
		ConfigPath: filepath.Join(filepath.Dir(dataPath), "config.toml"),
		Out:        &out,
		Now:        func() time.Time { return fixedNow },
	}, &out
}

func setupTestContext(t *testing.T, name string) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	ctx, out := newContext(t, filepath.Join(t.TempDir(), name))
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	out.Reset()
	return ctx, out
}

func TestInitCmd(t *testing.T) {
	for _, name := range []string{"imaan.json", "imaan.db"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			ctx, out := newContext(t, filepath.Join(dir, name))

			if err := (&InitCmd{}).Run(ctx); err != nil {
				t.Fatalf("init failed: %v", err)
			}
			if !strings.Contains(out.String(), "Initialized imaan storage") {
				t.Errorf("output = %q", out.String())
			}
			if _, err := os.Stat(ctx.ConfigPath); err != nil {
				t.Errorf("default config not written: %v", err)
			}

			r := ctx.Tracker.Record()
			if r.Date != "2026-03-10" || r.ImaanLevel != constants.DefaultImaanLevel {
				t.Errorf("initial record = %+v", r)
			}
			if _, err := ctx.Store.Get(constants.StorageNamespace); err != nil {
				t.Errorf("initial record not persisted: %v", err)
			}

			err := (&InitCmd{}).Run(ctx)
			if err == nil || !strings.Contains(err.Error(), "already initialized") {
				t.Errorf("second init error = %v, want already initialized", err)
			}
		})
	}
}

func TestInitCmd_Force(t *testing.T) {
	ctx, out := setupTestContext(t, "imaan.json")
	ctx.Tracker.SetImaanLevel(9)
	ctx.Tracker.AddGoodDeed("fed the cat")

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
	if !strings.Contains(out.String(), "Deleted existing data") {
		t.Errorf("output = %q", out.String())
	}

	r := ctx.Tracker.Record()
	if r.ImaanLevel != constants.DefaultImaanLevel || len(r.GoodDeeds) != 0 {
		t.Errorf("record after reset = %+v", r)
	}

	backups, err := os.ReadDir(filepath.Join(filepath.Dir(ctx.Store.GetConfigPath()), constants.BackupDirName))
	if err != nil || len(backups) == 0 {
		t.Errorf("expected a backup of the wiped data, err = %v", err)
	}
}

func TestStatusCmd(t *testing.T) {
	ctx, out := setupTestContext(t, "imaan.json")
	ctx.Tracker.SetImaanLevel(7)
	ctx.Tracker.SetNote("steady")
	ctx.Tracker.TogglePrayer("Fajr")
	ctx.Tracker.AddCharityDonation(2.5, "masjid")
	ctx.Tracker.AddGoal("Old", constants.GoalCategoryOther, 1, "2026-03-01")

	if err := (&StatusCmd{}).Run(ctx); err != nil {
		t.Fatalf("status failed: %v", err)
	}
	for _, want := range []string{"2026-03-10", "7/10", "steady", "[x] Fajr", "(1/5)", "2.50 across 1 donation(s)", "0/1 completed", "1 overdue"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("status output missing %q:\n%s", want, out.String())
		}
	}
}

func TestStatsCmd_JSON(t *testing.T) {
	ctx, out := setupTestContext(t, "imaan.json")
	ctx.Tracker.AddGoodDeed("a")
	ctx.Tracker.AddGoodDeed("b")
	ctx.Tracker.TogglePrayer("Asr")

	if err := (&StatsCmd{JSON: true}).Run(ctx); err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	var got struct {
		PrayerRate float64 `json:"prayerRate"`
		Deeds      []struct {
			Count int `json:"count"`
		} `json:"deeds"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("stats output is not JSON: %v\n%s", err, out.String())
	}
	if got.PrayerRate != 20 {
		t.Errorf("prayerRate = %v, want 20", got.PrayerRate)
	}
	counts := make([]int, len(got.Deeds))
	for i, d := range got.Deeds {
		counts[i] = d.Count
	}
	if diff := cmp.Diff([]int{0, 0, 0, 0, 0, 0, 2}, counts); diff != "" {
		t.Errorf("deed buckets mismatch (-want +got):\n%s", diff)
	}
}

func TestStatsCmd_Text(t *testing.T) {
	ctx, out := setupTestContext(t, "imaan.json")
	ctx.Tracker.AddGoal("Read", constants.GoalCategoryQuran, 4, "2026-03-20")
	ctx.Tracker.UpdateGoalProgress(ctx.Tracker.Record().Goals[0].ID, 1)

	if err := (&StatsCmd{}).Run(ctx); err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	for _, want := range []string{"Prayer completion", "Good deeds, last 7 days", "Tue", "Read", "25%"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stats output missing %q:\n%s", want, out.String())
		}
	}
}

func TestExportImport(t *testing.T) {
	for _, ext := range []string{".json", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			src, _ := setupTestContext(t, "imaan.json")
			src.Tracker.SetImaanLevel(8)
			src.Tracker.AddSpiritualNote("Tawakkul", "Tie your camel", []string{"hadith"})
			src.Tracker.AddGoal("Fast Monday", constants.GoalCategoryOther, 1, "2026-03-16")
			want := src.Tracker.Record()

			file := filepath.Join(t.TempDir(), "export"+ext)
			if err := (&ExportCmd{Output: file}).Run(src); err != nil {
				t.Fatalf("export failed: %v", err)
			}

			dst, _ := setupTestContext(t, "other.db")
			if err := (&ImportCmd{File: file}).Run(dst); err != nil {
				t.Fatalf("import failed: %v", err)
			}
			if diff := cmp.Diff(want, dst.Tracker.Record()); diff != "" {
				t.Errorf("imported record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExportCmd_Stdout(t *testing.T) {
	ctx, out := setupTestContext(t, "imaan.json")
	if err := (&ExportCmd{Format: "yaml"}).Run(ctx); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out.String(), "imaanLevel: 5") {
		t.Errorf("yaml output:\n%s", out.String())
	}

	if err := (&ExportCmd{Format: "xml"}).Run(ctx); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestImportCmd_DashboardEnvelope(t *testing.T) {
	ctx, _ := setupTestContext(t, "imaan.json")

	file := filepath.Join(t.TempDir(), "state.json")
	state := `{"state":{"dailyState":{"date":"2025-12-01","imaanLevel":3,"note":"","prayers":[` +
		`{"name":"Fajr","time":"05:30","completed":true},{"name":"Dhuhr","time":"13:00","completed":false},` +
		`{"name":"Asr","time":"16:30","completed":false},{"name":"Maghrib","time":"19:30","completed":false},` +
		`{"name":"Isha","time":"21:00","completed":false}],"dhikrCount":99,"quranPages":0,"quranMinutes":0,` +
		`"goodDeeds":[],"charityDonations":[],"spiritualNotes":[{"id":"n1","title":"t","content":"c","timestamp":"2025-12-01T10:00:00.000Z"}],"goals":[]}},"version":0}`
	if err := os.WriteFile(file, []byte(state), 0600); err != nil {
		t.Fatalf("failed to write state file: %v", err)
	}

	if err := (&ImportCmd{File: file}).Run(ctx); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	r := ctx.Tracker.Record()
	if r.Date != "2025-12-01" || r.DhikrCount != 99 || !r.Prayers[0].Completed {
		t.Errorf("imported record = %+v", r)
	}
	if r.SpiritualNotes[0].Tags == nil {
		t.Error("imported note should get an empty tag list")
	}
}

func TestImportCmd_Invalid(t *testing.T) {
	ctx, _ := setupTestContext(t, "imaan.json")
	before := ctx.Tracker.Record()

	file := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(file, []byte(`{"note":"no date"}`), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := (&ImportCmd{File: file}).Run(ctx); err == nil {
		t.Fatal("expected import error")
	}
	if diff := cmp.Diff(before, ctx.Tracker.Record()); diff != "" {
		t.Errorf("failed import changed the record:\n%s", diff)
	}
}

func TestDebugPathCmd(t *testing.T) {
	ctx, out := setupTestContext(t, "imaan.db")
	if err := (&DebugPathCmd{}).Run(ctx); err != nil {
		t.Fatalf("debug path failed: %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got["data"] != ctx.Store.GetConfigPath() || got["backend"] != "sqlite" {
		t.Errorf("debug path = %v", got)
	}
}

func TestDebugDumpCmd(t *testing.T) {
	ctx, out := setupTestContext(t, "imaan.json")
	ctx.Tracker.IncrementDhikr()

	if err := (&DebugDumpCmd{}).Run(ctx); err != nil {
		t.Fatalf("debug dump failed: %v", err)
	}
	var r models.DailyRecord
	if err := json.Unmarshal(out.Bytes(), &r); err != nil {
		t.Fatalf("dump is not a record: %v", err)
	}
	if r.DhikrCount != 1 {
		t.Errorf("DhikrCount = %d, want 1", r.DhikrCount)
	}

	out.Reset()
	if err := (&DebugDumpCmd{Namespace: "all"}).Run(ctx); err != nil {
		t.Fatalf("debug dump all failed: %v", err)
	}
	if !strings.Contains(out.String(), `"`+constants.StorageNamespace+`"`) {
		t.Errorf("dump all output:\n%s", out.String())
	}

	if err := (&DebugDumpCmd{Namespace: "missing"}).Run(ctx); err == nil {
		t.Error("expected error for missing namespace")
	}
}

func TestDoctorCmd_Healthy(t *testing.T) {
	for _, name := range []string{"imaan.json", "imaan.db"} {
		t.Run(name, func(t *testing.T) {
			ctx, out := setupTestContext(t, name)
			if err := (&DoctorCmd{}).Run(ctx); err != nil {
				t.Fatalf("doctor failed on healthy storage: %v\n%s", err, out.String())
			}
			if !strings.Contains(out.String(), "⚠ Backups present: WARNING") {
				t.Errorf("missing backups should be a warning:\n%s", out.String())
			}
		})
	}
}

func TestDoctorCmd_NotInitialized(t *testing.T) {
	ctx, out := newContext(t, filepath.Join(t.TempDir(), "imaan.json"))

	err := (&DoctorCmd{}).Run(ctx)
	if err == nil {
		t.Fatal("expected doctor to fail without storage")
	}
	if !strings.Contains(out.String(), "SKIPPED (storage not reachable)") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestDoctorCmd_CorruptRecord(t *testing.T) {
	ctx, out := setupTestContext(t, "imaan.json")
	if err := ctx.Store.Put(constants.StorageNamespace, []byte(`{"date":"2026-03-10","imaanLevel":42}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("expected doctor to fail")
	}
	if !strings.Contains(out.String(), "imaan level 42 is outside 0-10") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestRecordProblems(t *testing.T) {
	valid := models.NewDailyRecord("2026-03-10", nil).
		WithGoodDeed(models.GoodDeed{ID: "d1", Timestamp: "2026-03-10T10:00:00.000Z"}).
		WithGoal("g1", "x", constants.GoalCategoryDhikr, 3, "2026-03-11")
	if problems := RecordProblems(valid); len(problems) != 0 {
		t.Errorf("valid record has problems: %v", problems)
	}

	broken := valid.
		WithGoodDeed(models.GoodDeed{ID: "d1", Timestamp: "later"}).
		WithCharityDonation(models.CharityDonation{ID: "c1", Amount: 0, Timestamp: "2026-03-10T10:00:00.000Z"})
	broken.Prayers = broken.Prayers[:4]
	broken.Goals = []models.Goal{{ID: "g1", Category: "sport", Target: 0, Deadline: "soon"}}

	want := []string{
		"prayers are",
		"duplicate good deed id d1",
		`invalid timestamp "later"`,
		"non-positive amount",
		`unknown category "sport"`,
		"non-positive target",
		`invalid deadline "soon"`,
	}
	got := strings.Join(RecordProblems(broken), "\n")
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("problems missing %q:\n%s", w, got)
		}
	}
}
