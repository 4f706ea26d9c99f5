package export

// export_test.go: tests for row flattening and the CSV writer.
//
// Records come straight from the catalogue or are built with weapon.New;
// file tests write into t.TempDir().

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"megabonk/internal/catalogue"
	"megabonk/internal/weapon"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func buildCatalogue(t *testing.T) []weapon.Record {
	t.Helper()
	records, err := catalogue.Build()
	if err != nil {
		t.Fatalf("catalogue.Build: %v", err)
	}
	return records
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return rows
}

func findRecord(t *testing.T, records []weapon.Record, name string) weapon.Record {
	t.Helper()
	r, ok := catalogue.Find(records, name)
	if !ok {
		t.Fatalf("weapon %q not in catalogue", name)
	}
	return r
}

// column returns the index of name in Header.
func column(t *testing.T, name string) int {
	t.Helper()
	for i, h := range Header() {
		if h == name {
			return i
		}
	}
	t.Fatalf("no column %q", name)
	return -1
}

// ---------------------------------------------------------------------------
// Header / Row
// ---------------------------------------------------------------------------

func TestHeader(t *testing.T) {
	want := strings.Join([]string{
		"Weapon,Unlock,BaseBehavior,Types,ElementOrDamageType,SpecialOrCC,Tags,StrategySynergies",
		"DamageC,DamageU,DamageR,DamageE,DamageL",
		"ProjectileCountC,ProjectileCountU,ProjectileCountR,ProjectileCountE,ProjectileCountL",
		"ProjectileSpeedC,ProjectileSpeedU,ProjectileSpeedR,ProjectileSpeedE,ProjectileSpeedL",
		"SizeC,SizeU,SizeR,SizeE,SizeL",
		"DurationC,DurationU,DurationR,DurationE,DurationL",
		"CritChanceC,CritChanceU,CritChanceR,CritChanceE,CritChanceL",
		"CritDamageC,CritDamageU,CritDamageR,CritDamageE,CritDamageL",
		"BouncesC,BouncesU,BouncesR,BouncesE,BouncesL",
		"KnockbackC,KnockbackU,KnockbackR,KnockbackE,KnockbackL",
	}, ",")

	if diff := cmp.Diff(strings.Split(want, ","), Header()); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if Width != 53 || len(Header()) != 53 {
		t.Errorf("Width = %d, len(Header()) = %d, want 53", Width, len(Header()))
	}
}

func TestRowWidthIsFixed(t *testing.T) {
	for _, r := range buildCatalogue(t) {
		if got := len(Row(r)); got != Width {
			t.Errorf("%s: row has %d columns, want %d", r.Name, got, Width)
		}
	}
}

func TestRowDescriptiveColumns(t *testing.T) {
	r := findRecord(t, buildCatalogue(t), "Revolver")
	got := Row(r)[:8]
	want := []string{
		"Revolver",
		"Kill 7,500 enemies (1 Silver)",
		"Multi-bullet projectile weapon",
		"Projectile",
		"Physical",
		"Bounce",
		"projectile;bounce;crit",
		"Bounce first for chaining; crit tomes; keep damage scaling",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("descriptive columns mismatch (-want +got):\n%s", diff)
	}
}

func TestRowAbsentStatsArePlaceholders(t *testing.T) {
	records := buildCatalogue(t)
	for _, r := range records {
		row := Row(r)
		for _, s := range weapon.Stats {
			if r.Stat(s).Present() {
				continue
			}
			for _, tier := range weapon.Tiers {
				name := s.String() + tier.Suffix()
				if v := row[column(t, name)]; v != string(weapon.Placeholder) {
					t.Errorf("%s %s = %q, want placeholder", r.Name, name, v)
				}
			}
		}
	}
}

func TestRowPresentStatsVerbatim(t *testing.T) {
	records := buildCatalogue(t)
	tests := []struct {
		weapon string
		stat   weapon.Stat
		want   []string
	}{
		{"Bow", weapon.Size, []string{"0.2", "0.2", "0.2", "0.3", "0.3"}},
		{"Bow", weapon.CritDamage, []string{"18%", "22%", "25%", "29%", "36%"}},
		{"Chunkers", weapon.Knockback, []string{"0.7", "0.8", "0.8", "1", "1.3"}},
		{"Poison Flask", weapon.Duration, []string{"1", "1.2", "1.4", "1.6", "2"}},
		{"Sword", weapon.Damage, []string{"2", "2.4", "2.8", "3.2", "4"}},
	}
	for _, tc := range tests {
		row := Row(findRecord(t, records, tc.weapon))
		start := column(t, tc.stat.String()+"C")
		if diff := cmp.Diff(tc.want, row[start:start+weapon.NumTiers]); diff != "" {
			t.Errorf("%s %s mismatch (-want +got):\n%s", tc.weapon, tc.stat, diff)
		}
	}
}

func TestRowWeaponWithoutProjectileCount(t *testing.T) {
	r := findRecord(t, buildCatalogue(t), "Aura")
	row := Row(r)
	start := column(t, "ProjectileCountC")
	for i, v := range row[start : start+weapon.NumTiers] {
		if v != "" {
			t.Errorf("Aura ProjectileCount slot %d = %q, want empty", i, v)
		}
	}
}

// ---------------------------------------------------------------------------
// Write
// ---------------------------------------------------------------------------

func TestWriteQuotesAndLineEndings(t *testing.T) {
	r := findRecord(t, buildCatalogue(t), "Revolver")
	var buf bytes.Buffer
	if err := Write(&buf, []weapon.Record{r}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"Kill 7,500 enemies (1 Silver)"`) {
		t.Errorf("embedded comma not quoted:\n%s", out)
	}
	if strings.Count(out, "\r\n") != 2 || !strings.HasSuffix(out, "\r\n") {
		t.Errorf("expected two CRLF-terminated lines, got %q", out)
	}
}

func TestWriteEmptyCatalogueHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}

// ---------------------------------------------------------------------------
// WriteFile
// ---------------------------------------------------------------------------

func TestWriteFileRowCountAndOrder(t *testing.T) {
	records := buildCatalogue(t)
	path := filepath.Join(t.TempDir(), FileName)
	if err := WriteFile(path, records); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != len(records)+1 {
		t.Fatalf("got %d rows, want %d", len(rows), len(records)+1)
	}
	if diff := cmp.Diff(Header(), rows[0]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	for i, r := range records {
		if diff := cmp.Diff(Row(r), rows[i+1]); diff != "" {
			t.Errorf("row %d (%s) mismatch (-want +got):\n%s", i+1, r.Name, diff)
		}
	}
}

func TestWriteFileIdempotent(t *testing.T) {
	records := buildCatalogue(t)
	path := filepath.Join(t.TempDir(), FileName)

	if err := WriteFile(path, records); err != nil {
		t.Fatalf("first WriteFile: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, records); err != nil {
		t.Fatalf("second WriteFile: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("second export is not byte-identical to the first")
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	records := buildCatalogue(t)
	path := filepath.Join(t.TempDir(), FileName)
	stale := strings.Repeat("stale,row\n", 500)
	if err := os.WriteFile(path, []byte(stale), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, records); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("previous contents survived; expected overwrite")
	}
	if rows := readCSV(t, path); len(rows) != len(records)+1 {
		t.Errorf("got %d rows after overwrite, want %d", len(rows), len(records)+1)
	}
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := WriteFile(filepath.Join(dir, FileName), buildCatalogue(t)); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != FileName {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contains %v, want only %s", names, FileName)
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", FileName)
	err := WriteFile(path, buildCatalogue(t))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("expected *WriteError, got %T", err)
	}
	if werr.Path != path || !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name destination %s", err, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped not-exist cause, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Dir(path)); !os.IsNotExist(statErr) {
		t.Error("WriteFile must not create the destination directory")
	}
}

// ---------------------------------------------------------------------------
// Destination
// ---------------------------------------------------------------------------

func TestPathFor(t *testing.T) {
	exe := filepath.Join("/opt", "megabonk", "bin", "megabonk")
	want := filepath.Join("/opt", "megabonk", "data", "megabonk_weapons.csv")
	if got := PathFor(exe); got != want {
		t.Errorf("PathFor(%q) = %q, want %q", exe, got, want)
	}
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("DefaultPath() = %q, want absolute path", path)
	}
	if filepath.Base(path) != FileName || filepath.Base(filepath.Dir(path)) != DataDir {
		t.Errorf("DefaultPath() = %q, want .../%s/%s", path, DataDir, FileName)
	}
}
