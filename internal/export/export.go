package export

// export.go: flattens the weapon catalogue into CSV.
//
// Layout of every row (Width columns):
//   Weapon, Unlock, BaseBehavior, Types, ElementOrDamageType, SpecialOrCC,
//   Tags, StrategySynergies
//   then for each weapon.Stat in order: <Stat>C <Stat>U <Stat>R <Stat>E <Stat>L
//
// The destination is replaced atomically: rows go to a temp file in the same
// directory, which is renamed over the target only after a clean flush.

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"megabonk/internal/weapon"
)

const (
	// DataDir is the directory, beside the binary's own directory, that
	// holds exported files.
	DataDir = "data"
	// FileName is the exported catalogue file.
	FileName = "megabonk_weapons.csv"
)

// descriptiveColumns precede the tiered columns in every row.
var descriptiveColumns = []string{
	"Weapon", "Unlock", "BaseBehavior", "Types", "ElementOrDamageType",
	"SpecialOrCC", "Tags", "StrategySynergies",
}

// Width is the fixed number of columns in every row.
const Width = 8 + weapon.NumStats*weapon.NumTiers

func logger() zerolog.Logger {
	return log.With().Str("module", "export").Logger()
}

// ---------------------------------------------------------------------------
// Flattening
// ---------------------------------------------------------------------------

// Header returns the column names in row order.
func Header() []string {
	h := make([]string, 0, Width)
	h = append(h, descriptiveColumns...)
	for _, s := range weapon.Stats {
		for _, tier := range weapon.Tiers {
			h = append(h, s.String()+tier.Suffix())
		}
	}
	return h
}

// Row flattens r into Width values matching Header. Absent stats resolve to
// weapon.Placeholder in all five slots.
func Row(r weapon.Record) []string {
	row := make([]string, 0, Width)
	row = append(row,
		r.Name, r.Unlock, r.Behavior, r.Types,
		r.Element, r.Special, r.Tags, r.Strategy,
	)
	for _, s := range weapon.Stats {
		for _, v := range r.Stat(s).Values() {
			row = append(row, string(v))
		}
	}
	return row
}

// ---------------------------------------------------------------------------
// Writing
// ---------------------------------------------------------------------------

// WriteError reports a failure to produce the destination file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write encodes the header and one row per record to w, in order.
// Rows end with CRLF.
func Write(w io.Writer, records []weapon.Record) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return fmt.Errorf("write row %q: %w", r.Name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteFile replaces path with the CSV encoding of records. Either the whole
// file is written or path is left as it was. The parent directory must
// already exist.
func WriteFile(path string, records []weapon.Record) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	closed := false
	defer func() {
		if !closed {
			tmp.Close()
		}
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	if err := Write(tmp, records); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("sync: %w", err)}
	}
	closed = true
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("close: %w", err)}
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("chmod: %w", err)}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("rename: %w", err)}
	}

	l := logger()
	l.Debug().Str("path", path).Int("rows", len(records)).Msg("catalogue written")
	return nil
}

// ---------------------------------------------------------------------------
// Destination
// ---------------------------------------------------------------------------

// PathFor returns the export destination for an executable at exe:
// <dir of exe>/../data/megabonk_weapons.csv.
func PathFor(exe string) string {
	return filepath.Join(filepath.Dir(filepath.Dir(exe)), DataDir, FileName)
}

// DefaultPath resolves the running executable (following symlinks) and
// returns PathFor it.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return PathFor(abs), nil
}
