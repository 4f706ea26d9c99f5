package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"megabonk/internal/browse"
	"megabonk/internal/catalogue"
	"megabonk/internal/export"
	"megabonk/internal/weapon"
)

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(args []string) error
}

var commands = []command{
	{
		name:  "export",
		short: "Write the weapon catalogue to CSV (default)",
		usage: "megabonk export",
		long: `Build the weapon catalogue and write it to
<binary dir>/../data/megabonk_weapons.csv, replacing any existing file.

The data directory must already exist. Running megabonk with no command
does the same.
`,
		run: runExport,
	},
	{
		name:  "show",
		short: "Print one weapon as YAML",
		usage: "megabonk show <weapon>",
		long: `Print a single catalogue entry as YAML, including every tiered stat.
Stats the weapon does not have are listed with present: false and empty tiers.

The weapon name is matched case-insensitively.
`,
		run: runShow,
	},
	{
		name:  "browse",
		short: "Browse the catalogue interactively",
		usage: "megabonk browse",
		long: `Open a read-only table of the catalogue in the terminal.

Keys: up/down to move, / to filter by name or tag, esc to clear, q to quit.
`,
		run: runBrowse,
	},
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "megabonk: Megabonk weapon catalogue exporter\n\n")
	fmt.Fprintf(w, "Usage:\n  megabonk [command] [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'megabonk help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return
		}
	}
	fmt.Fprintf(w, "megabonk: unknown command %q\n\nRun 'megabonk help' for usage.\n", name)
}

func dispatch(args []string) error {
	if len(args) == 0 {
		return runExport(nil)
	}
	if args[0] == "--help" || args[0] == "-h" {
		printUsage(os.Stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(os.Stdout, args[1])
		} else {
			printUsage(os.Stdout)
		}
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(args[1:])
		}
	}
	return fmt.Errorf("unknown command %q\n\nRun 'megabonk help' for usage.", args[0])
}

// ---------------------------------------------------------------------------
// export
// ---------------------------------------------------------------------------

func runExport(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("usage: megabonk export")
	}
	path, err := export.DefaultPath()
	if err != nil {
		return err
	}
	return exportTo(os.Stdout, path)
}

// exportTo builds the catalogue, writes it to path and reports the result
// on out.
func exportTo(out io.Writer, path string) error {
	log.Info().Str("path", path).Msg("exporting weapon catalogue")

	records, err := catalogue.Build()
	if err != nil {
		return fmt.Errorf("build catalogue: %w", err)
	}
	if err := export.WriteFile(path, records); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Wrote %d weapons to %s\n", len(records), path)
	return err
}

// ---------------------------------------------------------------------------
// show
// ---------------------------------------------------------------------------

// weaponDoc is the YAML shape printed by show.
type weaponDoc struct {
	Weapon            string    `yaml:"weapon"`
	Unlock            string    `yaml:"unlock"`
	BaseBehavior      string    `yaml:"base_behavior"`
	Types             string    `yaml:"types"`
	ElementOrDamage   string    `yaml:"element_or_damage_type"`
	SpecialOrCC       string    `yaml:"special_or_cc"`
	Tags              string    `yaml:"tags"`
	StrategySynergies string    `yaml:"strategy_synergies"`
	Stats             []statDoc `yaml:"stats"`
}

type statDoc struct {
	Name      string `yaml:"name"`
	Present   bool   `yaml:"present"`
	Common    string `yaml:"common"`
	Uncommon  string `yaml:"uncommon"`
	Rare      string `yaml:"rare"`
	Epic      string `yaml:"epic"`
	Legendary string `yaml:"legendary"`
}

func newWeaponDoc(r weapon.Record) weaponDoc {
	doc := weaponDoc{
		Weapon:            r.Name,
		Unlock:            r.Unlock,
		BaseBehavior:      r.Behavior,
		Types:             r.Types,
		ElementOrDamage:   r.Element,
		SpecialOrCC:       r.Special,
		Tags:              r.Tags,
		StrategySynergies: r.Strategy,
	}
	for _, s := range weapon.Stats {
		t := r.Stat(s)
		v := t.Values()
		doc.Stats = append(doc.Stats, statDoc{
			Name:      s.String(),
			Present:   t.Present(),
			Common:    string(v[weapon.Common]),
			Uncommon:  string(v[weapon.Uncommon]),
			Rare:      string(v[weapon.Rare]),
			Epic:      string(v[weapon.Epic]),
			Legendary: string(v[weapon.Legendary]),
		})
	}
	return doc
}

func runShow(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: megabonk show <weapon>")
	}
	return showWeapon(os.Stdout, args[0])
}

func showWeapon(out io.Writer, name string) error {
	records, err := catalogue.Build()
	if err != nil {
		return fmt.Errorf("build catalogue: %w", err)
	}
	r, ok := catalogue.Find(records, name)
	if !ok {
		return fmt.Errorf("no weapon named %q", name)
	}
	data, err := yaml.Marshal(newWeaponDoc(r))
	if err != nil {
		return fmt.Errorf("marshal %s: %w", r.Name, err)
	}
	_, err = out.Write(data)
	return err
}

// ---------------------------------------------------------------------------
// browse
// ---------------------------------------------------------------------------

func runBrowse(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("usage: megabonk browse")
	}
	records, err := catalogue.Build()
	if err != nil {
		return fmt.Errorf("build catalogue: %w", err)
	}
	return browse.Run(records)
}

// initLogger sends human-readable logs to w.
func initLogger(w io.Writer) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
}

func main() {
	initLogger(os.Stderr)
	if err := dispatch(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("megabonk failed")
	}
}
