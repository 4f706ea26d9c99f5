// Package weapon defines the Megabonk weapon record: descriptive fields plus
// nine attributes sampled at five upgrade tiers.
package weapon

import (
	"errors"
	"fmt"
)

// Tier is one of the five upgrade levels a weapon stat is sampled at.
type Tier int

const (
	Common Tier = iota
	Uncommon
	Rare
	Epic
	Legendary
)

// NumTiers is the required length of every present tiered attribute.
const NumTiers = 5

// Tiers lists every tier in column order.
var Tiers = [NumTiers]Tier{Common, Uncommon, Rare, Epic, Legendary}

func (t Tier) String() string {
	switch t {
	case Common:
		return "Common"
	case Uncommon:
		return "Uncommon"
	case Rare:
		return "Rare"
	case Epic:
		return "Epic"
	case Legendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// Suffix returns the one-letter column suffix (C, U, R, E, L).
func (t Tier) Suffix() string {
	s := t.String()
	if t < Common || t > Legendary {
		return "?"
	}
	return s[:1]
}

// Stat identifies a tiered attribute.
type Stat int

const (
	Damage Stat = iota
	ProjectileCount
	ProjectileSpeed
	Size
	Duration
	CritChance
	CritDamage
	Bounces
	Knockback
)

// NumStats is the number of tiered attributes every record carries.
const NumStats = 9

// Stats lists every stat in column order.
var Stats = [NumStats]Stat{
	Damage, ProjectileCount, ProjectileSpeed, Size, Duration,
	CritChance, CritDamage, Bounces, Knockback,
}

// String returns the column stem, e.g. "ProjectileCount".
func (s Stat) String() string {
	switch s {
	case Damage:
		return "Damage"
	case ProjectileCount:
		return "ProjectileCount"
	case ProjectileSpeed:
		return "ProjectileSpeed"
	case Size:
		return "Size"
	case Duration:
		return "Duration"
	case CritChance:
		return "CritChance"
	case CritDamage:
		return "CritDamage"
	case Bounces:
		return "Bounces"
	case Knockback:
		return "Knockback"
	default:
		return "Unknown"
	}
}

// Value is a display value exactly as authored: a raw number ("2.4") or
// percentage text ("20%"). Values are passed through, never parsed.
type Value string

// Placeholder fills tier slots of an attribute the weapon does not have.
// It is distinct from "0".
const Placeholder Value = ""

// ---------------------------------------------------------------------------
// Tiered
// ---------------------------------------------------------------------------

// Tiered is either Absent or Present with one value per tier.
// The zero value is Absent.
type Tiered struct {
	present bool
	values  []Value
}

// Absent returns a tiered attribute the weapon does not define.
func Absent() Tiered {
	return Tiered{}
}

// Of returns a present tiered attribute. Arity is checked by New, which
// knows the weapon and stat to report.
func Of(values ...Value) Tiered {
	vs := make([]Value, len(values))
	copy(vs, values)
	return Tiered{present: true, values: vs}
}

// Present reports whether the attribute was defined.
func (t Tiered) Present() bool {
	return t.present
}

// Values resolves t into one value per tier, Common first. Absent
// attributes resolve to placeholders.
func (t Tiered) Values() [NumTiers]Value {
	var out [NumTiers]Value
	if !t.present {
		for i := range out {
			out[i] = Placeholder
		}
		return out
	}
	copy(out[:], t.values)
	return out
}

// At returns the value for a single tier.
func (t Tiered) At(tier Tier) Value {
	return t.Values()[tier]
}

// ---------------------------------------------------------------------------
// Definition / Record
// ---------------------------------------------------------------------------

// Definition is the authored form of a weapon. Tiered fields left out of a
// literal are Absent.
type Definition struct {
	Name     string
	Unlock   string
	Behavior string
	Types    string
	Element  string
	Special  string
	Tags     string // semicolon-delimited, e.g. "fire;aoe"
	Strategy string

	Damage          Tiered
	ProjectileCount Tiered
	ProjectileSpeed Tiered
	Size            Tiered
	Duration        Tiered
	CritChance      Tiered
	CritDamage      Tiered
	Bounces         Tiered
	Knockback       Tiered
}

func (d Definition) stats() [NumStats]Tiered {
	return [NumStats]Tiered{
		Damage:          d.Damage,
		ProjectileCount: d.ProjectileCount,
		ProjectileSpeed: d.ProjectileSpeed,
		Size:            d.Size,
		Duration:        d.Duration,
		CritChance:      d.CritChance,
		CritDamage:      d.CritDamage,
		Bounces:         d.Bounces,
		Knockback:       d.Knockback,
	}
}

// Record is a validated weapon. It is not modified after New returns it.
type Record struct {
	Name     string
	Unlock   string
	Behavior string
	Types    string
	Element  string
	Special  string
	Tags     string
	Strategy string

	stats [NumStats]Tiered
}

// Stat returns the tiered attribute s.
func (r Record) Stat(s Stat) Tiered {
	return r.stats[s]
}

// ErrTierCount is matched by every ValidationError.
var ErrTierCount = errors.New("tiered attribute must have exactly 5 values")

// ValidationError reports a present tiered attribute with the wrong arity.
type ValidationError struct {
	Weapon string
	Stat   Stat
	Values []Value
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("weapon %q: %s has %d values, want %d: %q",
		e.Weapon, e.Stat, len(e.Values), NumTiers, e.Values)
}

func (e *ValidationError) Unwrap() error {
	return ErrTierCount
}

// New validates def and returns the corresponding record. Every present
// tiered attribute must carry exactly NumTiers values.
func New(def Definition) (Record, error) {
	stats := def.stats()
	for _, s := range Stats {
		t := stats[s]
		if t.present && len(t.values) != NumTiers {
			return Record{}, &ValidationError{Weapon: def.Name, Stat: s, Values: t.values}
		}
	}
	return Record{
		Name:     def.Name,
		Unlock:   def.Unlock,
		Behavior: def.Behavior,
		Types:    def.Types,
		Element:  def.Element,
		Special:  def.Special,
		Tags:     def.Tags,
		Strategy: def.Strategy,
		stats:    stats,
	}, nil
}
