// Package catalogue holds the curated Megabonk weapon list.
//
// Definitions are kept in in-game unlock order: the starters first, then
// weapons ordered by their silver cost and progression. The export relies
// on this order, so new weapons are appended where they unlock rather than
// sorted.
package catalogue

import (
	"fmt"
	"strings"

	"megabonk/internal/weapon"
)

// Build validates every definition and returns the records in catalogue
// order. A single invalid definition fails the whole build.
func Build() ([]weapon.Record, error) {
	return BuildFrom(Definitions())
}

// BuildFrom constructs records from defs in order. On the first invalid
// definition it returns nil and the wrapped *weapon.ValidationError.
func BuildFrom(defs []weapon.Definition) ([]weapon.Record, error) {
	records := make([]weapon.Record, 0, len(defs))
	for i, def := range defs {
		r, err := weapon.New(def)
		if err != nil {
			return nil, fmt.Errorf("catalogue entry %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// Find returns the record whose name matches name, ignoring case.
func Find(records []weapon.Record, name string) (weapon.Record, bool) {
	name = strings.TrimSpace(name)
	for _, r := range records {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return weapon.Record{}, false
}

// Names returns the weapon names in catalogue order.
func Names(records []weapon.Record) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}

var of = weapon.Of

// Definitions returns a fresh copy of the curated weapon list.
func Definitions() []weapon.Definition {
	return []weapon.Definition{
		{
			Name:            "Sword",
			Unlock:          "Starter melee",
			Behavior:        "Short-range slash arc",
			Types:           "Melee",
			Element:         "None",
			Special:         "None",
			Tags:            "melee;slash",
			Strategy:        "Prioritize damage/count then size; knockback helps safety",
			Damage:          of("2", "2.4", "2.8", "3.2", "4"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			Size:            of("20%", "24%", "28%", "32%", "40%"),
			Knockback:       of("0.5", "0.6", "0.7", "0.8", "1"),
		},
		{
			Name:            "Flamewalker",
			Unlock:          "Starter",
			Behavior:        "Leaves fire trail behind player",
			Types:           "AoE",
			Element:         "Fire",
			Special:         "Burn trail",
			Tags:            "fire;dot;aoe",
			Strategy:        "Size/quantity boost coverage; great with duration/cooldown tomes",
			Damage:          of("2", "2.4", "2.8", "3.2", "4"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			Size:            of("15%", "18%", "21%", "24%", "30%"),
			Duration:        of("0.18", "0.21", "0.25", "0.29", "0.36"),
		},
		{
			Name:            "Lightning Staff",
			Unlock:          "Starter",
			Behavior:        "Instant lightning strikes that chain via bounces",
			Types:           "Projectile",
			Element:         "Lightning",
			Special:         "Chain/bounce",
			Tags:            "lightning;bounce;projectile",
			Strategy:        "Stack bounces and size for chaining; quantity for coverage",
			Damage:          of("2", "2.4", "2.8", "3.2", "4"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			Size:            of("20%", "24%", "28%", "32%", "40%"),
			Bounces:         of("1", "1.2", "1.4", "1.6", "2"),
		},
		{
			Name:            "Firestaff",
			Unlock:          "Starter",
			Behavior:        "Fireball projectile with AoE explosion",
			Types:           "Projectile",
			Element:         "Fire",
			Special:         "AoE blast",
			Tags:            "fire;aoe;projectile",
			Strategy:        "Size/quantity for bigger blasts; damage scaling strong; projectile speed minor",
			Damage:          of("2.5", "3", "3.5", "4", "5"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			ProjectileSpeed: of("0.1", "0.12", "0.14", "0.16", "0.2"),
			Size:            of("16%", "19%", "22%", "26%", "32%"),
		},
		{
			Name:            "Chunkers",
			Unlock:          "Starter",
			Behavior:        "Orbiting rocks knock back nearby enemies",
			Types:           "Orbit",
			Element:         "Physical",
			Special:         "Knockback",
			Tags:            "orbit;knockback;projectile",
			Strategy:        "Size/knockback for safety; speed to tighten orbit coverage",
			Damage:          of("3", "3.6", "4.2", "4.8", "6"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			ProjectileSpeed: of("0.35", "0.42", "0.49", "0.56", "0.7"),
			Size:            of("20%", "24%", "28%", "32%", "40%"),
			Knockback:       of("0.7", "0.8", "0.8", "1", "1.3"),
		},
		{
			Name:            "Bone",
			Unlock:          "Starter",
			Behavior:        "Bouncing bone projectile",
			Types:           "Projectile",
			Element:         "Physical",
			Special:         "Bounce",
			Tags:            "projectile;bounce",
			Strategy:        "Bounces then count; speed for more hits; pairs with size",
			Damage:          of("2.5", "3", "3.5", "4", "5"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			ProjectileSpeed: of("0.2", "0.24", "0.28", "0.32", "0.4"),
			Bounces:         of("1", "1.2", "1.4", "1.6", "2"),
			Knockback:       of("0.3", "0.3", "0.4", "0.5", "0.6"),
		},
		{
			Name:            "Bow",
			Unlock:          "Starter",
			Behavior:        "Piercing arrows",
			Types:           "Projectile",
			Element:         "Physical",
			Special:         "Pierce",
			Tags:            "projectile;pierce;crit",
			Strategy:        "Crit-focused; take crit tomes; projectile count and speed for coverage",
			Damage:          of("1.75", "2.1", "2.45", "2.8", "3.5"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			ProjectileSpeed: of("0.3", "0.36", "0.42", "0.48", "0.6"),
			Size:            of("0.2", "0.2", "0.2", "0.3", "0.3"),
			CritChance:      of("8%", "10%", "11%", "13%", "16%"),
			CritDamage:      of("18%", "22%", "25%", "29%", "36%"),
		},
		{
			Name:            "Revolver",
			Unlock:          "Kill 7,500 enemies (1 Silver)",
			Behavior:        "Multi-bullet projectile weapon",
			Types:           "Projectile",
			Element:         "Physical",
			Special:         "Bounce",
			Tags:            "projectile;bounce;crit",
			Strategy:        "Bounce first for chaining; crit tomes; keep damage scaling",
			Damage:          of("2.5", "3", "3.5", "4", "5"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			ProjectileSpeed: of("0.4", "0.5", "0.6", "0.6", "0.8"),
			CritChance:      of("10%", "12%", "14%", "16%", "20%"),
			CritDamage:      of("20%", "24%", "28%", "32%", "40%"),
			Bounces:         of("1", "1.2", "1.4", "1.6", "2"),
		},
		{
			Name:            "Aegis",
			Unlock:          "Block 500 damage with Armor as Sir Oofie (1 Silver)",
			Behavior:        "Shield blocks hit then emits shockwave",
			Types:           "AoE",
			Element:         "Physical",
			Special:         "Block + shockwave CC",
			Tags:            "aoe;defense;knockback",
			Strategy:        "Quantity for more shields; knockback for space; cooldown/armor synergies",
			Damage:          of("2", "2.4", "2.8", "3.2", "4"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			Size:            of("15%", "18%", "21%", "24%", "30%"),
			Knockback:       of("0.8", "0.9", "1.1", "1.2", "1.5"),
		},
		{
			Name:            "Bananarang",
			Unlock:          "Find hidden banana in Forest (1 Silver)",
			Behavior:        "Returning banana projectile",
			Types:           "Projectile",
			Element:         "Physical",
			Special:         "Return path",
			Tags:            "projectile;return",
			Strategy:        "Count then size; speed for faster cycles; works well with cooldown",
			Damage:          of("2", "2.4", "2.8", "3.2", "4"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			ProjectileSpeed: of("0.1", "0.12", "0.14", "0.16", "0.2"),
			Size:            of("14%", "17%", "20%", "22%", "28%"),
		},
		{
			Name:     "Aura",
			Unlock:   "Survive 2 minutes without taking damage (1 Silver)",
			Behavior: "Constant ring damage aura",
			Types:    "AoE",
			Element:  "None",
			Special:  "Constant aura",
			Tags:     "aoe;dot",
			Strategy: "Pure area scaling; size is main multiplier; pairs with duration/cooldown",
			Damage:   of("1.4", "1.7", "2", "2.2", "2.8"),
			Size:     of("14%", "17%", "20%", "22%", "28%"),
		},
		{
			Name:            "Axe",
			Unlock:          "Get 2,000 kills with Sword (1 Silver)",
			Behavior:        "Spinning axe linger AoE",
			Types:           "AoE",
			Element:         "Physical",
			Special:         "Linger",
			Tags:            "aoe;linger",
			Strategy:        "Duration and count for coverage; size helpful; pairs with cooldown",
			Damage:          of("1.5", "1.8", "2.1", "2.4", "3"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			Size:            of("10%", "12%", "14%", "16%", "20%"),
			Duration:        of("0.08", "0.1", "0.11", "0.13", "0.16"),
		},
		{
			Name:     "Space Noodle",
			Unlock:   "Clear Desert Tier 2 as Tony McZoom (2 Silver)",
			Behavior: "Tether beam between player and target; target cannot die until beam ends",
			Types:    "Beam",
			Element:  "None",
			Special:  "Lock target until duration ends",
			Tags:     "beam;channel",
			Strategy: "Duration and size to secure kill window; pair with cooldown/defense",
			Damage:   of("2", "2.4", "2.8", "3.2", "4"),
			Size:     of("20%", "24%", "28%", "32%", "40%"),
			Duration: of("0.2", "0.24", "0.28", "0.32", "0.4"),
		},
		{
			Name:            "Sniper Rifle",
			Unlock:          "Level Precision Tome to 10 (2 Silver)",
			Behavior:        "Manual-aim piercing shot",
			Types:           "Projectile",
			Element:         "Physical",
			Special:         "Pierce",
			Tags:            "projectile;pierce;crit",
			Strategy:        "High damage scaling; count for multi-shots; size for easier hits",
			Damage:          of("4", "4.8", "5.6", "6.4", "8"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			Size:            of("13%", "16%", "18%", "21%", "26%"),
		},
		{
			Name:            "Slutty Rocket",
			Unlock:          "15,000 kills as CL4NK (2 Silver)",
			Behavior:        "Homing rockets",
			Types:           "Projectile",
			Element:         "Physical",
			Special:         "Homing",
			Tags:            "projectile;homing;crit",
			Strategy:        "Crit chance is strong; count for more rockets; speed for reliability",
			Damage:          of("2", "2.4", "2.8", "3.2", "4"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			ProjectileSpeed: of("0.2", "0.24", "0.28", "0.32", "0.4"),
			CritChance:      of("8%", "10%", "11%", "13%", "16%"),
		},
		{
			Name:            "Shotgun",
			Unlock:          "5% drop from Desert Stage 2 Tumbleweed (2 Silver)",
			Behavior:        "Cone burst; pellets pierce and scale with range",
			Types:           "Projectile",
			Element:         "Physical",
			Special:         "Pierce cone",
			Tags:            "projectile;cone;crit",
			Strategy:        "Count boosts pellet count; damage and crit solid; size for spread control",
			Damage:          of("3", "3.6", "4.2", "4.8", "6"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			Size:            of("15%", "18%", "21%", "24%", "30%"),
			CritChance:      of("7%", "8%", "10%", "11%", "14%"),
			Knockback:       of("0.35", "0.42", "0.49", "0.56", "0.7"),
		},
		{
			Name:            "Mines",
			Unlock:          "7,500 kills with Slutty Rocket (2 Silver)",
			Behavior:        "Drops proximity mines",
			Types:           "AoE",
			Element:         "Physical",
			Special:         "Knockback",
			Tags:            "aoe;trap;knockback",
			Strategy:        "Duration and size for coverage; count for area denial; pairs with cooldown",
			Damage:          of("3", "3.6", "4.2", "4.8", "6"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			Size:            of("15%", "18%", "21%", "24%", "30%"),
			Duration:        of("0.4", "0.48", "0.56", "0.64", "0.8"),
		},
		{
			Name:            "Wireless Dagger",
			Unlock:          "Lightning Staff to level 15 (2 Silver)",
			Behavior:        "Homing daggers that never miss",
			Types:           "Projectile",
			Element:         "Physical",
			Special:         "Bounce homing",
			Tags:            "projectile;homing;bounce",
			Strategy:        "Count then bounces; speed to reach targets; pairs with cooldown",
			Damage:          of("2", "2.4", "2.8", "3.2", "4"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			ProjectileSpeed: of("0.1", "0.12", "0.14", "0.16", "0.2"),
			Bounces:         of("1", "1.2", "1.4", "1.6", "2"),
		},
		{
			Name:     "Frostwalker",
			Unlock:   "Freeze 1,000 enemies with Ice Cube (2 Silver)",
			Behavior: "Pulse that freezes enemies",
			Types:    "AoE",
			Element:  "Ice",
			Special:  "Freeze",
			Tags:     "aoe;ice;cc",
			Strategy: "Duration for longer freeze; size for catch radius; cooldown pairs well",
			Damage:   of("2", "2.4", "2.8", "3.2", "4"),
			Size:     of("10%", "12%", "14%", "16%", "20%"),
			Duration: of("0.12", "0.14", "0.17", "0.19", "0.24"),
		},
		{
			Name:            "Tornado",
			Unlock:          "Charge a Charge Shrine during Sandstorm on Desert (2 Silver)",
			Behavior:        "Piercing tornadoes with knockback",
			Types:           "Projectile",
			Element:         "Physical",
			Special:         "Knockback",
			Tags:            "projectile;knockback;aoe",
			Strategy:        "Count and size for walling; speed to reach targets; great defensive tool",
			Damage:          of("2", "2.4", "2.8", "3.2", "4"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			ProjectileSpeed: of("4", "4.8", "5.6", "6.4", "8"),
			Size:            of("14%", "17%", "20%", "22%", "28%"),
			Knockback:       of("0.6", "0.72", "0.84", "0.96", "1.2"),
		},
		{
			Name:            "Dexecutioner",
			Unlock:          "12,500 kills with Sword (2 Silver)",
			Behavior:        "Piercing blade with 2% execute chance",
			Types:           "Projectile",
			Element:         "Physical",
			Special:         "Execute chance",
			Tags:            "projectile;execute;crit",
			Strategy:        "Count and size; crit supports execute; pairs with CC setup",
			Damage:          of("2", "2.4", "2.8", "3.2", "4"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			Size:            of("20%", "24%", "28%", "32%", "40%"),
			CritChance:      of("5%", "6%", "7%", "8%", "10%"),
		},
		{
			Name:            "Blood Magic",
			Unlock:          "Bloody Tome to level 12 (2 Silver)",
			Behavior:        "AoE pulse; on-kill +1 Max HP (no cap)",
			Types:           "AoE",
			Element:         "None",
			Special:         "Max HP on kill",
			Tags:            "aoe;dot;sustain",
			Strategy:        "Count then size; pairs with tank builds; cooldown helps pulses",
			Damage:          of("1.5", "1.8", "2.1", "2.4", "3"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			Size:            of("15%", "18%", "21%", "24%", "30%"),
		},
		{
			Name:            "Black Hole",
			Unlock:          "Knockback Tome to level 10 (2 Silver)",
			Behavior:        "Pulls enemies inward (CC)",
			Types:           "AoE",
			Element:         "None",
			Special:         "Pull",
			Tags:            "aoe;cc;setup",
			Strategy:        "Duration/count for control; size for catch; great to set up other DPS",
			Damage:          of("1.3", "1.5", "1.8", "2", "2.5"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			Size:            of("13%", "16%", "18%", "21%", "26%"),
			Duration:        of("0.12", "0.14", "0.17", "0.19", "0.24"),
		},
		{
			Name:            "Poison Flask",
			Unlock:          "Kill Scorpionussy miniboss in Desert 3 times (2 Silver)",
			Behavior:        "Lobbed poison AoE applying stacks",
			Types:           "Projectile",
			Element:         "Poison",
			Special:         "Poison DoT",
			Tags:            "projectile;aoe;dot;poison",
			Strategy:        "Duration for stacking; speed for coverage; anti-crit; pairs with DoT boosts",
			Damage:          of("0.5", "0.6", "0.7", "0.8", "1"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			ProjectileSpeed: of("2", "2.4", "2.8", "3.2", "4"),
			Size:            of("15%", "18%", "21%", "24%", "30%"),
			Duration:        of("1", "1.2", "1.4", "1.6", "2"),
		},
		{
			Name:            "Katana",
			Unlock:          "5% drop from Desert Stage 1 Tumbleweed (2 Silver)",
			Behavior:        "Auto-target nearest melee slash",
			Types:           "Melee",
			Element:         "Physical",
			Special:         "None",
			Tags:            "melee;slash;crit",
			Strategy:        "Crit-focused melee; count/size for coverage; cooldown helps uptime",
			Damage:          of("2.2", "2.6", "3.1", "3.5", "4.4"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			Size:            of("20%", "24%", "28%", "32%", "40%"),
			CritChance:      of("8%", "10%", "11%", "13%", "16%"),
			CritDamage:      of("20%", "24%", "28%", "32%", "40%"),
		},
		{
			Name:     "Dragon's Breath",
			Unlock:   "Kill 1,000 Wisps as Fox on Desert (2 Silver)",
			Behavior: "Directional fire cone (channeled)",
			Types:    "Cone",
			Element:  "Fire",
			Special:  "Burn cone",
			Tags:     "fire;cone;dot",
			Strategy: "Duration and size for sustained burn; cooldown/quantity boost uptime",
			Damage:   of("3", "3.6", "4.2", "4.8", "6"),
			Size:     of("15%", "18%", "21%", "24%", "30%"),
			Duration: of("0.2", "0.24", "0.28", "0.32", "0.4"),
		},
		{
			Name:            "Dice",
			Unlock:          "Luck Tome to level 12 (4 Silver)",
			Behavior:        "Throws dice (damage 1-6); rolling 6 grants +0.5% permanent self crit chance",
			Types:           "Projectile",
			Element:         "Physical",
			Special:         "Self-buff crit on 6",
			Tags:            "projectile;crit;random",
			Strategy:        "Crit stacking; count for more rolls; speed for more throws",
			Damage:          of("2", "2.4", "2.8", "3.2", "4"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			ProjectileSpeed: of("0.2", "0.24", "0.28", "0.32", "0.4"),
			Size:            of("15%", "18%", "21%", "24%", "30%"),
			CritChance:      of("10%", "12%", "14%", "16%", "20%"),
			CritDamage:      of("20%", "24%", "28%", "32%", "40%"),
		},
		{
			Name:            "Hero Sword",
			Unlock:          "Defeat stage boss without picking ground items/powerups/shrines (4 Silver)",
			Behavior:        "Melee slash plus ranged slashing projectile (pierces)",
			Types:           "Hybrid",
			Element:         "Physical",
			Special:         "Pierce",
			Tags:            "melee;projectile;pierce",
			Strategy:        "Count for multi-projectiles; speed for reach; size for coverage",
			Damage:          of("2", "2.4", "2.8", "3.2", "4"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			ProjectileSpeed: of("4", "4.8", "5.6", "6.4", "8"),
			Size:            of("15%", "18%", "21%", "24%", "30%"),
		},
		{
			Name:            "Corrupted Sword",
			Unlock:          "Level Cursed Tome to 20 within 10:00 (8 Silver)",
			Behavior:        "Dual-direction slash; backward projectile pierces; damage scales up at low HP",
			Types:           "Hybrid",
			Element:         "Physical",
			Special:         "Damage scales up at low HP",
			Tags:            "melee;projectile;pierce;risk",
			Strategy:        "Count/speed for coverage; high-risk high-reward scaling at low HP",
			Damage:          of("2", "2.4", "2.8", "3.2", "4"),
			ProjectileCount: of("1", "1.2", "1.4", "1.6", "2"),
			ProjectileSpeed: of("4", "4.8", "5.6", "6.4", "8"),
			Size:            of("15%", "18%", "21%", "24%", "30%"),
		},
	}
}
