package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Garsondee/Last-Bell/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	discard  bool
	err      error

	ticks      int
	seconds    float64
	shots      int
	dryFires   int
	kills      int
	unlocks    int
	reloads    int
	crossings  int
	endCard    string
	firstKill  int
	exitOpened int
	loaded     int
	reserve    int
	log        string
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var ending string
	var verbose bool

	flag.IntVar(&runs, "runs", 2, "number of headless playthroughs")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&ending, "ending", "both", "ending to script: good, bad or both (alternating)")
	flag.BoolVar(&verbose, "v", false, "print each run's event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if ending != "good" && ending != "bad" && ending != "both" {
		fmt.Printf("error: unsupported ending %q (supported: good, bad, both)\n", ending)
		os.Exit(2)
	}

	fmt.Printf("=== Headless Playthrough Report ===\n")
	fmt.Printf("runs=%d ending=%s seed_base=%d seed_step=%d\n\n", runs, ending, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		discard := ending == "good" || (ending == "both" && i%2 == 0)
		rs := runPlaythrough(i+1, seed, discard)
		all = append(all, rs)
		printRun(rs, verbose)
	}

	if failed := printAggregate(all); failed > 0 {
		os.Exit(1)
	}
}

func runPlaythrough(runIndex int, seed int64, discard bool) runStats {
	ts := game.NewTestSession(game.WithSeed(seed))
	err := ts.AutoPlay(discard)
	rs := runStats{runIndex: runIndex, seed: seed, discard: discard, err: err}
	if ts.Session == nil {
		return rs
	}

	entries := ts.Events.Entries()
	rs.ticks = ts.Session.Tick()
	rs.seconds = ts.Clock.Now().Seconds()
	rs.shots = countKey(entries, "combat", "shot")
	rs.dryFires = countKey(entries, "combat", "dry_fire")
	rs.kills = countKey(entries, "combat", "kill")
	rs.unlocks = countKey(entries, "door", "unlock")
	rs.reloads = countKey(entries, "reload", "start")
	rs.crossings = countKey(entries, "transition", "end")
	rs.firstKill = firstTick(entries, "combat", "kill")
	rs.exitOpened = firstTick(entries, "door", "exit_spawned")
	rs.loaded, rs.reserve = ts.Inv.Loaded, ts.Inv.Reserve
	if ts.Dialogue != nil && ts.Dialogue.Done() {
		rs.endCard = ts.Dialogue.EndCard()
	}
	rs.log = ts.Events.Format()
	return rs
}

func countKey(entries []game.SimLogEntry, category, key string) int {
	n := 0
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			n++
		}
	}
	return n
}

// firstTick returns the tick of the first matching entry, or -1.
func firstTick(entries []game.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

// expectedCard is the end card a run should reach.
func expectedCard(discard bool) string {
	if discard {
		return "GOOD ENDING"
	}
	return "BAD ENDING"
}

func printRun(rs runStats, verbose bool) {
	fmt.Printf("--- run %d seed=%d discard=%v ---\n", rs.runIndex, rs.seed, rs.discard)
	if rs.err != nil {
		fmt.Printf("  error: %v\n", rs.err)
	}
	fmt.Printf("  ticks=%d time=%.2fs crossings=%d\n", rs.ticks, rs.seconds, rs.crossings)
	fmt.Printf("  shots=%d dry=%d kills=%d unlocks=%d reloads=%d\n", rs.shots, rs.dryFires, rs.kills, rs.unlocks, rs.reloads)
	fmt.Printf("  first_kill=T%d exit_opened=T%d ammo=%d/%d\n", rs.firstKill, rs.exitOpened, rs.loaded, rs.reserve)
	fmt.Printf("  ending=%q\n", rs.endCard)
	if verbose && rs.log != "" {
		fmt.Println(indent(rs.log, "    "))
	}
	fmt.Println()
}

// printAggregate prints totals and returns how many runs failed.
func printAggregate(all []runStats) int {
	failed := 0
	shots, kills := 0, 0
	for _, rs := range all {
		shots += rs.shots
		kills += rs.kills
		if rs.err != nil || rs.endCard != expectedCard(rs.discard) {
			failed++
		}
	}
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d failed=%d\n", len(all), failed)
	if len(all) > 0 {
		fmt.Printf("avg_shots=%.1f avg_kills=%.1f\n", avg(shots, len(all)), avg(kills, len(all)))
	}
	if shots > 0 {
		fmt.Printf("accuracy=%.0f%%\n", 100*float64(kills)/float64(shots))
	}
	return failed
}

func avg(sum int, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
