package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded session event.
type SimLogEntry struct {
	Tick     int
	Round    int     // 1-based round the event belongs to
	Category string  // target, round, timer, input, hud
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] R03 round    celebrate        pct=81
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] R%02d %-8s %-16s %s",
		e.Tick, e.Round, e.Category, e.Key, e.Value)
}

// SimLog collects structured events of a Session. The front-end shows the
// tail of it; tests and the headless report query it.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-frame score entries
// are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick, round int, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Round:    round,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick, round int, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, round, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Recent returns up to n of the newest entries, oldest first.
func (sl *SimLog) Recent(n int) []SimLogEntry {
	if n <= 0 {
		return nil
	}
	if n > len(sl.entries) {
		n = len(sl.entries)
	}
	return sl.entries[len(sl.entries)-n:]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterRound returns entries belonging to one round.
func (sl *SimLog) FilterRound(round int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Round == round {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the session so far.
func (sl *SimLog) Summary(tick int, hud HUD) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%04d ---\n", tick)
	fmt.Fprintf(&sb, "Rounds matched: %d  best: %d%%  current: %d%%\n", hud.Rounds, hud.BestPercent, hud.MatchPercent)
	if hud.TimerEnabled {
		fmt.Fprintf(&sb, "Time left: %s  ended: %v\n", hud.Remaining, hud.Ended)
	}
	fmt.Fprintf(&sb, "Targets: %d  celebrations: %d  advances: %d  skipped: %d\n",
		sl.CountCategory("target", "generated"),
		sl.CountCategory("round", "celebrate"),
		sl.CountCategory("round", "advance"),
		sl.CountCategory("round", "advance_skipped"))
	return sb.String()
}
