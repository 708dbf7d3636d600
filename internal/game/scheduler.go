package game

import (
	"sort"
	"time"
)

// task is a one-shot callback due at a wall-clock instant.
type task struct {
	due  time.Time
	seq  int
	name string
	fn   func(now time.Time)
}

// Scheduler is a single-threaded queue of delayed callbacks drained by the
// frame loop. Tasks cannot be cancelled; any guard belongs inside the
// callback and is evaluated when it fires.
type Scheduler struct {
	tasks []task
	seq   int
}

// After queues fn to run once at now+d.
func (s *Scheduler) After(now time.Time, d time.Duration, name string, fn func(now time.Time)) {
	s.seq++
	s.tasks = append(s.tasks, task{due: now.Add(d), seq: s.seq, name: name, fn: fn})
}

// RunDue fires every task due at or before now, earliest first, and
// returns the names of the tasks that ran. Tasks queued by a callback run
// on a later drain.
func (s *Scheduler) RunDue(now time.Time) []string {
	if len(s.tasks) == 0 {
		return nil
	}
	var due, keep []task
	for _, t := range s.tasks {
		if !t.due.After(now) {
			due = append(due, t)
		} else {
			keep = append(keep, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	s.tasks = keep
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	names := make([]string, 0, len(due))
	for _, t := range due {
		t.fn(now)
		names = append(names, t.name)
	}
	return names
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int { return len(s.tasks) }
