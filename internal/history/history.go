// Package history maintains the ordered, duplicate-free list of
// previously launched descriptor strings. The list is persisted as a
// plain line-oriented text file in the working directory: one entry per
// line, no header, no escaping. It is modeled as a value passed in and
// out rather than ambient state so the session loop stays testable
// without a filesystem.
package history

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultFile is the history file name, relative to the working
// directory.
const DefaultFile = "baserun_history.txt"

// Load reads the history file at path, one trimmed entry per line, in
// file order. A missing or unreadable file yields an empty list; losing
// stale history is preferable to refusing to start.
func Load(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var entries []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries
}

// RecordUse returns entries updated for a successful use of entry: a
// brand-new entry is appended at the end, an existing one is moved to
// the front. Repeating the same use is a no-op, and an entry already at
// the front stays put.
func RecordUse(entries []string, entry string) []string {
	for i, e := range entries {
		if e != entry {
			continue
		}
		if i == 0 {
			return entries
		}
		out := make([]string, 0, len(entries))
		out = append(out, entry)
		out = append(out, entries[:i]...)
		return append(out, entries[i+1:]...)
	}
	return append(entries, entry)
}

// Save overwrites the history file at path with one line per entry in
// current order. Write failures are returned to the caller; the launch
// that triggered the save has already happened and is not rolled back.
func Save(path string, entries []string) error {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write history %s: %w", path, err)
	}
	return nil
}
