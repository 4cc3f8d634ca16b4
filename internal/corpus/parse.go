package corpus

import (
	"fmt"
	"io"
	"strings"
)

// Delimiter separates tokens within a corpus line.
const Delimiter = ","

// Parse reads corpus text into a List.
//
// Each line is split on the delimiter into a flat token sequence and the
// tokens are grouped pairwise into (display, match). A pair missing either
// half is skipped; an odd trailing token is discarded. Parsing is lenient:
// malformed input never fails, it just contributes no entries.
//
// The first blank line partitions the file: entries before it are used,
// entries after it are pending. Without a blank line every entry is pending.
// A line that yields no valid pairs still counts toward the separator scan.
//
// Match strings are unique across the whole list; a later entry normalizing
// to an already seen match is dropped, first occurrence wins.
func Parse(raw string) *List {
	var head, tail []Entry
	seen := make(map[string]bool)
	split := false

	for _, line := range strings.Split(raw, "\n") {
		if isBlank(line) {
			if !split {
				split = true
			}
			continue
		}
		entries := parseLine(line, seen)
		if split {
			tail = append(tail, entries...)
		} else {
			head = append(head, entries...)
		}
	}

	if !split {
		return &List{Pending: head}
	}
	return &List{Used: head, Pending: tail}
}

// Load reads all of r and parses it.
func Load(r io.Reader) (*List, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read answer list: %w", err)
	}
	return Parse(string(raw)), nil
}

// Serialize renders l in the fixed one-pair-per-line packing: the used block,
// one blank line, then the pending block. Parse(Serialize(l)) reproduces the
// same entries and the same partition.
func (l *List) Serialize() string {
	var b strings.Builder
	for _, e := range l.Used {
		b.WriteString(e.Display)
		b.WriteString(Delimiter)
		b.WriteString(e.Match)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, e := range l.Pending {
		b.WriteString(e.Display)
		b.WriteString(Delimiter)
		b.WriteString(e.Match)
		b.WriteString("\n")
	}
	return b.String()
}

// parseLine pairs up a line's tokens, normalizing each match and skipping
// pairs already seen or with an empty half.
func parseLine(line string, seen map[string]bool) []Entry {
	tokens := strings.Split(line, Delimiter)
	var entries []Entry
	for i := 0; i+1 < len(tokens); i += 2 {
		display := strings.TrimSpace(tokens[i])
		match := Normalize(tokens[i+1])
		if display == "" || match == "" {
			continue
		}
		if seen[match] {
			continue
		}
		seen[match] = true
		entries = append(entries, Entry{Display: display, Match: match})
	}
	return entries
}

// isBlank reports whether a line is a separator: empty, or delimiters and
// whitespace only.
func isBlank(line string) bool {
	for _, tok := range strings.Split(line, Delimiter) {
		if strings.TrimSpace(tok) != "" {
			return false
		}
	}
	return true
}
