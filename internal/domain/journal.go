package domain

import "fmt"

// JournalSectionSize is the number of prompts in each journal section.
const JournalSectionSize = 3

// JournalEntry is one day's five-minute journal: three gratitudes, three
// goals, three affirmations. Blank strings are valid (unanswered prompts).
type JournalEntry struct {
	Gratitude    []string
	Goals        []string
	Affirmations []string
}

// EmptyJournalEntry returns an entry with all prompts blank, the shape a
// client sees for a day it has not written yet.
func EmptyJournalEntry() JournalEntry {
	return JournalEntry{
		Gratitude:    make([]string, JournalSectionSize),
		Goals:        make([]string, JournalSectionSize),
		Affirmations: make([]string, JournalSectionSize),
	}
}

// Validate rejects entries whose sections are not exactly three items.
func (e JournalEntry) Validate() error {
	for _, s := range []struct {
		name  string
		items []string
	}{
		{"gratitude", e.Gratitude},
		{"goals", e.Goals},
		{"affirmations", e.Affirmations},
	} {
		if len(s.items) != JournalSectionSize {
			return NewValidationError(s.name, fmt.Sprintf("must have exactly %d items", JournalSectionSize))
		}
	}

	return nil
}

// JournalKey is the storage key for a day's entry, shared with the
// client's local persistence: journal_<YYYY-MM-DD>.
func JournalKey(dateSeed string) string {
	return "journal_" + dateSeed
}
