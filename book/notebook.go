package book

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/ymelnychuk/satchel/storage"
)

// notesKey is the single top-level key of the notes document.
const notesKey = "notes"

// Note is one free-form note, keyed by its unique title.
type Note struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// SortKey orders note search results.
type SortKey string

const (
	SortTitleAsc     SortKey = "title_asc"
	SortTitleDesc    SortKey = "title_desc"
	SortTagCountAsc  SortKey = "tag_count_asc"
	SortTagCountDesc SortKey = "tag_count_desc"
)

// ParseSortKey validates a raw sort key. An empty raw defaults to
// SortTitleAsc.
func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(raw) {
	case "":
		return SortTitleAsc, nil
	case SortTitleAsc, SortTitleDesc, SortTagCountAsc, SortTagCountDesc:
		return SortKey(raw), nil
	}
	return "", errors.Wrapf(ErrInvalidArgument, "unknown sort key %q", raw)
}

// NotesBook is the keyed note store, persisted as a single JSON
// document with a "notes" array. Like the address book, every call
// re-reads the document and every mutation rewrites it whole.
type NotesBook struct {
	saver storage.Saver
	path  string
}

func NewNotesBook(saver storage.Saver, path string) *NotesBook {
	return &NotesBook{saver: saver, path: path}
}

// AddNote stores a new note. Fails with ErrAlreadyExists when a note
// with the same title is already on file.
func (n *NotesBook) AddNote(title, content string, tags []string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Value: title, Reason: "must not be blank"}
	}

	notes, err := n.load()
	if err != nil {
		return err
	}

	if noteIndex(notes, title) >= 0 {
		return errors.Wrapf(ErrAlreadyExists, "note %q", title)
	}

	notes = append(notes, Note{Title: title, Content: content, Tags: tags})
	return n.save(notes)
}

// DeleteNote removes the note with the given title. Fails with
// ErrNotFound when no such note exists.
func (n *NotesBook) DeleteNote(title string) error {
	notes, err := n.load()
	if err != nil {
		return err
	}

	idx := noteIndex(notes, title)
	if idx < 0 {
		return errors.Wrapf(ErrNotFound, "note %q", title)
	}

	notes = append(notes[:idx], notes[idx+1:]...)
	return n.save(notes)
}

// AllNotes returns every note in document order.
func (n *NotesBook) AllNotes() ([]Note, error) {
	return n.load()
}

// AddTags merges tags into the note's tag list, skipping tags already
// present. It reports which tags were newly added and the resulting
// tag list.
func (n *NotesBook) AddTags(title string, tags []string) (added, all []string, err error) {
	notes, err := n.load()
	if err != nil {
		return nil, nil, err
	}

	idx := noteIndex(notes, title)
	if idx < 0 {
		return nil, nil, errors.Wrapf(ErrNotFound, "note %q", title)
	}

	existing := notes[idx].Tags
	for _, tag := range tags {
		if !containsString(existing, tag) {
			existing = append(existing, tag)
			added = append(added, tag)
		}
	}
	notes[idx].Tags = existing

	if err := n.save(notes); err != nil {
		return nil, nil, err
	}
	return added, existing, nil
}

// ChangeTitle renames a note. The old title must exist and the new one
// must not already belong to another note.
func (n *NotesBook) ChangeTitle(oldTitle, newTitle string) error {
	if strings.TrimSpace(newTitle) == "" {
		return &ValidationError{Field: "title", Value: newTitle, Reason: "must not be blank"}
	}

	notes, err := n.load()
	if err != nil {
		return err
	}

	idx := noteIndex(notes, oldTitle)
	if idx < 0 {
		return errors.Wrapf(ErrNotFound, "note %q", oldTitle)
	}
	if noteIndex(notes, newTitle) >= 0 {
		return errors.Wrapf(ErrAlreadyExists, "note %q", newTitle)
	}

	notes[idx].Title = newTitle
	return n.save(notes)
}

// ChangeContent replaces a note's content.
func (n *NotesBook) ChangeContent(title, newContent string) error {
	notes, err := n.load()
	if err != nil {
		return err
	}

	idx := noteIndex(notes, title)
	if idx < 0 {
		return errors.Wrapf(ErrNotFound, "note %q", title)
	}

	notes[idx].Content = newContent
	return n.save(notes)
}

// SearchNotes returns the notes whose title or any tag contains query
// as a case-insensitive substring, ordered by sortBy.
func (n *NotesBook) SearchNotes(query string, sortBy SortKey) ([]Note, error) {
	if len([]rune(query)) < minSearchPhraseLen {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"search query must be at least %d characters", minSearchPhraseLen)
	}
	if _, err := ParseSortKey(string(sortBy)); err != nil {
		return nil, err
	}

	notes, err := n.load()
	if err != nil {
		return nil, err
	}

	var found []Note
	for _, note := range notes {
		if noteMatches(note, query) {
			found = append(found, note)
		}
	}

	sortNotes(found, sortBy)
	return found, nil
}

func (n *NotesBook) load() ([]Note, error) {
	doc, err := n.saver.Read(n.path)
	if err != nil {
		return nil, err
	}

	raw, ok := doc.Get(notesKey)
	if !ok {
		return nil, nil
	}

	var notes []Note
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, errors.Wrap(err, "decoding notes")
	}
	return notes, nil
}

func (n *NotesBook) save(notes []Note) error {
	if notes == nil {
		notes = []Note{}
	}

	raw, err := json.Marshal(notes)
	if err != nil {
		return err
	}

	doc, err := n.saver.Read(n.path)
	if err != nil {
		return err
	}
	doc.Set(notesKey, raw)

	return n.saver.Write(n.path, doc)
}

func noteIndex(notes []Note, title string) int {
	for i, note := range notes {
		if note.Title == title {
			return i
		}
	}
	return -1
}

func noteMatches(note Note, query string) bool {
	query = strings.ToLower(query)
	if strings.Contains(strings.ToLower(note.Title), query) {
		return true
	}
	for _, tag := range note.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func sortNotes(notes []Note, sortBy SortKey) {
	switch sortBy {
	case SortTitleAsc, "":
		sort.SliceStable(notes, func(i, j int) bool { return notes[i].Title < notes[j].Title })
	case SortTitleDesc:
		sort.SliceStable(notes, func(i, j int) bool { return notes[i].Title > notes[j].Title })
	case SortTagCountAsc:
		sort.SliceStable(notes, func(i, j int) bool { return len(notes[i].Tags) < len(notes[j].Tags) })
	case SortTagCountDesc:
		sort.SliceStable(notes, func(i, j int) bool { return len(notes[i].Tags) > len(notes[j].Tags) })
	}
}

func containsString(list []string, item string) bool {
	for _, value := range list {
		if value == item {
			return true
		}
	}
	return false
}
