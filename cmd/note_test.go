package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestNoteCmd(t *testing.T) {
	cleanup := setupCmdTest(t)
	defer cleanup()

	cases := TestDataProvider{
		{
			description: "Should add a new note",
			args:        []string{"add", "groceries", "milk", "and", "bread", "--tags", "errands"},
			expectedOut: "note \"groceries\" added",
		},
		{
			description: "Should NOT add a note with a duplicate title",
			args:        []string{"add", "groceries", "something else"},
			expectedOut: "already exists",
		},
		{
			description: "Should add a second note",
			args:        []string{"add", "ideas", "learn the theremin"},
			expectedOut: "note \"ideas\" added",
		},
		{
			description: "Should list all notes",
			args:        []string{"all"},
			expectedOut: "milk and bread",
		},
		{
			description: "Should add only new tags",
			args:        []string{"tag", "groceries", "errands", "food"},
			expectedOut: "added tags: food",
		},
		{
			description: "Should report when every tag already exists",
			args:        []string{"tag", "groceries", "errands", "food"},
			expectedOut: "already exist",
		},
		{
			description: "Should NOT tag a missing note",
			args:        []string{"tag", "nothing", "x"},
			expectedOut: "not found",
		},
		{
			description: "Should search notes by tag",
			args:        []string{"search", "food"},
			expectedOut: "groceries",
		},
		{
			description: "Should reject an unknown sort key",
			args:        []string{"search", "groceries", "--sort-by", "sideways"},
			expectedOut: "unknown sort key",
		},
		{
			description: "Should reject a one character query",
			args:        []string{"search", "g", "--sort-by", "title_asc"},
			expectedOut: "at least 2 characters",
		},
		{
			description: "Should NOT rename to a taken title",
			args:        []string{"retitle", "groceries", "ideas"},
			expectedOut: "already exists",
		},
		{
			description: "Should rename a note",
			args:        []string{"retitle", "groceries", "shopping"},
			expectedOut: "renamed to \"shopping\"",
		},
		{
			description: "Should replace a note's content",
			args:        []string{"content", "shopping", "milk,", "eggs", "and", "flour"},
			expectedOut: "content updated",
		},
		{
			description: "Should NOT delete a missing note",
			args:        []string{"delete", "groceries"},
			expectedOut: "not found",
		},
		{
			description: "Should delete an existing note",
			args:        []string{"delete", "shopping"},
			expectedOut: "note \"shopping\" deleted",
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			runCase(t, createNoteCmd, c.args, c.expectedOut)
		})
	}
}

func TestNoteSearchSorting(t *testing.T) {
	cleanup := setupCmdTest(t)
	defer cleanup()

	runCase(t, createNoteCmd, []string{"add", "beta note", "b", "--tags", "x,y,z"}, "added")
	runCase(t, createNoteCmd, []string{"add", "alpha note", "a", "--tags", "x"}, "added")

	buff := new(bytes.Buffer)
	cmd := createNoteCmd()
	cmd.SetOut(buff)
	cmd.SetErr(buff)
	cmd.SetArgs([]string{"search", "note", "--sort-by", "tag_count_desc"})
	cmd.Execute()

	out := buff.String()
	beta := strings.Index(out, "beta note")
	alpha := strings.Index(out, "alpha note")
	if beta < 0 || alpha < 0 || beta > alpha {
		t.Errorf("Expected beta note (more tags) before alpha note, got: \n%s", out)
	}
}
