/*
Copyright © 2023 Yurii Melnychuk

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ymelnychuk/satchel/book"
	"github.com/ymelnychuk/satchel/colors"
)

var (
	tagsArg   []string
	sortByArg string
)

func init() {
	rootCmd.AddCommand(createNoteCmd())
}

func createNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage your notes",
	}

	cmd.AddCommand(
		createNoteAddCmd(),
		createNoteDeleteCmd(),
		createNoteAllCmd(),
		createNoteSearchCmd(),
		createNoteTagCmd(),
		createNoteRetitleCmd(),
		createNoteContentCmd(),
	)

	return cmd
}

func createNoteAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add TITLE CONTENT...",
		Short: "Add a new note",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := newNotesBook()
			if err != nil {
				return err
			}

			if err := notes.AddNote(args[0], strings.Join(args[1:], " "), tagsArg); err != nil {
				return translateErr(err)
			}

			cmd.Printf("%s note %q added\n", colors.Green("✓"), args[0])
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&tagsArg, "tags", "t", nil, "tags to attach to the note")

	return cmd
}

func createNoteDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TITLE",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := newNotesBook()
			if err != nil {
				return err
			}

			if err := notes.DeleteNote(args[0]); err != nil {
				return translateErr(err)
			}

			cmd.Printf("%s note %q deleted\n", colors.Green("✓"), args[0])
			return nil
		},
	}
}

func createNoteAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "List every note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := newNotesBook()
			if err != nil {
				return err
			}

			all, err := notes.AllNotes()
			if err != nil {
				return translateErr(err)
			}
			if len(all) == 0 {
				cmd.Println("The notes book is empty.")
				return nil
			}

			for _, note := range all {
				printNote(cmd, note)
			}
			return nil
		},
	}
}

func createNoteSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search notes by title or tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := newNotesBook()
			if err != nil {
				return err
			}

			sortKey, err := book.ParseSortKey(sortByArg)
			if err != nil {
				return translateErr(err)
			}

			found, err := notes.SearchNotes(args[0], sortKey)
			if err != nil {
				return translateErr(err)
			}
			if len(found) == 0 {
				cmd.Printf("No notes match %q.\n", args[0])
				return nil
			}

			for _, note := range found {
				printNote(cmd, note)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sortByArg, "sort-by", "s", string(book.SortTitleAsc),
		"sort order: title_asc, title_desc, tag_count_asc or tag_count_desc")

	return cmd
}

func createNoteTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag TITLE TAG...",
		Short: "Add tags to a note, skipping tags it already has",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := newNotesBook()
			if err != nil {
				return err
			}

			added, all, err := notes.AddTags(args[0], args[1:])
			if err != nil {
				return translateErr(err)
			}

			if len(added) == 0 {
				cmd.Printf("All specified tags already exist on note %q.\n", args[0])
			} else {
				cmd.Printf("%s added tags: %s\n", colors.Green("✓"), strings.Join(added, ", "))
			}
			cmd.Printf("  tags: %s\n", strings.Join(all, ", "))
			return nil
		},
	}
}

func createNoteRetitleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retitle OLD NEW",
		Short: "Rename a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := newNotesBook()
			if err != nil {
				return err
			}

			if err := notes.ChangeTitle(args[0], args[1]); err != nil {
				return translateErr(err)
			}

			cmd.Printf("%s note %q renamed to %q\n", colors.Green("✓"), args[0], args[1])
			return nil
		},
	}
}

func createNoteContentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content TITLE CONTENT...",
		Short: "Replace a note's content",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := newNotesBook()
			if err != nil {
				return err
			}

			if err := notes.ChangeContent(args[0], strings.Join(args[1:], " ")); err != nil {
				return translateErr(err)
			}

			cmd.Printf("%s note %q content updated\n", colors.Green("✓"), args[0])
			return nil
		},
	}
}
