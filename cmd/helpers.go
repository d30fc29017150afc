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
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ymelnychuk/satchel/book"
	"github.com/ymelnychuk/satchel/colors"
	"github.com/ymelnychuk/satchel/storage"
)

// timeNow is stubbed out in tests that need a fixed date.
var timeNow = time.Now

// newAddressBook wires an AddressBook over the configured contacts
// document, initializing the file on first use.
func newAddressBook() (*book.AddressBook, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	saver := storage.NewDiskSaver(storageFs)
	if err := saver.EnsureFile(cfg.Storage.Contacts); err != nil {
		return nil, err
	}

	return book.NewAddressBook(saver, cfg.Storage.Contacts).WithClock(timeNow), nil
}

// newNotesBook wires a NotesBook over the configured notes document,
// initializing the file on first use.
func newNotesBook() (*book.NotesBook, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	saver := storage.NewDiskSaver(storageFs)
	if err := saver.EnsureFile(cfg.Storage.Notes); err != nil {
		return nil, err
	}

	return book.NewNotesBook(saver, cfg.Storage.Notes), nil
}

// translateErr is the single place the books' error conditions are
// turned into user-facing messages. Anything else passes through
// untouched.
func translateErr(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, book.ErrAlreadyExists),
		errors.Is(err, book.ErrNotFound),
		errors.Is(err, book.ErrInvalidArgument),
		book.IsValidationError(err):
		return formattedError("%v", err)
	}

	return err
}

func printEntry(cmd *cobra.Command, entry book.Entry) {
	cmd.Printf("%s\n", colors.Blue(entry.Name))

	if len(entry.Attributes.Phones) > 0 {
		cmd.Printf("  phones: %s\n", strings.Join(entry.Attributes.Phones, ", "))
	}
	if len(entry.Attributes.Emails) > 0 {
		cmd.Printf("  emails: %s\n", strings.Join(entry.Attributes.Emails, ", "))
	}
	if entry.Attributes.Birthday != nil {
		cmd.Printf("  birthday: %s\n", *entry.Attributes.Birthday)
	}
	if !entry.Attributes.Address.IsZero() {
		cmd.Printf("  address: %s\n", formatAddress(entry.Attributes.Address))
	}
}

func printNote(cmd *cobra.Command, note book.Note) {
	cmd.Printf("%s\n", colors.Blue(note.Title))
	cmd.Printf("  %s\n", note.Content)
	if len(note.Tags) > 0 {
		cmd.Printf("  tags: %s\n", strings.Join(note.Tags, ", "))
	}
}

func formatAddress(address book.Address) string {
	var parts []string
	for _, component := range address.Components() {
		if component != nil {
			parts = append(parts, *component)
		}
	}
	return strings.Join(parts, ", ")
}
