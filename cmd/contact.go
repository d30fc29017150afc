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
	"github.com/spf13/cobra"

	"github.com/ymelnychuk/satchel/book"
	"github.com/ymelnychuk/satchel/colors"
)

var (
	chunkArg        int
	birthdayDaysArg int
)

func init() {
	rootCmd.AddCommand(createContactCmd())
}

func createContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage the contacts in your address book",
	}

	cmd.AddCommand(
		createContactAddCmd(),
		createContactDeleteCmd(),
		createContactShowCmd(),
		createContactAllCmd(),
		createContactSearchCmd(),
		createContactPhoneCmd(),
		createContactEmailCmd(),
		createContactBirthdayCmd(),
		createContactBirthdaysCmd(),
		createContactAddressCmd(),
	)

	return cmd
}

func createContactAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME PHONE [BIRTHDAY]",
		Short: "Add a new contact with a phone number and an optional DD-MM-YYYY birthday",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := newAddressBook()
			if err != nil {
				return err
			}

			birthday := ""
			if len(args) > 2 {
				birthday = args[2]
			}

			record, err := book.NewRecord(args[0], birthday)
			if err != nil {
				return translateErr(err)
			}
			if err := record.AddPhone(args[1]); err != nil {
				return translateErr(err)
			}
			if err := contacts.AddRecord(record); err != nil {
				return translateErr(err)
			}

			cmd.Printf("%s contact %q added\n", colors.Green("✓"), args[0])
			return nil
		},
	}
}

func createContactDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a contact from the address book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := newAddressBook()
			if err != nil {
				return err
			}

			if err := contacts.Delete(args[0]); err != nil {
				return translateErr(err)
			}

			cmd.Printf("%s contact %q deleted\n", colors.Green("✓"), args[0])
			return nil
		},
	}
}

func createContactShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show one contact's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := newAddressBook()
			if err != nil {
				return err
			}

			record, err := contacts.Find(args[0])
			if err != nil {
				return translateErr(err)
			}
			if record == nil {
				return formattedError("contact %q was not found in the address book", args[0])
			}

			printEntry(cmd, book.Entry{Name: record.Name.Value(), Attributes: record.Attributes()})
			return nil
		},
	}
}

func createContactAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "List every contact, in chunks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := newAddressBook()
			if err != nil {
				return err
			}

			iter, err := contacts.Iterator(chunkArg)
			if err != nil {
				return translateErr(err)
			}

			empty := true
			for chunk, ok := iter.Next(); ok; chunk, ok = iter.Next() {
				if !empty {
					cmd.Println(colors.Yellow("--"))
				}
				for _, entry := range chunk {
					printEntry(cmd, entry)
				}
				empty = false
			}

			if empty {
				cmd.Println("The address book is empty.")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&chunkArg, "chunk", "c", 1, "how many contacts to show per chunk")

	return cmd
}

func createContactSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search PHRASE",
		Short: "Search contacts by name, phone, email, address or birthday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := newAddressBook()
			if err != nil {
				return err
			}

			found, err := contacts.SearchContacts(args[0])
			if err != nil {
				return translateErr(err)
			}
			if len(found) == 0 {
				cmd.Printf("No contacts match %q.\n", args[0])
				return nil
			}

			for _, entry := range found {
				printEntry(cmd, entry)
			}
			return nil
		},
	}
}

func createContactPhoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Manage a contact's phone numbers",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME PHONE",
			Short: "Add a phone number to a contact",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withContact(cmd, args[0], func(record *book.Record) (string, error) {
					return "phone " + args[1] + " added", record.AddPhone(args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "change NAME OLD NEW",
			Short: "Replace one of a contact's phone numbers",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withContact(cmd, args[0], func(record *book.Record) (string, error) {
					return "phone changed to " + args[2], record.EditPhone(args[1], args[2])
				})
			},
		},
		&cobra.Command{
			Use:   "remove NAME PHONE",
			Short: "Remove a phone number from a contact",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withContact(cmd, args[0], func(record *book.Record) (string, error) {
					return "phone " + args[1] + " removed", record.RemovePhone(args[1])
				})
			},
		},
	)

	return cmd
}

func createContactEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Manage a contact's email addresses",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME EMAIL",
			Short: "Add an email address to a contact",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withContact(cmd, args[0], func(record *book.Record) (string, error) {
					return "email " + args[1] + " added", record.AddEmail(args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "change NAME OLD NEW",
			Short: "Replace one of a contact's email addresses",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withContact(cmd, args[0], func(record *book.Record) (string, error) {
					return "email changed to " + args[2], record.EditEmail(args[1], args[2])
				})
			},
		},
	)

	return cmd
}

func createContactBirthdayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "birthday",
		Short: "Manage a contact's birthday",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set NAME DD-MM-YYYY",
			Short: "Set or replace a contact's birthday",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withContact(cmd, args[0], func(record *book.Record) (string, error) {
					return "birthday set to " + args[1], record.SetBirthday(args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "days NAME",
			Short: "Show how many days are left until a contact's next birthday",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				contacts, err := newAddressBook()
				if err != nil {
					return err
				}

				record, err := contacts.Find(args[0])
				if err != nil {
					return translateErr(err)
				}
				if record == nil {
					return formattedError("contact %q was not found in the address book", args[0])
				}

				days, err := record.DaysToBirthday(timeNow())
				if err != nil {
					return translateErr(err)
				}

				cmd.Printf("%d day(s) until %s's next birthday\n", days, args[0])
				return nil
			},
		},
	)

	return cmd
}

func createContactBirthdaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "List contacts with a birthday in the next N days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := newAddressBook()
			if err != nil {
				return err
			}

			upcoming, err := contacts.UpcomingBirthdays(birthdayDaysArg)
			if err != nil {
				return translateErr(err)
			}
			if len(upcoming) == 0 {
				cmd.Printf("No birthdays in the next %d day(s).\n", birthdayDaysArg)
				return nil
			}

			for _, entry := range upcoming {
				cmd.Printf("%s — in %d day(s) (%s)\n",
					colors.Blue(entry.Name), entry.DaysToBirthday, *entry.Attributes.Birthday)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&birthdayDaysArg, "days", "d", 7, "size of the birthday window in days")

	return cmd
}

func createContactAddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Manage a contact's address",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set NAME [COUNTRY [CITY [STREET [HOUSE [APARTMENT]]]]]",
			Short: "Set or replace a contact's address",
			Args:  cobra.RangeArgs(1, 6),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withContact(cmd, args[0], func(record *book.Record) (string, error) {
					record.SetAddress(args[1:])
					return "address updated", nil
				})
			},
		},
	)

	return cmd
}

// withContact runs the find → mutate → update cycle shared by every
// field-level contact command.
func withContact(cmd *cobra.Command, name string, mutate func(*book.Record) (string, error)) error {
	contacts, err := newAddressBook()
	if err != nil {
		return err
	}

	record, err := contacts.Find(name)
	if err != nil {
		return translateErr(err)
	}
	if record == nil {
		return formattedError("contact %q was not found in the address book", name)
	}

	message, err := mutate(record)
	if err != nil {
		return translateErr(err)
	}

	if err := contacts.UpdateRecord(record); err != nil {
		return translateErr(err)
	}

	cmd.Printf("%s %s for contact %q\n", colors.Green("✓"), message, name)
	return nil
}
