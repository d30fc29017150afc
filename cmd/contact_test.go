package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type TestDataProvider []struct {
	description string
	args        []string
	expectedOut string
}

// setupCmdTest points the config at the test fixture, swaps the data
// filesystem for an in-memory one and freezes the clock. The returned
// cleanup restores everything.
func setupCmdTest(t *testing.T) func() {
	t.Helper()

	savedCfgFile := cfgFile
	savedFs := storageFs
	savedNow := timeNow

	path, _ := os.Getwd()
	cfgFile = filepath.Join(path, "test-fixtures", "config.yml")
	storageFs = afero.NewMemMapFs()
	timeNow = func() time.Time {
		return time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	}

	return func() {
		cfgFile = savedCfgFile
		storageFs = savedFs
		timeNow = savedNow
	}
}

func runCase(t *testing.T, newCmd func() *cobra.Command, args []string, expectedOut string) {
	t.Helper()

	buff := new(bytes.Buffer)

	cmd := newCmd()
	cmd.SetOut(buff)
	cmd.SetErr(buff)
	cmd.SetArgs(args)

	cmd.Execute()

	actualOut := buff.String()
	if !strings.Contains(actualOut, expectedOut) {
		t.Errorf("Expected: \n\"%s\" \nTo contain: \n\"%s\"", actualOut, expectedOut)
	}
}

func TestContactCmd(t *testing.T) {
	cleanup := setupCmdTest(t)
	defer cleanup()

	cases := TestDataProvider{
		{
			description: "Should add a new contact",
			args:        []string{"add", "John", "1234567890"},
			expectedOut: "contact \"John\" added",
		},
		{
			description: "Should NOT add the same contact twice",
			args:        []string{"add", "John", "5556667777"},
			expectedOut: "already exists",
		},
		{
			description: "Should NOT add a contact with a bad phone",
			args:        []string{"add", "Jane", "12345"},
			expectedOut: "must be exactly 10 digits",
		},
		{
			description: "Should show an existing contact",
			args:        []string{"show", "John"},
			expectedOut: "1234567890",
		},
		{
			description: "Should NOT show a missing contact",
			args:        []string{"show", "Nobody"},
			expectedOut: "was not found",
		},
		{
			description: "Should change an existing phone",
			args:        []string{"phone", "change", "John", "1234567890", "1112223333"},
			expectedOut: "phone changed to 1112223333",
		},
		{
			description: "Should show the new phone after the change",
			args:        []string{"show", "John"},
			expectedOut: "1112223333",
		},
		{
			description: "Should NOT change a phone that is not on the contact",
			args:        []string{"phone", "change", "John", "0000000000", "1112223333"},
			expectedOut: "not found",
		},
		{
			description: "Should set a birthday",
			args:        []string{"birthday", "set", "John", "15-01-1990"},
			expectedOut: "birthday set to 15-01-1990",
		},
		{
			description: "Should NOT set a malformed birthday",
			args:        []string{"birthday", "set", "John", "1990-01-15"},
			expectedOut: "DD-MM-YYYY",
		},
		{
			description: "Should count days to the next birthday",
			args:        []string{"birthday", "days", "John"},
			expectedOut: "5 day(s)",
		},
		{
			description: "Should list upcoming birthdays within the window",
			args:        []string{"birthdays", "--days", "7"},
			expectedOut: "in 5 day(s)",
		},
		{
			description: "Should NOT accept a negative birthday window",
			args:        []string{"birthdays", "--days", "-1"},
			expectedOut: "must not be negative",
		},
		{
			description: "Should add an email",
			args:        []string{"email", "add", "John", "john@example.com"},
			expectedOut: "email john@example.com added",
		},
		{
			description: "Should NOT add a malformed email",
			args:        []string{"email", "add", "John", "john-at-example"},
			expectedOut: "local@domain.tld",
		},
		{
			description: "Should set an address",
			args:        []string{"address", "set", "John", "Ukraine", "Kyiv"},
			expectedOut: "address updated",
		},
		{
			description: "Should find a contact by name substring",
			args:        []string{"search", "oh"},
			expectedOut: "John",
		},
		{
			description: "Should find a contact by address component",
			args:        []string{"search", "Kyiv"},
			expectedOut: "John",
		},
		{
			description: "Should reject a one character search phrase",
			args:        []string{"search", "j"},
			expectedOut: "at least 2 characters",
		},
		{
			description: "Should list all contacts",
			args:        []string{"all"},
			expectedOut: "John",
		},
		{
			description: "Should NOT delete a missing contact",
			args:        []string{"delete", "Nobody"},
			expectedOut: "not found",
		},
		{
			description: "Should delete an existing contact",
			args:        []string{"delete", "John"},
			expectedOut: "contact \"John\" deleted",
		},
		{
			description: "Should report an empty address book",
			args:        []string{"all"},
			expectedOut: "The address book is empty.",
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			runCase(t, createContactCmd, c.args, c.expectedOut)
		})
	}
}

func TestContactAllChunks(t *testing.T) {
	cleanup := setupCmdTest(t)
	defer cleanup()

	for i, name := range []string{"Alice", "Bob", "Carol"} {
		runCase(t, createContactCmd,
			[]string{"add", name, "111111111" + string(rune('0'+i))}, "added")
	}

	buff := new(bytes.Buffer)
	cmd := createContactCmd()
	cmd.SetOut(buff)
	cmd.SetErr(buff)
	cmd.SetArgs([]string{"all", "--chunk", "2"})
	cmd.Execute()

	out := buff.String()
	if strings.Count(out, "--") != 1 {
		t.Errorf("Expected exactly one chunk separator in: \n%q", out)
	}
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		if !strings.Contains(out, name) {
			t.Errorf("Expected output to contain %q", name)
		}
	}
}
