package cli

import (
	"fmt"
	"os"

	"github.com/Lotendan/wxWidgets/internal/storage"
)

// Flags for the `list` command line command, for `go-flags` to parse command
// line args into.
type ListCommand struct {
	Sheet string `short:"s" long:"sheet" description:"the sheet file to list" value-name:"<file>" required:"true"`
}

// Executes the list command, dumping a sheet's properties to stdout.
// (This gets called by `go-flags` when `list` is provided on the command
// line)
func (command *ListCommand) Execute(args []string) error {
	handler := storage.NewYAMLSheetHandler(command.Sheet)
	properties, err := handler.Properties()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}

	for _, p := range properties {
		value := p.ValueString()
		if p.Value().IsNull() {
			value = "<unspecified>"
		}
		fmt.Printf("%s: %s (editor: %s)\n", p.Label(), value, p.EditorName())
	}
	return nil
}
