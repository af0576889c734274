package cmd

import (
	"fmt"
	"strings"

	"github.com/agrogen/agrogen/internal/focus"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newFocusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "focus [field...]",
		Short: "Show the leaf icon pose for a set of focused fields",
		Long: `Mark the given fields as focused and print the resulting pose.

Known fields: email, password, name, phone. With no fields the neutral pose
is printed. When several fields are focused the first in that order wins.

Examples:
  agrogen-cli focus
  agrogen-cli focus password
  agrogen-cli focus phone email`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var flags focus.Flags
			var focused []string
			title := cases.Title(language.English)
			for _, arg := range args {
				f, ok := focus.ParseField(arg)
				if !ok {
					return fmt.Errorf("unknown field %q", arg)
				}
				flags.Focus(f)
				focused = append(focused, title.String(string(f)))
			}

			d := focus.Derive(flags)
			out := cmd.OutOrStdout()
			if len(focused) == 0 {
				fmt.Fprintln(out, "Focused:   (none)")
			} else {
				fmt.Fprintf(out, "Focused:   %s\n", strings.Join(focused, ", "))
			}
			fmt.Fprintf(out, "Transform: %s\n", d.Transform())
			fmt.Fprintf(out, "Pulsing:   %t\n", d.Pulsing)
			return nil
		},
	}
}
