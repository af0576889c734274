package cmd

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/agrogen/agrogen/internal/config"
	"github.com/agrogen/agrogen/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newRoutesCmd() *cobra.Command {
	var methodFilter string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the HTTP routes the server registers",
		Long: `Build the server exactly as cmd/server does and print its route table.

Examples:
  agrogen-cli routes
  agrogen-cli routes --method post`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := server.New(config.FromEnv())
			if err != nil {
				return fmt.Errorf("building server: %w", err)
			}
			defer s.Close()
			s.RegisterRoutes()

			routes := filterRoutes(s.Routes(), methodFilter)
			writeRoutes(cmd, routes)
			return nil
		},
	}
	cmd.Flags().StringVar(&methodFilter, "method", "", "Only show routes for this HTTP method")
	return cmd
}

func filterRoutes(routes []*echo.Route, method string) []*echo.Route {
	method = strings.ToUpper(strings.TrimSpace(method))
	out := make([]*echo.Route, 0, len(routes))
	for _, r := range routes {
		// Unnamed routes carry no handler to show.
		if r.Name == "" {
			continue
		}
		if method != "" && r.Method != method {
			continue
		}
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b *echo.Route) int {
		if c := cmp.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return cmp.Compare(a.Method, b.Method)
	})
	return out
}

func writeRoutes(cmd *cobra.Command, routes []*echo.Route) {
	title := cases.Title(language.English)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATH\tHANDLER")
	for _, r := range routes {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Method, r.Path, title.String(handlerName(r.Name)))
	}
	w.Flush()
	fmt.Fprintln(cmd.OutOrStdout(), printer().Sprintf("\n%d routes", len(routes)))
}

// handlerName shortens "pkg/path.(*Type).Method-fm" to "type method".
func handlerName(full string) string {
	name := full[strings.LastIndex(full, "/")+1:]
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.NewReplacer("(*", "", ")", "", ".", " ").Replace(name)
	return splitCamel(name)
}

func splitCamel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' && s[i-1] != ' ' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
