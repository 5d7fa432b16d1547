package app

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// PrintRoutes writes the route table, one route per line.
func (a *Application) PrintRoutes(out io.Writer) error {
	infos := a.Routes()
	if len(infos) == 0 {
		_, err := fmt.Fprintln(out, "No routes registered.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATH\tNAME")
	fmt.Fprintln(w, "------\t----\t----")
	for _, ri := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
	}
	return w.Flush()
}
