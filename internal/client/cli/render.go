package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dmitrijs2005/landkeeper/internal/collection"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
)

func printViews(w io.Writer, views []collection.View, focus string) {
	if len(views) == 0 {
		fmt.Fprintln(w, "(empty)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tSTATE\tTITLE")
	for _, v := range views {
		mark := ""
		if v.ID == focus {
			mark = ">"
		}
		state := v.State
		if v.Stale {
			state += " (changed remotely)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, v.ID, state, title(v.Fields))
	}
	_ = tw.Flush()
}

func printView(w io.Writer, v collection.View) {
	fmt.Fprintf(w, "%s %s [%s]", v.Collection, v.ID, v.State)
	if v.Stale {
		fmt.Fprint(w, " changed remotely, discard to reload")
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(tw, "  %s\t%v\n", k, v.Fields[k])
	}
	for _, m := range v.Media {
		fmt.Fprintf(tw, "  %s\t%s\n", m.Slot, mediaLabel(m))
	}
	_ = tw.Flush()

	for _, c := range v.Children {
		label := c.ID
		if c.New {
			label += " (new)"
		}
		fmt.Fprintf(w, "  - %s\n", label)
		for _, m := range c.Media {
			fmt.Fprintf(w, "      %s: %s\n", m.Slot, mediaLabel(m))
		}
	}
}

func mediaLabel(m collection.MediaRef) string {
	switch {
	case m.Staged:
		return "staged " + m.FileName
	case m.Key != "":
		return m.Key
	default:
		return "(none)"
	}
}

func printNotice(w io.Writer, n notify.Notice) {
	mark := "*"
	if n.Read {
		mark = " "
	}
	fmt.Fprintf(w, "%s %s  %s  %s", mark, n.ID, n.Time.Local().Format("15:04:05"), n.Title)
	if n.Body != "" {
		fmt.Fprintf(w, ": %s", n.Body)
	}
	fmt.Fprintln(w)
}
