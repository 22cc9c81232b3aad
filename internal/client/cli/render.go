package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/lostfound/internal/client/images"
	"github.com/dmitrijs2005/lostfound/internal/client/models"
	"github.com/dmitrijs2005/lostfound/internal/client/services"
)

func renderPage(w io.Writer, v services.PageView) {
	if v.Criteria.IsZero() {
		fmt.Fprintln(w, "Filters: none")
	} else {
		fmt.Fprintf(w, "Filters: %s\n", v.Criteria)
	}

	if len(v.Items) == 0 {
		fmt.Fprintln(w, "No items match your filters.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTYPE\tSTATUS\tDATE\tTITLE\tCATEGORY\tLOCATION")
		for _, e := range v.Items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				e.ID, e.Kind, e.Status, e.OccurredAt.Format(time.DateOnly),
				truncate(e.Title, 40), e.Category, e.Location)
		}
		_ = tw.Flush()
	}
	fmt.Fprintf(w, "Page %d of %d (%d matching)\n", v.Page, v.TotalPages, v.Total)
}

func renderEntry(w io.Writer, e models.Entry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"ID", e.ID},
		{"Type", string(e.Kind)},
		{"Status", fmt.Sprintf("%s (next: %s)", e.Status, e.Status.ActionLabel())},
		{"Title", e.Title},
		{"Category", string(e.Category)},
		{"Location", string(e.Location)},
		{"Date", e.OccurredAt.Format(time.DateOnly)},
		{"Contact", e.ContactName + ", " + e.ContactInfo},
		{"Image", images.Describe(e.Image)},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	_ = tw.Flush()
	fmt.Fprintln(w)
	fmt.Fprintln(w, e.Description)
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
