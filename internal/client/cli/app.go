package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/lostfound/internal/client/models"
	"github.com/dmitrijs2005/lostfound/internal/client/query"
	"github.com/dmitrijs2005/lostfound/internal/client/services"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// App is the interactive client over one catalog session.
type App struct {
	catalog     *services.Catalog
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewApp wires an App reading commands from in and writing to out. The
// prompt is shown only when in is a terminal.
func NewApp(catalog *services.Catalog, in io.Reader, out io.Writer) *App {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = isTerminal(int(f.Fd()))
	}
	return &App{
		catalog:     catalog,
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Run prints the first page and then blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Campus Lost & Found (type 'help' for commands)")
	_ = a.List(ctx)

	runREPL(ctx, a, a.prompt, a.reader)
}

func (a *App) prompt() string {
	if !a.interactive {
		return ""
	}
	v := a.catalog.Current()
	return fmt.Sprintf("lf [%s p%d/%d]>", v.Criteria.Tab(), v.Page, v.TotalPages)
}

func (a *App) List(_ context.Context) error {
	renderPage(a.out, a.catalog.Current())
	return nil
}

func (a *App) Tab(ctx context.Context, tab string) error {
	if tab == "" {
		tab = query.TabAll
	}
	if err := a.catalog.SetTab(tab); err != nil {
		return err
	}
	return a.List(ctx)
}

func (a *App) Search(ctx context.Context, text string) error {
	if err := a.catalog.SetCriterion(query.DimensionQuery, text); err != nil {
		return err
	}
	return a.List(ctx)
}

func (a *App) Filter(ctx context.Context, dimension, value string) error {
	d, err := query.ParseDimension(dimension)
	if err != nil {
		return err
	}
	if err := a.catalog.SetCriterion(d, value); err != nil {
		return err
	}
	return a.List(ctx)
}

func (a *App) Page(ctx context.Context, n string) error {
	page, err := strconv.Atoi(n)
	if err != nil {
		return fmt.Errorf("page must be a number, got %q", n)
	}
	a.catalog.SetPage(page)
	return a.List(ctx)
}

func (a *App) Next(ctx context.Context) error {
	if !a.catalog.Next() {
		fmt.Fprintln(a.out, "Already on the last page.")
		return nil
	}
	return a.List(ctx)
}

func (a *App) Prev(ctx context.Context) error {
	if !a.catalog.Prev() {
		fmt.Fprintln(a.out, "Already on the first page.")
		return nil
	}
	return a.List(ctx)
}

func (a *App) Reset(ctx context.Context) error {
	a.catalog.ResetCriteria()
	return a.List(ctx)
}

// ResetCatalog asks for confirmation, then replaces every stored entry with
// the sample collection.
func (a *App) ResetCatalog(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Discard all entries and restore the samples? [y/N]", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Catalog left unchanged.")
		return nil
	}
	a.catalog.ResetCatalog(ctx)
	fmt.Fprintln(a.out, "Catalog reset to sample entries.")
	return a.List(ctx)
}

func (a *App) Toggle(ctx context.Context, id string) error {
	e, ok := a.catalog.ToggleStatus(ctx, id)
	if !ok {
		fmt.Fprintf(a.out, "No entry with id %s.\n", id)
		return nil
	}
	fmt.Fprintf(a.out, "%s is now %s.\n", e.Title, e.Status)
	return nil
}

func (a *App) Show(_ context.Context, id string) error {
	e, ok := a.catalog.Get(id)
	if !ok {
		fmt.Fprintf(a.out, "No entry with id %s.\n", id)
		return nil
	}
	renderEntry(a.out, e)
	return nil
}

// categoryLabels and locationLabels feed the numbered pickers of the add flow.
func categoryLabels() []string { return labels(models.Categories) }

func locationLabels() []string { return labels(models.Locations) }

func labels[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
