package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = `Available commands:
  list | l                              show the current page
  tab <all|lost|found>                  switch tab
  search [text]                         free-text filter (empty clears)
  filter <category|status|location|from|to> [value]
  page <n> | next | prev                move between pages
  reset                                 clear every filter
  reset-catalog                         discard all entries, restore samples
  add                                   create an entry
  toggle <id>                           Mark as Claimed / Reopen
  show <id>                             show one entry
  exit | quit                           leave`

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Tab(ctx context.Context, tab string) error
	Search(ctx context.Context, text string) error
	Filter(ctx context.Context, dimension, value string) error
	Page(ctx context.Context, n string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Reset(ctx context.Context) error
	ResetCatalog(ctx context.Context) error
	Add(ctx context.Context) error
	Toggle(ctx context.Context, id string) error
	Show(ctx context.Context, id string) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// Handlers that prompt for more input share the same reader.
// A non-empty promptFn result is printed before each read. The loop exits on
// EOF, on "exit"/"quit", or when ctx is cancelled. Handler errors are
// reported and the loop continues.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		if p := promptFn(); p != "" {
			printlnFn(p)
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}
		cmd, rest := splitCommand(line)
		if cmd == "" {
			continue
		}

		var err error
		switch cmd {
		case "help", "?":
			printlnFn(helpText)

		case "l", "list":
			err = a.List(ctx)

		case "tab":
			err = a.Tab(ctx, strings.TrimSpace(rest))

		case "search", "s":
			err = a.Search(ctx, rest)

		case "filter", "f":
			dim, value := splitCommand(rest)
			if dim == "" {
				printlnFn("Usage: filter <category|status|location|from|to> [value]")
				continue
			}
			err = a.Filter(ctx, dim, strings.TrimSpace(value))

		case "page", "p":
			err = a.Page(ctx, strings.TrimSpace(rest))

		case "next", "n":
			err = a.Next(ctx)

		case "prev":
			err = a.Prev(ctx)

		case "reset":
			err = a.Reset(ctx)

		case "reset-catalog":
			err = a.ResetCatalog(ctx)

		case "add":
			err = a.Add(ctx)

		case "toggle", "claim":
			if id := strings.TrimSpace(rest); id != "" {
				err = a.Toggle(ctx, id)
			} else {
				printlnFn("Usage: toggle <id>")
			}

		case "show":
			if id := strings.TrimSpace(rest); id != "" {
				err = a.Show(ctx, id)
			} else {
				printlnFn("Usage: show <id>")
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}

// splitCommand returns the first word of line and the raw remainder after
// the single separating space. The remainder is not trimmed, so a search for
// " id" keeps its leading space.
func splitCommand(line string) (cmd, rest string) {
	line = strings.TrimLeft(line, " \t")
	line = strings.TrimRight(line, "\r\n")
	cmd, rest, _ = strings.Cut(line, " ")
	return strings.ToLower(strings.TrimSpace(cmd)), rest
}
