// Package cli provides the interactive Lost & Found command-line client.
//
// The REPL drives one services.Catalog session: it changes the tab and the
// filters, moves between pages, creates entries through a guided prompt and
// toggles the claim status of an entry. Every filter change returns the
// session to page 1.
//
// Commands:
//
//	help                                  show this list
//	list | l                              show the current page
//	tab <all|lost|found>                  switch tab
//	search [text]                         free-text filter (empty clears)
//	filter <category|status|location|from|to> [value]
//	                                      set or clear one filter
//	page <n> | next | prev                move between pages
//	reset                                 clear every filter
//	add                                   create an entry interactively
//	toggle <id>                           Mark as Claimed / Reopen
//	show <id>                             show one entry in full
//	exit | quit                           leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
