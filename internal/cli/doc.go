// Package cli provides the interactive terminal front end of the diary.
//
// It wires configuration, the credential gate, entry storage and the editor
// session into a login prompt followed by a REPL. Typical flow: ask for the
// password until the gate accepts it (or input ends), open today's entry,
// then execute user commands.
//
// Commands
//
//	help                 show available commands
//	show                 print the selected entry
//	today                select today
//	date YYYY-MM-DD      select a date
//	prev [n] | next [n]  move the selection by n days (default 1)
//	edit                 replace the buffer with multi-line input
//	append               add lines to the buffer
//	save                 store the buffer for the selected date
//	cal [YYYY-MM]        print a month calendar, entries marked with *
//	status               print the status line
//	exit | quit          leave the program
//
// Selecting another date drops unsaved edits without asking.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
