// Package cli provides the interactive Classroom Manager command-line client.
//
// It wires configuration, the local session store, the entry API client and
// a small route table. Screens are addressed by path, like browser routes:
//
//	/          session gate: the entry list, or a redirect to /login
//	/login     login prompt
//	/register  account registration, then back to /login
//	/main      alias of /
//
// Each screen returns the path to show next; App.Run blocks until a screen
// returns "" (exit or end of input).
package cli
