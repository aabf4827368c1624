// Command ptedit is an interactive exerciser for the piece-table
// editor: a REPL that opens, edits, and saves a document line by line,
// grounded on the command-loop shape of
// _examples/phroun-garland/cmd/garland-repl/main.go.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/oligo/pted/editor"
)

// REPL holds the state of the interactive session.
type REPL struct {
	ed     *editor.Editor
	path   string
	reader *bufio.Reader
}

func main() {
	fmt.Println("ptedit - piece-table editor REPL")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{reader: bufio.NewReader(os.Stdin)}

	for {
		fmt.Print("ptedit> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}

	if repl.ed != nil {
		repl.ed.Close()
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()
	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false
	case "new":
		r.cmdNew()
	case "open":
		r.cmdOpen(args)
	case "save":
		r.cmdSave(args)
	case "close":
		r.cmdClose()
	case "status", "stats":
		r.cmdStatus()
	case "insert":
		r.cmdInsert(args)
	case "delete":
		r.cmdDelete(args)
	case "replace":
		r.cmdReplace(args)
	case "undo":
		r.cmdUndo()
	case "redo":
		r.cmdRedo()
	case "snapshot":
		r.cmdSnapshot()
	case "print":
		r.cmdPrint()
	case "debug":
		r.cmdDebug()
	default:
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------
  new                    Start a new, empty document
  open <path>            Load a document from a file
  save [path]            Save to path (or the path it was loaded from)
  close                  Close the current document

  insert <pos> <text>    Insert text at byte position pos
  delete <pos> <n>       Delete n bytes starting at pos
  replace <pos> <text>   Replace len(text) bytes at pos with text
  undo                   Undo the most recent action
  redo                   Redo the most recently undone action
  snapshot               End the current action

  status                 Show size, piece count, undo/redo depth
  print                  Print the document's current content
  debug                  Print the piece sequence
  quit                   Exit ptedit
`
	fmt.Println(help)
}

func (r *REPL) ensureOpen() bool {
	if r.ed == nil {
		fmt.Println("No document is open. Use 'new' or 'open <path>'.")
		return false
	}
	return true
}

func (r *REPL) cmdNew() {
	if r.ed != nil {
		r.ed.Close()
	}
	ed, err := editor.Load("")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	r.ed, r.path = ed, ""
	fmt.Println("Created a new, empty document")
}

func (r *REPL) cmdOpen(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: open <path>")
		return
	}
	if r.ed != nil {
		r.ed.Close()
	}

	ed, err := editor.Load(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	r.ed, r.path = ed, args[0]
	fmt.Printf("Opened %s (%d bytes)\n", args[0], ed.Size())
}

func (r *REPL) cmdSave(args []string) {
	if !r.ensureOpen() {
		return
	}
	path := r.path
	if len(args) == 1 {
		path = args[0]
	}
	if err := r.ed.Save(path); err != nil {
		fmt.Printf("Save error: %v\n", err)
		return
	}
	r.path = path
	fmt.Printf("Saved %d bytes to %s\n", r.ed.Size(), path)
}

func (r *REPL) cmdClose() {
	if r.ed == nil {
		fmt.Println("No document is open")
		return
	}
	r.ed.Close()
	r.ed, r.path = nil, ""
	fmt.Println("Closed")
}

func (r *REPL) cmdStatus() {
	if !r.ensureOpen() {
		return
	}
	s := r.ed.Stats()
	fmt.Printf("Size: %d bytes, %d pieces\n", s.Size, s.Pieces)
	fmt.Printf("Undo depth: %d, Redo depth: %d\n", s.UndoDepth, s.RedoDepth)
	fmt.Printf("Modified: %v\n", s.Modified)
}

func (r *REPL) cmdInsert(args []string) {
	if !r.ensureOpen() {
		return
	}
	if len(args) < 2 {
		fmt.Println("Usage: insert <pos> <text>")
		return
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid position: %v\n", err)
		return
	}
	text := unescape(strings.Join(args[1:], " "))
	if err := r.ed.Insert(pos, []byte(text)); err != nil {
		fmt.Printf("Insert error: %v\n", err)
		return
	}
	fmt.Printf("Inserted %d bytes at %d\n", len(text), pos)
}

func (r *REPL) cmdDelete(args []string) {
	if !r.ensureOpen() {
		return
	}
	if len(args) != 2 {
		fmt.Println("Usage: delete <pos> <n>")
		return
	}
	pos, err1 := strconv.Atoi(args[0])
	n, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Println("Invalid position or length")
		return
	}
	if err := r.ed.Delete(pos, n); err != nil {
		fmt.Printf("Delete error: %v\n", err)
		return
	}
	fmt.Printf("Deleted %d bytes at %d\n", n, pos)
}

func (r *REPL) cmdReplace(args []string) {
	if !r.ensureOpen() {
		return
	}
	if len(args) < 2 {
		fmt.Println("Usage: replace <pos> <text>")
		return
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid position: %v\n", err)
		return
	}
	text := unescape(strings.Join(args[1:], " "))
	if err := r.ed.Replace(pos, []byte(text)); err != nil {
		fmt.Printf("Replace error: %v\n", err)
		return
	}
	fmt.Printf("Replaced %d bytes at %d\n", len(text), pos)
}

func (r *REPL) cmdUndo() {
	if !r.ensureOpen() {
		return
	}
	if !r.ed.Undo() {
		fmt.Println("Nothing to undo")
		return
	}
	fmt.Println("Undone")
}

func (r *REPL) cmdRedo() {
	if !r.ensureOpen() {
		return
	}
	if !r.ed.Redo() {
		fmt.Println("Nothing to redo")
		return
	}
	fmt.Println("Redone")
}

func (r *REPL) cmdSnapshot() {
	if !r.ensureOpen() {
		return
	}
	r.ed.Snapshot()
	fmt.Println("Snapshot taken")
}

func (r *REPL) cmdPrint() {
	if !r.ensureOpen() {
		return
	}
	var sb strings.Builder
	if _, err := r.ed.WriteTo(&sb); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(sb.String())
}

func (r *REPL) cmdDebug() {
	if !r.ensureOpen() {
		return
	}
	fmt.Print(r.ed.DebugString())
}

func unescape(s string) string {
	s = strings.ReplaceAll(s, "\\n", "\n")
	s = strings.ReplaceAll(s, "\\t", "\t")
	return s
}
