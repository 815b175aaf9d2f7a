// Command mace-demo is an end-to-end smoke driver: it opens a buffer,
// edits it, runs a search, evaluates an expression against it, and
// renders the result through the display engine, printing each stage's
// output to stdout. It exercises the core packages the way a host
// front-end (a real terminal UI) would, without providing one.
package main

import (
	"fmt"
	"strings"

	"github.com/go-memacs/core/buffer"
	"github.com/go-memacs/core/config"
	"github.com/go-memacs/core/display"
	"github.com/go-memacs/core/eval"
	"github.com/go-memacs/core/search"
	"github.com/go-memacs/core/session"
)

func main() {
	fmt.Println("=== mace-demo ===")

	sess := session.New(nil)
	scr := sess.CurScreen()
	scr.Cols = 40

	fmt.Println("\n1. Buffer editing:")
	buf, win := sess.OpenBuffer("scratch")
	must(buf.InsertString(win, "the quick brown fox"))
	must(buf.InsertNewline(win))
	must(buf.InsertString(win, "jumps over the lazy dog"))
	win.Face.Point = buffer.Point{Line: buf.Lines.First(), Offset: 0}
	win.Rows = 5
	printBuffer(buf)

	fmt.Println("\n2. Searching for \"lazy\":")
	m, err := search.Compile("lazy", search.Flags(0), false)
	must(err)
	pt, found, err := search.HuntForward(m, buf, win.Face.Point, 0)
	must(err)
	if found {
		fmt.Printf("   found at offset %d\n", pt.Offset)
	} else {
		fmt.Println("   not found")
	}

	fmt.Println("\n3. Evaluating an expression against the session:")
	node, err := eval.ParseStatement(`$greeting = "fox" & " says hi"`)
	must(err)
	v, err := sess.NewInterp().Eval(node)
	must(err)
	fmt.Printf("   $greeting = %s\n", v.Text())

	fmt.Println("\n4. Navigation commands:")
	runStmt(sess, "3 => forwardChar()")
	runStmt(sess, `setMark("a")`)
	runStmt(sess, "forwardWord()")
	fmt.Printf("   point now at offset %d\n", win.Face.Point.Offset)
	runStmt(sess, `swapMark("a")`)
	fmt.Printf("   point restored to offset %d\n", win.Face.Point.Offset)

	fmt.Println("\n5. Display composition:")
	cfg := config.Default()
	out := display.Compose(scr, cfg, display.Options{ScreenNum: 1})
	for i, row := range out.Rows {
		fmt.Printf("   %2d| %s\n", i, row.Text())
	}

	fmt.Println("\n6. Macro invocation:")
	mbuf, mwin := sess.OpenBuffer(string(session.MacroSigil) + "shout")
	must(mbuf.InsertString(mwin, `$1 & "!"`))
	node, err = eval.ParseStatement(`shout("hello")`)
	must(err)
	v, err = sess.NewInterp().Eval(node)
	must(err)
	fmt.Printf("   shout(\"hello\") = %s\n", v.Text())
}

func runStmt(sess *session.Session, src string) {
	node, err := eval.ParseStatement(src)
	must(err)
	_, err = sess.NewInterp().Eval(node)
	must(err)
}

func printBuffer(buf *buffer.Buffer) {
	var lines []string
	for id := buf.Lines.First(); id != buffer.NoLine; id = buf.Lines.Next(id) {
		lines = append(lines, string(buf.Lines.Line(id).Bytes()))
	}
	fmt.Printf("   %s\n", strings.Join(lines, " / "))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
