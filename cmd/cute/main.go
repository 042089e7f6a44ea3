// Package main provides the cute layout-algebra CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/born-ml/cute/layout"
	"github.com/born-ml/cute/viz"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("cute layout algebra %s\n", version)
	case "show":
		if len(os.Args) != 3 {
			fail(`show expects one layout string, e.g. cute show "(4,8):(1,4)"`)
		}
		if err := show(os.Args[2]); err != nil {
			fail(err.Error())
		}
	case "compose":
		if len(os.Args) != 4 {
			fail(`compose expects two layout strings, e.g. cute compose "20:2" "(5,4):(4,1)"`)
		}
		if err := compose(os.Args[2], os.Args[3]); err != nil {
			fail(err.Error())
		}
	case "repl":
		if err := repl(); err != nil {
			fail(err.Error())
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf("cute - CuTe layout algebra %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println(`  show "<layout>"          Render a layout's offset grid`)
	fmt.Println(`  compose "<A>" "<B>"      Render the composition A ∘ B`)
	fmt.Println("  repl                     Interactive session")
	fmt.Println("  version                  Show version")
	fmt.Println("")
	fmt.Println(`Layouts use Shape:Stride syntax, e.g. "(12,(4,8)):(59,(13,1))".`)
}

func fail(msg string) {
	pterm.Error.Println(msg)
	os.Exit(1)
}

func show(text string) error {
	l, err := layout.Parse(text)
	if err != nil {
		return err
	}
	return viz.Show(os.Stdout, l)
}

func compose(outerText, innerText string) error {
	outer, err := layout.Parse(outerText)
	if err != nil {
		return err
	}
	inner, err := layout.Parse(innerText)
	if err != nil {
		return err
	}
	return viz.Composition(os.Stdout, outer, inner)
}

// repl reads layout strings (rendered as offset grids) or
// "compose A B" lines until EOF or "quit".
func repl() error {
	initDisplay()
	rl, err := readline.New("cute> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("Enter a layout (Shape:Stride), \"compose A B\", or \"quit\"")
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == "quit" || line == "exit":
			return nil
		}

		if err := eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
}

func eval(line string) error {
	fields := strings.Fields(line)
	if fields[0] == "compose" {
		if len(fields) != 3 {
			return fmt.Errorf("compose expects two layouts, got %d arguments", len(fields)-1)
		}
		return compose(fields[1], fields[2])
	}
	return show(line)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " cute",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
