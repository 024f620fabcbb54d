package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pgavlin/ponyo"
)

const (
	prompt      = "ponyo> "
	contPrompt  = "   ... "
	historyFile = ".ponyo_history"
)

// repl reads forms interactively. An error aborts only the form that caused
// it.
func repl(in *ponyo.Interpreter) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		src, forms, err := readForms(in, ln)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if src != "" {
			ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		}
		if err != nil {
			errln(err)
			continue
		}

		for _, x := range forms {
			v, err := in.Eval(x)
			if err != nil {
				errln(err)
				break
			}
			if v != ponyo.Unspecified {
				ponyo.Encode(os.Stdout, v)
				fmt.Println()
			}
		}
	}
}

// readForms prompts for lines until they hold at least one complete datum and
// no incomplete one.
func readForms(in *ponyo.Interpreter, ln *liner.State) (string, []ponyo.Value, error) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = contPrompt
		}
		line, err := ln.Prompt(p)
		if err != nil {
			return "", nil, err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" {
			b.Reset()
			continue
		}

		forms, err := in.ReadString(src)
		if ponyo.IsIncomplete(err) {
			continue
		}
		return src, forms, err
	}
}

func errln(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
