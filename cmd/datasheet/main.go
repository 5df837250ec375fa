package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/clarktrimble/sabot"
	_ "github.com/marcboeker/go-duckdb"

	tea "charm.land/bubbletea/v2"

	"datasheet"
	"datasheet/sheet"
	"datasheet/store/duck"
	"datasheet/util"
)

// osClipboard is the system clipboard, when there is one
type osClipboard struct{}

func (osClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (osClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

func main() {

	layoutPath := flag.String("layout", "layout.yaml", "layout file, written with defaults when missing")
	logPath := flag.String("log", "datasheet.log", "log file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.csv\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	logFile := util.OpenLog(*logPath, 0o644)
	defer util.CloseLog(logFile)
	lgr := &sabot.Sabot{Writer: logFile}

	err := run(ctx, flag.Arg(0), *layoutPath, lgr)
	if err != nil {
		lgr.Error(ctx, "datasheet failed", err)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path, layoutPath string, lgr *sabot.Sabot) (err error) {

	dk, err := duck.New(ctx, lgr)
	if err != nil {
		return
	}
	defer dk.Close()

	err = dk.Load(path)
	if err != nil {
		return
	}
	lgr.Info(ctx, "loaded", "path", path, "fields", len(dk.Fields()))

	var cb sheet.Clipboard
	if !clipboard.Unsupported {
		cb = osClipboard{}
	}

	cfg := &datasheet.Config{LayoutPath: layoutPath}
	model, err := cfg.New(ctx, dk, cb, lgr)
	if err != nil {
		return
	}
	defer model.Close()

	_, err = tea.NewProgram(model).Run()
	return
}
