package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

const usage = `gridsheetcalc

Evaluate pipe-delimited grids of numbers, formulas and clone markers.

Usage:
  gridsheetcalc <input>
  gridsheetcalc --serve
  gridsheetcalc -h | --help

Arguments:
  <input>  Path to a grid file; the evaluated table is printed to stdout.

Options:
  --serve    Start the HTTP API instead of evaluating a file.
  -h --help  Display this help.
`

func RunApp(arguments []string, outStream io.Writer) error {
	opts, err := docopt.ParseArgs(usage, arguments, "")
	if err != nil {
		return err
	}

	if serve, _ := opts.Bool("--serve"); serve {
		return RunServer()
	}

	inputPath, err := opts.String("<input>")
	if err != nil {
		return err
	}

	return RunFile(inputPath, outStream)
}

func RunFile(inputPath string, outStream io.Writer) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	result, err := NewGridCalculator().Calculate(string(raw))
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(outStream, result)
	return err
}

func RunServer() error {
	gin.SetMode(gin.ReleaseMode)

	config := LoadConfig()
	container, err := BuildServiceContainer(config.DatabaseFilepath)

	if err == nil {
		container.WebhookDispatcher.Start()
		defer container.WebhookDispatcher.Close()
		defer container.Database.Close()

		err = http.ListenAndServe(config.ListenAddress, container.Router)
	}

	return err
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
