package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Shu-ler/SpreadSheet/contracts"
)

const ExitCodeMainError = 1

const DefaultListenAddr = ":8080"

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "spreadsheet",
		Short:         "In-memory spreadsheet engine",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newServeCommand(), newRunCommand())
	return rootCmd
}

func newServeCommand() *cobra.Command {
	var listenAddr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sheet over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			gin.SetMode(gin.ReleaseMode)

			container := BuildServiceContainer()
			container.WebhookDispatcher.Start()
			defer container.WebhookDispatcher.Close()

			return http.ListenAndServe(listenAddr, container.Router)
		},
	}

	serveCmd.Flags().StringVar(&listenAddr, "addr", DefaultListenAddr, "Listen address")
	return serveCmd
}

func newRunCommand() *cobra.Command {
	var printTexts bool
	var exportPath string

	runCmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Apply ID=text lines from a script (or stdin) and print the sheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				input = file
			}

			sheet := NewSheet(NewFormulaParser())
			if err := applyScript(sheet, input); err != nil {
				return err
			}

			if exportPath != "" {
				file, err := os.Create(exportPath)
				if err != nil {
					return err
				}
				defer file.Close()

				if err = NewSheetExporter().Export(sheet, file); err != nil {
					return err
				}
			}

			if printTexts {
				return sheet.PrintTexts(cmd.OutOrStdout())
			}
			return sheet.PrintValues(cmd.OutOrStdout())
		},
	}

	runCmd.Flags().BoolVar(&printTexts, "texts", false, "Print cell texts instead of values")
	runCmd.Flags().StringVar(&exportPath, "export", "", "Export the sheet to an xlsx file")
	return runCmd
}

// applyScript feeds `ID=text` lines into the sheet. Blank lines and
// lines starting with # are skipped.
func applyScript(sheet *Sheet, input io.Reader) error {
	scanner := bufio.NewScanner(input)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cellId, text, found := strings.Cut(line, "=")
		if !found {
			return fmt.Errorf("line %d: expected ID=text, got `%s`", lineNumber, line)
		}

		pos := contracts.PositionFromString(cellId)
		if err := sheet.SetCell(pos, text); err != nil {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}

	return scanner.Err()
}

func RunApp() error {
	return NewRootCommand().Execute()
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
