// Command glogfilter filters glog-formatted logs by severity.
//
// It reads log lines from files or standard input and keeps records at
// or above a minimum severity:
//
//	glogfilter --min-level warning app.log
//	kubectl logs pod | glogfilter -m error
//
// Lines that do not start a record, such as continuations of
// multi-line bodies, follow the record they belong to. Text before the
// first record passes through untouched.
package main

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/willibrandon/glog/core"
	"github.com/willibrandon/glog/formatters"
)

func main() {
	minLevel := core.InfoLevel
	var invert bool

	root := &cobra.Command{
		Use:          "glogfilter [file...]",
		Short:        "Filter glog-formatted logs by severity",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()

			if len(args) == 0 {
				return filterStream(out, cmd.InOrStdin(), minLevel, invert)
			}
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				err = filterStream(out, f, minLevel, invert)
				f.Close()
				if err != nil {
					return errors.Wrap(err, path)
				}
			}
			return nil
		},
	}

	root.Flags().VarP(&minLevel, "min-level", "m", "minimum severity to keep (name, alias, or integer rank)")
	root.Flags().BoolVar(&invert, "invert", false, "keep only records below the threshold")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// filterStream copies kept lines from r to w. A line that parses as a
// record prefix decides its own fate; lines without a prefix inherit
// the fate of the record above them.
func filterStream(w io.Writer, r io.Reader, minLevel core.Level, invert bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	keep := true
	for scanner.Scan() {
		line := scanner.Text()
		if fields, _, ok := formatters.ParsePrefix(line); ok {
			keep = fields.Level >= minLevel
			if invert {
				keep = !keep
			}
		}
		if !keep {
			continue
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return scanner.Err()
}
