package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"groupify/internal/exporter"
	"groupify/internal/grouping"
	"groupify/internal/importer"
	"groupify/internal/model"
)

func newGroupCmd(c *cli) *cobra.Command {
	var (
		groups   int
		method   string
		outDir   string
		workbook bool
		csvFiles bool
	)

	cmd := &cobra.Command{
		Use:   "group [roster.xlsx|roster.csv]",
		Short: "Group a roster file and write the exports to disk",
		Example: `  groupify group students.xlsx --groups 4 --method mixed --out ./out
  groupify group students.csv -m "Branchwise Uniform" --workbook`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("groups") {
				groups = c.cfg.Grouping.DefaultGroups
			}
			m := c.cfg.DefaultMethod()
			if method != "" {
				var err error
				if m, err = model.ParseMethod(method); err != nil {
					return err
				}
			}
			return runGroup(c, cmd.OutOrStdout(), args[0], groupOptions{
				groups:   groups,
				method:   m,
				outDir:   outDir,
				workbook: workbook,
				csvFiles: csvFiles,
			})
		},
	}

	cmd.Flags().IntVarP(&groups, "groups", "k", 3, "number of groups")
	cmd.Flags().StringVarP(&method, "method", "m", "", "branchwise | mixed | uniform (or the display name)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&workbook, "workbook", false, "also write an .xlsx workbook")
	cmd.Flags().BoolVar(&csvFiles, "csv", false, "also write every table as a separate .csv")

	return cmd
}

type groupOptions struct {
	groups   int
	method   model.Method
	outDir   string
	workbook bool
	csvFiles bool
}

func runGroup(c *cli, out io.Writer, path string, opts groupOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", importer.ErrUnreadable, err)
	}
	defer f.Close()

	roster, err := importer.ReadRoster(f, filepath.Base(path))
	if err != nil {
		return err
	}
	c.logger.Debug("roster loaded",
		zap.String("file", roster.FileName),
		zap.Int("rolls", len(roster.Rolls)),
		zap.Int("skipped", roster.Skipped),
	)

	result, err := grouping.Run(grouping.Request{Rolls: roster.Rolls, Groups: opts.groups, Method: opts.method})
	if err != nil {
		return err
	}

	bundle, err := exporter.NewExporter().Export(result, exporter.ExportOptions{
		IncludeWorkbook: opts.workbook,
		Progress: func(p exporter.ProgressEvent) {
			c.logger.Debug("export", zap.Int("percent", p.Percent), zap.String("file", p.Stage))
		},
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0755); err != nil {
		return err
	}
	files := []exporter.File{bundle.Archive}
	if bundle.Workbook != nil {
		files = append(files, *bundle.Workbook)
	}
	if opts.csvFiles {
		files = append(files, bundle.Tables...)
	}
	for _, file := range files {
		p := filepath.Join(opts.outDir, file.Name)
		if err := os.WriteFile(p, file.Data, 0644); err != nil {
			return err
		}
		c.logger.Info("written", zap.String("path", p), zap.Int("bytes", len(file.Data)))
	}

	return printSummary(out, result)
}

func printSummary(out io.Writer, result *model.Result) error {
	s := result.Summary
	fmt.Fprintf(out, "%s: %d students, %d groups, %d per group (floor)\n\n",
		result.Method.DisplayName(), s.TotalStudents, s.GroupCount, s.StudentsPerGroup)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if result.Method.Counting() {
		for _, g := range result.Groups {
			fmt.Fprintf(tw, "Group %d\t%d students\t", g.Number, g.Total())
			for _, bc := range g.Table() {
				fmt.Fprintf(tw, "%s:%d ", bc.Branch, bc.Count)
			}
			fmt.Fprintln(tw)
		}
	} else {
		for _, bt := range s.BranchTotals {
			fmt.Fprintf(tw, "%s\t%d students\n", bt.Branch, bt.Total)
		}
	}
	return tw.Flush()
}
