package system

import (
	"bytes"
	"fmt"
	"os"

	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/export"
)

type ExportCmd struct {
	Format string `help:"Output format (json or yaml). Defaults to the output file's extension."`
	Output string `help:"Write to this file instead of stdout." short:"o" type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	format := export.FormatJSON
	if c.Output != "" {
		format = export.FormatForPath(c.Output)
	}
	if c.Format != "" {
		f, err := export.ParseFormat(c.Format)
		if err != nil {
			return err
		}
		format = f
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, ctx.Tracker.Record(), format); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if c.Output == "" {
		_, err := ctx.Writer().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(c.Output, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	ctx.Printf("✓ Exported record for %s to %s\n", ctx.Tracker.Record().Date, c.Output)
	return nil
}

type ImportCmd struct {
	File   string `arg:"" help:"File to import (an export, or a saved dashboard state)." type:"existingfile"`
	Format string `help:"Input format (json or yaml). Defaults to the file's extension."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	format := export.FormatForPath(c.File)
	if c.Format != "" {
		f, err := export.ParseFormat(c.Format)
		if err != nil {
			return err
		}
		format = f
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	record, err := export.Read(data, format)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	ctx.PerformAutomaticBackup()
	ctx.Tracker.Replace(record)
	if err := ctx.Tracker.Err(); err != nil {
		return fmt.Errorf("failed to save imported record: %w", err)
	}
	ctx.Printf("✓ Imported record for %s from %s\n", record.Date, c.File)
	return nil
}
