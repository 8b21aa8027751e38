package system

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/logger"
	"github.com/julianstephens/imaan/internal/storage"
)

type DebugCmd struct {
	Path *DebugPathCmd `cmd:"" help:"Show data, config and log paths."`
	Dump *DebugDumpCmd `cmd:"" help:"Dump stored values as JSON."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *cli.Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"data":    ctx.Store.GetConfigPath(),
		"backend": storage.Kind(ctx.Store),
		"config":  ctx.ConfigPath,
		"log":     logger.Path(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(jsonBytes))
	return nil
}

type DebugDumpCmd struct {
	Namespace string `arg:"" optional:"" help:"Namespace to dump. Defaults to the daily record; use 'all' for everything."`
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	ns := cmd.Namespace
	if ns == "" {
		ns = constants.StorageNamespace
	}

	if ns != "all" {
		data, err := ctx.Store.Get(ns)
		if errors.Is(err, storage.ErrRecordNotFound) {
			return fmt.Errorf("nothing stored under %q", ns)
		}
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", ns, err)
		}
		return printIndented(ctx, data)
	}

	names, err := ctx.Store.Namespaces()
	if err != nil {
		return fmt.Errorf("failed to list namespaces: %w", err)
	}
	all := make(map[string]json.RawMessage, len(names))
	for _, name := range names {
		data, err := ctx.Store.Get(name)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", name, err)
		}
		all[name] = data
	}
	jsonBytes, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return printIndented(ctx, jsonBytes)
}

func printIndented(ctx *cli.Context, data []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("stored value is not valid JSON: %w", err)
	}
	ctx.Println(buf.String())
	return nil
}
