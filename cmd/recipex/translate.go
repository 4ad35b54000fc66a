package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/recipex"
	"github.com/fwojciec/recipex/fs"
)

// Run executes the translate command.
func (c *TranslateCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	recipe, err := fs.DecodeRecipe(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipex.ErrorMessage(err))
		return err
	}

	translated, err := deps.Translator.Translate(deps.Ctx, recipe, c.Lang)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipex.ErrorMessage(err))
		return err
	}

	content, err := fs.EncodeRecipe(translated)
	if err != nil {
		return err
	}

	out := c.Out
	if out == "" {
		out = strings.TrimSuffix(c.Input, ".json") + "." + c.Lang + ".json"
	}
	if err := os.WriteFile(out, content, 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", out)
	return nil
}
