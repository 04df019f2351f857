package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/langswitch/internal/cli"
	"codeberg.org/snonux/langswitch/internal/gui"
	"codeberg.org/snonux/langswitch/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(args []string, flags *cli.Flags) error {
	proc := processor.NewProcessor(flags)

	// Action flags run on the command line; the demo window is the default
	if proc.HasAction() && !flags.GUIMode {
		return proc.Run(args)
	}

	table, err := proc.LoadCatalog(args)
	if err != nil {
		return err
	}

	app, err := gui.New(table, proc.DefaultLanguage(table))
	if err != nil {
		return err
	}
	app.Run()
	return nil
}
