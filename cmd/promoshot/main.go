package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/ilkow/promoshot/internal/archive"
	"codeberg.org/ilkow/promoshot/internal/cli"
	"codeberg.org/ilkow/promoshot/internal/compose"
	"codeberg.org/ilkow/promoshot/internal/image"
	"codeberg.org/ilkow/promoshot/internal/models"
	"codeberg.org/ilkow/promoshot/internal/processor"
	"codeberg.org/ilkow/promoshot/internal/server"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)
	rootCmd.AddCommand(cli.CreateServeCommand(flags, func() error {
		return runServer(flags)
	}))
	rootCmd.AddCommand(cli.CreateModelsCommand(func() error {
		return models.NewLister(cli.GetOpenAIKey()).ListChatModels()
	}))

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	if flags.Archive {
		return archive.ArchiveOutputs(flags.OutputDir)
	}

	if len(args) == 0 && flags.BatchFile == "" {
		return cmd.Help()
	}

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	// Handle batch processing
	if flags.BatchFile != "" {
		return proc.ProcessBatch()
	}

	path, err := proc.Generate(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("\nDone! Image saved to: %s\n", path)
	return nil
}

func runServer(flags *cli.Flags) error {
	searcher, err := processor.NewSearcher(flags.Provider)
	if err != nil {
		return err
	}

	resolver := image.NewResolver(searcher, nil)
	srv := server.New(resolver, compose.New())

	return srv.Run(flags.Listen)
}
