package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/ilkow/promoshot/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "promoshot [text]",
		Short: "Promotional image generator",
		Long: `promoshot turns a short Korean promotional phrase into a marketing image.

It translates the phrase into English search keywords, finds a matching
stock photo and overlays the caption as word-wrapped text.

Examples:
  promoshot "완전 맛있는 비건 버거 할인"          # Generate with default 1:1 ratio
  promoshot "오늘만 50% 할인" --ratio 9:16        # Portrait story format
  promoshot serve --listen :8080                  # Run the HTTP API`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.promoshot.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory")
	cmd.Flags().StringVarP(&flags.Ratio, "ratio", "r", flags.Ratio, "Aspect ratio (1:1, 3:4, 4:3, 9:16, 16:9)")
	cmd.Flags().StringVar(&flags.Provider, "image-api", flags.Provider, "Image source (unsplash or pixabay)")
	cmd.Flags().BoolVar(&flags.Refine, "refine", false, "Refine search keywords with OpenAI (requires OPENAI_API_KEY)")
	cmd.Flags().BoolVar(&flags.SkipText, "skip-text", false, "Skip the caption overlay, download the background only")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process captions from file (one per line)")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the output directory and exit")

	bindFlagsToViper(cmd.Flags())
}

func bindFlagsToViper(flags *pflag.FlagSet) {
	viper.BindPFlag("output.directory", flags.Lookup("output"))
	viper.BindPFlag("promo.ratio", flags.Lookup("ratio"))
	viper.BindPFlag("image.provider", flags.Lookup("image-api"))
	viper.BindPFlag("keyword.refine", flags.Lookup("refine"))
}

// CreateModelsCommand creates the models subcommand listing OpenAI
// chat models usable with --refine
func CreateModelsCommand(run func() error) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List OpenAI models available for keyword refinement",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
}

// CreateServeCommand creates the serve subcommand running the HTTP API
func CreateServeCommand(flags *Flags, run func() error) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the promoshot HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	serveCmd.Flags().StringVar(&flags.Listen, "listen", flags.Listen, "Listen address for the HTTP server")
	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))

	return serveCmd
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".promoshot" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".promoshot")
	}

	// Environment variables
	viper.SetEnvPrefix("PROMOSHOT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetUnsplashKey retrieves the Unsplash access key from environment or config.
// An empty key is a supported state and puts the resolver into placeholder mode.
func GetUnsplashKey() string {
	if key := os.Getenv("UNSPLASH_ACCESS_KEY"); key != "" {
		return key
	}

	return viper.GetString("image.unsplash_key")
}

// GetPixabayKey retrieves the Pixabay API key from environment or config
func GetPixabayKey() string {
	if key := os.Getenv("PIXABAY_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("image.pixabay_key")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("keyword.openai_key")
}
