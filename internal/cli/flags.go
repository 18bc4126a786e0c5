package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	OutputDir string
	Ratio     string
	Provider  string
	Refine    bool
	SkipText  bool
	BatchFile string
	Archive   bool

	// Server flags
	Listen string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputDir: ".",
		Ratio:     "1:1",
		Provider:  "unsplash",
		Listen:    ":8080",
	}
}
