package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	CatalogFile string
	Language    string
	GUIMode     bool

	// Action flags
	List      bool
	Translate string
	From      string
	To        string
	BatchFile string
	Check     bool
	ExportDB  string
	ImportDB  string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{}
}
