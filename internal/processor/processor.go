package processor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"codeberg.org/snonux/langswitch/internal/batch"
	"codeberg.org/snonux/langswitch/internal/catalog"
	"codeberg.org/snonux/langswitch/internal/cli"
	"codeberg.org/snonux/langswitch/internal/store"
)

// Processor executes the CLI actions selected by the flags
type Processor struct {
	flags  *cli.Flags
	out    io.Writer
	errOut io.Writer
}

// NewProcessor creates a new action processor writing to stdout/stderr
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:  flags,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// HasAction reports whether any command-line action flag was given
func (p *Processor) HasAction() bool {
	f := p.flags
	return f.List || f.Translate != "" || f.BatchFile != "" ||
		f.Check || f.ExportDB != "" || f.ImportDB != ""
}

// Run executes the requested actions. args may carry the catalog path as a
// positional argument, which wins over --catalog and the config file.
func (p *Processor) Run(args []string) error {
	// Importing needs no catalog file, the database is the source
	if p.flags.ImportDB != "" {
		return p.importDatabase()
	}

	table, err := p.LoadCatalog(args)
	if err != nil {
		return err
	}

	switch {
	case p.flags.List:
		return p.listLanguages(table)
	case p.flags.Check:
		return p.checkCatalog(table)
	case p.flags.Translate != "":
		return p.translateOne(table)
	case p.flags.BatchFile != "":
		return p.runBatch(table)
	case p.flags.ExportDB != "":
		return p.exportDatabase(table)
	}

	return nil
}

// LoadCatalog reads and parses the catalog named by args, flags or config
func (p *Processor) LoadCatalog(args []string) (*catalog.Table, error) {
	path := cli.GetCatalogPath(p.flags)
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, fmt.Errorf("no catalog given (use --catalog or set catalog.path in the config)")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	table, err := catalog.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return table, nil
}

// DefaultLanguage resolves the startup language: flag, then config, then
// the first catalog language.
func (p *Processor) DefaultLanguage(table *catalog.Table) string {
	if lang := cli.GetDefaultLanguage(p.flags); lang != "" {
		return lang
	}
	if languages := table.Languages(); len(languages) > 0 {
		return languages[0]
	}
	return ""
}

// listLanguages prints the catalog languages in declaration order,
// annotated with their English display name where the tag parses
func (p *Processor) listLanguages(table *catalog.Table) error {
	for _, lang := range table.Languages() {
		if name := englishName(lang); name != "" {
			fmt.Fprintf(p.out, "%s\t%s\n", lang, name)
		} else {
			fmt.Fprintf(p.out, "%s\n", lang)
		}
	}
	return nil
}

// englishName returns the English display name of a language tag, or the
// empty string when the tag does not parse
func englishName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return display.English.Languages().Name(tag)
}

// translateOne performs a single lookup and prints the result
func (p *Processor) translateOne(table *catalog.Table) error {
	from, to, err := p.resolveDirection(table)
	if err != nil {
		return err
	}

	result, err := table.Translate(p.flags.Translate, from, to)
	if err != nil {
		return err
	}

	fmt.Fprintln(p.out, result)
	return nil
}

// runBatch translates every phrase of the batch file. Per-phrase failures
// warn and continue, mirroring the per-slot isolation of a GUI language
// switch.
func (p *Processor) runBatch(table *catalog.Table) error {
	from, to, err := p.resolveDirection(table)
	if err != nil {
		return err
	}

	phrases, err := batch.ReadPhraseFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	translated := 0
	skipped := 0
	for _, phrase := range phrases {
		result, err := table.Translate(phrase, from, to)
		if err != nil {
			fmt.Fprintf(p.errOut, "Warning: %q skipped: %v\n", phrase, err)
			skipped++
			continue
		}
		fmt.Fprintln(p.out, result)
		translated++
	}

	fmt.Fprintf(p.errOut, "Batch complete: %d translated, %d skipped\n", translated, skipped)
	return nil
}

// resolveDirection determines the from/to languages for translate actions
func (p *Processor) resolveDirection(table *catalog.Table) (string, string, error) {
	from := p.flags.From
	if from == "" {
		from = p.DefaultLanguage(table)
	}
	to := p.flags.To
	if to == "" {
		return "", "", fmt.Errorf("no target language given (use --to)")
	}
	return from, to, nil
}

// checkCatalog reports catalog statistics and problems: language codes
// that are not BCP 47 tags, and values that will not survive a serialize
// round trip
func (p *Processor) checkCatalog(table *catalog.Table) error {
	languages := table.Languages()
	fmt.Fprintf(p.out, "Languages: %d, rows: %d\n", len(languages), table.Rows())

	problems := 0
	for _, lang := range languages {
		if _, err := language.Parse(lang); err != nil {
			fmt.Fprintf(p.out, "Warning: %q is not a valid language tag\n", lang)
			problems++
		}
	}

	for row := 0; row < table.Rows(); row++ {
		for _, lang := range languages {
			value, err := table.Value(row, lang)
			if err != nil {
				return err
			}
			if strings.ContainsAny(value, ",\n") {
				fmt.Fprintf(p.out, "Warning: row %d (%s) value %q will not survive serialization\n",
					row, lang, value)
				problems++
			}
		}
	}

	if problems == 0 {
		fmt.Fprintln(p.out, "No problems found")
	}
	return nil
}

// exportDatabase writes the catalog into a SQLite database
func (p *Processor) exportDatabase(table *catalog.Table) error {
	if err := store.Export(table, p.flags.ExportDB); err != nil {
		return err
	}
	fmt.Fprintf(p.errOut, "Exported %d rows in %d languages to %s\n",
		table.Rows(), len(table.Languages()), p.flags.ExportDB)
	return nil
}

// importDatabase prints the catalog stored in a SQLite database in its
// tabular text form
func (p *Processor) importDatabase() error {
	table, err := store.Import(p.flags.ImportDB)
	if err != nil {
		return err
	}
	fmt.Fprint(p.out, table.Serialize())
	return nil
}
