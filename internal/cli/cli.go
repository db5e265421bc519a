package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/langtind/prefsheet/internal/config"
	"github.com/langtind/prefsheet/internal/logging"
	"github.com/langtind/prefsheet/internal/output"
	"github.com/langtind/prefsheet/internal/prefs"
	"github.com/langtind/prefsheet/internal/schema"
	"github.com/langtind/prefsheet/internal/store"
)

// commands lists every name ParseAndExecute accepts.
var commands = []string{"list", "ls", "get", "set", "reset", "schema", "help"}

// IsCommand reports whether name is a CLI command rather than a TUI launch.
func IsCommand(name string) bool {
	for _, c := range commands {
		if c == name {
			return true
		}
	}
	return false
}

// CLI handles command-line interface operations
type CLI struct {
	cfg    *config.Config
	schema *schema.Schema
	store  *store.Store
}

// NewCLI creates a new CLI instance
func NewCLI(cfg *config.Config, s *schema.Schema, st *store.Store) *CLI {
	return &CLI{cfg: cfg, schema: s, store: st}
}

// ParseAndExecute parses command line arguments and executes the appropriate command
func (c *CLI) ParseAndExecute(args []string) error {
	if len(args) < 2 {
		logging.Error("CLI: no command provided")
		return fmt.Errorf("no command provided")
	}

	command := args[1]
	logging.Info("CLI command: %s, args: %v", command, args[2:])

	switch command {
	case "list", "ls":
		return c.handleList(args[2:])
	case "get":
		return c.handleGet(args[2:])
	case "set":
		return c.handleSet(args[2:])
	case "reset":
		return c.handleReset(args[2:])
	case "schema":
		return c.handleSchema(args[2:])
	case "help":
		if len(args) > 2 {
			ShowCommandHelp(args[2])
		} else {
			c.ShowColoredHelp()
		}
		return nil
	default:
		logging.Error("CLI: unknown command: %s", command)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func newFlagSet(name, usage, desc string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: prefsheet %s\n", usage)
		fmt.Fprintf(fs.Output(), "\n%s\n", desc)
		hasFlags := false
		fs.VisitAll(func(*flag.Flag) { hasFlags = true })
		if hasFlags {
			fmt.Fprintf(fs.Output(), "\nOptions:\n")
			fs.PrintDefaults()
		}
	}
	return fs
}

func (c *CLI) lookup(name string) (prefs.Item, error) {
	it, err := prefs.Lookup(c.schema.Sections, name)
	if err != nil {
		logging.Warn("CLI: %v", err)
	}
	return it, err
}

// handleList prints every section with the current values
func (c *CLI) handleList(args []string) error {
	fs := newFlagSet("list", "list [-plain]", "List all preferences with their current values")
	plain := fs.Bool("plain", false, "Print name=value lines for scripts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logging.Debug("CLI list: plain=%v", *plain)

	if *plain {
		for _, it := range prefs.Items(c.schema.Sections) {
			fmt.Printf("%s=%s\n", it.Name, rawValue(it, c.store.Get(it)))
		}
		return nil
	}

	var sections []output.PreferenceSection
	for _, s := range c.schema.Sections {
		ps := output.PreferenceSection{Title: s.Title}
		for _, it := range s.Items {
			ps.Rows = append(ps.Rows, output.PreferenceRow{
				Name:     it.Name,
				Text:     it.Text,
				Type:     it.Type.String(),
				Value:    displayValue(it, c.store.Get(it)),
				Disabled: !it.Pressable(),
				Default:  it.Type != prefs.Label && !c.store.Saved(it),
			})
		}
		sections = append(sections, ps)
	}

	if len(prefs.Items(c.schema.Sections)) == 0 {
		output.Info("No preferences defined")
		output.Hintf("Add sections to %s", c.cfg.Schema)
		return nil
	}

	output.PrintPreferenceList(c.title(), sections)
	return nil
}

// handleGet prints one value in script-friendly form
func (c *CLI) handleGet(args []string) error {
	fs := newFlagSet("get", "get [-label] <name>", "Print the current value of a preference")
	label := fs.Bool("label", false, "Print the label instead of the identifier for pickers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("preference name is required")
	}

	it, err := c.lookup(fs.Arg(0))
	if err != nil {
		return err
	}

	v := c.store.Get(it)
	if *label && it.Type == prefs.Picker {
		fmt.Println(it.LabelFor(prefs.Stringify(v)))
		return nil
	}
	fmt.Println(rawValue(it, v))
	return nil
}

// handleSet saves a new value
func (c *CLI) handleSet(args []string) error {
	fs := newFlagSet("set", "set <name> <value>", "Save a new value for a preference")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("preference name and value are required")
	}

	it, err := c.lookup(fs.Arg(0))
	if err != nil {
		return err
	}
	if err := checkWritable(it); err != nil {
		return err
	}

	if err := c.store.Set(it, fs.Arg(1)); err != nil {
		logging.Error("CLI set %s failed: %v", it.Name, err)
		if errors.Is(err, prefs.ErrInvalidValue) && it.Type == prefs.Picker {
			output.Hintf("Choose one of: %s", choices(it))
		}
		return err
	}

	output.PreferenceChanged(it.Name, displayValue(it, c.store.Get(it)))
	return nil
}

// handleReset removes a saved value
func (c *CLI) handleReset(args []string) error {
	fs := newFlagSet("reset", "reset <name>", "Remove the saved value so the default applies")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("preference name is required")
	}

	it, err := c.lookup(fs.Arg(0))
	if err != nil {
		return err
	}
	if err := checkWritable(it); err != nil {
		return err
	}

	if err := c.store.Reset(it); err != nil {
		logging.Error("CLI reset %s failed: %v", it.Name, err)
		return err
	}

	def := ""
	if it.Default != nil {
		def = displayValue(it, it.Default)
	}
	output.PreferenceReset(it.Name, def)
	return nil
}

// handleSchema prints where the schema and values live
func (c *CLI) handleSchema(args []string) error {
	fs := newFlagSet("schema", "schema [-dump]", "Show the schema in use")
	dump := fs.Bool("dump", false, "Print the schema as YAML")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dump {
		data, err := schema.Marshal(c.schema)
		if err != nil {
			return fmt.Errorf("failed to encode schema: %w", err)
		}
		fmt.Print(string(data))
		return nil
	}

	output.Header(c.title())
	schemaPath := output.Path(c.cfg.Schema)
	if _, err := os.Stat(c.cfg.Schema); err != nil {
		schemaPath += " " + output.Dim("(not found, using built-in)")
	}
	output.KeyValue("Schema", schemaPath)
	output.KeyValue("Values", output.Path(c.store.Path()))
	output.KeyValue("Sections", fmt.Sprint(len(c.schema.Sections)))
	output.KeyValue("Items", fmt.Sprint(c.schema.Items()))
	if rev := c.store.Revision(); rev != "" {
		output.KeyValue("Revision", output.Dim(rev))
	}
	return nil
}

func (c *CLI) title() string {
	if c.cfg.UI.Title != "" {
		return c.cfg.UI.Title
	}
	if c.schema.Title != "" {
		return c.schema.Title
	}
	return "Preferences"
}

func checkWritable(it prefs.Item) error {
	if it.Type == prefs.Label {
		return fmt.Errorf("%w: %s is a label", prefs.ErrReadOnly, it.Name)
	}
	if it.Disabled {
		return fmt.Errorf("%w: %s is disabled", prefs.ErrReadOnly, it.Name)
	}
	return nil
}

func choices(it prefs.Item) string {
	s := ""
	for i, v := range it.Values {
		if i > 0 {
			s += ", "
		}
		s += v.ID
		if v.Label != "" && v.Label != v.ID {
			s += " (" + v.Label + ")"
		}
	}
	return s
}

// rawValue formats a value for scripts: booleans as true/false, pickers by
// identifier.
func rawValue(it prefs.Item, v any) string {
	if it.Type == prefs.Checkbox {
		return fmt.Sprint(prefs.CoerceBool(v))
	}
	return prefs.Stringify(v)
}

// displayValue formats a value for people.
func displayValue(it prefs.Item, v any) string {
	switch it.Type {
	case prefs.Checkbox:
		return output.Toggle(prefs.CoerceBool(v))
	case prefs.Picker:
		return it.LabelFor(prefs.Stringify(v))
	default:
		s := prefs.Stringify(v)
		if s == "" {
			return output.Dim("(empty)")
		}
		return s
	}
}
