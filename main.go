package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/langtind/prefsheet/internal/cli"
	"github.com/langtind/prefsheet/internal/config"
	"github.com/langtind/prefsheet/internal/logging"
	"github.com/langtind/prefsheet/internal/output"
	"github.com/langtind/prefsheet/internal/schema"
	"github.com/langtind/prefsheet/internal/store"
	"github.com/langtind/prefsheet/internal/ui"
)

// Version information - injected at build time for releases
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := logging.Init(""); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	os.Exit(run())
}

func run() int {
	showHelp := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Configuration file (default: $PREFSHEET_CONFIG or the user config dir)")
	debug := flag.Bool("debug", false, "Log at debug level and mirror the log to stderr")
	flag.Usage = cli.ShowHelp
	flag.Parse()

	logging.Info("prefsheet %s started, args: %v", version, os.Args)

	if *showVersion {
		fmt.Printf("prefsheet version %s\n", version)
		if commit != "unknown" {
			fmt.Printf("commit: %s\n", commit)
		}
		if date != "unknown" {
			fmt.Printf("built: %s\n", date)
		}
		return 0
	}

	args := flag.Args()
	if *showHelp {
		if len(args) > 0 {
			cli.ShowCommandHelp(args[0])
		} else {
			cli.ShowHelp()
		}
		return 0
	}
	if len(args) > 0 && !cli.IsCommand(args[0]) {
		logging.Error("unknown command: %s", args[0])
		output.Errorf("unknown command: %s", args[0])
		output.Hint("Run 'prefsheet -help' for usage")
		return 1
	}

	manager := config.NewManager(*configPath)
	cfg, err := manager.Load()
	if err != nil {
		logging.Error("config: %v", err)
		output.Errorf("%s: %v", manager.ConfigPath(), err)
		return 1
	}
	if cfg.Log.Dir != "" {
		if err := logging.Init(cfg.Log.Dir); err != nil {
			output.Warningf("failed to initialize logging: %v", err)
		}
	}
	logging.SetLevel(cfg.LogLevel())
	if *debug {
		logging.SetLevel(logging.LevelDebug)
		logging.SetOutput(os.Stderr)
	}

	s, err := schema.LoadOptional(cfg.Schema)
	if err != nil {
		logging.Error("schema: %v", err)
		output.Error(err.Error())
		return 1
	}

	st, err := store.Open(cfg.Values)
	if err != nil {
		logging.Error("store: %v", err)
		output.Error(err.Error())
		return 1
	}

	if len(args) > 0 {
		if err := cli.NewCLI(cfg, s, st).ParseAndExecute(append([]string{"prefsheet"}, args...)); err != nil {
			output.Errorf("Error: %v", err)
			return 1
		}
		return 0
	}

	return runTUI(cfg, s, st)
}

func runTUI(cfg *config.Config, s *schema.Schema, st *store.Store) int {
	title := cfg.UI.Title
	if title == "" {
		title = s.Title
	}

	var saveErr error
	m := ui.New(s.Sections, ui.Options{
		GetValue:    st.Accessor(),
		OnChange:    st.ChangeHandler(func(err error) { saveErr = err }),
		Title:       title,
		ToggleStyle: cfg.ToggleStyle(),
		Refreshable: true,
		Reload: func() error {
			_, err := st.Reload()
			return err
		},
		Standalone: true,
	})

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}

	if saveErr != nil {
		output.Errorf("Some changes were not saved: %v", saveErr)
		output.Hintf("See %s", logging.Path())
		return 1
	}
	return 0
}
