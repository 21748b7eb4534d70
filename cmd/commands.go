package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vibe-coding/getsel/pkg/clipboard"
	"github.com/vibe-coding/getsel/pkg/config"
	"github.com/vibe-coding/getsel/pkg/keys"
	"github.com/vibe-coding/getsel/pkg/monitor"
	"github.com/vibe-coding/getsel/pkg/selection"
)

var (
	configPath  string
	timeoutMs   uint32
	printTiming bool
	backend     string
)

// loadSettings reads the config file and applies any flags the user set.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	s, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	flags := cmd.Flags()
	if flags.Changed("timeout-ms") {
		s.TimeoutMs = timeoutMs
	}
	if flags.Changed("timing") {
		s.PrintTiming = printTiming
	}
	if flags.Changed("backend") {
		s.Backend = backend
	}
	return s, nil
}

// oneShot picks a clipboard backend whose writes outlive this process,
// unless the user chose one. Without it the restored clipboard can vanish
// when get exits.
func oneShot(cfg selection.Config) selection.Config {
	if cfg.Backend == clipboard.BackendAuto {
		cfg.Backend = clipboard.OneShotBackend
	}
	return cfg
}

var GetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the text selected in the focused application",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadSettings(cmd)
		if err != nil {
			log.Fatal(err)
		}
		cfg, err := s.CaptureConfig()
		if err != nil {
			log.Fatal(err)
		}

		text, err := selection.GetSelectionText(oneShot(cfg))
		if err != nil {
			log.Fatal(err)
		}

		// Keep piped output byte-exact.
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Println(text)
			return
		}
		fmt.Print(text)
	},
}

var CopyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Send the copy shortcut to the focused application",
	Run: func(cmd *cobra.Command, args []string) {
		if err := keys.Copy(); err != nil {
			log.Fatal(err)
		}
	},
}

var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the selection every time the hotkey is pressed",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadSettings(cmd)
		if err != nil {
			log.Fatal(err)
		}
		cfg, err := s.CaptureConfig()
		if err != nil {
			log.Fatal(err)
		}
		hk, err := monitor.ParseHotkey(s.Hotkey)
		if err != nil {
			log.Fatal(err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		capture := func() (string, error) {
			return selection.GetSelectionText(cfg)
		}
		monitor.New(hk, s.Settle(), capture, os.Stdout).Run(ctx)
	},
}

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the config file",
}

var ConfigShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadSettings(cmd)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("timeout_ms: %d\n", s.TimeoutMs)
		fmt.Printf("poll_interval_ms: %d\n", s.PollIntervalMs)
		fmt.Printf("print_timing: %t\n", s.PrintTiming)
		fmt.Printf("backend: %s\n", s.Backend)
		fmt.Printf("hotkey: %s\n", s.Hotkey)
		fmt.Printf("settle_ms: %d\n", s.SettleMs)
	},
}

var ConfigInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				log.Fatal(err)
			}
			path = p
		}
		if _, err := os.Stat(path); err == nil {
			log.Fatalf("%s already exists", path)
		}
		if err := config.Save(path, config.Defaults()); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s\n", path)
	},
}

var RootCmd = &cobra.Command{
	Use:   "getsel",
	Short: "getsel reads the text selected in any application",
	Long: `Reads the current selection by sending the copy shortcut to the focused
application and watching the clipboard. The previous clipboard text or
image is put back afterwards.`,
}

func init() {
	RootCmd.AddCommand(GetCmd)
	RootCmd.AddCommand(CopyCmd)
	RootCmd.AddCommand(WatchCmd)
	RootCmd.AddCommand(ConfigCmd)
	ConfigCmd.AddCommand(ConfigShowCmd)
	ConfigCmd.AddCommand(ConfigInitCmd)

	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.getsel/config.yaml)")
	for _, c := range []*cobra.Command{GetCmd, WatchCmd, ConfigShowCmd} {
		c.Flags().Uint32VarP(&timeoutMs, "timeout-ms", "t", 0, "Max time to wait for the copy to land")
		c.Flags().BoolVar(&printTiming, "timing", false, "Log how long the copy took")
		c.Flags().StringVar(&backend, "backend", "", "Clipboard backend: native or text (default depends on command and OS)")
	}
}
