// fastiron retrieves normalized state from Brocade/Ruckus FastIron switches.
//
// Usage:
//
//	fastiron facts -t <target>              Device identity and interface list
//	fastiron interfaces -t <target>         Interface state
//	fastiron arp -t <target>                ARP table
//	fastiron snapshot -t <target> [section] All (or selected) state sections
//	fastiron cli -t <target> <command>...   Raw commands
//	fastiron merge -t <target> -f <file>    Stage and optionally commit config
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/carlosrabelo/fastiron/application/services"
	"github.com/carlosrabelo/fastiron/infrastructure/config"
	"github.com/carlosrabelo/fastiron/infrastructure/logging"
	"github.com/carlosrabelo/fastiron/infrastructure/transport"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	configFile string
	target     string
	verbosity  int
	jsonOutput bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "fastiron",
	Short:             "Retrieve normalized state from FastIron switches",
	Version:           version + " (built " + buildTime + ")",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbosity < 0 || verbosity > 3 {
			return fmt.Errorf("--verbose must be 0, 1, 2, or 3")
		}
		logging.SetVerbosity(verbosity)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML inventory file (searched in ./, ~/.config/fastiron/, /etc/fastiron/ when unset)")
	rootCmd.PersistentFlags().StringVarP(&target, "target", "t", "", "device target (must match a target in the inventory)")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "verbosity level: 0=none, 1=debug logs, 2=raw device output, 3=debug+raw output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "JSON output instead of YAML")

	rootCmd.AddCommand(
		newSectionCmd("facts", "Show device facts"),
		newSectionCmd("interfaces", "Show interface state"),
		newSectionCmd("counters", "Show interface counters"),
		newSectionCmd("ip", "Show interface addresses"),
		newSectionCmd("arp", "Show the ARP table"),
		newSectionCmd("mac", "Show the MAC address table"),
		newSnapshotCmd(),
		newConfigCmd(),
		newCLICmd(),
		newMergeCmd(),
	)
}

// configSearchPaths lists the inventory locations tried when --config is unset
func configSearchPaths() []string {
	paths := []string{filepath.Join(".", "config.yaml")}
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			paths = append(paths, filepath.Join(dir, "fastiron", "config.yaml"))
		}
		if dir := os.Getenv("ProgramData"); dir != "" {
			paths = append(paths, filepath.Join(dir, "fastiron", "config.yaml"))
		}
	default:
		if dir, err := os.UserConfigDir(); err == nil {
			paths = append(paths, filepath.Join(dir, "fastiron", "config.yaml"))
		}
		paths = append(paths, "/etc/fastiron/config.yaml")
	}
	return paths
}

func resolveConfigPath(explicit string, candidates []string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			logging.Logger.Debugf("configuration file found at %s", path)
			return path, nil
		}
	}
	return "", fmt.Errorf("no config.yaml found in %v", candidates)
}

// newService loads the inventory entry for --target and builds the
// application service on the configured transport.
func newService() (*services.StateApplicationService, error) {
	if target == "" {
		return nil, errors.New("the --target parameter is required")
	}
	path, err := resolveConfigPath(configFile, configSearchPaths())
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path, verbosity)
	if err != nil {
		return nil, err
	}
	dev, err := cfg.Device(target)
	if err != nil {
		return nil, err
	}
	if dev.Password == "" {
		if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
			fmt.Fprintf(os.Stderr, "Password for %s@%s: ", dev.Username, dev.Target)
			secret, err := term.ReadPassword(fd)
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return nil, fmt.Errorf("read password: %w", err)
			}
			dev.Password = string(secret)
		}
	}
	return services.NewStateApplicationService(dev, transport.New(dev)), nil
}
