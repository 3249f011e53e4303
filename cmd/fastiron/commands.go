package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carlosrabelo/fastiron/domain/entities"
	domain "github.com/carlosrabelo/fastiron/domain/services"
)

// sectionValue picks the part of a snapshot a single-section command prints
func sectionValue(section string, snap entities.Snapshot) any {
	switch section {
	case domain.SectionFacts:
		return snap.Facts
	case domain.SectionInterfaces:
		return naturalMap(snap.Interfaces)
	case domain.SectionCounters:
		return naturalMap(snap.Counters)
	case domain.SectionIP:
		return naturalMap(snap.InterfaceIP)
	case domain.SectionArp:
		return snap.ArpTable
	case domain.SectionMAC:
		return snap.MACTable
	default:
		return snap
	}
}

func newSectionCmd(section, short string) *cobra.Command {
	return &cobra.Command{
		Use:   section,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			snap, err := svc.Collect([]string{section})
			if err != nil {
				return err
			}
			return render(os.Stdout, sectionValue(section, snap), jsonOutput)
		},
	}
}

func newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot [section...]",
		Short: "Collect several state sections in one session",
		Long: `Collect state sections in one session.

Sections: facts, interfaces, counters, ip, arp, mac, lldp.
Without arguments every section is collected; sections the platform
does not implement are listed under "unsupported".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			snap, err := svc.Collect(args)
			if err != nil {
				return err
			}
			return render(os.Stdout, snap, jsonOutput)
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "config [running|startup|candidate|all]",
		Short:     "Show device configuration",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{entities.ScopeRunning, entities.ScopeStartup, entities.ScopeCandidate, entities.ScopeAll},
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := entities.ScopeAll
			if len(args) == 1 {
				scope = args[0]
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			set, err := svc.GetConfig(scope)
			if err != nil {
				return err
			}
			switch scope {
			case entities.ScopeRunning:
				fmt.Println(set.Running)
				return nil
			case entities.ScopeStartup:
				fmt.Println(set.Startup)
				return nil
			}
			return render(os.Stdout, set, jsonOutput)
		},
	}
}

func newCLICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cli <command>...",
		Short: "Run raw commands on the device",
		Long: `Run raw commands on the device. Each argument is one command:

  fastiron cli -t sw1 "show clock" "show vlan"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			out, err := svc.CLI(args)
			if err != nil {
				return err
			}
			return render(os.Stdout, orderedMap(args, out), jsonOutput)
		},
	}
}

func newMergeCmd() *cobra.Command {
	var (
		file   string
		inline string
		commit bool
	)
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Stage configuration lines and optionally commit them",
		Long: `Stage configuration lines from a file or an inline string and print
the resulting diff. Nothing is applied unless --commit is given, in which
case the lines are entered in configuration mode and saved with
"write memory".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (file == "") == (inline == "") {
				return errors.New("exactly one of --file or --lines is required")
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			diff, err := svc.Merge(file, inline, commit)
			if err != nil {
				return err
			}
			fmt.Print(diff)
			if commit {
				fmt.Fprintln(os.Stderr, "committed")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "file with configuration lines")
	cmd.Flags().StringVar(&inline, "lines", "", "configuration lines, newline separated")
	cmd.Flags().BoolVar(&commit, "commit", false, "apply and save the staged lines")
	return cmd
}
