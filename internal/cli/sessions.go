package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE:  runList,
}

var useCmd = &cobra.Command{
	Use:   "use <session-id>",
	Short: "Make a session active",
	Args:  cobra.ExactArgs(1),
	RunE:  runUse,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its log",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and the active session",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of sessions to display")

	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statusCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	sessions, err := e.sessions.List(listLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions found. Start one with: rubik new")
		return nil
	}

	active := e.sessions.ActiveID()
	fmt.Fprintf(out, "  %-36s  %-5s  %-19s  %s\n", "ID", "SIZE", "CREATED", "NOTES")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 72))
	for _, s := range sessions {
		marker := " "
		if s.SessionID == active {
			marker = "*"
		}
		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
		}
		fmt.Fprintf(out, "%s %-36s  %-5s  %-19s  %s\n",
			marker, s.SessionID, fmt.Sprintf("%dx%d", s.Size, s.Size),
			s.CreatedAt.Local().Format(time.DateTime), notes)
	}
	return nil
}

func runUse(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.sessions.Use(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Active session: %s\n", args[0])
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.sessions.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted session: %s\n", args[0])
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "rubik status")
	fmt.Fprintln(out, "============")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Database: %s\n", e.cfg.DBPath)
	fmt.Fprintf(out, "Default size: %d\n", e.cfg.DefaultSize)
	fmt.Fprintf(out, "Colors: %s\n", strings.Join(e.cfg.Colors, " "))
	fmt.Fprintln(out)

	if e.sessions.ActiveID() == "" {
		fmt.Fprintln(out, "No active session")
		return nil
	}

	s, err := e.sessions.Active()
	if err != nil {
		fmt.Fprintf(out, "Active session unavailable: %v\n", err)
		return nil
	}
	cube := s.Cube()
	fmt.Fprintf(out, "Active session: %s\n", s.ID())
	fmt.Fprintf(out, "  Size: %dx%d\n", cube.Size(), cube.Size())
	fmt.Fprintf(out, "  Operations: %d\n", len(s.Ops))
	fmt.Fprintf(out, "  Moves in history: %d\n", len(cube.Moves()))
	fmt.Fprintf(out, "  Solved: %t\n", cube.IsSolved())
	return nil
}
