package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik"
	"github.com/SeamusWaldron/rubik/internal/geometry"
	"github.com/SeamusWaldron/rubik/internal/session"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export session data",
	Long:  `Export the move history or the facelet state of a session.`,
}

var exportMovesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Export the move history",
	Long: `Export the move history of a session in text or JSON format.

Examples:
  rubik export moves
  rubik export moves --id <session_id> --format json
  rubik export moves --format txt -o moves.txt`,
	RunE: runExportMoves,
}

var exportStateCmd = &cobra.Command{
	Use:   "state",
	Short: "Export the facelet state",
	Long: `Export every facelet's position and color label.

The txt format prints one facelet per line: face, x, y, z and label. The
json format also includes the session parameters and the face-major grid.`,
	RunE: runExportState,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	for _, c := range []*cobra.Command{exportMovesCmd, exportStateCmd} {
		exportCmd.AddCommand(c)
		c.Flags().StringVar(&sessionID, "id", "", "Session ID (default: active session)")
		c.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
		c.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	}
}

type moveJSON struct {
	Index    int    `json:"index"`
	Axis     string `json:"axis"`
	Slice    int    `json:"slice"`
	Inverse  bool   `json:"inverse"`
	Notation string `json:"notation"`
}

func runExportMoves(cmd *cobra.Command, args []string) error {
	return withSession(cmd, sessionID, func(e *env, s *session.Session) error {
		moves := s.Cube().Moves()

		var output string
		switch strings.ToLower(exportFormat) {
		case "txt":
			output = rubik.FormatMoves(moves)

		case "json":
			movesJSON := make([]moveJSON, 0, len(moves))
			for i, m := range moves {
				movesJSON = append(movesJSON, moveJSON{
					Index:    i,
					Axis:     m.Axis.String(),
					Slice:    m.Slice,
					Inverse:  m.Orientation == rubik.Inverse,
					Notation: m.Notation(),
				})
			}
			data, err := json.MarshalIndent(movesJSON, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			output = string(data)

		default:
			return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
		}

		return writeExport(cmd, output, fmt.Sprintf("%d moves", len(moves)))
	})
}

type faceletJSON struct {
	Face  string `json:"face"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
	Color string `json:"color"`
}

type stateJSON struct {
	SessionID string        `json:"session_id"`
	Size      int           `json:"size"`
	Colors    []string      `json:"colors"`
	Solved    bool          `json:"solved"`
	Faces     [][][]string  `json:"faces"`
	Facelets  []faceletJSON `json:"facelets"`
}

func runExportState(cmd *cobra.Command, args []string) error {
	return withSession(cmd, sessionID, func(e *env, s *session.Session) error {
		cube := s.Cube()
		coords, state := cube.CoordinatesAndState()
		labels := cube.Colors()

		label := func(c rubik.Color) string {
			if i := c.Index(); i >= 0 && i < len(labels) {
				return labels[i]
			}
			return "?"
		}

		var output string
		switch strings.ToLower(exportFormat) {
		case "txt":
			var b strings.Builder
			for i, p := range coords {
				fmt.Fprintf(&b, "%s %d %d %d %s\n", geometry.FaceNames[p.Face], p.X, p.Y, p.Z, label(state[i]))
			}
			output = strings.TrimSuffix(b.String(), "\n")

		case "json":
			doc := stateJSON{
				SessionID: s.ID(),
				Size:      cube.Size(),
				Colors:    labels,
				Solved:    cube.IsSolved(),
				Faces:     cube.Facelets(),
				Facelets:  make([]faceletJSON, len(coords)),
			}
			for i, p := range coords {
				doc.Facelets[i] = faceletJSON{
					Face:  geometry.FaceNames[p.Face],
					X:     p.X,
					Y:     p.Y,
					Z:     p.Z,
					Color: label(state[i]),
				}
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			output = string(data)

		default:
			return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
		}

		return writeExport(cmd, output, fmt.Sprintf("%d facelets", len(coords)))
	})
}

func writeExport(cmd *cobra.Command, output, what string) error {
	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", what, exportOutput)
	return nil
}
