package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pianofix/pianofix/pkg/synth/songs"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff9f"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in song catalog",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(titleStyle.Render("Songs"))
		for _, s := range songs.All {
			notes := 0
			for _, track := range s.Tracks {
				notes += len(track)
			}
			fmt.Printf("  %s  %s %s\n",
				idStyle.Render(fmt.Sprintf("%-20s", s.ID)),
				s.Name,
				dimStyle.Render(fmt.Sprintf("(%d tracks, %d notes, %.1fs)",
					len(s.Tracks), notes, s.Tracks.MaxScaledDuration(1.0))))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
