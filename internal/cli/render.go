package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/fundraise/internal/models"
	"github.com/dmitrijs2005/fundraise/internal/validation"
)

// theme holds the output styles. The renderer is bound to the output writer,
// so colour is dropped when it is not a terminal.
type theme struct {
	heading    lipgloss.Style
	success    lipgloss.Style
	failure    lipgloss.Style
	hint       lipgloss.Style
	menuAuthed lipgloss.Style
	border     lipgloss.Style
	header     lipgloss.Style
}

func newTheme(w io.Writer) *theme {
	return themeFor(lipgloss.NewRenderer(w))
}

func themeFor(r *lipgloss.Renderer) *theme {
	return &theme{
		heading:    r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		success:    r.NewStyle().Foreground(lipgloss.Color("10")),
		failure:    r.NewStyle().Foreground(lipgloss.Color("9")),
		hint:       r.NewStyle().Foreground(lipgloss.Color("14")),
		menuAuthed: r.NewStyle().Foreground(lipgloss.Color("12")),
		border:     r.NewStyle().Foreground(lipgloss.Color("8")),
		header:     r.NewStyle().Bold(true).Padding(0, 1),
	}
}

var projectColumns = []string{"ID", "Title", "Details", "Total target", "Start time", "End time", "Owner"}

func projectTable(th *theme, views []models.ProjectView) string {
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			strconv.FormatInt(v.ID, 10),
			v.Title,
			v.Details,
			v.Target.String(),
			v.StartTime.String(),
			v.EndTime.String(),
			v.Owner,
		})
	}

	cell := th.header.UnsetBold()
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(th.border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return th.header
			}
			return cell
		}).
		Headers(projectColumns...).
		Rows(rows...).
		String()
}

func (a *App) printHeading(title string) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.theme.heading.Render(title))
}

func (a *App) printSuccess(msg string) { fmt.Fprintln(a.out, a.theme.success.Render(msg)) }
func (a *App) printFailure(msg string) { fmt.Fprintln(a.out, a.theme.failure.Render(msg)) }
func (a *App) printHint(msg string)    { fmt.Fprintln(a.out, a.theme.hint.Render(msg)) }

// printInvalid lists validation messages under "<what> failed.".
func (a *App) printInvalid(what string, err error) {
	a.printFailure(what + " failed. Please fix the following errors:")
	for _, m := range validation.Messages(err) {
		fmt.Fprintln(a.out, a.theme.failure.Render("- "+m))
	}
}

func (a *App) printProjects(views []models.ProjectView) {
	fmt.Fprintln(a.out, projectTable(a.theme, views))
}
