package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/fundraise/internal/common"
	"github.com/dmitrijs2005/fundraise/internal/services"
	"github.com/dmitrijs2005/fundraise/internal/validation"
)

func (a *App) CreateProject(ctx context.Context) error {
	a.printHeading("Create project")

	in, err := a.readProject([5]string{
		"Title: ",
		"Details: ",
		"Total target: ",
		"Start time (yyyy-mm-dd): ",
		"End time (yyyy-mm-dd): ",
	})
	if err != nil {
		return err
	}

	_, err = a.projectService.Create(ctx, a.session, in)
	if errors.Is(err, validation.ErrInvalid) {
		a.printInvalid("Project creation", err)
		return nil
	}
	if err != nil {
		return err
	}

	a.printSuccess("Project created successfully.")
	return nil
}

func (a *App) ViewProjects(ctx context.Context) error {
	a.printHeading("Projects")

	views, err := a.projectService.List(ctx)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		a.printFailure("No projects found.")
		return nil
	}

	a.printProjects(views)
	return nil
}

func (a *App) EditProject(ctx context.Context) error {
	a.printHeading("Edit project")

	owned, err := a.projectService.OwnedIDs(ctx, a.session)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(owned))
	for _, id := range owned {
		ids = append(ids, strconv.FormatInt(id, 10))
	}

	id, ok, err := a.readProjectID(fmt.Sprintf("Project ID [%s]: ", strings.Join(ids, ", ")))
	if err != nil || !ok {
		return err
	}

	current, err := a.projectService.Editable(ctx, a.session, id)
	if a.ownershipFailed(err, "edit") {
		return nil
	}
	if err != nil {
		return err
	}

	a.printHint("Leave blank to keep existing value")
	in, err := a.readProject([5]string{
		fmt.Sprintf("Title (%s): ", current.Title),
		fmt.Sprintf("Details (%s): ", current.Details),
		fmt.Sprintf("Total target (%s): ", current.Target.String()),
		fmt.Sprintf("Start time (%s): ", current.StartTime.String()),
		fmt.Sprintf("End time (%s): ", current.EndTime.String()),
	})
	if err != nil {
		return err
	}

	_, err = a.projectService.Update(ctx, a.session, id, in)
	if errors.Is(err, validation.ErrInvalid) {
		a.printInvalid("Project update", err)
		return nil
	}
	if a.ownershipFailed(err, "edit") {
		return nil
	}
	if err != nil {
		return err
	}

	a.printSuccess("Project updated successfully.")
	return nil
}

func (a *App) DeleteProject(ctx context.Context) error {
	a.printHeading("Delete project")

	id, ok, err := a.readProjectID("Project ID: ")
	if err != nil || !ok {
		return err
	}

	err = a.projectService.Delete(ctx, a.session, id)
	if a.ownershipFailed(err, "delete") {
		return nil
	}
	if err != nil {
		return err
	}

	a.printSuccess("Project deleted successfully.")
	return nil
}

func (a *App) SearchProjects(ctx context.Context) error {
	a.printHeading("Search project")

	from, err := getLine(a.reader, "Start time (required): ", a.out)
	if err != nil {
		return err
	}
	to, err := getLine(a.reader, "End time (optional): ", a.out)
	if err != nil {
		return err
	}

	views, err := a.projectService.Search(ctx, from, to)
	if errors.Is(err, validation.ErrInvalid) {
		a.printInvalid("Search", err)
		return nil
	}
	if err != nil {
		return err
	}
	if len(views) == 0 {
		a.printFailure("No projects found.")
		return nil
	}

	a.printSuccess(fmt.Sprintf("Found %d project(s):", len(views)))
	a.printProjects(views)
	return nil
}

// readProject prompts for title, details, target, start and end in order.
func (a *App) readProject(prompts [5]string) (services.ProjectInput, error) {
	var in services.ProjectInput
	dst := [5]*string{&in.Title, &in.Details, &in.Target, &in.StartTime, &in.EndTime}
	for i, prompt := range prompts {
		v, err := getLine(a.reader, prompt, a.out)
		if err != nil {
			return services.ProjectInput{}, err
		}
		*dst[i] = v
	}
	return in, nil
}

// readProjectID reads a numeric id; ok is false when the input was not one.
func (a *App) readProjectID(prompt string) (int64, bool, error) {
	raw, err := getLine(a.reader, prompt, a.out)
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		a.printFailure("Invalid project ID.")
		return 0, false, nil
	}
	return id, true, nil
}

// ownershipFailed prints the message for a missing or foreign project and
// reports whether it did.
func (a *App) ownershipFailed(err error, action string) bool {
	switch {
	case errors.Is(err, common.ErrNotFound):
		a.printFailure("Project not found.")
	case errors.Is(err, common.ErrForbidden):
		a.printFailure("You do not have permission to " + action + " this project.")
	default:
		return false
	}
	return true
}
