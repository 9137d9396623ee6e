package cli

import (
	"context"
	"fmt"
)

// Interests prints the catalog, marking the user's own selection.
func (a *App) Interests(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	all, err := a.interests.List(ctx)
	if err != nil {
		return fmt.Errorf("list interests: %w", err)
	}
	mine, err := a.interests.Mine(ctx)
	if err != nil {
		return fmt.Errorf("list your interests: %w", err)
	}

	selected := make(map[string]bool, len(mine))
	for _, in := range mine {
		selected[in.ID] = true
	}
	if len(all) == 0 {
		fmt.Fprintln(a.out, "No interests available.")
		return nil
	}
	for _, in := range all {
		mark := " "
		if selected[in.ID] {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s %-12s %s\n", mark, in.ID, in.Name)
	}
	return nil
}

func (a *App) SelectInterest(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if err := a.interests.Select(ctx, id); err != nil {
		return fmt.Errorf("select interest: %w", err)
	}
	fmt.Fprintln(a.out, "Interest added")
	return nil
}

func (a *App) RemoveInterest(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if err := a.interests.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove interest: %w", err)
	}
	fmt.Fprintln(a.out, "Interest removed")
	return nil
}
