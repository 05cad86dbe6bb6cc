package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/techbook/internal/manager"
	"github.com/nikbrunner/techbook/internal/model"
	"github.com/nikbrunner/techbook/internal/picker"
	"github.com/nikbrunner/techbook/internal/search"
)

const emptyMessage = "No bookmarks found. Try adjusting your search or category filter."

// errEmptyDraft is returned by add when the name or URL is blank.
var errEmptyDraft = errors.New("name and url must not be empty")

func newOpenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "open <query...>",
		Short: "Fuzzy search bookmark names and open the match",
		Long: `Ranks bookmarks by fuzzy matching the query against their names.
A single match opens directly; several matches show a picker.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd, opts, strings.Join(args, " "))
		},
	}
}

// runOpen performs a fuzzy search and opens the selected bookmark.
func runOpen(cmd *cobra.Command, opts *options, query string) error {
	s, err := openSession(opts)
	if err != nil {
		return fmt.Errorf("loading bookmarks: %w", err)
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	results := search.FuzzySearch(s.manager.Bookmarks(), query)

	if len(results) == 0 {
		fmt.Fprintf(out, "No bookmarks found for '%s'\n", query)
		return nil
	}

	var selected *model.Bookmark
	if len(results) == 1 {
		// Single result - select it directly
		selected = results[0].Bookmark
	} else {
		// Multiple results - show picker
		program := tea.NewProgram(picker.New(results, query), tea.WithInput(opts.stdin), tea.WithOutput(out))
		finalModel, err := program.Run()
		if err != nil {
			return fmt.Errorf("running picker: %w", err)
		}
		selected = finalModel.(picker.Picker).SelectedBookmark()
	}

	if selected == nil {
		return nil
	}

	fmt.Fprintf(out, "Opening: %s\n", selected.Name)
	if err := s.manager.Open(selected.URL); err != nil {
		return fmt.Errorf("opening %s: %w", selected.URL, err)
	}
	return nil
}

func newListCmd(opts *options) *cobra.Command {
	var category, term string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List bookmarks, optionally filtered",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return fmt.Errorf("loading bookmarks: %w", err)
			}
			defer s.Close()

			printTable(cmd.OutOrStdout(), s.manager.View(term, category))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", search.AllCategories, "only show this category")
	cmd.Flags().StringVarP(&term, "search", "s", "", "only show bookmarks whose name or url contains this text")
	return cmd
}

// printTable writes bookmarks as aligned columns, or the empty state.
func printTable(w io.Writer, c model.Collection) {
	if len(c) == 0 {
		fmt.Fprintln(w, emptyMessage)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tICON\tNAME\tCATEGORY\tURL")
	for _, b := range c {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", b.ID, b.Icon, b.Name, b.Category, b.URL)
	}
	_ = tw.Flush()
}

func newCategoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return fmt.Errorf("loading bookmarks: %w", err)
			}
			defer s.Close()

			for _, c := range s.manager.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newAddCmd(opts *options) *cobra.Command {
	var category, icon string

	cmd := &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add a bookmark",
		Long: `Adds a bookmark. URLs without http:// or https:// get https:// prepended.
Category and icon default to the values in the config file. Icons longer
than two characters are rejected.

Unlike the add form, which picks from the existing categories, --category
accepts any name, so this is how a new category is started.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return fmt.Errorf("loading bookmarks: %w", err)
			}
			defer s.Close()

			draft := model.Draft{
				Name:     args[0],
				URL:      args[1],
				Category: category,
				Icon:     icon,
			}
			if draft.Category == "" {
				draft.Category = s.config.DefaultCategory
			}

			b, ok, err := s.manager.Add(draft)
			if err != nil {
				return fmt.Errorf("adding bookmark: %w", err)
			}
			if !ok {
				return fmt.Errorf("adding bookmark: %w", errEmptyDraft)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added: [%d] %s %s (%s)\n", b.ID, b.Icon, b.Name, b.URL)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category (default from config)")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "icon, at most two characters (default from config)")
	return cmd
}

func newRemoveCmd(opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a bookmark by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}

			s, err := openSession(opts)
			if err != nil {
				return fmt.Errorf("loading bookmarks: %w", err)
			}
			defer s.Close()

			b, found := s.manager.Get(id)
			if !found {
				return fmt.Errorf("deleting bookmark: %w: %d", manager.ErrNotFound, id)
			}

			out := cmd.OutOrStdout()
			confirmer := manager.Always
			if !yes {
				confirmer = promptConfirmer(opts.stdin, out)
			}

			removed, err := s.manager.Delete(id, confirmer)
			if err != nil {
				return fmt.Errorf("deleting bookmark: %w", err)
			}
			if !removed {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}

			fmt.Fprintf(out, "Deleted: [%d] %s\n", b.ID, b.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

// promptConfirmer asks on out and reads a y/N answer from in.
func promptConfirmer(in io.Reader, out io.Writer) manager.Confirmer {
	return manager.ConfirmFunc(func(message string) bool {
		fmt.Fprintf(out, "%s [y/N] ", message)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	})
}
