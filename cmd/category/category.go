// Package category handles category store management commands.
package category

import (
	"fmt"
	"strings"

	"github.com/avoort95/finance-dashboard/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the category command group.
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "Manage spending categories and their keyword rules",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and their keywords",
	RunE:  listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new category",
	Args:  cobra.ExactArgs(1),
	RunE:  addFunc,
}

var addKeywordCmd = &cobra.Command{
	Use:   "add-keyword <category> <keyword>",
	Short: "Add a keyword to a category",
	Args:  cobra.ExactArgs(2),
	RunE:  addKeywordFunc,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(addKeywordCmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	for _, name := range root.Store.CategoryNames() {
		keywords, _ := root.Store.Keywords(name)
		if len(keywords) == 0 {
			fmt.Println(name)
			continue
		}
		fmt.Printf("%s: %s\n", name, strings.Join(keywords, ", "))
	}
	return nil
}

func addFunc(cmd *cobra.Command, args []string) error {
	name := args[0]

	added, err := root.Store.AddCategory(name)
	if err != nil {
		return err
	}
	if !added {
		root.Log.WithField("category", name).Warn("Category already exists")
		return nil
	}
	fmt.Printf("Added category %q\n", name)
	return nil
}

func addKeywordFunc(cmd *cobra.Command, args []string) error {
	name, keyword := args[0], args[1]

	added, err := root.Store.AddKeyword(name, keyword)
	if err != nil {
		return err
	}
	if !added {
		root.Log.WithField("category", name).Warn("Keyword is empty or already present, nothing to do")
		return nil
	}
	fmt.Printf("Added keyword %q to category %q\n", keyword, name)
	return nil
}
