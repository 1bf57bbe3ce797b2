package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"userdir/internal/directory"
	"userdir/internal/jsonutil"
	"userdir/internal/ui/textutil"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the users collection and exit",
	Long: `Fetch the users collection once and print it.

The default output is a plain table. With --json the records are printed
as fetched, indented.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

var listWidths = []int{4, 24, 28, 24, 20}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.close(context.WithoutCancel(ctx))

	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}
	users, err := s.client.FetchUsers(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listJSON {
		data, err := jsonutil.MarshalIndent(users)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	if len(users) == 0 {
		fmt.Fprintln(out, "No users found.")
		return nil
	}
	fmt.Fprintln(out, textutil.Columns([]string{"ID", "Name", "Email", "Phone", "Company"}, listWidths, 2))
	for _, u := range users {
		fmt.Fprintln(out, listRow(u))
	}
	return nil
}

func listRow(u directory.User) string {
	return textutil.Columns([]string{
		textutil.PadLeftVisual(strconv.Itoa(u.ID), listWidths[0]),
		u.Name,
		u.Email,
		u.Phone,
		u.Company.Name,
	}, listWidths, 2)
}
