package main

import (
	"fmt"

	"github.com/garlicgarrison/hanoi/hanoi"
	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <disks>",
		Short: "Print how many moves a tower of <disks> disks takes",
		Args:  diskArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseDisks(args[0])
			if err != nil {
				return err
			}

			count, err := hanoi.MoveCount(n)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
}
