package main

import (
	"fmt"
	"strconv"
	"strings"

	"go-dsa/config"
	"go-dsa/pkg/heap"
	"go-dsa/pkg/pqueue"
	"go-dsa/util/logger"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRootCmd(configs *config.AppConfig) *cobra.Command {
	root := &cobra.Command{
		Use:           "dsa",
		Short:         "Play with heaps, heapsort and priority queues",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return configs.Validate()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configs.HeapConfig.Mode, "mode", configs.HeapConfig.Mode, "heap ordering: min or max")
	flags.StringVar(&configs.HeapConfig.Style, "style", configs.HeapConfig.Style, "tree rendering style: default or ascii")
	flags.StringVar(&configs.LogConfig.Level, "log-level", configs.LogConfig.Level, "log level")

	root.AddCommand(
		newHeapsortCmd(),
		newHeapCmd(configs),
		newPQueueCmd(),
	)
	return root
}

func newHeapsortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heapsort <int>...",
		Short: "Sort integers in ascending order",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseInts(args)
			if err != nil {
				return err
			}

			logger.L.Debugf("sorting %d values", len(vals))
			heap.Sort(vals)
			fmt.Fprintln(cmd.OutOrStdout(), joinInts(vals))
			return nil
		},
	}
}

func newHeapCmd(configs *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "heap <int>...",
		Short: "Build a heap, draw it, then pop every element",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseInts(args)
			if err != nil {
				return err
			}
			mode, err := configs.HeapConfig.ParseMode()
			if err != nil {
				return err
			}

			h := heap.New(heap.Natural[int](mode), vals...)
			logger.L.WithField("mode", mode).Debugf("built heap of height %d", h.Height())

			drawing, err := h.Render(configs.HeapConfig.Style)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if drawing != "" {
				fmt.Fprintln(out, drawing)
			}

			popped := make([]int, 0, h.Len())
			for h.Len() > 0 {
				v, err := h.Pop()
				if err != nil {
					return err
				}
				popped = append(popped, v)
			}
			fmt.Fprintf(out, "pop order: %s\n", joinInts(popped))
			return nil
		},
	}
}

func newPQueueCmd() *cobra.Command {
	var unstable bool
	cmd := &cobra.Command{
		Use:   "pqueue <item:priority>...",
		Short: "Put items with priorities, then get them all back",
		RunE: func(cmd *cobra.Command, args []string) error {
			pq := pqueue.New[string, int](&pqueue.Options{Stable: !unstable})
			for _, arg := range args {
				item, prio, ok := strings.Cut(arg, ":")
				if !ok {
					return errors.Errorf("expected item:priority, got '%s'", arg)
				}
				p, err := strconv.Atoi(prio)
				if err != nil {
					return errors.Wrapf(err, "invalid priority for '%s'", item)
				}
				if err := pq.Put(item, p); err != nil {
					return err
				}
			}

			items := make([]string, 0, pq.Size())
			for !pq.Empty() {
				item, err := pq.Get()
				if err != nil {
					return err
				}
				items = append(items, item)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(items, " "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&unstable, "unstable", false, "do not preserve insertion order among equal priorities")
	return cmd
}

func parseInts(args []string) ([]int, error) {
	vals := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid integer '%s'", a)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func joinInts(vals []int) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, " ")
}
