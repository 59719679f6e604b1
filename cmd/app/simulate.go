package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wichananm65/kg-market-backend/internal/config"
	"github.com/wichananm65/kg-market-backend/internal/feed"
	"github.com/wichananm65/kg-market-backend/internal/logging"
)

func newFeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Feed playback tools",
	}
	cmd.AddCommand(newSimulateCmd())
	return cmd
}

func newSimulateCmd() *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay feed events and print playback effects",
		Long: `Read feed events from stdin, one per line, and print every play and
pause the controller issues. Events:

  focus on|off             the feed screen gained or lost focus
  visible I:P [I:P ...]    viewport report, entry index and visible percent
  visible                  empty viewport report
  entries N                keep only the first N feed entries

Lines starting with # are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if threshold <= 0 || threshold > 100 {
				return fmt.Errorf("threshold must be in (0,100], got %v", threshold)
			}
			return simulate(cmd.InOrStdin(), cmd.OutOrStdout(), feed.SampleEntries(), threshold)
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", config.DefaultVisibilityThreshold, "visibility threshold in percent")
	return cmd
}

type printingPlayer struct {
	out io.Writer
}

func (p printingPlayer) Play(id string)  { fmt.Fprintf(p.out, "  play  %s\n", id) }
func (p printingPlayer) Pause(id string) { fmt.Fprintf(p.out, "  pause %s\n", id) }

func simulate(in io.Reader, out io.Writer, entries []feed.Entry, threshold float64) error {
	c := feed.NewController(entries, threshold, printingPlayer{out: out}, logging.Discard())

	sc := bufio.NewScanner(in)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fmt.Fprintf(out, "> %s\n", text)
		if err := applyEvent(c, entries, strings.Fields(text)); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if _, ok := c.Active(); ok {
			fmt.Fprintf(out, "  active=%d focused=%t\n", c.ActiveIndex(), c.Focused())
		} else {
			fmt.Fprintf(out, "  active=%d (none) focused=%t\n", c.ActiveIndex(), c.Focused())
		}
	}
	return sc.Err()
}

func applyEvent(c *feed.Controller, entries []feed.Entry, fields []string) error {
	switch fields[0] {
	case "focus":
		if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
			return fmt.Errorf("usage: focus on|off")
		}
		c.SetFocus(fields[1] == "on")
	case "visible":
		report := make(feed.Report, 0, len(fields)-1)
		for _, f := range fields[1:] {
			tok, err := parseViewToken(f)
			if err != nil {
				return err
			}
			report = append(report, tok)
		}
		c.OnVisibilityChanged(report)
	case "entries":
		if len(fields) != 2 {
			return fmt.Errorf("usage: entries N")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 || n > len(entries) {
			return fmt.Errorf("entries must be between 0 and %d", len(entries))
		}
		c.SetEntries(entries[:n])
	default:
		return fmt.Errorf("unknown event %q", fields[0])
	}
	return nil
}

func parseViewToken(s string) (feed.ViewToken, error) {
	idx, pct, ok := strings.Cut(s, ":")
	if !ok {
		return feed.ViewToken{}, fmt.Errorf("bad token %q, want index:percent", s)
	}
	i, err := strconv.Atoi(idx)
	if err != nil {
		return feed.ViewToken{}, fmt.Errorf("bad index in %q", s)
	}
	p, err := strconv.ParseFloat(pct, 64)
	if err != nil {
		return feed.ViewToken{}, fmt.Errorf("bad percent in %q", s)
	}
	return feed.ViewToken{Index: i, VisiblePercent: p}, nil
}
