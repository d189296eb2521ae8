package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/phanxgames/uievents"
)

type runOptions struct {
	maxFrames int
	dt        float64
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Replay a script and print the delivered events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			script, err := uievents.LoadScriptFile(args[0])
			if err != nil {
				return err
			}
			return runScript(cmd.OutOrStdout(), script, cfg, opts)
		},
	}
	cmd.Flags().IntVar(&opts.maxFrames, "max-frames", 0, "stop after this many frames (0 runs the whole script)")
	cmd.Flags().Float64Var(&opts.dt, "dt", 1.0/60, "seconds per frame")
	return cmd
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <script>",
		Short: "Check that a script parses and its tree builds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			script, err := uievents.LoadScriptFile(args[0])
			if err != nil {
				return err
			}
			r, err := newReplay(script, cfg, io.Discard)
			if err != nil {
				return err
			}
			defer r.sys.Shutdown()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d nodes, %d steps, %d frames\n",
				successStyle.Render("ok"), len(r.nodes), len(script.Steps), r.input.Frames())
			return nil
		},
	}
}

// replay is a scripted scene wired to its own event system.
type replay struct {
	sys   *uievents.EventSystem
	tree  *uievents.Tree
	input *uievents.ScriptedInput
	nodes map[string]uievents.NodeID
	count int
}

func newReplay(script *uievents.Script, cfg uievents.Config, out io.Writer) (*replay, error) {
	tree := uievents.NewTree()
	canvas := uievents.NewCanvas(tree, "script", nil)
	group := uievents.NewSelectableGroup(tree)
	nodes, err := script.Build(tree, canvas, group)
	if err != nil {
		return nil, err
	}
	input, err := uievents.NewScriptedInput(script)
	if err != nil {
		return nil, err
	}

	surfaces := uievents.NewSurfaceRegistry()
	surfaces.Add(canvas)
	sys := uievents.NewEventSystem(tree, uievents.Options{Config: cfg, Surfaces: surfaces})
	sys.AddModule(uievents.NewStandaloneInputModule(sys, input))

	r := &replay{sys: sys, tree: tree, input: input, nodes: nodes}
	for _, n := range script.Nodes {
		caps, err := uievents.ParseCapabilitySet(n.Handlers)
		if err != nil {
			return nil, err
		}
		if caps == 0 {
			continue
		}
		id := nodes[n.Name]
		tree.AddHandler(id, uievents.NewTracer(caps, func(c uievents.Capability, ev uievents.Event) {
			r.count++
			fmt.Fprintf(out, "%s  %s %s %s\n",
				frameStyle.Render(fmt.Sprint(sys.Frame())),
				capStyle.Render(c.String()),
				nodeStyle.Render(tree.Path(id)),
				mutedStyle.Render(describe(ev)))
		}))
	}
	return r, nil
}

func describe(ev uievents.Event) string {
	switch e := ev.(type) {
	case *uievents.PointerEvent:
		s := fmt.Sprintf("pointer=%d button=%s pos=(%.0f,%.0f)",
			e.PointerID, e.Button, e.Position.X, e.Position.Y)
		if e.ClickCount > 0 {
			s += fmt.Sprintf(" clicks=%d", e.ClickCount)
		}
		return s
	case *uievents.AxisEvent:
		return fmt.Sprintf("dir=%s vector=(%.2f,%.2f)", e.MoveDir, e.MoveVector.X, e.MoveVector.Y)
	}
	return ""
}

func runScript(out io.Writer, script *uievents.Script, cfg uievents.Config, opts *runOptions) error {
	r, err := newReplay(script, cfg, out)
	if err != nil {
		return err
	}
	sys := r.sys
	sys.Enable()
	defer sys.Shutdown()

	// The first frame only activates the module.
	r.input.Paused = true
	sys.Update(opts.dt)
	r.input.Paused = false

	frames := 0
	for !r.input.Done() {
		if opts.maxFrames > 0 && frames >= opts.maxFrames {
			fmt.Fprintln(out, errorStyle.Render("stopped")+mutedStyle.Render(
				fmt.Sprintf(" after %d of %d frames", frames, r.input.Frames())))
			break
		}
		sys.Update(opts.dt)
		frames++
	}

	selected := "none"
	if id := sys.Selected(); id != uievents.NoNode {
		selected = r.tree.Path(id)
	}
	fmt.Fprintf(out, "%s %d frames, %d events, selected %s\n",
		successStyle.Render("done"), frames, r.count, nodeStyle.Render(selected))
	return nil
}
