package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumen-ui/lumen/pkg/binding"
	"github.com/lumen-ui/lumen/pkg/inspect"
	"github.com/lumen-ui/lumen/pkg/object"
	"github.com/lumen-ui/lumen/pkg/reactive"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

func inspectCmd() *cobra.Command {
	var (
		addr       string
		configPath string
		demo       bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Run the binding inspector",
		Long: `Run the development inspector with a built-in demo binding tree.

The demo mounts a small music-player object graph and mutates it on a
timer, so every adapter (property bindings, nested bindings, keyed
lists, slots) can be watched live in a browser.

Examples:
  lumen inspect
  lumen inspect --addr=:9100
  lumen inspect --config=./lumen.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(addr, configPath, demo)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from lumen.json)")
	cmd.Flags().StringVarP(&configPath, "config", "c", inspect.ConfigFileName, "Path to config file")
	cmd.Flags().BoolVar(&demo, "demo", true, "Mutate the demo tree on a timer")

	return cmd
}

func runInspect(addr, configPath string, demo bool) error {
	cfg, err := inspect.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}

	logger := slog.Default().With("component", "lumen")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scope := reactive.NewScope(nil)
	defer scope.Dispose()

	root, mutate := demoTree(scope, logger)
	if demo {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					mutate()
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	srv := inspect.NewServer(cfg, root, inspect.WithLogger(logger))
	defer srv.Close()

	logger.Info("open the inspector", "url", "http://"+cfg.Addr+"/")
	return srv.ListenAndServe(ctx)
}

// demoTree builds the demo object graph and returns the root accessor
// plus a mutator that advances the demo one step.
func demoTree(scope *reactive.Scope, logger *slog.Logger) (reactive.Accessor[*vdom.Node], func()) {
	tracks := []*object.Object{
		newTrack("Bohemian Rhapsody", "Queen"),
		newTrack("Paranoid Android", "Radiohead"),
		newTrack("Clair de Lune", "Debussy"),
	}

	current := reactive.NewSource(tracks[0])
	playing := reactive.NewSource(false)
	queue := reactive.NewSource(tracks)

	player := object.New()
	releases := binding.Construct(player, map[string]binding.Value[any]{
		"state": binding.FromAccessor(reactive.Map[bool, any](playing, func(p bool) any {
			if p {
				return "playing"
			}
			return "paused"
		})),
	})
	scope.OnCleanup(func() {
		for _, release := range releases {
			release()
		}
	})

	binding.Track[any](scope, binding.BindProperty(player, "state", "paused"), func() {
		state, _ := player.Get("state")
		logger.Info("player state changed", "state", state)
	})

	title := binding.BindNested(current, "title")
	artist := binding.BindNestedDefault(current, "artist", "unknown")
	state := binding.BindProperty(player, "state", "paused")

	header := binding.RenderOne[any](scope, binding.FromAccessor[any](title),
		func(_ *reactive.Scope, v any) *vdom.Node {
			return vdom.Element("h1", vdom.Text(fmt.Sprint(v)))
		})

	list := binding.RenderEach[*object.Object](scope,
		binding.FromAccessor[[]*object.Object](queue),
		func(t *object.Object, _ int) string {
			title, _ := t.Get("title")
			return fmt.Sprint(title)
		},
		func(_ *reactive.Scope, item reactive.Accessor[*object.Object], index reactive.Accessor[int]) *vdom.Node {
			rowTitle := binding.BindNested(item, "title")
			return vdom.Element("li",
				vdom.Text(fmt.Sprintf("%d. %v", index.Get()+1, rowTitle.Get())))
		})

	root := reactive.NewDerived(
		func() *vdom.Node {
			return vdom.Element("main",
				header.Get(),
				vdom.Element("p",
					vdom.Text(fmt.Sprintf("%v by %v", title.Get(), artist.Get())),
				).WithProp("data-state", fmt.Sprint(state.Get())),
				vdom.Element("ol", list.Get()),
			)
		},
		func(invalidate func()) func() {
			unsubs := []func(){
				header.Subscribe(invalidate),
				list.Subscribe(invalidate),
				artist.Subscribe(invalidate),
				state.Subscribe(invalidate),
			}
			return func() {
				for _, unsub := range unsubs {
					unsub()
				}
			}
		},
	)

	step := 0
	trackIdx := 0
	mutate := func() {
		step++
		switch step % 3 {
		case 0:
			playing.Update(func(p bool) bool { return !p })
		case 1:
			trackIdx = (trackIdx + 1) % len(tracks)
			current.Set(tracks[trackIdx])
		case 2:
			// Rotate the queue to exercise keyed moves.
			queue.Update(func(q []*object.Object) []*object.Object {
				if len(q) < 2 {
					return q
				}
				rotated := make([]*object.Object, 0, len(q))
				rotated = append(rotated, q[1:]...)
				return append(rotated, q[0])
			})
		}
	}

	return root, mutate
}

func newTrack(title, artist string) *object.Object {
	t := object.New()
	t.Set("title", title)
	t.Set("artist", artist)
	return t
}
