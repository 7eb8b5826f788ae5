package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Tokir224/Task-Dependency-Visualizer/internal/jobs"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-run the pipeline whenever the jobs file changes",
	Long: `Watch a jobs file and re-run the full pipeline (parse, validate, layer,
render) after every save. Each change triggers exactly one recompute; bursts
of writes are debounced.

When an edit fails validation, the errors are shown and the previous valid
snapshot is retained until the file is fixed.

Interactive keys:
  o - cycle diagram orientation (re-renders the accepted snapshot only)
  q - quit`,
	Example: `  # Watch with defaults
  jobviz watch jobs.yaml

  # Watch with a longer debounce
  JOBVIZ_WATCH_DEBOUNCE=2s jobviz watch jobs.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	if err := validateFileArg(filePath); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	orientation, err := resolveOrientation(cmd, cfg)
	if err != nil {
		return err
	}
	format, err := resolveFormat(cmd, cfg)
	if err != nil {
		return err
	}
	debounce, err := cfg.Watch.DebounceDuration()
	if err != nil {
		return err
	}

	watcher, err := jobs.NewWatcher(filePath, jobs.WithDebounce(debounce))
	if err != nil {
		return err
	}
	defer watcher.Close()

	session := newWatchSession(filePath, orientation, format)
	session.reload()

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	keyCh := session.startKeyboardListener(ctx)
	defer session.restoreTerminal()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watcher.Run(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return session.loop(ctx, watcher.Events(), keyCh)
	})

	return g.Wait()
}

// watchSession holds the state of one interactive watch run: the last
// accepted snapshot, the current orientation, and terminal bookkeeping.
type watchSession struct {
	mu          sync.Mutex
	path        string
	orientation jobs.Orientation
	format      string
	snapshot    *jobs.Snapshot
	spin        *spinner.Spinner
	oldState    *term.State
	isRawMode   bool
	stdinFd     int
}

func newWatchSession(path string, orientation jobs.Orientation, format string) *watchSession {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" Watching %s  (o: orientation, q: quit)", path)

	return &watchSession{
		path:        path,
		orientation: orientation,
		format:      format,
		spin:        s,
		stdinFd:     int(os.Stdin.Fd()),
	}
}

// loop is the main event loop: one recompute per debounced file change,
// re-render on orientation cycling, quit on q or Ctrl+C.
func (s *watchSession) loop(ctx context.Context, events <-chan struct{}, keyCh <-chan byte) error {
	s.spin.Start()
	defer s.spin.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-events:
			s.spin.Stop()
			s.reload()
			s.spin.Start()
		case key := <-keyCh:
			switch key {
			case 'q', 'Q', 3: // 3 = Ctrl+C
				return nil
			case 'o', 'O':
				s.spin.Stop()
				s.cycleOrientation()
				s.spin.Start()
			}
		}
	}
}

// reload re-runs the full pipeline on the watched file. On failure the
// errors are printed and the previous valid snapshot is retained.
func (s *watchSession) reload() {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := jobs.ParseJobsFile(s.path)
	if err != nil {
		s.printErrors([]error{err})
		return
	}

	snapshot, errs := jobs.Commit(result.Config, result)
	if len(errs) > 0 {
		s.printErrors(errs)
		return
	}

	s.snapshot = snapshot
	s.render()
}

// cycleOrientation advances to the next orientation and re-renders the
// accepted snapshot. No re-parse, no re-layering.
func (s *watchSession) cycleOrientation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orientation = s.orientation.Next()
	if s.snapshot != nil {
		s.render()
	}
}

// render prints the banner, table, and diagram for the accepted snapshot.
func (s *watchSession) render() {
	fmt.Println()
	printSuccessBanner(s.snapshot)
	fmt.Println()
	fmt.Println(jobs.RenderTable(s.snapshot, colorEnabled()))
	fmt.Println()
	fmt.Print(renderDiagram(s.snapshot, s.orientation, s.format))
}

// printErrors prints a numbered error list without terminating the watch.
func (s *watchSession) printErrors(errs []error) {
	red := color.New(color.FgRed, color.Bold)
	fmt.Fprintln(os.Stderr)
	red.Fprintf(os.Stderr, "Error: ")
	fmt.Fprintf(os.Stderr, "Validation failed for %s\n", s.path)
	for i, err := range errs {
		fmt.Fprintf(os.Stderr, "  %d. %v\n", i+1, err)
	}
	if s.snapshot != nil {
		fmt.Fprintln(os.Stderr, "Keeping previous valid snapshot until the file is fixed")
	}
}

// startKeyboardListener starts a goroutine that listens for keyboard input.
// Returns a channel that receives key presses.
func (s *watchSession) startKeyboardListener(ctx context.Context) <-chan byte {
	keyCh := make(chan byte, 1)

	// Only enable raw mode if stdout is a terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return keyCh
	}

	go s.keyboardLoop(ctx, keyCh)

	return keyCh
}

// keyboardLoop reads keyboard input in raw mode.
func (s *watchSession) keyboardLoop(ctx context.Context, keyCh chan<- byte) {
	oldState, err := term.MakeRaw(s.stdinFd)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.oldState = oldState
	s.isRawMode = true
	s.mu.Unlock()

	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return
		default:
			n, err := os.Stdin.Read(buf)
			if err != nil || n == 0 {
				continue
			}
			select {
			case keyCh <- buf[0]:
			default:
			}
		}
	}
}

// restoreTerminal restores the terminal to its original state.
func (s *watchSession) restoreTerminal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRawMode && s.oldState != nil {
		term.Restore(s.stdinFd, s.oldState)
		s.isRawMode = false
	}
}

func init() {
	watchCmd.Flags().String("orientation", "", "Diagram orientation: top-bottom | bottom-top | left-right | right-left")
	watchCmd.Flags().String("format", "", "Diagram format: ascii | dot")
	rootCmd.AddCommand(watchCmd)
}
