package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/home-assistant-community/blueprint-ci/pkg/console"
	"github.com/home-assistant-community/blueprint-ci/pkg/constants"
	"github.com/home-assistant-community/blueprint-ci/pkg/fileutil"
	"github.com/home-assistant-community/blueprint-ci/pkg/logger"
)

var watchLog = logger.New("cli:watch")

// watchDebounce coalesces editor save bursts into one re-validation.
const watchDebounce = 250 * time.Millisecond

// runValidateWatch re-runs validation whenever YAML files under the
// blueprints directory change. Watch mode reports continuously and exits 0
// on interrupt; it never exits with the validation verdict.
func runValidateWatch(config ValidateConfig) error {
	root := filepath.Join(config.Root, constants.BlueprintsDir)
	if !fileutil.DirExists(root) {
		return fmt.Errorf("cannot watch '%s': directory does not exist", root)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchRecursive(watcher, root); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintln(os.Stderr, console.FormatInfoMessage(fmt.Sprintf("Watching '%s' for changes (Ctrl-C to stop)", root)))
	runOnceIgnoringVerdict(config)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Watch stopped"))
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			watchLog.Printf("File event: %s", event)

			// New directories need their own watch.
			if event.Op.Has(fsnotify.Create) && fileutil.DirExists(event.Name) {
				if err := watchRecursive(watcher, event.Name); err != nil {
					watchLog.Printf("Failed to watch new directory %s: %v", event.Name, err)
				}
			}

			if !fileutil.IsYAMLFile(event.Name) && !fileutil.DirExists(event.Name) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			runOnceIgnoringVerdict(config)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("Watch error: %v", err)))
		}
	}
}

// runOnceIgnoringVerdict runs one validation pass; in watch mode the verdict
// is reported, not returned.
func runOnceIgnoringVerdict(config ValidateConfig) {
	once := config
	once.Watch = false
	if err := RunValidate(once); err != nil {
		watchLog.Printf("Validation pass failed: %v", err)
	}
}

// watchRecursive adds a watch on a directory and all of its subdirectories.
func watchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			watchLog.Printf("Watching directory: %s", path)
			return watcher.Add(path)
		}
		return nil
	})
}
