package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"wintitle/internal/ipc"
	"wintitle/internal/model"
	"wintitle/internal/tui"
	"wintitle/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "wintitle",
		Repository: "wintitle",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		logrus.WithError(err).Debug("Update check failed")
		return
	}

	if res.Outdated {
		fmt.Fprintf(os.Stderr, "A new version is available: %s (you have %s)\n", res.Current, currentVer)
	} else {
		fmt.Fprintf(os.Stderr, "You are using the latest version: %s\n", currentVer)
	}
}

func setupLogging(debug bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wintitle [options]\n\n")
		fmt.Fprintf(os.Stderr, "wintitle prints the focused window's title, prefixed with an application icon,\n")
		fmt.Fprintf(os.Stderr, "every time focus or the title changes under i3 or sway.\n")
		fmt.Fprintf(os.Stderr, "One line per change is written to stdout for a status bar to read.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wintitle                 # Stream lines to stdout\n")
		fmt.Fprintf(os.Stderr, "  wintitle -m 30           # Cut titles after 30 characters\n")
		fmt.Fprintf(os.Stderr, "  wintitle -s $SWAYSOCK    # Talk to a specific socket\n")
		fmt.Fprintf(os.Stderr, "  wintitle --preview       # Watch the line in a terminal UI\n")
	}

	maxLenFlag := pflag.IntP("max-len", "m", model.DefaultMaxLen, "Maximum title length in characters (0 disables truncation)")
	socketFlag := pflag.StringP("socket", "s", "", "IPC socket path (default: $SWAYSOCK, $I3SOCK, then i3 --get-socketpath)")
	previewFlag := pflag.BoolP("preview", "p", false, "Show the line in a terminal UI instead of printing it")
	debugFlag := pflag.BoolP("debug", "d", false, "Log every handled event to stderr")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for a newer release")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("wintitle version %s\n", model.Version)
		return
	}

	setupLogging(*debugFlag)

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend := ipc.DetectBackend(*socketFlag, os.Getenv)
	log := logrus.WithField("component", "watch")

	conn, err := ipc.Dial(ctx, backend, log)
	if err != nil {
		logrus.WithError(err).Fatal("Cannot reach the window manager")
	}
	defer conn.Close()

	if *previewFlag {
		err = runPreviewMode(ctx, conn, backend, *maxLenFlag, log)
	} else {
		err = runStreamMode(ctx, conn, *maxLenFlag, log)
	}
	if err != nil {
		logrus.WithError(err).Error("Stopped")
		os.Exit(1)
	}
}

func runStreamMode(ctx context.Context, conn ipc.Conn, maxLen int, log *logrus.Entry) error {
	w := watch.New(conn, watch.NewWriterSink(os.Stdout), log)
	w.MaxLen = maxLen
	return w.Run(ctx)
}

func runPreviewMode(ctx context.Context, conn ipc.Conn, backend ipc.Backend, maxLen int, log *logrus.Entry) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// stderr shares the terminal with the alt screen.
	logrus.SetOutput(io.Discard)

	m := tui.InitialModel(backend.Name())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	w := watch.New(conn, tui.Sink(p), log)
	w.MaxLen = maxLen
	go func() {
		if err := w.Run(ctx); err != nil {
			p.Send(tui.MsgError(err))
		}
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
