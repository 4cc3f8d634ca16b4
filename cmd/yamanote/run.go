package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"yamanote/internal/app"
	"yamanote/internal/config"
	"yamanote/internal/domain"
)

// run owns the host event loop: a one-second ticker drives the countdown and
// stdin lines are submissions. Both land in the same loop, so timer and input
// events are serialized as the core requires.
func run(cfg *config.Config, opts *options) error {
	logger := newLogger(cfg.Logging.Level)
	sess := app.New(cfg, clockwork.NewRealClock(), logger)

	if opts.corpusPath != "" {
		if err := sess.LoadFile(opts.corpusPath); err != nil {
			return err
		}
	} else {
		sess.LoadDefault()
	}

	players := opts.players
	if len(players) == 0 {
		players = []string{"player1", "player2"}
	}
	for _, name := range players {
		if err := sess.AddPlayer(name); err != nil {
			return err
		}
	}

	if err := sess.Start(); err != nil {
		return err
	}
	fmt.Printf("game started: %s is up (%ds)\n", sess.CurrentPlayerName(), sess.RemainingSeconds())

	lines := make(chan string)
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- sc.Text()
		}
		close(lines)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			sess.Stop()
			return nil

		case <-ticker.C:
			res, err := sess.Tick()
			if err != nil {
				logger.Error().Err(err).Msg("tick failed")
				continue
			}
			for _, cue := range res.Cues {
				playSound(logger, string(cue))
			}
			if res.TimedOut && res.Outcome != nil {
				fmt.Printf("time's up, %s is out\n", res.Outcome.Player)
				fmt.Printf("next: %s (%ds)\n", sess.CurrentPlayerName(), sess.RemainingSeconds())
			}
			if sess.Phase() == domain.PhaseGameOver {
				printSummary(sess)
				return nil
			}

		case line, ok := <-lines:
			if !ok {
				sess.Stop()
				return nil
			}
			if done := handleLine(sess, logger, line); done {
				return nil
			}
			if sess.Phase() == domain.PhaseGameOver {
				printSummary(sess)
				return nil
			}
		}
	}
}

// handleLine dispatches one stdin line: slash commands or an answer
// submission. Returns true when the host asked to quit.
func handleLine(sess *app.Session, logger zerolog.Logger, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	switch {
	case line == "/quit":
		sess.Stop()
		return true

	case line == "/pass":
		res, err := sess.Pass()
		if err != nil {
			logger.Error().Err(err).Msg("pass failed")
			return false
		}
		if res.Outcome.Reason == domain.ReasonNoPassesLeft {
			fmt.Println("no passes left")
		} else {
			fmt.Printf("%s passed; next: %s\n", res.Outcome.Player, sess.CurrentPlayerName())
		}
		return false

	case line == "/skip":
		if err := sess.Game().SkipCurrent(); err != nil {
			logger.Error().Err(err).Msg("skip failed")
			return false
		}
		fmt.Printf("skipped; next: %s\n", sess.CurrentPlayerName())
		return false

	case line == "/state":
		fmt.Printf("score=%d phase=%s player=%s remaining=%ds left=%d\n",
			sess.Score(), sess.Phase(), sess.CurrentPlayerName(),
			sess.RemainingSeconds(), sess.List().Remaining())
		return false

	case strings.HasPrefix(line, "/save "):
		path := strings.TrimSpace(strings.TrimPrefix(line, "/save "))
		if err := sess.SaveFile(path); err != nil {
			fmt.Printf("save failed: %v\n", err)
			return false
		}
		fmt.Printf("saved to %s\n", path)
		return false

	case strings.HasPrefix(line, "/load "):
		path := strings.TrimSpace(strings.TrimPrefix(line, "/load "))
		if err := sess.LoadFile(path); err != nil {
			// Recoverable: keep playing with the current list.
			fmt.Printf("load failed: %v\n", err)
		}
		return false

	case strings.HasPrefix(line, "/unmark "):
		display := strings.TrimSpace(strings.TrimPrefix(line, "/unmark "))
		if err := sess.Unmark(display); err != nil {
			fmt.Printf("unmark failed: %v\n", err)
			return false
		}
		fmt.Printf("%s moved back to pending\n", display)
		return false

	case strings.HasPrefix(line, "/forfeit "):
		name := strings.TrimSpace(strings.TrimPrefix(line, "/forfeit "))
		if err := sess.Game().Forfeit(name); err != nil {
			fmt.Printf("forfeit failed: %v\n", err)
			return false
		}
		fmt.Printf("%s forfeited; next: %s\n", name, sess.CurrentPlayerName())
		return false
	}

	res, err := sess.Submit(line)
	if err != nil {
		logger.Error().Err(err).Msg("submit failed")
		return false
	}
	playSound(logger, res.Sound)
	out := res.Outcome
	switch {
	case out.Accepted:
		fmt.Printf("correct! %s (%s), score %d; next: %s\n",
			out.Entry.Display, out.Entry.Match, sess.Score(), sess.CurrentPlayerName())
	case out.Eliminated:
		fmt.Printf("%s is out (%s); next: %s\n", out.Player, out.Reason, sess.CurrentPlayerName())
	default:
		fmt.Printf("rejected (%s), %d wrong answers left\n", out.Reason, out.WrongLeft)
	}
	return false
}

// playSound stands in for audio output: the cue ID is logged and the host is
// free to hook real playback on top.
func playSound(logger zerolog.Logger, id string) {
	if id == "" {
		return
	}
	logger.Info().Str("sound", id).Msg("play")
}

func printSummary(sess *app.Session) {
	fmt.Printf("game over: score %d, %d answers left\n", sess.Score(), sess.List().Remaining())
	for _, p := range sess.Game().Players() {
		status := "survived"
		if p.Eliminated {
			status = "eliminated"
		}
		correct := 0
		for _, r := range p.History {
			if r.Correct {
				correct++
			}
		}
		fmt.Printf("  %-20s %s, %d correct\n", p.Name, status, correct)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
