// Package console runs the quiz as an interactive game on a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
	"github.com/aliskhannn/times-tables-bot/internal/service"
)

// playerID is the session key of the single console player.
const playerID int64 = 0

type QuizService interface {
	Start(ctx context.Context, playerID int64, maxFactor, questionCount int) (*entities.QuizSession, error)
	SubmitAnswer(ctx context.Context, playerID int64, value *int) (entities.AnswerOutcome, error)
	FinalScore(ctx context.Context, playerID int64) (score, total int, err error)
	Abandon(ctx context.Context, playerID int64) error
}

// Game reads answers from in and writes prompts to out.
type Game struct {
	quiz                 QuizService
	in                   io.Reader
	lines                <-chan inputLine
	out                  io.Writer
	defaultMaxFactor     int
	defaultQuestionCount int
}

// NewGame creates a console game. The defaults are offered when the player just presses Enter.
func NewGame(quiz QuizService, in io.Reader, out io.Writer, defaultMaxFactor, defaultQuestionCount int) *Game {
	return &Game{
		quiz:                 quiz,
		in:                   in,
		out:                  out,
		defaultMaxFactor:     defaultMaxFactor,
		defaultQuestionCount: defaultQuestionCount,
	}
}

// Run plays games until the player declines a rematch, input ends or ctx is done.
// A game interrupted by ctx is abandoned and ctx.Err() is returned.
func (g *Game) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g.lines = readLines(ctx, g.in)

	g.printf("Times Tables Exercise\n\n")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		maxFactor, err := g.askSetting(ctx,
			fmt.Sprintf("Max multiplication table (%d-%d) [%d]: ", entities.MinMaxFactor, entities.MaxMaxFactor, g.defaultMaxFactor),
			g.defaultMaxFactor,
			entities.ValidateMaxFactor,
		)
		if err != nil {
			return ignoreEOF(err)
		}

		count, err := g.askSetting(ctx,
			fmt.Sprintf("Number of questions %v [%d]: ", entities.AllowedQuestionCounts, g.defaultQuestionCount),
			g.defaultQuestionCount,
			entities.ValidateQuestionCount,
		)
		if err != nil {
			return ignoreEOF(err)
		}

		if err := g.play(ctx, maxFactor, count); err != nil {
			return ignoreEOF(err)
		}

		g.printf("Play again? [y/N]: ")
		line, err := g.readLine(ctx)
		if err != nil {
			return ignoreEOF(err)
		}
		if answer := strings.ToLower(line); answer != "y" && answer != "yes" {
			return nil
		}
		g.printf("\n")
	}
}

func (g *Game) play(ctx context.Context, maxFactor, count int) error {
	session, err := g.quiz.Start(ctx, playerID, maxFactor, count)
	if err != nil {
		return err
	}

	for !session.IsCompleted() {
		if err := ctx.Err(); err != nil {
			return g.abandon(ctx, err)
		}

		q, err := session.CurrentQuestion()
		if err != nil {
			return err
		}

		g.printf("Question %d/%d: %d x %d = ", session.CurrentIndex()+1, session.QuestionCount(), q.Left, q.Right)
		line, err := g.readLine(ctx)
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			return g.abandon(ctx, err)
		}

		outcome, err := g.quiz.SubmitAnswer(ctx, playerID, service.ParseAnswer(line))
		if err != nil {
			return err
		}

		if outcome.Correct {
			g.printf("Correct! Score: %d\n", outcome.Score)
		} else {
			g.printf("Wrong, %d x %d = %d. Score: %d\n", q.Left, q.Right, q.Answer(), outcome.Score)
		}
	}

	score, total, err := g.quiz.FinalScore(ctx, playerID)
	if err != nil {
		return err
	}
	g.printf("\nGame over! You scored %d/%d\n\n", score, total)
	return nil
}

// askSetting prompts until the player enters a valid value or accepts the default.
func (g *Game) askSetting(ctx context.Context, prompt string, def int, validate func(int) error) (int, error) {
	for {
		g.printf("%s", prompt)
		line, err := g.readLine(ctx)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}

		v, err := strconv.Atoi(line)
		if err == nil {
			err = validate(v)
		}
		if err == nil {
			return v, nil
		}
		g.printf("Please enter a valid value.\n")
	}
}

// abandon drops the running game and returns cause.
func (g *Game) abandon(ctx context.Context, cause error) error {
	_ = g.quiz.Abandon(context.WithoutCancel(ctx), playerID)
	return cause
}

type inputLine struct {
	text string
	err  error
}

// readLines scans in on its own goroutine so a blocked read does not hold up cancellation.
// The channel is closed at end of input.
func readLines(ctx context.Context, in io.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)

		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- inputLine{text: strings.TrimSpace(sc.Text())}:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return lines
}

func (g *Game) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-g.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (g *Game) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
