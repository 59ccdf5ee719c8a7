// Package game drives the scene flow: main menu, match setup, matches, and
// the history/leaderboard/reset screens, recording finished matches.
package game

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/OmerBS123/tic-tac-toe/internal/logger"
	"github.com/OmerBS123/tic-tac-toe/internal/storage"
	"github.com/OmerBS123/tic-tac-toe/pkg/minimax"
	"github.com/OmerBS123/tic-tac-toe/pkg/tictactoe"
	"github.com/OmerBS123/tic-tac-toe/services/game/history"
	"github.com/OmerBS123/tic-tac-toe/services/game/leaderboard"
	"github.com/OmerBS123/tic-tac-toe/services/game/match"
	"github.com/OmerBS123/tic-tac-toe/services/game/menu"
	"github.com/OmerBS123/tic-tac-toe/services/game/setup"
)

type Service struct {
	store *storage.Storage
	log   *logger.Logger
}

func New(store *storage.Storage, log *logger.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// Play runs the scene loop until the user quits from the main menu.
func (s *Service) Play(ctx context.Context) error {
	for {
		menuModel := menu.InitialModel(header())
		if err := runProgram(menuModel); err != nil {
			return err
		}

		s.log.Debug("menu choice", "choice", int(menuModel.Choice()))

		var err error
		switch menuModel.Choice() {
		case menu.ChoicePvP:
			err = s.playMatches(ctx, storage.ModePvP)
		case menu.ChoicePvAI:
			err = s.playMatches(ctx, storage.ModePvAI)
		case menu.ChoiceHistory:
			err = runProgram(history.InitialModel(header(), s.store))
		case menu.ChoiceLeaderboard:
			err = runProgram(leaderboard.InitialModel(header(), s.store))
		case menu.ChoiceReset:
			err = s.confirmReset(ctx)
		case menu.ChoiceQuit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// playMatches runs the setup scene once, then matches with those settings
// until the player stops replaying. Every completed match is recorded.
func (s *Service) playMatches(ctx context.Context, mode string) error {
	setupModel := setup.InitialModel(header(), mode)
	if err := runProgram(setupModel); err != nil {
		return err
	}
	if setupModel.Aborted() {
		return nil
	}

	settings := setupModel.Settings()

	var bot *minimax.Client
	aiPlayer := tictactoe.Empty
	if mode == storage.ModePvAI {
		bot = minimax.New(settings.Difficulty)
		aiPlayer = settings.HumanSymbol.Opponent()
	}

	for {
		var matchModel *match.Model
		if bot != nil {
			matchModel = match.InitialModel(header(), bot, aiPlayer, settings.NameX, settings.NameO)
		} else {
			matchModel = match.InitialModel(header(), nil, tictactoe.Empty, settings.NameX, settings.NameO)
		}

		if err := runProgram(matchModel); err != nil {
			return err
		}

		if matchModel.Completed() {
			s.recordMatch(ctx, settings, matchModel.Outcome())
		}

		if !matchModel.Replay {
			return nil
		}
	}
}

// recordMatch hands a finished match to storage. Persistence failures are
// logged, not fatal: the match already happened.
func (s *Service) recordMatch(ctx context.Context, settings setup.Settings, outcome tictactoe.Outcome) {
	result := storage.ResultDraw
	switch outcome {
	case tictactoe.WinX:
		result = storage.ResultX
	case tictactoe.WinO:
		result = storage.ResultO
	}

	aiLevel := ""
	if settings.Mode == storage.ModePvAI {
		aiLevel = settings.Difficulty.String()
	}

	err := s.store.RecordMatch(ctx, storage.MatchResult{
		PlayerX: settings.NameX,
		PlayerO: settings.NameO,
		Result:  result,
		Mode:    settings.Mode,
		AILevel: aiLevel,
	})
	if err != nil {
		logger.FromContext(ctx).Error("failed to record match", "err", err)
	}
}

func (s *Service) confirmReset(ctx context.Context) error {
	summary, err := s.store.Summary(ctx)
	if err != nil {
		return fmt.Errorf("load summary: %w", err)
	}

	resetModel := newResetModel(header(), summary)
	if err := runProgram(resetModel); err != nil {
		return err
	}

	if !resetModel.confirmed {
		return nil
	}

	return s.store.ResetData(ctx)
}

func runProgram(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run scene: %w", err)
	}
	return nil
}

var (
	headerStyle1 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#4204b5ff", Dark: "#4204b5ff"}).Render
	headerStyle2 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#19b504ff", Dark: "#19b504ff"}).Render
	headerStyle3 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b55404ff", Dark: "#b55404ff"}).Render
)

func header() string {
	return fmt.Sprintf(
		"%s %s %s %s %s\n\n",
		headerStyle2("---"),
		headerStyle1("Tic"),
		headerStyle2("Tac"),
		headerStyle3("Toe"),
		headerStyle2("---"),
	)
}
