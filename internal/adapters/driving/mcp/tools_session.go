package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
)

func unavailable(name string) OpStatus {
	return OpStatus{OK: false, Message: fmt.Sprintf("the %s service is not enabled on this server", name)}
}

// RecordRoundInput is the input schema for the record_round tool.
type RecordRoundInput struct {
	Scenario      string `json:"scenario" jsonschema:"the improv scenario given to the player"`
	Improvisation string `json:"improvisation,omitempty" jsonschema:"the player's improvised response"`
	HostReaction  string `json:"host_reaction,omitempty" jsonschema:"the host's reaction to the response"`
	Session       string `json:"session_id,omitempty" jsonschema:"conversation session id"`
}

// RecordRoundOutput is the output schema for the record_round tool.
type RecordRoundOutput struct {
	OpStatus
	Round *domain.GameRound `json:"round,omitempty"`
}

func (s *Server) handleRecordRound(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecordRoundInput,
) (*mcp.CallToolResult, RecordRoundOutput, error) {
	if s.ports.Game == nil {
		return nil, RecordRoundOutput{OpStatus: unavailable("game")}, nil
	}

	round, err := s.ports.Game.RecordRound(ctx, session(input.Session), driving.RoundParams{
		Scenario:      input.Scenario,
		Improvisation: input.Improvisation,
		HostReaction:  input.HostReaction,
	})
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, RecordRoundOutput{OpStatus: status}, nil
		}
		return nil, RecordRoundOutput{}, err
	}

	status := okMsg(fmt.Sprintf("round %d recorded", round.Round))
	return nil, RecordRoundOutput{OpStatus: status, Round: round}, nil
}

// FinishGameInput is the input schema for the finish_game tool.
type FinishGameInput struct {
	PlayerName string `json:"player_name,omitempty" jsonschema:"the player's name"`
	Session    string `json:"session_id,omitempty" jsonschema:"conversation session id"`
}

// FinishGameOutput is the output schema for the finish_game tool.
type FinishGameOutput struct {
	OpStatus
	Game *domain.GameSessionEntry `json:"game,omitempty"`
}

func (s *Server) handleFinishGame(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FinishGameInput,
) (*mcp.CallToolResult, FinishGameOutput, error) {
	if s.ports.Game == nil {
		return nil, FinishGameOutput{OpStatus: unavailable("game")}, nil
	}

	game, err := s.ports.Game.Finish(ctx, session(input.Session), input.PlayerName)
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, FinishGameOutput{OpStatus: status}, nil
		}
		return nil, FinishGameOutput{}, err
	}

	status := okMsg(fmt.Sprintf("game saved with %d rounds", game.TotalRounds))
	return nil, FinishGameOutput{OpStatus: status, Game: game}, nil
}

// RecordCheckInInput is the input schema for the record_checkin tool.
type RecordCheckInInput struct {
	ActivityID string `json:"activity_id" jsonschema:"catalog id of the health activity"`
	Quantity   int    `json:"quantity,omitempty" jsonschema:"amount in the activity's unit; defaults to 1"`
	Notes      string `json:"notes,omitempty" jsonschema:"free-form notes about the activity"`
	Session    string `json:"session_id,omitempty" jsonschema:"conversation session id"`
}

// RecordCheckInOutput is the output schema for the record_checkin tool.
type RecordCheckInOutput struct {
	OpStatus
	Log *domain.WellnessLog `json:"log,omitempty"`
}

func (s *Server) handleRecordCheckIn(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecordCheckInInput,
) (*mcp.CallToolResult, RecordCheckInOutput, error) {
	if s.ports.Wellness == nil {
		return nil, RecordCheckInOutput{OpStatus: unavailable("wellness")}, nil
	}

	qty := input.Quantity
	if qty == 0 {
		qty = 1
	}
	log, err := s.ports.Wellness.LogActivity(ctx, session(input.Session), driving.ActivityParams{
		ActivityID: input.ActivityID,
		Quantity:   qty,
		Notes:      input.Notes,
	})
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, RecordCheckInOutput{OpStatus: status}, nil
		}
		return nil, RecordCheckInOutput{}, err
	}

	status := okMsg(fmt.Sprintf("%s logged, total %d %s", log.Activity, log.Qty, log.Unit))
	return nil, RecordCheckInOutput{OpStatus: status, Log: log}, nil
}

// CommitCheckInsInput is the input schema for the commit_checkins tool.
type CommitCheckInsInput struct {
	Mood    string `json:"mood,omitempty" jsonschema:"how the user says they feel today"`
	Summary string `json:"summary,omitempty" jsonschema:"one-line summary of the day"`
	Session string `json:"session_id,omitempty" jsonschema:"conversation session id"`
}

// CommitCheckInsOutput is the output schema for the commit_checkins tool.
type CommitCheckInsOutput struct {
	OpStatus
	CheckIn *domain.CheckInEntry `json:"checkin,omitempty"`
}

func (s *Server) handleCommitCheckIns(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CommitCheckInsInput,
) (*mcp.CallToolResult, CommitCheckInsOutput, error) {
	if s.ports.Wellness == nil {
		return nil, CommitCheckInsOutput{OpStatus: unavailable("wellness")}, nil
	}

	checkin, err := s.ports.Wellness.Commit(ctx, session(input.Session), input.Mood, input.Summary)
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, CommitCheckInsOutput{OpStatus: status}, nil
		}
		return nil, CommitCheckInsOutput{}, err
	}

	status := okMsg(fmt.Sprintf("check-in saved with %d activities", len(checkin.Activities)))
	return nil, CommitCheckInsOutput{OpStatus: status, CheckIn: checkin}, nil
}
