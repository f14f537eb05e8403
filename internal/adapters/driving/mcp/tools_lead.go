package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// SaveLeadInput is the input schema for the save_lead tool.
type SaveLeadInput struct {
	Name        string `json:"name" jsonschema:"the contact's full name"`
	Email       string `json:"email" jsonschema:"the contact's email address"`
	Company     string `json:"company,omitempty" jsonschema:"company name, if given"`
	Role        string `json:"role,omitempty" jsonschema:"the contact's role or title"`
	UseCase     string `json:"use_case" jsonschema:"what the contact wants to use the product for"`
	TeamSize    string `json:"team_size,omitempty" jsonschema:"team or company size, if given"`
	Timeline    string `json:"timeline" jsonschema:"purchase timeline: now, soon, or later"`
	CallSummary string `json:"call_summary,omitempty" jsonschema:"one-paragraph summary of the call"`
	Session     string `json:"session_id,omitempty" jsonschema:"conversation session id"`
}

// SaveLeadOutput is the output schema for the save_lead tool.
type SaveLeadOutput struct {
	OpStatus
	Lead *domain.LeadEntry `json:"lead,omitempty"`
}

func (s *Server) handleSaveLead(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveLeadInput,
) (*mcp.CallToolResult, SaveLeadOutput, error) {
	lead, err := s.ports.Lead.Save(ctx, session(input.Session), domain.LeadDraft{
		Name:        input.Name,
		Email:       input.Email,
		Company:     input.Company,
		Role:        input.Role,
		UseCase:     input.UseCase,
		TeamSize:    input.TeamSize,
		Timeline:    input.Timeline,
		CallSummary: input.CallSummary,
	})
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, SaveLeadOutput{OpStatus: status}, nil
		}
		return nil, SaveLeadOutput{}, err
	}

	status := okMsg(fmt.Sprintf("lead saved with score %d", lead.Score))
	return nil, SaveLeadOutput{OpStatus: status, Lead: lead}, nil
}

// GetLastLeadInput is the input schema for the get_last_lead tool.
type GetLastLeadInput struct{}

// GetLastLeadOutput is the output schema for the get_last_lead tool.
type GetLastLeadOutput struct {
	OpStatus
	Lead *domain.LeadEntry `json:"lead,omitempty"`
}

func (s *Server) handleGetLastLead(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GetLastLeadInput,
) (*mcp.CallToolResult, GetLastLeadOutput, error) {
	lead, err := s.ports.Lead.LastLead(ctx)
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, GetLastLeadOutput{OpStatus: status}, nil
		}
		return nil, GetLastLeadOutput{}, err
	}
	return nil, GetLastLeadOutput{OpStatus: ok(), Lead: lead}, nil
}
