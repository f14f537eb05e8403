package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// VerifyIdentityInput is the input schema for the verify_identity tool.
type VerifyIdentityInput struct {
	Subject string `json:"subject" jsonschema:"the caller's full name as it appears on the case"`
	Answer  string `json:"answer" jsonschema:"the caller's answer to their security question"`
	Session string `json:"session_id,omitempty" jsonschema:"conversation session id"`
}

// VerifyIdentityOutput is the output schema for the verify_identity tool.
type VerifyIdentityOutput struct {
	OpStatus
	State    string `json:"state"`
	CaseID   string `json:"case_id,omitempty"`
	Question string `json:"question,omitempty"`
}

func (s *Server) handleVerifyIdentity(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input VerifyIdentityInput,
) (*mcp.CallToolResult, VerifyIdentityOutput, error) {
	result, err := s.ports.Verification.Verify(ctx, session(input.Session), input.Subject, input.Answer)
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, VerifyIdentityOutput{OpStatus: status}, nil
		}
		return nil, VerifyIdentityOutput{}, err
	}

	output := VerifyIdentityOutput{
		State:    string(result.State),
		CaseID:   result.CaseID,
		Question: result.Question,
	}
	switch result.State {
	case domain.VerificationVerified:
		output.OpStatus = okMsg("identity verified")
	default:
		output.OpStatus = OpStatus{OK: false, Message: "the answer did not match our records"}
	}
	return nil, output, nil
}

// GetCaseDetailsInput is the input schema for the get_case_details tool.
type GetCaseDetailsInput struct {
	Session string `json:"session_id,omitempty" jsonschema:"conversation session id"`
}

// GetCaseDetailsOutput is the output schema for the get_case_details tool.
type GetCaseDetailsOutput struct {
	OpStatus
	CaseID  string                  `json:"case_id,omitempty"`
	Subject string                  `json:"subject,omitempty"`
	Status  string                  `json:"status,omitempty"`
	Detail  *domain.SensitiveDetail `json:"detail,omitempty"`
}

func (s *Server) handleGetCaseDetails(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetCaseDetailsInput,
) (*mcp.CallToolResult, GetCaseDetailsOutput, error) {
	view, err := s.ports.Verification.Detail(ctx, session(input.Session))
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, GetCaseDetailsOutput{OpStatus: status}, nil
		}
		return nil, GetCaseDetailsOutput{}, err
	}

	return nil, GetCaseDetailsOutput{
		OpStatus: ok(),
		CaseID:   view.CaseID,
		Subject:  view.Subject,
		Status:   string(view.Status),
		Detail:   &view.Detail,
	}, nil
}

// ResolveCaseInput is the input schema for the resolve_case tool.
type ResolveCaseInput struct {
	Outcome string `json:"outcome" jsonschema:"one of confirmed_safe, confirmed_fraud, or verification_failed"`
	Note    string `json:"note,omitempty" jsonschema:"free-form outcome note"`
	Session string `json:"session_id,omitempty" jsonschema:"conversation session id"`
}

// ResolveCaseOutput is the output schema for the resolve_case tool.
type ResolveCaseOutput struct {
	OpStatus
	CaseID string `json:"case_id,omitempty"`
	Status string `json:"status,omitempty"`
}

func (s *Server) handleResolveCase(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveCaseInput,
) (*mcp.CallToolResult, ResolveCaseOutput, error) {
	status := domain.CaseStatus(input.Outcome)
	if !status.IsValid() {
		msg := fmt.Sprintf("unknown outcome %q", input.Outcome)
		return nil, ResolveCaseOutput{OpStatus: OpStatus{OK: false, Message: msg}}, nil
	}

	entry, err := s.ports.Verification.Resolve(ctx, session(input.Session), status, input.Note)
	if err != nil {
		if opStatus, handled := failure(err); handled {
			return nil, ResolveCaseOutput{OpStatus: opStatus}, nil
		}
		return nil, ResolveCaseOutput{}, err
	}

	return nil, ResolveCaseOutput{
		OpStatus: okMsg(fmt.Sprintf("case %s resolved as %s", entry.CaseID, entry.Status)),
		CaseID:   entry.CaseID,
		Status:   string(entry.Status),
	}, nil
}
