package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/2beens/gymanalytics/internal/gymstats/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// UserInput is the input of the per-user tools.
type UserInput struct {
	UserID string `json:"user_id" jsonschema:"Id of the user whose training data is analyzed"`
}

// PersonalRecordInput is the input for get_personal_record.
type PersonalRecordInput struct {
	UserID     string `json:"user_id" jsonschema:"Id of the user"`
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise definition id (e.g. bench, squat)"`
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func missingUser(userID string) bool {
	return strings.TrimSpace(userID) == ""
}

// GetGymstatsContextTool returns the MCP tool handler for get_gymstats_context.
func (h *Handler) GetGymstatsContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// GetTrainingRecommendationsTool returns the MCP tool handler for get_training_recommendations.
func (h *Handler) GetTrainingRecommendationsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if missingUser(in.UserID) {
			return errorResult("Missing user_id"), nil, nil
		}
		report, err := h.service.GetRecommendations(ctx, in.UserID)
		if err != nil {
			return errorResult("Error fetching recommendations: " + err.Error()), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

// GetMuscleAnalysisTool returns the MCP tool handler for get_muscle_analysis.
func (h *Handler) GetMuscleAnalysisTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if missingUser(in.UserID) {
			return errorResult("Missing user_id"), nil, nil
		}
		report, err := h.service.GetMuscleAnalysis(ctx, in.UserID)
		if err != nil {
			return errorResult("Error fetching muscle analysis: " + err.Error()), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

// GetPersonalRecordsTool returns the MCP tool handler for get_personal_records.
func (h *Handler) GetPersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if missingUser(in.UserID) {
			return errorResult("Missing user_id"), nil, nil
		}
		groups, err := h.service.GetPersonalRecords(ctx, in.UserID)
		if err != nil {
			return errorResult("Error fetching personal records: " + err.Error()), nil, nil
		}
		return jsonResult(groups), nil, nil
	}
}

// GetPersonalRecordTool returns the MCP tool handler for get_personal_record.
func (h *Handler) GetPersonalRecordTool() func(context.Context, *mcp.CallToolRequest, PersonalRecordInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PersonalRecordInput) (*mcp.CallToolResult, any, error) {
		if missingUser(in.UserID) {
			return errorResult("Missing user_id"), nil, nil
		}
		if strings.TrimSpace(in.ExerciseID) == "" {
			return errorResult("Missing exercise_id"), nil, nil
		}
		pr, err := h.service.GetPersonalRecord(ctx, in.UserID, in.ExerciseID)
		if err != nil {
			if errors.Is(err, workouts.ErrExerciseNotFound) {
				return errorResult("Unknown exercise: " + in.ExerciseID), nil, nil
			}
			return errorResult("Error fetching personal record: " + err.Error()), nil, nil
		}
		return jsonResult(pr), nil, nil
	}
}
