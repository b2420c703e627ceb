package mcp

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the gymstats tools: schema, training
// recommendations, muscle analysis, personal records.
// Used by the main backend when mounting MCP at /mcp, and by the stdio binary.
func NewServer(pool *pgxpool.Pool, analysisSvc analysisService, recordsSvc recordsService) *mcp.Server {
	svc := NewContextService(NewPoolSchemaRepo(pool), analysisSvc, recordsSvc)
	return newServer(NewHandler(svc))
}

func newServer(h *Handler) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymstats-analytics",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gymstats_context",
		Description: "Returns the DB schema of the gymstats tables (workout sessions, exercise definitions, personal records, analysis documents): table names, columns, types, nullable, default.",
	}, h.GetGymstatsContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_recommendations",
		Description: "Returns the training analysis of a user over the last 30 days: muscle group balance, per-exercise progression recommendations, synergist/antagonist correlations and insights (weak points, balance score, recovery status). Arg: user_id. Regenerated when older than 24h.",
	}, h.GetTrainingRecommendationsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_muscle_analysis",
		Description: "Returns per muscle group volume, frequency, intensity, fatigue and recovery of a user, plus muscle correlations and the balance score. Arg: user_id.",
	}, h.GetMuscleAnalysisTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns all personal records of a user (max weight, max reps, max set volume, max session volume), grouped by muscle group. Arg: user_id.",
	}, h.GetPersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_record",
		Description: "Returns the personal record of a user for one exercise, with its improvement history. Args: user_id, exercise_id.",
	}, h.GetPersonalRecordTool())

	return s
}
