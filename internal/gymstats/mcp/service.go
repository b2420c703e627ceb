package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymanalytics/internal/gymstats/analytics"
	"github.com/2beens/gymanalytics/internal/gymstats/records"
)

type analysisService interface {
	GetOrGenerateRecommendations(ctx context.Context, userID string) (*analytics.TrainingAnalysis, error)
	GetOrGenerateMuscleAnalysis(ctx context.Context, userID string) (*analytics.MuscleAnalysis, error)
}

type recordsService interface {
	GetAllPersonalRecords(ctx context.Context, userID string) ([]records.MuscleGroupRecords, error)
	GetPersonalRecord(ctx context.Context, userID, exerciseID string) (*records.PersonalRecord, error)
}

// contextService is what the tool handlers need. Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetRecommendations(ctx context.Context, userID string) (*analytics.TrainingAnalysis, error)
	GetMuscleAnalysis(ctx context.Context, userID string) (*analytics.MuscleAnalysis, error)
	GetPersonalRecords(ctx context.Context, userID string) ([]records.MuscleGroupRecords, error)
	GetPersonalRecord(ctx context.Context, userID, exerciseID string) (*records.PersonalRecord, error)
}

// ContextService exposes the analytics read operations to MCP clients.
type ContextService struct {
	schema   SchemaRepo
	analysis analysisService
	records  recordsService
}

func NewContextService(schemaRepo SchemaRepo, analysisSvc analysisService, recordsSvc recordsService) *ContextService {
	return &ContextService{
		schema:   schemaRepo,
		analysis: analysisSvc,
		records:  recordsSvc,
	}
}

// GetSchema returns the DB schema of the gymstats tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetGymstatsColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatGymstatsSchema(cols), nil
}

func formatGymstatsSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gymstats DB Schema\n\nNo gymstats tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Gymstats DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(tableOrder, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) GetRecommendations(ctx context.Context, userID string) (*analytics.TrainingAnalysis, error) {
	return s.analysis.GetOrGenerateRecommendations(ctx, userID)
}

func (s *ContextService) GetMuscleAnalysis(ctx context.Context, userID string) (*analytics.MuscleAnalysis, error) {
	return s.analysis.GetOrGenerateMuscleAnalysis(ctx, userID)
}

// GetPersonalRecords returns all records of the user, grouped by muscle group.
func (s *ContextService) GetPersonalRecords(ctx context.Context, userID string) ([]records.MuscleGroupRecords, error) {
	return s.records.GetAllPersonalRecords(ctx, userID)
}

func (s *ContextService) GetPersonalRecord(ctx context.Context, userID, exerciseID string) (*records.PersonalRecord, error) {
	return s.records.GetPersonalRecord(ctx, userID, exerciseID)
}
