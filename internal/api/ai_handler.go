package api

import (
	"net/http"

	"github.com/Harsha0o/ai-productivity-assistant/internal/api/shared"
	"github.com/Harsha0o/ai-productivity-assistant/internal/service"
)

// AIHandler handles the AI-assisted task endpoints
type AIHandler struct {
	ai service.AIService
}

// NewAIHandler creates a new AIHandler
func NewAIHandler(ai service.AIService) *AIHandler {
	return &AIHandler{ai: ai}
}

// Status handles GET /ai/status requests
func (h *AIHandler) Status(w http.ResponseWriter, r *http.Request) {
	status := h.ai.Status()
	shared.RespondWithJSON(w, r, http.StatusOK, AIStatusResponse{
		Available: status.Available,
		Model:     status.Model,
	})
}

// Parse handles POST /ai/parse requests
func (h *AIHandler) Parse(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeParseRequest(w, r)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, h.ai.Parse(r.Context(), req.Text))
}

// ParseAndCreate handles POST /ai/parse-and-create requests
func (h *AIHandler) ParseAndCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeParseRequest(w, r)
	if !ok {
		return
	}

	created, err := h.ai.ParseAndCreate(r.Context(), req.Text)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	task := created.Task
	shared.RespondWithJSON(w, r, http.StatusOK, ParseAndCreateResponse{
		Message: "Task created successfully",
		Task: ParsedTaskResponse{
			ID:          task.ID,
			Title:       task.Title,
			Description: task.Description,
			Priority:    task.Priority,
			Category:    task.Category,
			DueDate:     formatDueDate(task.DueDate),
			AIGenerated: task.AIGenerated,
			Confidence:  created.Confidence,
		},
	})
}

func decodeParseRequest(w http.ResponseWriter, r *http.Request) (ParseRequest, bool) {
	var req ParseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleValidationError(w, r, err)
		return req, false
	}

	return req, true
}

// Prioritize handles POST /ai/prioritize requests
func (h *AIHandler) Prioritize(w http.ResponseWriter, r *http.Request) {
	var req PrioritizeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleValidationError(w, r, err)
		return
	}

	result, err := h.ai.Prioritize(r.Context(), req.TaskIDs)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to prioritize tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PrioritizeResponse(result))
}

// Categorize handles POST /ai/categorize/{task_id} requests
func (h *AIHandler) Categorize(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "task_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	category, err := h.ai.CategorizeTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to categorize task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategorizeResponse{
		Message:  "Task categorized successfully",
		TaskID:   id,
		Category: category,
	})
}

// Insights handles GET /ai/insights requests
func (h *AIHandler) Insights(w http.ResponseWriter, r *http.Request) {
	report, err := h.ai.Insights(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate insights")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, InsightsResponse{
		TotalTasks:      report.Stats.Total,
		CompletedTasks:  report.Stats.Completed,
		CompletionRate:  report.Stats.CompletionRate,
		TasksByCategory: report.Stats.ByCategory,
		TasksByPriority: report.Stats.ByPriority,
		AISummary:       report.Insights.Summary,
		AITips:          report.Insights.Tips,
	})
}
