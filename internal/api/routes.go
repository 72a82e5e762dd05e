package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/word-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/analyze").
			To(handler.Analyze).
			Doc("Find the longest substring without repeating characters").
			Metadata(restfulspec.KeyOpenAPITags, []string{"analyze"}).
			Reads(models.WordRequest{}).
			Writes(models.AnalysisResult{}).
			Returns(200, "OK", models.AnalysisResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(422, "Word rejected by prechecks", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/analyze/batch").
			To(handler.AnalyzeBatch).
			Doc("Analyze many words and summarize them").
			Metadata(restfulspec.KeyOpenAPITags, []string{"analyze"}).
			Reads(BatchRequest{}).
			Writes(BatchResponse{}).
			Returns(200, "OK", BatchResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/words").
			To(handler.GenerateWords).
			Doc("Generate candidate words").
			Metadata(restfulspec.KeyOpenAPITags, []string{"words"}).
			Param(ws.QueryParameter("count", "Number of words (1-100, default: 10)").DataType("integer").Required(false)).
			Writes(WordsResponse{}).
			Returns(200, "OK", WordsResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(502, "Generator returned no words", middleware.ErrorResponse{}).
			Returns(503, "Generator not configured", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/play").
			To(handler.Play).
			Doc("Generate a word and analyze it").
			Metadata(restfulspec.KeyOpenAPITags, []string{"words"}).
			Writes(models.AnalysisResult{}).
			Returns(200, "OK", models.AnalysisResult{}).
			Returns(503, "Generator not configured", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/history").
			To(handler.History).
			Doc("Recent analyses, most recent first").
			Metadata(restfulspec.KeyOpenAPITags, []string{"history"}).
			Param(ws.QueryParameter("limit", "Maximum number of results (default: 20)").DataType("integer").Required(false)).
			Writes(HistoryResponse{}).
			Returns(200, "OK", HistoryResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(503, "History not configured", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/keypad").
			To(handler.Keypad).
			Doc("Expand phone keypad digits into letter combinations").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Reads(KeypadRequest{}).
			Writes(KeypadResponse{}).
			Returns(200, "OK", KeypadResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/group").
			To(handler.Group).
			Doc("Bucket names by their first letter").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Reads(GroupRequest{}).
			Writes(GroupResponse{}).
			Returns(200, "OK", GroupResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	container.Add(ws)
}
