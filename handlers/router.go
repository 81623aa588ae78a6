package handlers

import (
	"net/http"

	"leads-backend/logger"
	"leads-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Services are the workflow services exposed over HTTP
type Services struct {
	Candidates *service.CandidateService
	Attorneys  *service.AttorneyService
	Resumes    *service.ResumeService
}

// NewRouter builds the gin engine with every route registered
func NewRouter(svc Services, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	candidateHandler := NewCandidateHandler(svc.Candidates)
	attorneyHandler := NewAttorneyHandler(svc.Attorneys)
	fileHandler := NewFileHandler(svc.Resumes)

	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger(log))
	r.MaxMultipartMemory = svc.Resumes.MaxSize()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Candidate intake API. Submit at POST /candidate/, attorneys log in at POST /token",
		})
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Candidate endpoints
	r.POST("/candidate/", candidateHandler.SubmitCandidate)
	r.GET("/candidate/:email", candidateHandler.GetCandidate)
	r.PATCH("/candidate/:email", candidateHandler.UpdateCandidate)

	r.POST("/uploadfile/", fileHandler.UploadFile)

	r.POST("/token", attorneyHandler.Login)

	attorney := r.Group("/attorney", RequireAttorney(svc.Attorneys))
	{
		attorney.POST("/create", attorneyHandler.CreateAttorney)
		attorney.GET("/leads", candidateHandler.ListLeads)
		attorney.PATCH("/candidate/:email", candidateHandler.AttorneyUpdateCandidate)
		attorney.GET("/resume/:id", fileHandler.GetFile)
	}

	return r
}
