package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/langbadge/toplangs-backend/chart"
	"github.com/langbadge/toplangs-backend/config"
	"github.com/langbadge/toplangs-backend/model"
	"github.com/langbadge/toplangs-backend/service"
)

type APIController interface {
	GetTopLanguages(ctx *gin.Context)
}

type apiController struct {
	githubService service.GithubService
	renderer      chart.Renderer
	config        config.Config
}

func NewAPIController(config config.Config, service service.GithubService) APIController {
	return apiController{
		githubService: service,
		renderer:      chart.NewRenderer(config.Chart.MaxParallelColorTasks),
		config:        config,
	}
}

func (s apiController) GetTopLanguages(c *gin.Context) {
	var chartQuery model.ChartQuery
	if err := c.ShouldBindQuery(&chartQuery); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	// fetch the repositories, then aggregate and render
	// the renderer is never reached when the fetch failed: the caller gets
	// one structured error instead of a partial document
	repos, err := s.githubService.FetchUserRepositories(c, c.Param("username"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewAPIError(err))
		return
	}

	ranked := chart.Aggregate(repos)
	document := s.renderer.Render(ranked, chartQuery.DisplayCount(s.config.Chart.DefaultTopCount))

	c.Data(http.StatusOK, "image/svg+xml", []byte(document))
}
