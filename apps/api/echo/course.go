package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wcccd/mihistory/core/course"
)

type courseApi struct {
	catalog *course.Catalog
}

func registerCourseAPI(g *echo.Group, catalog *course.Catalog) {
	api := courseApi{catalog: catalog}

	cg := g.Group("/course")
	cg.GET("/slides", api.slides)
	cg.GET("/resources", api.resources)
}

func (api *courseApi) slides(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.catalog.Slides)
}

func (api *courseApi) resources(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.catalog.Resources)
}
