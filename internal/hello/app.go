// Package hello is the second, deliberately tiny application: a landing
// page and a parametrized greeting, with the same dedicated error pages
// and ambient middleware as the main app.
package hello

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osuarez/clinic-manager/internal/handler"
	"github.com/osuarez/clinic-manager/internal/middleware"
	"github.com/osuarez/clinic-manager/internal/web"
)

func NewEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.SetHTMLTemplate(web.Templates())
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(),
		middleware.RequestID(),
	)

	engine.GET("/", Index)
	engine.GET("/user/:name", Greet)
	engine.NoRoute(handler.NotFoundPage)

	return engine
}

func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "hello_index.html", gin.H{})
}

func Greet(c *gin.Context) {
	c.HTML(http.StatusOK, "hello_user.html", gin.H{
		"Name": c.Param("name"),
	})
}
