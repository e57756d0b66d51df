package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/davitran/clipshare/http/controller"
	middlewares "github.com/davitran/clipshare/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)
	// The gate fronts every route, pages and API alike.
	r.Use(middles.AccessGate)

	r.GET("/health", ctrl.HealthCheck)

	// Page routes; presentation lives in the frontend.
	r.GET("/", ctrl.PageHandler("landing"))
	r.GET("/sign-in", ctrl.PageHandler("sign-in"))
	r.GET("/sign-up", ctrl.PageHandler("sign-up"))
	r.GET("/home", ctrl.PageHandler("home"))
	r.GET("/video-upload", ctrl.PageHandler("video-upload"))
	r.GET("/social-share", ctrl.PageHandler("social-share"))

	apiRoutes := r.Group("/api")
	{
		apiRoutes.GET("/videos", ctrl.ListVideos)
		apiRoutes.POST("/video-upload", ctrl.UploadVideo)
		apiRoutes.POST("/image-upload", ctrl.UploadImage)
	}

	return r
}
