package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/davitran/clipshare/http/controller"
)

type Middlewares struct {
	CORSMiddleware gin.HandlerFunc
	AccessGate     gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) (*Middlewares, error) {
	cors := CORSMiddleware(ctrl.Config.EnvConfig)
	gate := AccessGate(ctrl.Identity, DefaultRouteClassifier())

	return &Middlewares{
		CORSMiddleware: cors,
		AccessGate:     gate,
	}, nil
}
