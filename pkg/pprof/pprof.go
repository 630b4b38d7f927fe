package pprof

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	pprof.Register(router)
	return router
}

// Serve blocks until the debug server stops.
func Serve(addr string) error {
	logx.Infof("pprof listening on %s", addr)
	return NewRouter().Run(addr)
}

// Start runs the debug server in the background. An empty addr disables it.
func Start(addr string) {
	if addr == "" {
		return
	}

	go func() {
		if err := Serve(addr); err != nil {
			logx.Errorf("pprof: %v", err)
		}
	}()
}
