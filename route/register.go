package route

import (
	"net/http"
	"time"

	"git.thinkinpower.net/cardkit/bdata"
	"git.thinkinpower.net/cardkit/data"
	"git.thinkinpower.net/cardkit/detect"
	"github.com/gin-gonic/gin"
)

type handler struct {
	db     bdata.BinDatabase
	engine *detect.Engine
}

// Register mounts the cardkit routes. engine may be nil, in which case
// detection runs against db.
func Register(r *gin.Engine, db bdata.BinDatabase, engine *detect.Engine) {
	if engine == nil {
		engine = detect.New(db)
	}
	h := &handler{db: db, engine: engine}

	g := r.Group("/cardkit")
	{
		g.GET("/index", func(context *gin.Context) {
			context.String(http.StatusOK, "Hello cardkit, date: %s", time.Now().Format(data.DateTimePattern))
		})

		g.GET("/query/:bin", h.binQuery)
		g.GET("/brands", h.brands)
		g.POST("/feedback/:bin", h.feedback)
	}
}
