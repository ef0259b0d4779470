package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/matt-g-everett/propanim/demo"
)

// Api exposes the screen's buttons and state over HTTP.
type Api struct {
	bridge        *demo.Bridge
	submitTimeout time.Duration
	startTime     time.Time
}

// NewApi creates an instance of an Api.
func NewApi(bridge *demo.Bridge) *Api {
	a := new(Api)
	a.bridge = bridge
	a.submitTimeout = time.Second
	a.startTime = time.Now()
	return a
}

// Router builds the gin engine serving the API.
func (a *Api) Router(debug bool) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if debug {
		r.Use(gin.Logger())
	}
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	routes := r.Group("/api")
	{
		routes.GET("/state", a.handleGetState)
		routes.GET("/animations", a.handleGetAnimations)
		routes.POST("/animations/:name", a.handleStartAnimation)
	}
	return r
}

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string, debug bool) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: a.Router(debug),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown failed: %v", err)
		}
	}()

	log.Printf("Listening on %s...", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *Api) handleGetState(c *gin.Context) {
	state, version := a.bridge.State()
	c.JSON(http.StatusOK, gin.H{
		"version": version,
		"uptime":  time.Since(a.startTime).Round(time.Second).String(),
		"state":   state,
	})
}

func (a *Api) handleGetAnimations(c *gin.Context) {
	state, _ := a.bridge.State()
	animations := make([]gin.H, 0, len(demo.Actions))
	for _, action := range demo.Actions {
		animations = append(animations, gin.H{
			"name":    action,
			"label":   action.Label(),
			"enabled": state.Buttons[action],
		})
	}
	c.JSON(http.StatusOK, gin.H{"animations": animations})
}

func (a *Api) handleStartAnimation(c *gin.Context) {
	action, err := demo.ParseAction(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), a.submitTimeout)
	defer cancel()

	started, err := a.bridge.Submit(ctx, action)
	switch {
	case err != nil:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case !started:
		c.JSON(http.StatusConflict, gin.H{"error": "animation already running", "animation": action})
	default:
		c.JSON(http.StatusAccepted, gin.H{"animation": action, "started": true})
	}
}
