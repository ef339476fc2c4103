package server

import (
	"log"
	"os"

	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	redis "github.com/krushnasaruk55/medflow-pro-6.0/config/redis"
	"github.com/krushnasaruk55/medflow-pro-6.0/socket"

	"github.com/gin-gonic/gin"
)

type Options struct {
	CacheEnabled     bool
	MongoEnabled     bool
	WebServerEnabled bool
	WebServerPort    string

	JobsEnabled bool
	JobsHandler func()

	MigrationEnabled bool
	MigrationHandler func()

	WebServerPreHandler func(r *gin.Engine)
}

func GetDefaultOptions() Options {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return Options{
		CacheEnabled:     true,
		MongoEnabled:     true,
		WebServerEnabled: true,
		WebServerPort:    port,
	}
}

/*
* Connect mongo and redis first so handlers never see a nil client
* Run migrations, then jobs, then bring up the web server with the
* websocket endpoint mounted before the caller's routes
 */
func Start(opts Options) {
	if opts.MongoEnabled {
		if err := db.Connect(); err != nil {
			log.Fatal("Unable to connect to mongo:", err)
		}
	}
	if opts.CacheEnabled {
		if err := redis.Connect(); err != nil {
			log.Println("Redis unavailable, continuing without cache:", err)
		}
	}

	if opts.MigrationEnabled && opts.MigrationHandler != nil {
		opts.MigrationHandler()
	}
	if opts.JobsEnabled && opts.JobsHandler != nil {
		opts.JobsHandler()
	}

	if !opts.WebServerEnabled {
		return
	}

	r := gin.Default()
	// the socket handler validates the JWT itself, browsers cannot send
	// headers on websocket dials
	r.GET("/ws", socket.Handler(socket.DefaultHub()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if opts.WebServerPreHandler != nil {
		opts.WebServerPreHandler(r)
	}

	log.Println("Starting web server on port:", opts.WebServerPort)
	if err := r.Run(":" + opts.WebServerPort); err != nil {
		log.Fatal("Web server stopped:", err)
	}
}
