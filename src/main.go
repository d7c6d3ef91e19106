package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"Backend-SurveyStudio/src/controllers"
	"Backend-SurveyStudio/src/database"
	"Backend-SurveyStudio/src/routes"
	"Backend-SurveyStudio/src/services/surveys"
	"Backend-SurveyStudio/src/store"
	"Backend-SurveyStudio/src/surveyapi"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	upstream := os.Getenv("UPSTREAM_API_URL")
	if upstream == "" {
		log.Fatal("UPSTREAM_API_URL is required")
	}
	client := surveyapi.NewClient(upstream)

	// Redis keeps drafts across restarts; without it the service falls back
	// to in-memory stores.
	var sessions store.SessionStore
	var surveyList store.SurveyStore
	if os.Getenv("REDIS_URI") != "" {
		if err := database.InitRedis(); err != nil {
			log.Fatalf("Error connecting to Redis: %v", err)
		}
		sessions = store.NewRedisSessionStore(database.RedisClient)
		surveyList = store.NewRedisSurveyStore(database.RedisClient)
		log.Println("Using Redis stores")
	} else {
		sessions = store.NewMemorySessionStore()
		surveyList = store.NewMemorySurveyStore()
		log.Println("REDIS_URI not set, using in-memory stores")
	}

	controllers.Setup(surveys.NewService(sessions, surveyList, client))

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // reference files are held in the session
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI))); err != nil {
		log.Fatal(err)
	}
}
