package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/Fizik0/MarketUnitCalc/internal/api"
	"github.com/Fizik0/MarketUnitCalc/internal/config"
	"github.com/Fizik0/MarketUnitCalc/internal/repository"
	"github.com/Fizik0/MarketUnitCalc/internal/service"
	"github.com/Fizik0/MarketUnitCalc/migrations"
)

// JwtCustomClaims carries the authenticated seller identity on the
// calculation routes.
type JwtCustomClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func connectDBEnv(host, port, user, pass, dbname string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", dbname)
				return db, nil
			}
		}
		log.Printf("Retry %d: failed to connect to DB %s (%s:%s): %v", i+1, dbname, host, port, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", dbname, host, port, err)
}

func main() {
	db, err := connectDBEnv(
		config.Getenv("DB_HOST", "127.0.0.1"),
		config.Getenv("DB_PORT", "3306"),
		config.Getenv("DB_USER", "root"),
		config.Getenv("DB_PASS", ""),
		config.Getenv("DB_NAME", "unit-economics-db"),
	)
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrateCalculations(db); err != nil {
		log.Fatalf("Failed to migrate calculations table: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: config.Getenv("REDIS_ADDR", "localhost:6379"),
	})

	kafkaWriter := config.NewKafkaWriter("calculation-topic")

	calcRepo := repository.NewCalculationRepository(db)
	analysisService := service.NewAnalysisService(rdb)
	calculationService := service.NewCalculationService(calcRepo, kafkaWriter, rdb)
	analysisHandler := api.NewAnalysisHandler(analysisService)
	calculationHandler := api.NewCalculationHandler(calculationService)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(5),
				Burst:     10,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	e.POST("/analysis", analysisHandler.Analyze)
	e.POST("/analysis/scenarios", analysisHandler.RunScenarios)
	e.GET("/benchmarks/:marketplace/:category", analysisHandler.GetBenchmark)

	calculations := e.Group("/calculations")
	calculations.Use(echojwt.WithConfig(echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(JwtCustomClaims)
		},
		SigningKey: config.JWTSecret(),
	}))
	calculations.POST("", calculationHandler.SaveCalculation)
	calculations.GET("", calculationHandler.ListCalculations)
	calculations.GET("/:id", calculationHandler.GetCalculation)
	calculations.PUT("/:id", calculationHandler.UpdateCalculation)
	calculations.DELETE("/:id", calculationHandler.DeleteCalculation)

	e.GET("/economics/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "unit-economics-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(":" + config.Getenv("PORT", "8084")))
}
