// Package main bookshop API.
//
// @title           BookShop API
// @version         1.0
// @description     Bookshop backend (authors, books, customer orders, auth).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"bookshop/app/echoServer"
	authorctrl "bookshop/app/echoServer/controller/author"
	bookctrl "bookshop/app/echoServer/controller/book"
	orderctrl "bookshop/app/echoServer/controller/order"
	userctrl "bookshop/app/echoServer/controller/user"
	"bookshop/app/echoServer/validation"
	"bookshop/config"
	authorrepo "bookshop/repository/author"
	bookrepo "bookshop/repository/book"
	customerrepo "bookshop/repository/customer"
	orderrepo "bookshop/repository/order"
	authsvc "bookshop/service/auth"
	authorsvc "bookshop/service/author"
	booksvc "bookshop/service/book"
	ordersvc "bookshop/service/order"
	"bookshop/util/database"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Bootstrap(ctx, db); err != nil {
		log.Error("db bootstrap failed", "err", err)
		os.Exit(1)
	}

	// repos
	ar := authorrepo.New(db)
	br := bookrepo.New(db)
	cr := customerrepo.New(db)
	or := orderrepo.New(db)

	// services
	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour
	as := authsvc.New(cr, cfg.JWTSecret, ttl)
	aus := authorsvc.New(ar)
	bs := booksvc.New(br, ar)

	policy := ordersvc.AllowAllTransitions()
	if cfg.StrictTransitions {
		policy = ordersvc.StrictTransitions()
	}
	os_ := ordersvc.New(or, cr, policy)

	// controllers
	authorC := &authorctrl.Controller{Svc: aus, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, Log: log}
	userC := &userctrl.Controller{Svc: as, Log: log}
	orderC := &orderctrl.Controller{Svc: os_, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{"status": "ok"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Author: authorC,
		Book:   bookC,
		User:   userC,
		Order:  orderC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
