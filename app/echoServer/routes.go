package echoServer

import (
	authorctrl "bookshop/app/echoServer/controller/author"
	bookctrl "bookshop/app/echoServer/controller/book"
	orderctrl "bookshop/app/echoServer/controller/order"
	userctrl "bookshop/app/echoServer/controller/user"
	"bookshop/app/echoServer/jwtx"
	"bookshop/model"
	jwtutil "bookshop/util/jwt"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Author *authorctrl.Controller
	Book   *bookctrl.Controller
	User   *userctrl.Controller
	Order  *orderctrl.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	bearer := echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(_ echo.Context, auth string) (interface{}, error) {
			return jwtutil.ParseAuth(auth, c.JWTSecret)
		},
	})
	staff := jwtx.RequireRoles(model.RoleAdmin, model.RoleManager)

	// Catalog reads are public
	e.GET("/Authors", c.Author.List)
	e.GET("/Authors/:id", c.Author.Get)
	e.GET("/Books", c.Book.List)
	e.GET("/Books/:id", c.Book.Get)

	// Catalog mutations are staff-only
	e.POST("/Authors", c.Author.Create, bearer, staff)
	e.PUT("/Authors", c.Author.Update, bearer, staff)
	e.DELETE("/Authors/:id", c.Author.Delete, bearer, staff)
	e.POST("/Books", c.Book.Create, bearer, staff)
	e.PUT("/Books", c.Book.Update, bearer, staff)
	e.DELETE("/Books/:id", c.Book.Delete, bearer, staff)

	// Users
	e.POST("/UserController/register", c.User.Register)
	e.POST("/UserController/login", c.User.Login)
	e.GET("/UserController/get", c.User.Get, bearer)

	// Orders
	e.GET("/OrderController", c.Order.List, bearer)
	e.GET("/OrderController/:id", c.Order.Get, bearer)
	e.GET("/OrderController/customer/:customerId", c.Order.ListByCustomer, bearer, staff)
	e.POST("/OrderController", c.Order.Create, bearer)
	e.DELETE("/OrderController/:id", c.Order.Delete, bearer)
	e.PUT("/OrderController/:id/status", c.Order.UpdateStatus, bearer, staff)
}
