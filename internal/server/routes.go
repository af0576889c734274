package server

import (
	"net/http"

	"github.com/agrogen/agrogen/internal/handlers"
	"github.com/agrogen/agrogen/internal/views"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET(views.RouteRoot, handlers.HomeGet)
	s.E.GET("/health", handlers.HealthGet)
	s.E.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", s.Assets.Handler())))

	// Screens. Each request mounts a new view instance.
	s.E.GET(views.RouteAuth, s.pageHandler.AuthGet)
	s.E.GET(views.RouteLogin, s.pageHandler.LoginGet)
	s.E.GET(views.RouteSignup, s.pageHandler.SignupGet)
	s.E.GET(views.RouteRecovery, s.pageHandler.ForgotPasswordGet)
	s.E.GET(views.RouteDashboard, s.pageHandler.DashboardGet)

	// Interactions with a mounted view.
	v := s.E.Group("/views/:id")
	v.POST("/input", s.viewHandler.Input)
	v.POST("/focus", s.viewHandler.Focus)
	v.POST("/blur", s.viewHandler.Blur)
	v.POST("/password-visibility", s.viewHandler.PasswordVisibility)
	v.POST("/remember", s.viewHandler.Remember)
	v.POST("/panel", s.viewHandler.Panel)
	v.POST("/submit", s.viewHandler.Submit)
	v.POST("/reset", s.viewHandler.Reset)
	v.DELETE("", s.viewHandler.Unmount)
	// navigator.sendBeacon can only POST.
	v.POST("/unmount", s.viewHandler.Unmount)
	v.GET("/stream", s.streamHandler.Serve)
}

// Routes lists the registered method and path pairs.
func (s *Server) Routes() []*echo.Route {
	return s.E.Routes()
}
