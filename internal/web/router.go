package web

import "github.com/gin-gonic/gin"

// Controller registers its routes on a group.
type Controller interface {
	Register(group *ControllerGroup)
}

type ControllerGroup struct {
	group *gin.RouterGroup
}

func (s *Server) Group(path string, middleware ...gin.HandlerFunc) *ControllerGroup {
	group := s.engine.Group(s.basePath + path)
	if len(middleware) > 0 {
		group.Use(middleware...)
	}
	return &ControllerGroup{group: group}
}

func (s *Server) RegisterController(path string, controller Controller) {
	controller.Register(s.Group(path))
}

func (g *ControllerGroup) Group(path string, middleware ...gin.HandlerFunc) *ControllerGroup {
	group := g.group.Group(path)
	if len(middleware) > 0 {
		group.Use(middleware...)
	}
	return &ControllerGroup{group: group}
}

func (g *ControllerGroup) GET(path string, handler gin.HandlerFunc) {
	g.group.GET(path, handler)
}

func (g *ControllerGroup) POST(path string, handler gin.HandlerFunc) {
	g.group.POST(path, handler)
}

func (g *ControllerGroup) PUT(path string, handler gin.HandlerFunc) {
	g.group.PUT(path, handler)
}

func (g *ControllerGroup) DELETE(path string, handler gin.HandlerFunc) {
	g.group.DELETE(path, handler)
}
