package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"debase-landing/internal/content"
	"debase-landing/pkg/navigation"
	"debase-landing/pkg/validator"
)

type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	validator.Init()
	return &NavigationHandler{}
}

type navigationResponse struct {
	MenuOpen     bool              `json:"menu_open"`
	Desktop      []navigation.Item `json:"desktop"`
	Mobile       []navigation.Item `json:"mobile"`
	CallToAction navigation.Item   `json:"call_to_action"`
	ToggleHref   string            `json:"toggle_href"`
}

type navigationQuery struct {
	Menu string `form:"menu" binding:"menu_state"`
}

type toggleRequest struct {
	Open *bool `json:"open" binding:"required"`
}

func newNavigationResponse(state navigation.MenuState) navigationResponse {
	mobile := state.MobileLinks()
	if mobile == nil {
		mobile = []navigation.Item{}
	}
	return navigationResponse{
		MenuOpen:     state.IsOpen(),
		Desktop:      navigation.PrimaryLinks(),
		Mobile:       mobile,
		CallToAction: content.CallToAction(),
		ToggleHref:   state.Toggled().Href(),
	}
}

// Get describes the navigation for the state in the menu query parameter.
func (h *NavigationHandler) Get(c *gin.Context) {
	var query navigationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu must be open or closed"})
		return
	}

	state := navigation.ParseMenuState(query.Menu)
	c.JSON(http.StatusOK, newNavigationResponse(state))
}

// Toggle applies one toggle to the submitted state and returns the result.
func (h *NavigationHandler) Toggle(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "open is required"})
		return
	}

	var state navigation.MenuState
	if *req.Open {
		state.Toggle()
	}
	state.Toggle()

	c.JSON(http.StatusOK, newNavigationResponse(state))
}
